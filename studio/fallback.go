package studio

import (
	"time"

	"github.com/incubyte/segmint/client"
)

// FallbackItems returns the bundled sample content shown when fetching the
// user's stored posts fails. The workspace stays usable offline.
func FallbackItems() []client.ContentItem {
	ts := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []client.ContentItem{
		{
			ID:          "content-1",
			Content:     "Excited to announce our latest product update! Check out the new features at our website. #ProductLaunch #Innovation",
			Platform:    "twitter",
			ContentType: "post",
			CreatedAt:   ts("2025-04-18T15:30:00Z"),
			Status:      client.StatusPublished,
			Persona:     "professional",
		},
		{
			ID:          "content-2",
			Content:     "Looking for ways to improve your productivity? Our latest blog post covers the top 10 tools that can help you stay focused and organized throughout your workday.",
			Platform:    "linkedin",
			ContentType: "post",
			CreatedAt:   ts("2025-04-17T12:45:00Z"),
			Status:      client.StatusDraft,
			Persona:     "expert",
		},
		{
			ID:          "content-3",
			Content:     "✨ New product alert! ✨\nWe've just launched our spring collection and we couldn't be more excited! Swipe up to be the first to shop these limited edition items before they're gone!",
			Platform:    "instagram",
			ContentType: "story",
			CreatedAt:   ts("2025-04-16T09:15:00Z"),
			Status:      client.StatusScheduled,
			Persona:     "casual",
		},
		{
			ID:          "content-4",
			Content:     "How do you stay productive during the afternoon slump? Share your tips in the comments below! ☕️ #ProductivityTips #WorkLifeBalance",
			Platform:    "facebook",
			ContentType: "post",
			CreatedAt:   ts("2025-04-15T16:20:00Z"),
			Status:      client.StatusDraft,
			Persona:     "engaging",
		},
		{
			ID:          "content-5",
			Content:     "In this video, we break down our design process from concept to final product. Learn how we approach problem-solving and create solutions that our customers love.",
			Platform:    "youtube",
			ContentType: "video script",
			CreatedAt:   ts("2025-04-14T14:10:00Z"),
			Status:      client.StatusDraft,
			Persona:     "educational",
		},
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/incubyte/segmint/client"
	"github.com/incubyte/segmint/persona"
	"github.com/incubyte/segmint/questions"
	"github.com/incubyte/segmint/session"
	"github.com/incubyte/segmint/studio"
)

var serviceURL string
var sessionFile string
var debug bool
var requestTimeout = 30 * time.Second
var sessionTTL = session.DefaultTTL

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	// A missing .env file is fine; env vars win either way.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "segmint",
		Short: "Segmint CLI for persona-aware content generation",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("SEGMINT_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	cfg, err := client.LoadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("falling back to default configuration")
		cfg = client.Config{APIURL: "https://segmint-ujsx.onrender.com"}
	}
	if cfg.HTTPTimeout > 0 {
		requestTimeout = cfg.HTTPTimeout
	}
	if cfg.SessionTTLHours > 0 {
		sessionTTL = time.Duration(cfg.SessionTTLHours) * time.Hour
	}

	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", cfg.APIURL, "Base URL of the Segmint API")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", cfg.SessionFile, "Path of the session file (default: per-user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newSigninCmd())
	rootCmd.AddCommand(newSignoutCmd())
	rootCmd.AddCommand(newPersonaCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newQuestionsCmd())
	rootCmd.AddCommand(newCreatePersonaCmd())

	return rootCmd
}

func openSession() (*session.Store, error) {
	path := sessionFile
	if path == "" {
		var err error
		path, err = session.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return session.Open(path)
}

func newClient() (*client.Client, *session.Store, error) {
	store, err := openSession()
	if err != nil {
		return nil, nil, err
	}
	c := client.New(serviceURL,
		client.WithPersonaSource(store),
		client.WithHTTPTimeout(requestTimeout))
	return c, store, nil
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func newSigninCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and store the newest persona for the given email",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, store, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			personas, err := c.ListPersonas(ctx, email, 1)
			if err != nil {
				return err
			}
			if len(personas) == 0 {
				return fmt.Errorf("no persona found for %s", email)
			}
			if err := store.Set(session.PersonaKey, personas[0].ID, sessionTTL); err != nil {
				return err
			}
			log.Info().Str("persona_id", personas[0].ID).Msg("signed in")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newSignoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Clear the stored persona session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openSession()
			if err != nil {
				return err
			}
			if err := store.ClearActivePersona(); err != nil {
				return err
			}
			log.Info().Msg("signed out")
			return nil
		},
	}
}

func newPersonaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "persona",
		Short: "Show the active persona",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, store, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			p := persona.NewProvider(c.GetPersona, store)
			if err := p.Init(ctx); err != nil {
				return err
			}
			snap := p.Snapshot()
			if snap.State == persona.StateIdle {
				fmt.Println("no active persona; run 'segmint signin' first")
				return nil
			}
			printJSON(snap.Persona)
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var platform, contentType, tone, coreMessage string
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate content suggestions with the active persona",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			ws := studio.NewWorkspace(c)
			defer func() { _ = ws.Close() }()

			items, err := ws.Generate(ctx, client.GenerationSettings{
				Platform:    platform,
				ContentType: contentType,
				Tone:        tone,
				Count:       count,
				CoreMessage: coreMessage,
			})
			if err != nil {
				return err
			}
			printJSON(items)
			return nil
		},
	}
	cmd.Flags().StringVar(&platform, "platform", "", "Target platform (e.g. twitter, linkedin)")
	cmd.Flags().StringVar(&contentType, "content-type", "", "Content type (e.g. post, story)")
	cmd.Flags().StringVar(&tone, "tone", "", "Tone of voice (e.g. casual, professional)")
	cmd.Flags().StringVar(&coreMessage, "core-message", "", "Optional core message the suggestions should convey")
	cmd.Flags().IntVar(&count, "count", 3, "Number of suggestions (1-10)")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("content-type")
	_ = cmd.MarkFlagRequired("tone")
	return cmd
}

func newListCmd() *cobra.Command {
	var userID, platform, status, search, sortBy string
	var grouped bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's stored content, filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			ws := studio.NewWorkspace(c)
			defer func() { _ = ws.Close() }()

			if err := ws.Load(ctx, userID); err != nil {
				log.Warn().Err(err).Msg("fetch failed, showing sample content")
			}
			items := ws.Filter(studio.Criteria{
				Platform: platform,
				Status:   status,
				Search:   search,
				SortBy:   sortBy,
			})
			if grouped {
				printJSON(studio.GroupItems(items))
			} else {
				printJSON(items)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "User id whose posts to list")
	cmd.Flags().StringVar(&platform, "platform", "all", "Filter by platform")
	cmd.Flags().StringVar(&status, "status", "all", "Filter by status")
	cmd.Flags().StringVar(&search, "search", "", "Filter by content or core message text")
	cmd.Flags().StringVar(&sortBy, "sort", studio.SortNewest, "Sort order: newest or oldest")
	cmd.Flags().BoolVar(&grouped, "grouped", false, "Group suggestions from the same post")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func newCopyCmd() *cobra.Command {
	var userID, itemID string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a content item to the clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			ws := studio.NewWorkspace(c)
			defer func() { _ = ws.Close() }()

			if err := ws.Load(ctx, userID); err != nil {
				return err
			}
			found, err := ws.Copy(itemID)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no content item with id %s", itemID)
			}
			log.Info().Str("id", itemID).Msg("copied to clipboard")
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user-id", "", "User id whose posts to search")
	cmd.Flags().StringVar(&itemID, "id", "", "Content item id to copy")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

// validateAnswers checks the submitted answers against the embedded
// questionnaire before anything goes over the wire: every answer must
// satisfy its question's constraints and every required question must be
// answered.
func validateAnswers(answers []client.SignupAnswer) error {
	qs, err := questions.Load()
	if err != nil {
		return err
	}
	byID := make(map[string]questions.Question, len(qs))
	for _, q := range qs {
		byID[q.ID] = q
	}

	answered := map[string]bool{}
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			return fmt.Errorf("unknown question id %q in answers file", a.QuestionID)
		}
		if err := questions.ValidateAnswer(q, a.Answer); err != nil {
			return fmt.Errorf("answer to %q: %w", a.QuestionID, err)
		}
		answered[a.QuestionID] = true
	}
	for _, q := range qs {
		if q.Required && !answered[q.ID] {
			return fmt.Errorf("missing answer to required question %q", q.ID)
		}
	}
	return nil
}

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the signup questionnaire",
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := questions.Load()
			if err != nil {
				return err
			}
			printJSON(qs)
			return nil
		},
	}
}

func newCreatePersonaCmd() *cobra.Command {
	var email, answersFile string

	cmd := &cobra.Command{
		Use:   "create-persona",
		Short: "Submit signup answers and create a persona",
		Long: "Reads questionnaire answers from a JSON file " +
			`(e.g. [{"question_id":"role","question":"...","answer":"content_creator"}]) ` +
			"and submits them. Run 'segmint signin' afterwards to activate the persona.",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(answersFile)
			if err != nil {
				return fmt.Errorf("read answers file: %w", err)
			}
			var answers []client.SignupAnswer
			if err := json.Unmarshal(raw, &answers); err != nil {
				return fmt.Errorf("decode answers file: %w", err)
			}
			if err := validateAnswers(answers); err != nil {
				return err
			}

			c, _, err := newClient()
			if err != nil {
				return err
			}

			// The SDK bounds this call itself; pass the command context through.
			resp, err := c.CreatePersona(cmd.Context(), client.CreatePersonaRequest{
				UserEmail:   email,
				InitialData: answers,
			})
			if err != nil {
				return err
			}
			printJSON(resp)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	cmd.Flags().StringVar(&answersFile, "answers", "", "Path to a JSON file of questionnaire answers")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

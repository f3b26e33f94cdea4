package api

import "errors"

// asErr is a shorthand for errors.As in table-heavy tests.
func asErr(err error, target any) bool { return errors.As(err, target) }

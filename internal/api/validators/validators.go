package validators

import "github.com/go-playground/validator/v10"

var v = validator.New(validator.WithRequiredStructEnabled())

// New returns the shared validator instance. validator.Validate is safe for
// concurrent use and caches struct metadata, so one instance serves all handlers.
func New() *validator.Validate {
	return v
}

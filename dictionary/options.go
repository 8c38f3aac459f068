package dictionary

import (
	"github.com/wordsmith/lexicon/logger"
)

// Option is a function that configures a Dictionary.
type Option func(*Dictionary)

// WithLogger sets the logger that is used to report mutations and bulk loads.
func WithLogger(log *logger.Logger) Option {
	return func(d *Dictionary) {
		d.log = log.Named("Dictionary")
	}
}

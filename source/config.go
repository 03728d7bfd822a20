package source

import (
	"fmt"

	"github.com/canopy-tools/canopy/internal/options"
)

// Config holds Tokenizer settings.
type Config struct {
	maxBuffer       int
	nullCharacters  bool
	dedupAttributes bool
}

// NewConfig returns the default configuration: no buffer limit, NUL bytes
// split out of text and duplicate attributes dropped.
func NewConfig() *Config {
	return &Config{
		nullCharacters:  true,
		dedupAttributes: true,
	}
}

// Option is a functional option for configuring Tokenizer and Drive.
type Option = options.Option[*Config]

// WithMaxBuffer limits the bytes a single token may span. Zero means unlimited.
// A longer token fails tokenization with ErrInputRead.
func WithMaxBuffer(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("max buffer must be non-negative, got %d", n)
		}
		cfg.maxBuffer = n

		return nil
	})
}

// WithNullCharacters controls whether NUL bytes in text are reported as
// NullCharacter and ParseError events. When disabled, they stay in the text.
func WithNullCharacters(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.nullCharacters = enabled
	})
}

// WithDuplicateAttributes keeps repeated attribute names on a start tag.
// By default only the first occurrence is kept and a ParseError is emitted.
func WithDuplicateAttributes(keep bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.dedupAttributes = !keep
	})
}

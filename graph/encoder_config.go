package graph

import (
	"fmt"

	"github.com/canopy-tools/canopy/internal/options"
)

// Output receives the finished document exactly once, at end-of-stream.
// The slice is owned by the encoder and must not be modified.
type Output func(doc []byte) error

// EncoderConfig holds Encoder construction settings.
type EncoderConfig struct {
	edgeCapacity int
	output       Output
}

// NewEncoderConfig returns the default configuration.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		edgeCapacity: defaultEdgeCapacity,
	}
}

// EncoderOption is a functional option for configuring Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithEdgeCapacity pre-sizes the edge lists for roughly n element edges.
// Useful when the caller knows the approximate event count up front.
func WithEdgeCapacity(n int) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if n < 0 {
			return fmt.Errorf("edge capacity must be non-negative, got %d", n)
		}
		cfg.edgeCapacity = n

		return nil
	})
}

// WithOutput registers the sink that receives the finished document.
func WithOutput(out Output) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.output = out
	})
}

package source

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/canopy-tools/canopy/errs"
	"github.com/canopy-tools/canopy/event"
	"github.com/canopy-tools/canopy/format"
	"github.com/canopy-tools/canopy/internal/pool"
)

// Drive reads all of r, tokenizes it and feeds every event to sink, ending
// with EndOfStream.
//
// The input is read completely before the first event is produced, so a read
// failure never leaves sink with a partial stream. Context cancellation is
// checked between events.
//
// Returns:
//   - error: ErrInputRead-wrapped read failure, the context error, or the first
//     error returned by sink
func Drive(ctx context.Context, r io.Reader, sink event.Sink, opts ...Option) error {
	buf := pool.GetInputBuffer()
	defer pool.PutInputBuffer(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInputRead, err)
	}

	return DriveBytes(ctx, buf.Bytes(), sink, opts...)
}

// DriveBytes is Drive over an in-memory document.
func DriveBytes(ctx context.Context, data []byte, sink event.Sink, opts ...Option) error {
	t, err := NewTokenizer(bytes.NewReader(data), opts...)
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := t.Next()
		if err != nil {
			return err
		}

		if err := sink.Process(ev); err != nil {
			return err
		}

		if ev.Kind() == format.EventEndOfStream {
			return nil
		}
	}
}

// Collect tokenizes data and returns every event, ending with EndOfStream.
func Collect(data []byte, opts ...Option) ([]event.Event, error) {
	var events []event.Event
	err := DriveBytes(context.Background(), data, event.SinkFunc(func(ev event.Event) error {
		events = append(events, ev)
		return nil
	}), opts...)
	if err != nil {
		return nil, err
	}

	return events, nil
}

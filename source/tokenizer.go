package source

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/canopy-tools/canopy/errs"
	"github.com/canopy-tools/canopy/event"
	"github.com/canopy-tools/canopy/internal/options"
)

const (
	errNullCharacter      = "unexpected-null-character"
	errMissingDoctype     = "missing-doctype-name"
	errDuplicateAttribute = "duplicate-attribute"
)

// Tokenizer turns an HTML byte stream into parse events.
//
// It is a thin layer over golang.org/x/net/html's tokenizer:
//   - start tags and self-closing tags become StartTag (no synthetic EndTag)
//   - end tags become EndTag
//   - text becomes Characters, with entities decoded and CRLF normalized
//   - comments become Comment
//   - doctypes become Doctype with the name and identifiers split out
//
// No tree construction happens: implied tags are not inserted and misnested
// tags are reported as they appear.
//
// Note: The Tokenizer is NOT thread-safe.
type Tokenizer struct {
	*Config

	z       *html.Tokenizer
	pending []event.Event
	done    bool
}

// NewTokenizer creates a Tokenizer reading from r.
func NewTokenizer(r io.Reader, opts ...Option) (*Tokenizer, error) {
	config := NewConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	z := html.NewTokenizer(r)
	if config.maxBuffer > 0 {
		z.SetMaxBuf(config.maxBuffer)
	}

	return &Tokenizer{Config: config, z: z}, nil
}

// Next returns the next event.
//
// The last event of a successful run is EndOfStream; after it Next returns io.EOF.
// A read failure returns an error wrapping ErrInputRead.
func (t *Tokenizer) Next() (event.Event, error) {
	for len(t.pending) == 0 {
		if t.done {
			return nil, io.EOF
		}
		if err := t.advance(); err != nil {
			return nil, err
		}
	}

	ev := t.pending[0]
	t.pending = t.pending[1:]

	return ev, nil
}

// advance reads one token and queues the events it produces.
func (t *Tokenizer) advance() error {
	switch t.z.Next() {
	case html.ErrorToken:
		err := t.z.Err()
		if errors.Is(err, io.EOF) {
			t.done = true
			t.emit(event.EndOfStream{})

			return nil
		}

		return fmt.Errorf("%w: %w", errs.ErrInputRead, err)

	case html.TextToken:
		t.text(string(t.z.Text()))

	case html.StartTagToken:
		t.startTag(false)

	case html.SelfClosingTagToken:
		t.startTag(true)

	case html.EndTagToken:
		name, _ := t.z.TagName()
		t.emit(event.EndTag{Name: string(name)})

	case html.CommentToken:
		t.emit(event.Comment{Text: string(t.z.Text())})

	case html.DoctypeToken:
		d := parseDoctype(string(t.z.Text()))
		if d.Name == nil {
			t.emit(event.ParseError{Message: errMissingDoctype})
		}
		t.emit(d)
	}

	return nil
}

// text emits s as Characters. With null-character reporting on, every NUL byte
// ends the current run and is reported as a ParseError followed by NullCharacter.
func (t *Tokenizer) text(s string) {
	if !t.nullCharacters {
		t.emit(event.Characters{Text: s})
		return
	}

	for {
		i := strings.IndexByte(s, 0)
		if i == -1 {
			break
		}
		if i > 0 {
			t.emit(event.Characters{Text: s[:i]})
		}
		t.emit(event.ParseError{Message: errNullCharacter}, event.NullCharacter{})
		s = s[i+1:]
	}

	if s != "" {
		t.emit(event.Characters{Text: s})
	}
}

func (t *Tokenizer) startTag(selfClosing bool) {
	name, hasAttr := t.z.TagName()
	tag := event.StartTag{Name: string(name), SelfClosing: selfClosing}

	var seen map[string]struct{}
	duplicate := false
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = t.z.TagAttr()

		if t.dedupAttributes {
			if seen == nil {
				seen = make(map[string]struct{})
			}
			if _, ok := seen[string(key)]; ok {
				duplicate = true
				continue
			}
			seen[string(key)] = struct{}{}
		}

		tag.Attributes = append(tag.Attributes, event.Attribute{Local: string(key), Value: string(val)})
	}

	if duplicate {
		t.emit(event.ParseError{Message: errDuplicateAttribute})
	}
	t.emit(tag)
}

func (t *Tokenizer) emit(evs ...event.Event) {
	t.pending = append(t.pending, evs...)
}

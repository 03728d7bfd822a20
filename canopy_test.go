package canopy

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canopy-tools/canopy/errs"
	"github.com/canopy-tools/canopy/event"
	"github.com/canopy-tools/canopy/graph"
)

func TestEncodeString(t *testing.T) {
	data, err := EncodeString(`<!DOCTYPE html><ul><li class="a">one</li><li>two</li></ul>`)
	require.NoError(t, err)

	doc, err := Decode(data)
	require.NoError(t, err)

	keys, err := doc.Keys().Strings()
	require.NoError(t, err)
	require.Equal(t, []string{graph.DoctypeKey, "ul", "li", "li"}, keys)

	attrs, err := doc.Attributes().Strings()
	require.NoError(t, err)
	require.Equal(t, []string{"html", "class"}, attrs)

	texts, err := doc.Texts().Strings()
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, texts)

	require.Equal(t, Digest(data), doc.Digest())
}

func TestEncodeEvents(t *testing.T) {
	fromEvents, err := EncodeEvents([]event.Event{
		event.StartTag{Name: "p"},
		event.Characters{Text: "hi"},
		event.EndTag{Name: "p"},
	})
	require.NoError(t, err)

	fromMarkup, err := EncodeString("<p>hi</p>")
	require.NoError(t, err)
	require.Equal(t, fromMarkup, fromEvents)

	explicitEnd, err := EncodeEvents([]event.Event{
		event.StartTag{Name: "p"},
		event.Characters{Text: "hi"},
		event.EndTag{Name: "p"},
		event.EndOfStream{},
	})
	require.NoError(t, err)
	require.Equal(t, fromEvents, explicitEnd)
}

func TestEncodeEvents_AfterEnd(t *testing.T) {
	_, err := EncodeEvents([]event.Event{event.EndOfStream{}, event.StartTag{Name: "p"}})
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestEncode_ReadFailure(t *testing.T) {
	data, err := Encode(errReader{})
	require.ErrorIs(t, err, errs.ErrInputRead)
	require.Nil(t, data)
}

func TestEncode_EmptyInput(t *testing.T) {
	data, err := Encode(strings.NewReader(""))
	require.NoError(t, err)
	require.Len(t, data, 36)
}

func TestNewEncoder_Output(t *testing.T) {
	var got []byte
	enc, err := NewEncoder(graph.WithOutput(func(doc []byte) error {
		got = doc
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, enc.Process(event.EndOfStream{}))
	require.Len(t, got, 36)
}

func ExampleEncodeString() {
	data, _ := EncodeString("<p>hi</p>")
	doc, _ := Decode(data)

	for edge := range doc.ElementEdges() {
		fmt.Println(edge.Kind, edge.A, edge.B)
	}
	fmt.Println(doc.Size())
	// Output:
	// child 0 1
	// text 1 0
	// 79
}

func ExampleDecode() {
	data, _ := EncodeString(`<a href="/">home</a>`)
	doc, _ := Decode(data)

	for id, key := range doc.ElementNodes() {
		fmt.Println(id, key, doc.AttributesOf(id))
	}
	// Output:
	// 1 a [0]
}

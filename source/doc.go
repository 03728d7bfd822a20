// Package source produces parse events from HTML markup.
//
// It wraps the golang.org/x/net/html tokenizer and maps its tokens onto the
// closed event set of package event. The output is a token stream, not a tree:
// the graph encoder gives structure to the stream on its own.
//
// Basic usage:
//
//	enc, _ := graph.NewEncoder()
//	if err := source.Drive(ctx, r, enc); err != nil {
//	    return err
//	}
//	doc, _ := enc.Bytes()
//
// Parse errors the tokenizer detects are reported in-band as ParseError events
// and never stop tokenization. Only I/O failures are returned as errors.
package source

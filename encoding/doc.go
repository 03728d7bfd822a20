// Package encoding implements the Packed String Table used by every canopy document.
//
// A packed string table is a single concatenated character buffer plus a
// parallel list of (start, end) byte offset pairs, one per logical string, in
// insertion order:
//
//	enc := encoding.NewPackedStringEncoder()
//	enc.Append("html")
//	enc.Append("body")
//	// Chars():   "htmlbody"
//	// Offsets(): [0 4 4 8]
//
// The table only grows. Offsets never decrease, end_i = start_i + len(s_i), and
// nothing is ever removed, reordered or deduplicated.
//
// PackedStringDecoder is the read side: it wraps the character and offset
// sections of a serialized document and resolves string i in constant time
// without copying the document.
package encoding

// Package section defines the physical layout of a canopy document.
//
// A document is one contiguous little-endian buffer: a fixed header of nine
// 32-bit words followed by eight variable-size sections.
//
//	┌───────────────────────────────────────────────────────────┐
//	│ Header (36 bytes, 9 × u32)                                │
//	│  word 0 = 36, word k = end offset of section k            │
//	├───────────────────────────────────────────────────────────┤
//	│ 1 keys.text           raw element/attribute key bytes     │
//	│ 2 attributes.text     raw attribute bytes                 │
//	│ 3 texts.text          raw text-run bytes                  │
//	├───────────────────────────────────────────────────────────┤
//	│ 4 keys.offsets        u32 (start, end) per key string     │
//	│ 5 attributes.offsets  u32 (start, end) per attribute      │
//	│ 6 texts.offsets       u32 (start, end) per text run       │
//	├───────────────────────────────────────────────────────────┤
//	│ 7 edges.attribute     u32 (node, attribute) per attribute │
//	│ 8 edges.element       u32 (kind, a, b) per edge           │
//	└───────────────────────────────────────────────────────────┘
//
// Offsets inside the offset tables are relative to the start of the matching
// character section, not to the start of the document.
//
// Header words are cumulative, so they never decrease and
//
//	Words[k] - Words[k-1] == len(section k)
//
// An empty document (no events besides end-of-stream) is exactly the header
// with every word equal to 36.
package section

package source

import (
	"strings"

	"github.com/canopy-tools/canopy/event"
)

const whitespace = " \t\r\n\f"

// parseDoctype splits the raw contents of a doctype token into its name,
// public identifier and system identifier.
//
// The name is lowercased. An identifier is only recognized after a PUBLIC or
// SYSTEM keyword (case-insensitive) and must be quoted; an unterminated quote
// runs to the end of the input.
func parseDoctype(s string) event.Doctype {
	var d event.Doctype

	s = strings.TrimLeft(s, whitespace)
	space := strings.IndexAny(s, whitespace)
	if space == -1 {
		space = len(s)
	}
	if name := s[:space]; name != "" {
		d.Name = event.String(strings.ToLower(name))
	}

	s = strings.TrimLeft(s[space:], whitespace)
	if len(s) < 6 {
		return d
	}

	key := strings.ToLower(s[:6])
	s = s[6:]
	for key == "public" || key == "system" {
		s = strings.TrimLeft(s, whitespace)
		if s == "" {
			break
		}

		quote := s[0]
		if quote != '"' && quote != '\'' {
			break
		}
		s = s[1:]

		var id string
		if q := strings.IndexByte(s, quote); q == -1 {
			id, s = s, ""
		} else {
			id, s = s[:q], s[q+1:]
		}

		if key == "public" {
			d.PublicID = event.String(id)
			key = "system"
		} else {
			d.SystemID = event.String(id)
			key = ""
		}
	}

	return d
}

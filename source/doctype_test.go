package source

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canopy-tools/canopy/event"
)

func TestParseDoctype(t *testing.T) {
	s := event.String

	tests := []struct {
		name string
		raw  string
		want event.Doctype
	}{
		{name: "empty", raw: "", want: event.Doctype{}},
		{name: "html5", raw: "html", want: event.Doctype{Name: s("html")}},
		{name: "uppercase name", raw: "HTML", want: event.Doctype{Name: s("html")}},
		{name: "leading whitespace", raw: "  html  ", want: event.Doctype{Name: s("html")}},
		{
			name: "public and system",
			raw:  `html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"`,
			want: event.Doctype{
				Name:     s("html"),
				PublicID: s("-//W3C//DTD HTML 4.01//EN"),
				SystemID: s("http://www.w3.org/TR/html4/strict.dtd"),
			},
		},
		{
			name: "public only",
			raw:  `html public '-//W3C//DTD HTML 3.2 Final//EN'`,
			want: event.Doctype{Name: s("html"), PublicID: s("-//W3C//DTD HTML 3.2 Final//EN")},
		},
		{
			name: "system only",
			raw:  `html SYSTEM "about:legacy-compat"`,
			want: event.Doctype{Name: s("html"), SystemID: s("about:legacy-compat")},
		},
		{
			name: "empty identifier",
			raw:  `html PUBLIC ""`,
			want: event.Doctype{Name: s("html"), PublicID: s("")},
		},
		{
			name: "unterminated quote",
			raw:  `html SYSTEM "about:blank`,
			want: event.Doctype{Name: s("html"), SystemID: s("about:blank")},
		},
		{
			name: "unquoted identifier",
			raw:  `html PUBLIC foo`,
			want: event.Doctype{Name: s("html")},
		},
		{
			name: "unknown keyword",
			raw:  `html BANANAS "x"`,
			want: event.Doctype{Name: s("html")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseDoctype(tt.raw))
		})
	}
}

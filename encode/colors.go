package encode

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"

	"github.com/fatih/color"
)

// Colors maps the engine's token classes to terminal colors.
type Colors struct {
	MapKey color.Attribute
	Anchor color.Attribute
	Alias  color.Attribute
	Bool   color.Attribute
	Number color.Attribute
	String color.Attribute
}

func NewColors() *Colors {
	return &Colors{
		MapKey: color.FgHiCyan,
		Anchor: color.FgHiYellow,
		Alias:  color.FgHiYellow,
		Bool:   color.FgHiMagenta,
		Number: color.FgHiMagenta,
		String: color.FgHiGreen,
	}
}

// Sprint returns YAML text d with ANSI escapes around each colored
// token. The escapes are written directly rather than through the
// color package's printers, so no TTY detection interferes.
func (c *Colors) Sprint(d []byte) []byte {
	p := printer.Printer{
		MapKey: prop(c.MapKey),
		Anchor: prop(c.Anchor),
		Alias:  prop(c.Alias),
		Bool:   prop(c.Bool),
		Number: prop(c.Number),
		String: prop(c.String),
	}
	out := p.PrintTokens(lexer.Tokenize(string(d)))
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out)
}

func prop(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: attrFormat(attr),
			Suffix: attrFormat(color.Reset),
		}
	}
}

func attrFormat(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

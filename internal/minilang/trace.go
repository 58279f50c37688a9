package minilang

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ltungv/minilang/internal/token"
)

// Tracer prints the productions entered and exited by the parser together
// with the tokens they matched. A nil *Tracer prints nothing.
type Tracer struct {
	out        io.Writer
	indent     int
	depth      int
	counts     map[string]int
	production *color.Color
	found      *color.Color
}

// NewTracer creates a tracer indenting each nested production by indent
// spaces.
func NewTracer(out io.Writer, indent int, colored bool) *Tracer {
	tracer := &Tracer{
		out:        out,
		indent:     indent,
		counts:     make(map[string]int),
		production: color.New(color.FgCyan),
		found:      color.New(color.FgGreen),
	}
	if !colored {
		tracer.production.DisableColor()
		tracer.found.DisableColor()
	} else {
		tracer.production.EnableColor()
		tracer.found.EnableColor()
	}
	return tracer
}

// enter records the start of a production and returns its invocation number.
func (tracer *Tracer) enter(name string) int {
	if tracer == nil {
		return 0
	}
	n := tracer.counts[name]
	tracer.counts[name]++
	tracer.line(tracer.production, "enter %s %d", name, n)
	tracer.depth++
	return n
}

func (tracer *Tracer) exit(name string, n int) {
	if tracer == nil {
		return
	}
	tracer.depth--
	tracer.line(tracer.production, "exit %s %d", name, n)
}

func (tracer *Tracer) match(tok *token.Token) {
	if tracer == nil {
		return
	}
	switch tok.Typ {
	case token.IDENTIFIER:
		tracer.line(tracer.found, "-->found ID: %s", tok.Lexeme)
	case token.FLOAT:
		tracer.line(tracer.found, "-->found FLOATLIT: %s", tok.Lexeme)
	case token.STRING:
		tracer.line(tracer.found, "-->found string: %s", tok.Lexeme)
	default:
		tracer.line(tracer.found, "-->found %s", tok.Lexeme)
	}
}

func (tracer *Tracer) line(c *color.Color, format string, args ...interface{}) {
	pad := strings.Repeat(" ", tracer.depth*tracer.indent)
	fmt.Fprint(tracer.out, pad)
	c.Fprintf(tracer.out, format, args...)
	fmt.Fprintln(tracer.out)
}

// Package lexer turns program text into the token stream consumed by the
// grammar engine.
package lexer

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/ltungv/minilang/internal/token"
)

// Definition holds the lexical rules of the language. Rules and alternatives
// are tried in order, so ":=" and "==" come before the one character
// operators and comments before "/".
var Definition = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Float", Pattern: `[0-9]+(?:\.[0-9]*)?|\.[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Operator", Pattern: `:=|==|[-+*/<>]`},
	{Name: "Punct", Pattern: `[{}();]`},
})

// Source pulls tokens from the input one at a time.
type Source struct {
	lex   lexer.Lexer
	names map[lexer.TokenType]string
}

// New creates a token source reading the whole of r. The filename is only
// used in lexer error messages.
func New(filename string, r io.Reader) (*Source, error) {
	lex, err := Definition.Lex(filename, r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	names := make(map[lexer.TokenType]string)
	for name, typ := range Definition.Symbols() {
		names[typ] = name
	}
	return &Source{lex, names}, nil
}

// NextToken returns the next significant token. Once the input is exhausted
// every call returns an EOF token.
func (source *Source) NextToken() (*token.Token, error) {
	for {
		tok, err := source.lex.Next()
		if err != nil {
			return nil, err
		}
		line, column := tok.Pos.Line, tok.Pos.Column
		if tok.EOF() {
			return token.New(token.EOF, "", line, column), nil
		}

		switch source.names[tok.Type] {
		case "Comment", "Whitespace":
			continue
		case "String":
			return token.New(token.STRING, tok.Value, line, column), nil
		case "Float":
			return token.New(token.FLOAT, tok.Value, line, column), nil
		case "Ident":
			if typ, isKeyword := token.Keywords[tok.Value]; isKeyword {
				return token.New(typ, tok.Value, line, column), nil
			}
			return token.New(token.IDENTIFIER, tok.Value, line, column), nil
		default:
			typ, ok := token.Operators[tok.Value]
			if !ok {
				return nil, errors.Errorf("%d:%d: unexpected %q", line, column, tok.Value)
			}
			return token.New(typ, tok.Value, line, column), nil
		}
	}
}

package minilang

import (
	"fmt"

	"github.com/ltungv/minilang/internal/token"
)

// SyntaxError is returned when the token stream does not follow the grammar.
type SyntaxError struct {
	token   *token.Token
	message string
}

// NewSyntaxError creates a syntax error found at the given token. A nil token
// means the lexer could not produce one.
func NewSyntaxError(tok *token.Token, message string) error {
	return &SyntaxError{tok, message}
}

func newLexicalError(err error) error {
	return &SyntaxError{nil, err.Error()}
}

// Message returns the error's description without its location.
func (err *SyntaxError) Message() string {
	return err.message
}

func (err *SyntaxError) Error() string {
	return describe("Syntax error", err.token, err.message)
}

// SemanticError is returned when a live expression reads an identifier that
// was never given a value.
type SemanticError struct {
	token   *token.Token
	message string
}

// NewSemanticError creates a semantic error found at the given token.
func NewSemanticError(tok *token.Token, message string) error {
	return &SemanticError{tok, message}
}

// Message returns the error's description without its location.
func (err *SemanticError) Message() string {
	return err.message
}

func (err *SemanticError) Error() string {
	return describe("Semantic error", err.token, err.message)
}

func describe(kind string, tok *token.Token, message string) string {
	switch {
	case tok == nil:
		return fmt.Sprintf("%s: %s", kind, message)
	case tok.Typ == token.EOF:
		return fmt.Sprintf(
			"[line %d:%d] %s at end: %s",
			tok.Line,
			tok.Column,
			kind,
			message,
		)
	default:
		return fmt.Sprintf(
			"[line %d:%d] %s at '%s': %s",
			tok.Line,
			tok.Column,
			kind,
			tok.Lexeme,
			message,
		)
	}
}

package token

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the lexing phase.
type Token struct {
	Typ    Type
	Lexeme string
	Line   int
	Column int
}

// New creates a new token
func New(typ Type, lexeme string, line, column int) *Token {
	return &Token{typ, lexeme, line, column}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %d:%d", t.Typ, t.Lexeme, t.Line, t.Column)
}

// Type is a just a wrapped string used to represent token's type. Its value is
// the text used when the type is named in an error message.
type Type string

const (
	// Punctuation
	LEFT_BRACE  Type = "{"
	RIGHT_BRACE Type = "}"
	LEFT_PAREN  Type = "("
	RIGHT_PAREN Type = ")"
	SEMICOLON   Type = ";"
	ASSIGN      Type = ":="

	// Arithmetic operators
	PLUS  Type = "+"
	MINUS Type = "-"
	STAR  Type = "*"
	SLASH Type = "/"

	// Relational operators
	LESS        Type = "<"
	GREATER     Type = ">"
	EQUAL_EQUAL Type = "=="

	// Logical operators
	AND Type = "and"
	OR  Type = "or"
	NOT Type = "not"

	// Keywords
	LET   Type = "let"
	READ  Type = "read"
	PRINT Type = "print"
	IF    Type = "if"
	ELSE  Type = "else"
	WHILE Type = "while"

	// Literals
	IDENTIFIER Type = "ID"
	FLOAT      Type = "FLOATLIT"
	STRING     Type = "STRINGLIT"

	EOF Type = "EOF"
)

// Keywords maps reserved words to their token types. Everything else that
// looks like an identifier is an IDENTIFIER.
var Keywords = map[string]Type{
	"and":   AND,
	"or":    OR,
	"not":   NOT,
	"let":   LET,
	"read":  READ,
	"print": PRINT,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
}

// Operators maps punctuation and operator lexemes to their token types.
var Operators = map[string]Type{
	"{":  LEFT_BRACE,
	"}":  RIGHT_BRACE,
	"(":  LEFT_PAREN,
	")":  RIGHT_PAREN,
	";":  SEMICOLON,
	":=": ASSIGN,
	"+":  PLUS,
	"-":  MINUS,
	"*":  STAR,
	"/":  SLASH,
	"<":  LESS,
	">":  GREATER,
	"==": EQUAL_EQUAL,
}

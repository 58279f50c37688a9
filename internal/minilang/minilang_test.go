package minilang

import (
	"errors"
	"strings"
	"testing"

	"github.com/ltungv/minilang/internal/lexer"
	"github.com/ltungv/minilang/internal/token"
)

type mockReporter struct {
	errors         []error
	hadErr         bool
	hadSemanticErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	var semanticErr *SemanticError
	if errors.As(err, &semanticErr) {
		reporter.hadSemanticErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadSemanticErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadSemanticError() bool {
	return reporter.hadSemanticErr
}

// sliceSource feeds a fixed list of tokens to the parser and then repeats the
// final EOF.
type sliceSource struct {
	toks    []*token.Token
	current int
}

func newSliceSource(toks ...*token.Token) *sliceSource {
	return &sliceSource{toks, 0}
}

func (source *sliceSource) NextToken() (*token.Token, error) {
	if source.current >= len(source.toks) {
		return tokEOF(1), nil
	}
	tok := source.toks[source.current]
	source.current++
	return tok, nil
}

func tok(typ token.Type, lexeme string) *token.Token {
	return token.New(typ, lexeme, 1, 1)
}

func tokEOF(line int) *token.Token {
	return token.New(token.EOF, "", line, 1)
}

func tokID(name string) *token.Token {
	return tok(token.IDENTIFIER, name)
}

func tokNum(lexeme string) *token.Token {
	return tok(token.FLOAT, lexeme)
}

// newPrimedParser returns a parser whose lookahead is already the first of
// the given tokens, ready for a single production to be called.
func newPrimedParser(t *testing.T, symbols *SymbolTable, toks ...*token.Token) *Parser {
	t.Helper()
	parser := NewParser(newSliceSource(toks...), symbols, newMockReporter(), nil)
	if err := parser.advance(); err != nil {
		t.Fatal(err)
	}
	return parser
}

// runProgram lexes and runs src against a fresh table.
func runProgram(t *testing.T, src string) (*Parser, *mockReporter, error) {
	t.Helper()
	source, err := lexer.New("test", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	report := newMockReporter()
	parser := NewParser(source, NewSymbolTable(), report, nil)
	return parser, report, parser.Parse()
}

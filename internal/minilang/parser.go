package minilang

import "github.com/ltungv/minilang/internal/token"

// TokenSource yields the tokens of a program one at a time. After the last
// token it keeps returning token.EOF.
type TokenSource interface {
	NextToken() (*token.Token, error)
}

// Parser walks a program and evaluates it as it goes. It owns the lookahead
// token, the symbol table and the flag telling whether the branch being
// walked is live.
type Parser struct {
	source   TokenSource
	current  *token.Token
	symbols  *SymbolTable
	live     bool
	reporter Reporter
	tracer   *Tracer
}

// NewParser creates a parser for the program produced by source. The tracer
// may be nil.
func NewParser(
	source TokenSource,
	symbols *SymbolTable,
	reporter Reporter,
	tracer *Tracer,
) *Parser {
	return &Parser{
		source:   source,
		symbols:  symbols,
		live:     true,
		reporter: reporter,
		tracer:   tracer,
	}
}

// Parse runs the program to its end. The first error stops the walk, is
// handed to the reporter and returned.
func (parser *Parser) Parse() error {
	if err := parser.parse(); err != nil {
		parser.reporter.Report(err)
		return err
	}
	return nil
}

// Live reports whether assignments and lookups currently take effect.
func (parser *Parser) Live() bool {
	return parser.live
}

func (parser *Parser) Symbols() *SymbolTable {
	return parser.symbols
}

func (parser *Parser) parse() error {
	if err := parser.advance(); err != nil {
		return err
	}
	if err := parser.require(firstP); err != nil {
		return err
	}
	if err := parser.block(); err != nil {
		return err
	}
	if !parser.check(token.EOF) {
		return NewSyntaxError(parser.current, "Expected EOF")
	}
	return nil
}

// P --> "{" S { S } "}" ;
func (parser *Parser) block() error {
	n := parser.tracer.enter("P")
	if err := parser.consume(token.LEFT_BRACE, "Expected {"); err != nil {
		return err
	}
	if err := parser.require(firstS); err != nil {
		return err
	}
	for firstS.has(parser.current.Typ) {
		if err := parser.statement(); err != nil {
			return err
		}
	}
	if err := parser.consume(token.RIGHT_BRACE, "Expected }"); err != nil {
		return err
	}
	parser.tracer.exit("P", n)
	return nil
}

// S --> A | G | O | C | W ;
func (parser *Parser) statement() error {
	n := parser.tracer.enter("S")
	var err error
	switch parser.current.Typ {
	case token.LET:
		err = parser.letStmt()
	case token.READ:
		err = parser.readStmt()
	case token.PRINT:
		err = parser.printStmt()
	case token.IF:
		err = parser.ifStmt()
	case token.WHILE:
		err = parser.whileStmt()
	default:
		err = parser.expected(firstS)
	}
	if err != nil {
		return err
	}
	parser.tracer.exit("S", n)
	return nil
}

// A --> "let" ID ":=" E ";" ;
//
// The value is stored only when the statement is in a live branch, the
// expression is evaluated either way.
func (parser *Parser) letStmt() error {
	n := parser.tracer.enter("A")
	if err := parser.consume(token.LET, "Expected let"); err != nil {
		return err
	}
	name, err := parser.identifier("Expected an identifier")
	if err != nil {
		return err
	}
	if err := parser.consume(token.ASSIGN, "Expected :="); err != nil {
		return err
	}
	if err := parser.require(firstE); err != nil {
		return err
	}
	value, err := parser.expression()
	if err != nil {
		return err
	}
	if err := parser.consume(token.SEMICOLON, "Expected ;"); err != nil {
		return err
	}
	if parser.live {
		parser.symbols.Define(name, value)
	}
	parser.tracer.exit("A", n)
	return nil
}

// G --> "read" [ STRINGLIT ] ID ";" ;
//
// The identifier is set to 0 whether or not the branch is live.
func (parser *Parser) readStmt() error {
	n := parser.tracer.enter("G")
	if err := parser.consume(token.READ, "Expected read"); err != nil {
		return err
	}
	message := "Expected string literal or identifier"
	if parser.check(token.STRING) {
		if err := parser.match(); err != nil {
			return err
		}
		message = "Expected identifier"
	}
	name, err := parser.identifier(message)
	if err != nil {
		return err
	}
	if err := parser.consume(token.SEMICOLON, "Expected ;"); err != nil {
		return err
	}
	parser.symbols.Define(name, 0)
	parser.tracer.exit("G", n)
	return nil
}

// O --> "print" [ STRINGLIT ] [ ID ] ";" ;
//
// Printing is checked for syntax only, the identifier is never looked up.
func (parser *Parser) printStmt() error {
	n := parser.tracer.enter("O")
	if err := parser.consume(token.PRINT, "Expected print"); err != nil {
		return err
	}
	message := "Expected string literal, identifier or semicolon"
	if parser.check(token.STRING) {
		if err := parser.match(); err != nil {
			return err
		}
		message = "Expected identifier or semicolon"
	}
	if parser.check(token.IDENTIFIER) {
		if err := parser.match(); err != nil {
			return err
		}
		message = "Expected ;"
	}
	if err := parser.consume(token.SEMICOLON, message); err != nil {
		return err
	}
	parser.tracer.exit("O", n)
	return nil
}

// C --> "if" "(" E ")" P [ "else" P ] ;
func (parser *Parser) ifStmt() error {
	n := parser.tracer.enter("C")
	if err := parser.consume(token.IF, "Expected if"); err != nil {
		return err
	}
	guard, err := parser.guard()
	if err != nil {
		return err
	}

	if !isTruthy(guard) {
		parser.live = false
	}
	if err := parser.require(firstP); err != nil {
		return err
	}
	if err := parser.block(); err != nil {
		return err
	}
	if parser.check(token.ELSE) {
		if !parser.live {
			parser.live = true
		}
		if err := parser.match(); err != nil {
			return err
		}
		if err := parser.require(firstP); err != nil {
			return err
		}
		if err := parser.block(); err != nil {
			return err
		}
	}
	// No nesting is tracked: leaving the construct always makes the
	// parser live again.
	parser.live = true

	parser.tracer.exit("C", n)
	return nil
}

// W --> "while" "(" E ")" P ;
//
// The guard is evaluated once and the body is walked once.
func (parser *Parser) whileStmt() error {
	n := parser.tracer.enter("W")
	if err := parser.consume(token.WHILE, "Expected while"); err != nil {
		return err
	}
	guard, err := parser.guard()
	if err != nil {
		return err
	}

	if !isTruthy(guard) {
		parser.live = false
	}
	if err := parser.require(firstP); err != nil {
		return err
	}
	if err := parser.block(); err != nil {
		return err
	}
	parser.live = true

	parser.tracer.exit("W", n)
	return nil
}

// guard matches the parenthesized condition of "if" and "while".
func (parser *Parser) guard() (float64, error) {
	if err := parser.consume(token.LEFT_PAREN, "Expected ("); err != nil {
		return 0, err
	}
	if err := parser.require(firstE); err != nil {
		return 0, err
	}
	value, err := parser.expression()
	if err != nil {
		return 0, err
	}
	if err := parser.consume(token.RIGHT_PAREN, "Expected )"); err != nil {
		return 0, err
	}
	return value, nil
}

// identifier consumes an ID token and returns its name.
func (parser *Parser) identifier(message string) (string, error) {
	if !parser.check(token.IDENTIFIER) {
		return "", NewSyntaxError(parser.current, message)
	}
	name := parser.current.Lexeme
	return name, parser.match()
}

// match traces the current token and moves past it.
func (parser *Parser) match() error {
	parser.tracer.match(parser.current)
	return parser.advance()
}

func (parser *Parser) consume(typ token.Type, message string) error {
	if !parser.check(typ) {
		return NewSyntaxError(parser.current, message)
	}
	return parser.match()
}

// require checks the lookahead against the FIRST set of the production about
// to be entered.
func (parser *Parser) require(first firstSet) error {
	if !first.has(parser.current.Typ) {
		return parser.expected(first)
	}
	return nil
}

func (parser *Parser) expected(first firstSet) error {
	return NewSyntaxError(parser.current, "Expected "+first.String())
}

func (parser *Parser) check(tt token.Type) bool {
	return parser.current.Typ == tt
}

func (parser *Parser) advance() error {
	tok, err := parser.source.NextToken()
	if err != nil {
		return newLexicalError(err)
	}
	parser.current = tok
	return nil
}

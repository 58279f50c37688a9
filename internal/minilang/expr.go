package minilang

import (
	"strconv"

	"github.com/ltungv/minilang/internal/token"
)

// E --> B { ( "and" | "or" ) B } ;
//
// Both operands are always evaluated, there is no short-circuiting.
func (parser *Parser) expression() (float64, error) {
	n := parser.tracer.enter("E")
	if err := parser.require(firstB); err != nil {
		return 0, err
	}
	value, err := parser.comparison()
	if err != nil {
		return 0, err
	}
	for parser.check(token.AND) || parser.check(token.OR) {
		op := parser.current.Typ
		if err := parser.match(); err != nil {
			return 0, err
		}
		if err := parser.require(firstB); err != nil {
			return 0, err
		}
		rhs, err := parser.comparison()
		if err != nil {
			return 0, err
		}
		if op == token.AND {
			value = boolToFloat(isTruthy(value) && isTruthy(rhs))
		} else {
			value = boolToFloat(isTruthy(value) || isTruthy(rhs))
		}
	}
	parser.tracer.exit("E", n)
	return value, nil
}

// B --> R [ ( "<" | ">" | "==" ) R ] ;
func (parser *Parser) comparison() (float64, error) {
	n := parser.tracer.enter("B")
	if err := parser.require(firstR); err != nil {
		return 0, err
	}
	value, err := parser.term()
	if err != nil {
		return 0, err
	}
	if parser.check(token.LESS) || parser.check(token.GREATER) || parser.check(token.EQUAL_EQUAL) {
		op := parser.current.Typ
		if err := parser.match(); err != nil {
			return 0, err
		}
		if err := parser.require(firstR); err != nil {
			return 0, err
		}
		rhs, err := parser.term()
		if err != nil {
			return 0, err
		}
		switch op {
		case token.LESS:
			value = boolToFloat(value < rhs)
		case token.GREATER:
			value = boolToFloat(value > rhs)
		case token.EQUAL_EQUAL:
			value = boolToFloat(value == rhs)
		}
	}
	parser.tracer.exit("B", n)
	return value, nil
}

// R --> T { ( "+" | "-" ) T } ;
func (parser *Parser) term() (float64, error) {
	n := parser.tracer.enter("R")
	if err := parser.require(firstT); err != nil {
		return 0, err
	}
	value, err := parser.factor()
	if err != nil {
		return 0, err
	}
	for parser.check(token.PLUS) || parser.check(token.MINUS) {
		op := parser.current.Typ
		if err := parser.match(); err != nil {
			return 0, err
		}
		if err := parser.require(firstT); err != nil {
			return 0, err
		}
		rhs, err := parser.factor()
		if err != nil {
			return 0, err
		}
		if op == token.PLUS {
			value += rhs
		} else {
			value -= rhs
		}
	}
	parser.tracer.exit("R", n)
	return value, nil
}

// T --> F { ( "*" | "/" ) F } ;
//
// Division by zero gives an infinity or NaN.
func (parser *Parser) factor() (float64, error) {
	n := parser.tracer.enter("T")
	if err := parser.require(firstF); err != nil {
		return 0, err
	}
	value, err := parser.unary()
	if err != nil {
		return 0, err
	}
	for parser.check(token.STAR) || parser.check(token.SLASH) {
		op := parser.current.Typ
		if err := parser.match(); err != nil {
			return 0, err
		}
		if err := parser.require(firstF); err != nil {
			return 0, err
		}
		rhs, err := parser.unary()
		if err != nil {
			return 0, err
		}
		if op == token.STAR {
			value *= rhs
		} else {
			value /= rhs
		}
	}
	parser.tracer.exit("T", n)
	return value, nil
}

// F --> [ "not" | "-" ] U ;
//
// Both prefixes flip the sign of a nonzero operand. Zero is left as is so
// that "-0" never shows up.
func (parser *Parser) unary() (float64, error) {
	n := parser.tracer.enter("F")
	negate := false
	if parser.check(token.NOT) || parser.check(token.MINUS) {
		negate = true
		if err := parser.match(); err != nil {
			return 0, err
		}
	}
	if err := parser.require(firstU); err != nil {
		return 0, err
	}
	value, err := parser.primary()
	if err != nil {
		return 0, err
	}
	if negate && value != 0 {
		value *= -1
	}
	parser.tracer.exit("F", n)
	return value, nil
}

// U --> ID | FLOATLIT | "(" E ")" ;
func (parser *Parser) primary() (float64, error) {
	n := parser.tracer.enter("U")
	var value float64
	switch tok := parser.current; tok.Typ {
	case token.IDENTIFIER:
		v, ok := parser.symbols.Get(tok.Lexeme)
		if !ok && parser.live {
			return 0, NewSemanticError(tok, "Uninitialized identifier used in expression")
		}
		value = v
	case token.FLOAT:
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return 0, NewSyntaxError(tok, "Malformed float literal")
		}
		value = v
	case token.LEFT_PAREN:
		if err := parser.match(); err != nil {
			return 0, err
		}
		if err := parser.require(firstE); err != nil {
			return 0, err
		}
		v, err := parser.expression()
		if err != nil {
			return 0, err
		}
		if !parser.check(token.RIGHT_PAREN) {
			return 0, NewSyntaxError(parser.current, "Expected )")
		}
		value = v
	default:
		return 0, parser.expected(firstU)
	}
	if err := parser.match(); err != nil {
		return 0, err
	}
	parser.tracer.exit("U", n)
	return value, nil
}

func isTruthy(value float64) bool {
	return value != 0
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

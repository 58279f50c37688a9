package minilang

import (
	"strings"

	"github.com/ltungv/minilang/internal/token"
)

// firstSet lists the token types that can begin a production, in the order
// they are named in error messages.
type firstSet []token.Type

func union(sets ...firstSet) firstSet {
	var u firstSet
	for _, set := range sets {
		u = append(u, set...)
	}
	return u
}

func (set firstSet) has(tt token.Type) bool {
	for _, t := range set {
		if t == tt {
			return true
		}
	}
	return false
}

func (set firstSet) String() string {
	names := make([]string, len(set))
	for i, t := range set {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

var (
	firstP = firstSet{token.LEFT_BRACE}
	firstA = firstSet{token.LET}
	firstG = firstSet{token.READ}
	firstO = firstSet{token.PRINT}
	firstC = firstSet{token.IF}
	firstW = firstSet{token.WHILE}
	firstS = union(firstA, firstG, firstO, firstC, firstW)

	firstU = firstSet{token.LEFT_PAREN, token.IDENTIFIER, token.FLOAT}
	firstF = union(firstSet{token.NOT, token.MINUS}, firstU)
	firstT = firstF
	firstR = firstT
	firstB = firstR
	firstE = firstB
)

/*
Package minilang parses and evaluates a program in a single pass.

Grammars

	P --> "{" S { S } "}" ;
	S --> A | G | O | C | W ;
	A --> "let" ID ":=" E ";" ;
	G --> "read" [ STRINGLIT ] ID ";" ;
	O --> "print" [ STRINGLIT ] [ ID ] ";" ;
	C --> "if" "(" E ")" P [ "else" P ] ;
	W --> "while" "(" E ")" P ;
	E --> B { ( "and" | "or" ) B } ;
	B --> R [ ( "<" | ">" | "==" ) R ] ;
	R --> T { ( "+" | "-" ) T } ;
	T --> F { ( "*" | "/" ) F } ;
	F --> [ "not" | "-" ] U ;
	U --> ID | FLOATLIT | "(" E ")" ;

Every production is a method on Parser. Expression productions return the
value of the expression they matched, there is no syntax tree.

The body of an "if" or "while" whose guard is false is still parsed, but
while the parser walks it assignments are dropped and reading an unset
identifier is not an error. "read" always defines its identifier, even
inside such a body. The "else" body is always walked live, and every "if"
and "while" leaves the parser live when it ends, whatever it found on entry.
"while" evaluates its guard once and walks its body once.
*/
package minilang

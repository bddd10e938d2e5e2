/*
File    : monkeymix/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNextToken_Basics tokenises a small program exercising every
// delimiter, operator, and keyword the lexer knows about.
func TestNextToken_Basics(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
`

	expected := []Token{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "ten"}, {ASSIGN, "="}, {INT, "10"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "add"}, {ASSIGN, "="}, {FUNCTION, "fn"}, {LPAREN, "("},
		{IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"}, {LPAREN, "("},
		{IDENT, "five"}, {COMMA, ","}, {IDENT, "ten"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {ELSE, "else"}, {LBRACE, "{"},
		{RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{STRING, "foobar"},
		{STRING, "foo bar"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		assert.Equalf(t, want.Type, tok.Type, "token %d type", i)
		assert.Equalf(t, want.Literal, tok.Literal, "token %d literal", i)
	}
}

// TestNextToken_UnterminatedString reads to the end of input rather than
// panicking or hanging.
func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"never closed`)
	tok := l.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "never closed", tok.Literal)
	assert.Equal(t, EOF, l.NextToken().Type)
}

// TestNextToken_Illegal reports bytes outside the language's alphabet as
// ILLEGAL instead of silently dropping them.
func TestNextToken_Illegal(t *testing.T) {
	l := New("@$")
	assert.Equal(t, ILLEGAL, l.NextToken().Type)
	assert.Equal(t, ILLEGAL, l.NextToken().Type)
	assert.Equal(t, EOF, l.NextToken().Type)
}

// TestNextToken_EOFIsSticky confirms repeated calls past the end of input
// keep returning EOF rather than erroring.
func TestNextToken_EOFIsSticky(t *testing.T) {
	l := New("x")
	assert.Equal(t, IDENT, l.NextToken().Type)
	for i := 0; i < 3; i++ {
		assert.Equal(t, EOF, l.NextToken().Type)
	}
}

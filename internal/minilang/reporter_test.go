package minilang

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltungv/minilang/internal/token"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(ioutil.Discard)

	assert.False(r.HadError())
	assert.False(r.HadSemanticError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("error: %v\n", err), out.String())
	assert.True(r.HadError())
	assert.False(r.HadSemanticError())
}

func TestSimpleReporterSendSemanticError(t *testing.T) {
	assert := assert.New(t)
	err := NewSemanticError(token.New(token.IDENTIFIER, "x", 1, 5), "Uninitialized identifier used in expression")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("error: %v\n", err), out.String())
	assert.False(r.HadError())
	assert.True(r.HadSemanticError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := NewSyntaxError(tokEOF(1), "Expected }")
	err2 := NewSemanticError(token.New(token.IDENTIFIER, "x", 1, 5), "Uninitialized identifier used in expression")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("error: %v\nerror: %v\n", err1, err2), out.String())
	assert.True(r.HadError())
	assert.True(r.HadSemanticError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(ioutil.Discard)
	r.Report(errors.New("Test error"))
	r.Report(NewSemanticError(tokID("x"), "Uninitialized identifier used in expression"))

	r.Reset()
	assert.False(r.HadSemanticError())
	assert.False(r.HadError())
}

func TestColorReporterKeepsMessage(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	r := NewColorReporter(&out)
	r.Report(errors.New("Test error"))

	assert.Contains(out.String(), "error: Test error")
	assert.True(r.HadError())
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		err  error
		text string
	}{
		{
			NewSyntaxError(token.New(token.FLOAT, "5", 2, 9), "Expected :="),
			"[line 2:9] Syntax error at '5': Expected :=",
		},
		{
			NewSyntaxError(token.New(token.EOF, "", 3, 1), "Expected }"),
			"[line 3:1] Syntax error at end: Expected }",
		},
		{
			newLexicalError(errors.New("test:1:3: invalid input text \"@\"")),
			"Syntax error: test:1:3: invalid input text \"@\"",
		},
		{
			NewSemanticError(token.New(token.IDENTIFIER, "y", 1, 12), "Uninitialized identifier used in expression"),
			"[line 1:12] Semantic error at 'y': Uninitialized identifier used in expression",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.text, tc.err.Error())
	}
}

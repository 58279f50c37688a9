package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ltungv/minilang/internal/config"
)

func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Trace.Enabled = false
	cfg.Trace.Color = false
	return cfg
}

func TestExecuteSuccess(t *testing.T) {
	var out, errOut strings.Builder
	status, err := execute(
		quietConfig(),
		"test",
		strings.NewReader("{ let x := 2 + 3 * 4; read y; print x; }"),
		&out,
		&errOut,
	)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0, status)
	assert.Equal("\n=== Parse successful ===\n\nx = 14\ny = 0\n", out.String())
	assert.Empty(errOut.String())
}

func TestExecuteSyntaxError(t *testing.T) {
	var out, errOut strings.Builder
	status, err := execute(quietConfig(), "test", strings.NewReader("{ let x 5; }"), &out, &errOut)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(exitSyntaxError, status)
	assert.Empty(out.String())
	assert.Equal("error: [line 1:9] Syntax error at '5': Expected :=\n", errOut.String())
}

func TestExecuteSemanticError(t *testing.T) {
	var out, errOut strings.Builder
	status, err := execute(quietConfig(), "test", strings.NewReader("{ let a := 1; let b := c; }"), &out, &errOut)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(exitSemanticError, status)
	assert.Equal("a = 1\n", out.String())
	assert.Contains(errOut.String(), "Uninitialized identifier used in expression")
}

func TestExecuteWithTraceAndYAML(t *testing.T) {
	cfg := quietConfig()
	cfg.Trace.Enabled = true
	cfg.Dump.Format = "yaml"
	cfg.Dump.Banner = false

	var out, errOut strings.Builder
	status, err := execute(cfg, "test", strings.NewReader("{ let x := 1; }"), &out, &errOut)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(0, status)
	assert.True(strings.HasPrefix(out.String(), "enter P 0\n"))
	assert.True(strings.HasSuffix(out.String(), "exit P 0\nx: 1\n"))
}

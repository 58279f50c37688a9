package minilang

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadSemanticError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer         io.Writer
	color          *color.Color
	hadErr         bool
	hadSemanticErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer: writer}
}

// NewColorReporter creates a reporter that highlights errors in red.
func NewColorReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer: writer, color: color.New(color.FgRed, color.Bold)}
}

func (reporter *SimpleReporter) Report(err error) {
	var semanticErr *SemanticError
	if errors.As(err, &semanticErr) {
		reporter.hadSemanticErr = true
	} else {
		reporter.hadErr = true
	}

	if reporter.color != nil {
		reporter.color.Fprintf(reporter.writer, "error: %v\n", err)
		return
	}
	fmt.Fprintf(reporter.writer, "error: %v\n", err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadSemanticError() bool {
	return reporter.hadSemanticErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadSemanticErr = false
}

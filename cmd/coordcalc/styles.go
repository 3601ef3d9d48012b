package main

import "github.com/fatih/color"

// styles holds the color formatters for command output.
type styles struct {
	operand *color.Color
	op      *color.Color
	result  *color.Color
}

// newStyles creates the formatters; enabled=false yields plain text.
func newStyles(enabled bool) *styles {
	s := &styles{
		operand: color.New(color.FgHiBlue),
		op:      color.New(color.Bold),
		result:  color.New(color.Bold, color.FgHiGreen),
	}

	if !enabled {
		s.operand.DisableColor()
		s.op.DisableColor()
		s.result.DisableColor()
	}

	return s
}

// Package report holds the terminal color conventions for check output.
package report

import "github.com/gookit/color"

// Result lines are green, diagnostics blue.
var (
	ResultLine = color.Green.Sprint
	Diagnostic = color.Blue.Sprint
)

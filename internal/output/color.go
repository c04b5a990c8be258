package output

import (
	"github.com/fatih/color"
)

type Color uint8

const (
	None Color = iota
	Bold
	Dim
	Red
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colors = map[Color]*color.Color{
	Bold:    forced(color.Bold),
	Dim:     forced(color.Faint),
	Red:     forced(color.FgHiRed),
	Yellow:  forced(color.FgHiYellow),
	Blue:    forced(color.FgHiBlue),
	Magenta: forced(color.FgHiMagenta),
	Cyan:    forced(color.FgHiCyan),
	White:   forced(color.FgHiWhite),
}

// Colouring is decided by the caller via --no-color, not by terminal detection.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func MaybeColor(c Color, disabled bool, s string) string {
	fn, ok := colors[c]
	if disabled || !ok {
		return s
	}
	return fn.Sprint(s)
}

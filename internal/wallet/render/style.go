// Package render composes paper wallet documents from provider output.
package render

import (
	"github.com/fatih/color"
)

// Styler colors terminal output. Colors are disabled for file output.
type Styler struct {
	title   *color.Color
	warning *color.Color
	danger  *color.Color
	muted   *color.Color
	bold    *color.Color
	success *color.Color
	info    *color.Color
}

// NewStyler returns a styler, enabled=false yields plain text
func NewStyler(enabled bool) *Styler {
	s := &Styler{
		title:   color.New(color.Bold, color.FgCyan),
		warning: color.New(color.FgYellow),
		danger:  color.New(color.FgRed),
		muted:   color.New(color.FgHiBlack),
		bold:    color.New(color.Bold),
		success: color.New(color.FgGreen),
		info:    color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{s.title, s.warning, s.danger, s.muted, s.bold, s.success, s.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// PlainStyler never emits escape sequences
func PlainStyler() *Styler {
	return NewStyler(false)
}

// Title renders section headings in bold cyan
func (s *Styler) Title(text string) string { return s.title.Sprint(text) }

// Warning renders security notices in yellow
func (s *Styler) Warning(text string) string { return s.warning.Sprint(text) }

// Danger renders errors and omitted wallets in red
func (s *Styler) Danger(text string) string { return s.danger.Sprint(text) }

// Muted renders separators in grey
func (s *Styler) Muted(text string) string { return s.muted.Sprint(text) }

// Bold renders currency headers
func (s *Styler) Bold(text string) string { return s.bold.Sprint(text) }

// Success renders confirmations in green
func (s *Styler) Success(text string) string { return s.success.Sprint(text) }

// Info renders summaries in cyan
func (s *Styler) Info(text string) string { return s.info.Sprint(text) }

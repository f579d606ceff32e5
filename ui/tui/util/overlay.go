// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay draws fg centred on top of bg. bg is dimmed first so the popup
// stands out.
func Overlay(bg, fg string) string {
	bg = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"}).
		Render(ansi.Strip(bg))

	bgWidth, bgHeight := lipgloss.Size(bg)
	// limit fg dimensions to bg
	fg = lipgloss.NewStyle().MaxWidth(bgWidth).MaxHeight(bgHeight).Render(fg)
	fgWidth, fgHeight := lipgloss.Size(fg)

	offsetLeft := (bgWidth - fgWidth) / 2
	offsetTop := (bgHeight - fgHeight) / 2

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i := range fgLines {
		row := i + offsetTop
		if row < 0 || row >= len(bgLines) {
			continue
		}
		left := ansi.Truncate(bgLines[row], offsetLeft, "")
		if pad := offsetLeft - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bgLines[row], offsetLeft+fgWidth, "")
		bgLines[row] = left + fgLines[i] + right
	}

	return strings.Join(bgLines, "\n")
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// compositeOverlay centers an already-styled modal box over the base
// screen, splicing it into each affected line so the schedule stays
// visible around it.
func compositeOverlay(base, content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 || content == "" {
		return base
	}

	contentLines := strings.Split(content, "\n")
	boxH := len(contentLines)
	boxW := 0
	for _, line := range contentLines {
		if w := lipgloss.Width(line); w > boxW {
			boxW = w
		}
	}
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
		contentLines = contentLines[:boxH]
	}

	top := (height - boxH) / 2
	left := (width - boxW) / 2

	baseLines := normalizeLines(base, width, height)
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()

	for i, line := range contentLines {
		row := top + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		line = padCell(line, boxW)
		// Keep the modal background behind content that resets styles.
		line = bgSeq + strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq) + ansi.ResetStyle

		baseLine := baseLines[row]
		baseLines[row] = ansi.Cut(baseLine, 0, left) + line + ansi.Cut(baseLine, left+boxW, width)
	}

	return strings.Join(baseLines, "\n")
}

// normalizeLines pads the base render to an exact width and height so
// overlay rows can be spliced by cell position.
func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = padCell(line, width)
	}
	return lines
}

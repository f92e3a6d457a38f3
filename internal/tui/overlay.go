package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay composites modal content centered over the base view, restoring
// the backdrop background after any embedded style resets.
type Overlay struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlay initializes an inactive overlay.
func NewOverlay() Overlay {
	return Overlay{}
}

// Active reports whether the overlay is visible.
func (o Overlay) Active() bool {
	return o.active
}

// SetBackground updates the backdrop color.
func (o *Overlay) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws the modal content on top of the base view. The box is sized
// to the content and clipped to the terminal.
func (o Overlay) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := splitContent(content)
	boxW, boxH := contentSize(contentLines)
	if boxW == 0 || boxH == 0 {
		return base
	}
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
	}

	top := (height - boxH) / 2
	left := (width - boxW) / 2

	baseLines := normalizeLines(base, width, height)
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()

	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			out = append(out, baseLines[row])
			continue
		}

		line := contentLines[row-top]
		lineW := lipgloss.Width(line)
		if lineW > boxW {
			line = ansi.Cut(line, 0, boxW)
			lineW = boxW
		}
		if lineW < boxW {
			line += bgSeq + strings.Repeat(" ", boxW-lineW)
		}
		line = restoreBackground(line, bgSeq)

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		out = append(out, leftSlice+line+ansi.ResetStyle+rightSlice)
	}

	return strings.Join(out, "\n")
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

// restoreBackground reapplies the backdrop after resets emitted by nested
// lipgloss renders, so the modal box stays opaque.
func restoreBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}

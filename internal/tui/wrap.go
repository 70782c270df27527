package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks s into lines no wider than width, splitting at spaces.
// Words wider than width are hard-broken.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out strings.Builder
	line := make([]rune, 0, width)
	lineWidth := 0
	lastSpaceIdx := -1

	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '\n' {
			out.WriteString(strings.TrimRight(string(line), " "))
			out.WriteRune('\n')
			line, lineWidth, lastSpaceIdx = line[:0], 0, -1
			i++
			continue
		}
		w := runewidth.RuneWidth(r)
		if lineWidth+w > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(strings.TrimRight(string(line[:lastSpaceIdx]), " "))
				out.WriteRune('\n')
				line = append([]rune{}, line[lastSpaceIdx+1:]...)
				lineWidth = runewidth.StringWidth(string(line))
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(string(line))
				out.WriteRune('\n')
				line, lineWidth, lastSpaceIdx = line[:0], 0, -1
			}
			continue
		}
		if r == ' ' && len(line) == 0 {
			i++
			continue
		}
		line = append(line, r)
		lineWidth += w
		if r == ' ' {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(strings.TrimRight(string(line), " "))
	return out.String()
}

func lastSpaceIndex(line []rune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i] == ' ' {
			return i
		}
	}
	return -1
}

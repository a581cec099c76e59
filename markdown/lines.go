package markdown

import "strings"

// Lines splits text on '\n', dropping a trailing '\r' from each line and the
// empty element after a final newline. Empty input has no lines.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

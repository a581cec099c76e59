package markdown

import (
	"strings"

	"github.com/tsawler/officemd/model"
)

// Render converts blocks to Markdown.
//
// Consecutive blocks are separated by a blank line and the first block is not
// preceded by one. A paragraph or heading with no visible text contributes a
// lone newline, keeping the paragraph spacing of the source document.
func Render(blocks []model.Block) string {
	var sb strings.Builder
	first := true

	for _, block := range blocks {
		var md string
		switch b := block.(type) {
		case *model.Heading:
			md = RenderHeading(b)
		case *model.Paragraph:
			md = RenderRuns(b.Runs)
		case *model.Table:
			md = strings.TrimSuffix(RenderTable(b), "\n")
		}

		if strings.TrimSpace(md) == "" {
			if !first {
				sb.WriteByte('\n')
			}
			continue
		}

		if !first {
			sb.WriteByte('\n')
		}
		sb.WriteString(md)
		sb.WriteByte('\n')
		first = false
	}

	return sb.String()
}

// RenderHeading renders a heading as an ATX heading line. A heading without
// text renders as the empty string.
func RenderHeading(h *model.Heading) string {
	text := RenderRuns(h.Runs)
	if text == "" {
		return ""
	}
	return HeadingPrefix(h.Level) + text
}

// HeadingPrefix returns the ATX marker for a heading level, including the
// trailing space.
func HeadingPrefix(level int) string {
	return strings.Repeat("#", model.ClampHeadingLevel(level)) + " "
}

// RenderRuns concatenates runs. Runs are never merged, so two adjacent bold
// runs produce two bold spans.
func RenderRuns(runs []model.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(RenderRun(r))
	}
	return sb.String()
}

// RenderRun wraps run text in the emphasis markers for its state.
func RenderRun(r model.Run) string {
	if r.Text == "" {
		return ""
	}
	switch {
	case r.Bold && r.Italic:
		return "***" + r.Text + "***"
	case r.Bold:
		return "**" + r.Text + "**"
	case r.Italic:
		return "*" + r.Text + "*"
	default:
		return r.Text
	}
}

// RenderTable renders a pipe table. Every line, the separator included, has
// ColCount cells; a table with no columns renders as the empty string.
func RenderTable(t *model.Table) string {
	cols := t.ColCount()
	if cols == 0 {
		return ""
	}

	var sb strings.Builder
	WriteTableRow(&sb, t.Header, cols)
	WriteSeparator(&sb, cols)
	for _, row := range t.Rows {
		WriteTableRow(&sb, row, cols)
	}
	return sb.String()
}

// WriteTableRow writes one pipe table line of exactly cols cells.
func WriteTableRow(sb *strings.Builder, cells []string, cols int) {
	sb.WriteByte('|')
	for i := 0; i < cols; i++ {
		cell := ""
		if i < len(cells) {
			cell = EscapeCell(cells[i])
		}
		sb.WriteByte(' ')
		sb.WriteString(cell)
		sb.WriteString(" |")
	}
	sb.WriteByte('\n')
}

// WriteSeparator writes the header separator line.
func WriteSeparator(sb *strings.Builder, cols int) {
	sb.WriteByte('|')
	for i := 0; i < cols; i++ {
		sb.WriteString(" --- |")
	}
	sb.WriteByte('\n')
}

var cellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// EscapeCell makes text safe for a single pipe table cell.
func EscapeCell(s string) string {
	return cellReplacer.Replace(s)
}

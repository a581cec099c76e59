package model

import "strings"

// Heading levels map 1:1 onto the Heading1..Heading6 paragraph styles and the
// # .. ###### Markdown markers.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// BlockType represents the variant of a Block.
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeHeading
	BlockTypeParagraph
	BlockTypeTable
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeHeading:
		return "Heading"
	case BlockTypeParagraph:
		return "Paragraph"
	case BlockTypeTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Block is a top-level unit of a document body.
type Block interface {
	Type() BlockType
}

// Run is a contiguous span of text sharing one emphasis state.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Heading is a paragraph carrying a heading level.
type Heading struct {
	Level int // 1-6
	Runs  []Run
}

// NewHeading creates a heading, clamping level into 1..6.
func NewHeading(level int, runs ...Run) *Heading {
	return &Heading{Level: ClampHeadingLevel(level), Runs: runs}
}

func (h *Heading) Type() BlockType { return BlockTypeHeading }

// Text returns the concatenated run text without emphasis markers.
func (h *Heading) Text() string { return runsText(h.Runs) }

// Paragraph is an unstyled paragraph.
type Paragraph struct {
	Runs []Run
}

func (p *Paragraph) Type() BlockType { return BlockTypeParagraph }

// Text returns the concatenated run text without emphasis markers.
func (p *Paragraph) Text() string { return runsText(p.Runs) }

// Table is a header row followed by data rows. Rows may be ragged; see
// Normalized.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t *Table) Type() BlockType { return BlockTypeTable }

// ColCount returns the length of the longest row, header included.
func (t *Table) ColCount() int {
	count := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > count {
			count = len(row)
		}
	}
	return count
}

// Normalized returns a copy of the table in which the header and every row
// have exactly ColCount cells. Missing cells are empty strings.
func (t *Table) Normalized() *Table {
	cols := t.ColCount()
	out := &Table{
		Header: padRow(t.Header, cols),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = padRow(row, cols)
	}
	return out
}

// ClampHeadingLevel forces level into the 1..6 range.
func ClampHeadingLevel(level int) int {
	if level < MinHeadingLevel {
		return MinHeadingLevel
	}
	if level > MaxHeadingLevel {
		return MaxHeadingLevel
	}
	return level
}

func padRow(row []string, cols int) []string {
	out := make([]string, cols)
	copy(out, row)
	return out
}

func runsText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

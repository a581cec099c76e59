package markdown

import (
	"strings"

	"github.com/tsawler/officemd/model"
)

// builderState is the position of a Builder within the event stream.
type builderState int

const (
	stateDefault builderState = iota
	stateInEmphasisRun
	stateInTableHead
	stateInTableRow
	stateInTableCell
)

func (s builderState) String() string {
	switch s {
	case stateDefault:
		return "Default"
	case stateInEmphasisRun:
		return "InEmphasisRun"
	case stateInTableHead:
		return "InTableHead"
	case stateInTableRow:
		return "InTableRow"
	case stateInTableCell:
		return "InTableCell"
	default:
		return "Unknown"
	}
}

// Builder assembles model blocks from a Markdown event stream.
//
// Text accumulates into a buffer that is cut into a new run whenever the
// emphasis state changes. Paragraph and heading ends turn the pending runs
// into a block. Tables collect their header and rows until the table ends.
// Breaks outside tables become a single space, inside tables they are dropped.
type Builder struct {
	state  builderState
	blocks []model.Block

	runs   []model.Run
	buf    strings.Builder
	bold   bool
	italic bool
	level  int // heading level, 0 outside headings

	table  *model.Table
	row    []string
	cell   strings.Builder
	parent builderState // state to return to when a cell ends
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Push feeds one event into the builder.
func (b *Builder) Push(ev Event) {
	switch b.state {
	case stateInTableHead, stateInTableRow:
		b.pushTableRow(ev)
	case stateInTableCell:
		b.pushTableCell(ev)
	default:
		b.pushFlow(ev)
	}
}

// pushFlow handles events in the Default and InEmphasisRun states.
func (b *Builder) pushFlow(ev Event) {
	switch ev.Kind {
	case EventText:
		b.buf.WriteString(ev.Text)
	case EventSoftBreak, EventHardBreak:
		b.buf.WriteByte(' ')
	case EventStrongStart:
		b.setEmphasis(true, b.italic)
	case EventStrongEnd:
		b.setEmphasis(false, b.italic)
	case EventEmphasisStart:
		b.setEmphasis(b.bold, true)
	case EventEmphasisEnd:
		b.setEmphasis(b.bold, false)
	case EventHeadingStart:
		if b.hasContent() {
			b.flushParagraph()
		}
		b.level = model.ClampHeadingLevel(ev.Level)
	case EventHeadingEnd:
		b.flushParagraph()
	case EventParagraphEnd:
		b.flushParagraph()
	case EventTableStart:
		if b.hasContent() {
			b.flushParagraph()
		}
		b.table = &model.Table{}
	case EventTableHeadStart:
		b.row = nil
		b.state = stateInTableHead
	case EventTableRowStart:
		b.row = nil
		b.state = stateInTableRow
	case EventTableEnd:
		if b.table != nil {
			b.blocks = append(b.blocks, b.table)
			b.table = nil
		}
	}
}

// pushTableRow handles events in the InTableHead and InTableRow states.
func (b *Builder) pushTableRow(ev Event) {
	switch ev.Kind {
	case EventTableCellStart:
		b.cell.Reset()
		b.parent = b.state
		b.state = stateInTableCell
	case EventTableHeadEnd:
		b.table.Header = b.row
		b.row = nil
		b.state = stateDefault
	case EventTableRowEnd:
		b.table.Rows = append(b.table.Rows, b.row)
		b.row = nil
		b.state = stateDefault
	}
}

// pushTableCell handles events in the InTableCell state. Emphasis inside a
// cell is dropped; the cell is a single plain string.
func (b *Builder) pushTableCell(ev Event) {
	switch ev.Kind {
	case EventText:
		b.cell.WriteString(ev.Text)
	case EventTableCellEnd:
		b.row = append(b.row, strings.TrimSpace(b.cell.String()))
		b.cell.Reset()
		b.state = b.parent
	}
}

// setEmphasis cuts the buffered text into a run and switches emphasis.
func (b *Builder) setEmphasis(bold, italic bool) {
	b.flushRun()
	b.bold, b.italic = bold, italic
	if bold || italic {
		b.state = stateInEmphasisRun
	} else {
		b.state = stateDefault
	}
}

func (b *Builder) flushRun() {
	if b.buf.Len() == 0 {
		return
	}
	b.runs = append(b.runs, model.Run{Text: b.buf.String(), Bold: b.bold, Italic: b.italic})
	b.buf.Reset()
}

func (b *Builder) hasContent() bool {
	return b.buf.Len() > 0 || len(b.runs) > 0
}

// flushParagraph turns pending runs into a heading or paragraph block.
func (b *Builder) flushParagraph() {
	b.flushRun()
	runs := b.runs
	b.runs = nil

	if b.level > 0 {
		b.blocks = append(b.blocks, model.NewHeading(b.level, runs...))
		b.level = 0
		return
	}
	b.blocks = append(b.blocks, &model.Paragraph{Runs: runs})
}

// Blocks flushes any trailing content and returns the blocks built so far.
func (b *Builder) Blocks() []model.Block {
	if b.state != stateInTableCell && b.hasContent() {
		b.flushParagraph()
	}
	return b.blocks
}

// Blocks parses Markdown and builds its block model.
func Blocks(src string) []model.Block {
	b := NewBuilder()
	for _, ev := range Parse(src) {
		b.Push(ev)
	}
	return b.Blocks()
}

// Tables returns the pipe tables of a Markdown document in encounter order.
// Rows keep their parsed lengths.
func Tables(src string) []*model.Table {
	var tables []*model.Table
	for _, block := range Blocks(src) {
		if t, ok := block.(*model.Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

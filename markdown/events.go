package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// EventKind identifies the type of a Markdown event.
type EventKind int

const (
	EventText EventKind = iota
	EventSoftBreak
	EventHardBreak
	EventHeadingStart
	EventHeadingEnd
	EventParagraphStart
	EventParagraphEnd
	EventEmphasisStart
	EventEmphasisEnd
	EventStrongStart
	EventStrongEnd
	EventTableStart
	EventTableEnd
	EventTableHeadStart
	EventTableHeadEnd
	EventTableRowStart
	EventTableRowEnd
	EventTableCellStart
	EventTableCellEnd
)

var eventNames = [...]string{
	EventText:           "Text",
	EventSoftBreak:      "SoftBreak",
	EventHardBreak:      "HardBreak",
	EventHeadingStart:   "HeadingStart",
	EventHeadingEnd:     "HeadingEnd",
	EventParagraphStart: "ParagraphStart",
	EventParagraphEnd:   "ParagraphEnd",
	EventEmphasisStart:  "EmphasisStart",
	EventEmphasisEnd:    "EmphasisEnd",
	EventStrongStart:    "StrongStart",
	EventStrongEnd:      "StrongEnd",
	EventTableStart:     "TableStart",
	EventTableEnd:       "TableEnd",
	EventTableHeadStart: "TableHeadStart",
	EventTableHeadEnd:   "TableHeadEnd",
	EventTableRowStart:  "TableRowStart",
	EventTableRowEnd:    "TableRowEnd",
	EventTableCellStart: "TableCellStart",
	EventTableCellEnd:   "TableCellEnd",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "Unknown"
}

// Event is one item of the linear Markdown event stream.
type Event struct {
	Kind  EventKind
	Level int    // heading level for EventHeadingStart and EventHeadingEnd
	Text  string // literal text for EventText
}

var parser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Parse tokenizes Markdown into events in document order.
//
// Block containers such as lists and block quotes contribute only their
// paragraphs. Code blocks surface as paragraphs of their lines, and images,
// raw HTML and thematic breaks produce no events.
func Parse(src string) []Event {
	source := []byte(src)
	doc := parser.Parser().Parse(text.NewReader(source))

	w := &walker{source: source}
	_ = ast.Walk(doc, w.visit)
	return w.events
}

type walker struct {
	source []byte
	events []Event
}

func (w *walker) emit(kind EventKind) {
	w.events = append(w.events, Event{Kind: kind})
}

func (w *walker) text(s string) {
	if s == "" {
		return
	}
	w.events = append(w.events, Event{Kind: EventText, Text: s})
}

func (w *walker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		w.events = append(w.events, Event{Kind: pick(entering, EventHeadingStart, EventHeadingEnd), Level: node.Level})

	case *ast.Paragraph, *ast.TextBlock:
		w.emit(pick(entering, EventParagraphStart, EventParagraphEnd))

	case *ast.Emphasis:
		if node.Level >= 2 {
			w.emit(pick(entering, EventStrongStart, EventStrongEnd))
		} else {
			w.emit(pick(entering, EventEmphasisStart, EventEmphasisEnd))
		}

	case *ast.Text:
		if !entering {
			return ast.WalkContinue, nil
		}
		w.text(unescape(node.Segment.Value(w.source)))
		switch {
		case node.HardLineBreak():
			w.emit(EventHardBreak)
		case node.SoftLineBreak():
			w.emit(EventSoftBreak)
		}

	case *ast.String:
		if entering {
			w.text(string(node.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.text(w.rawText(node))
		}
		return ast.WalkSkipChildren, nil

	case *ast.AutoLink:
		if entering {
			w.text(string(node.Label(w.source)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.codeBlock(node)
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image, *ast.RawHTML, *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil

	case *east.Table:
		w.emit(pick(entering, EventTableStart, EventTableEnd))

	case *east.TableHeader:
		w.emit(pick(entering, EventTableHeadStart, EventTableHeadEnd))

	case *east.TableRow:
		w.emit(pick(entering, EventTableRowStart, EventTableRowEnd))

	case *east.TableCell:
		w.emit(pick(entering, EventTableCellStart, EventTableCellEnd))
	}

	return ast.WalkContinue, nil
}

// codeBlock emits a code block as one paragraph whose lines are joined by
// soft breaks.
func (w *walker) codeBlock(n ast.Node) {
	lines := n.Lines()
	w.emit(EventParagraphStart)
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(w.source)), "\r\n")
		if i > 0 {
			w.emit(EventSoftBreak)
		}
		w.text(line)
	}
	w.emit(EventParagraphEnd)
}

func (w *walker) rawText(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(w.source))
		}
	}
	return sb.String()
}

func unescape(b []byte) string {
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	b = util.ResolveEntityNames(b)
	return string(b)
}

func pick(entering bool, start, end EventKind) EventKind {
	if entering {
		return start
	}
	return end
}

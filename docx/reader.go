// Package docx converts between Word (.docx) documents and Markdown.
//
// Import walks the top-level paragraphs and tables of word/document.xml in
// order. Paragraph styles Heading1 through Heading6 become ATX headings, bold
// and italic runs become emphasis spans and tables become pipe tables.
// Everything else (headers, footers, images, comments, tracked changes) is
// dropped.
package docx

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/markdown"
	"github.com/tsawler/officemd/model"
	"github.com/tsawler/officemd/opc"
)

const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"
)

// Importer converts DOCX packages to Markdown.
type Importer struct{}

// Import converts a DOCX package held in memory to Markdown.
func (Importer) Import(data []byte) (string, error) {
	blocks, err := ReadBlocks(data)
	if err != nil {
		return "", err
	}
	return markdown.Render(blocks), nil
}

// Import converts a DOCX package held in memory to Markdown.
func Import(data []byte) (string, error) {
	return Importer{}.Import(data)
}

// ImportFile reads a DOCX file and converts it to Markdown.
func ImportFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", convert.Wrap(err, "failed to read file")
	}
	return Import(data)
}

// ReadBlocks parses a DOCX package into blocks in document order.
func ReadBlocks(data []byte) ([]model.Block, error) {
	pkg, err := opc.OpenBytes(data)
	if err != nil {
		return nil, convert.Wrap(err, "failed to parse DOCX")
	}
	if err := pkg.Validate(documentPart); err != nil {
		return nil, convert.Wrap(err, "failed to parse DOCX")
	}

	content, err := pkg.Read(documentPart)
	if err != nil {
		return nil, convert.Wrap(err, "failed to parse DOCX")
	}
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, convert.Wrap(fmt.Errorf("unmarshaling document.xml: %w", err), "failed to parse DOCX")
	}

	styles := styleNames{}
	if pkg.Has(stylesPart) {
		if data, err := pkg.Read(stylesPart); err == nil {
			styles = parseStyleNames(data)
		}
	}

	blocks := make([]model.Block, 0, len(doc.Body.Elements))
	for _, el := range doc.Body.Elements {
		switch {
		case el.Paragraph != nil:
			blocks = append(blocks, paragraphBlock(el.Paragraph, styles))
		case el.Table != nil:
			if t := tableBlock(el.Table); t != nil {
				blocks = append(blocks, t)
			}
		}
	}
	return blocks, nil
}

// paragraphBlock converts a paragraph to a heading or plain paragraph.
func paragraphBlock(p *paragraphXML, styles styleNames) model.Block {
	runs := paragraphRuns(p)
	if level := styles.level(p.Properties.Style.Val); level > 0 {
		return model.NewHeading(level, runs...)
	}
	return &model.Paragraph{Runs: runs}
}

// tableBlock converts a table; the first row is the header. Each cell is the
// space-joined rendering of its non-empty paragraphs. Tables without rows
// return nil.
func tableBlock(tbl *tableXML) *model.Table {
	var rows [][]string
	for _, tr := range tbl.Rows {
		cells := make([]string, 0, len(tr.Cells))
		for _, tc := range tr.Cells {
			cells = append(cells, cellText(tc))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return &model.Table{Header: rows[0], Rows: rows[1:]}
}

// paragraphRuns returns the runs of a paragraph that carry text.
func paragraphRuns(p *paragraphXML) []model.Run {
	runs := make([]model.Run, 0, len(p.Runs))
	for _, r := range p.Runs {
		if r.Text == "" {
			continue
		}
		runs = append(runs, model.Run{
			Text:   r.Text,
			Bold:   r.Properties.Bold.on(),
			Italic: r.Properties.Italic.on(),
		})
	}
	return runs
}

func cellText(tc tableCellXML) string {
	parts := make([]string, 0, len(tc.Paragraphs))
	for i := range tc.Paragraphs {
		text := strings.TrimSpace(markdown.RenderRuns(paragraphRuns(&tc.Paragraphs[i])))
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

package docx

import (
	"encoding/xml"
	"strings"
)

// XML namespaces used in DOCX files
const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    bodyXML  `xml:"body"`
}

// bodyXML holds the top-level paragraphs and tables in document order.
type bodyXML struct {
	Elements []bodyElement
}

// bodyElement is either a paragraph or a table.
type bodyElement struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML keeps paragraphs and tables in the order they appear. Every
// other body child (section properties, bookmarks, content controls) is
// skipped.
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				p := &paragraphXML{}
				if err := d.DecodeElement(p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Paragraph: p})
			case "tbl":
				tbl := &tableXML{}
				if err := d.DecodeElement(tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Table: tbl})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	Properties paragraphPropsXML
	Runs       []runXML
}

// UnmarshalXML collects the paragraph's runs in order, including the runs
// nested inside hyperlinks.
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var r runXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, r)
			case "hyperlink":
				var h hyperlinkXML
				if err := d.DecodeElement(&h, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, h.Runs...)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style styleRefXML `xml:"pStyle"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// hyperlinkXML represents a hyperlink.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// runXML represents a text run (<w:r>). Text holds the run's text and tab
// children in order; drawings, breaks and other content are dropped.
type runXML struct {
	Properties runPropsXML
	Text       string
}

// UnmarshalXML concatenates <w:t> text and <w:tab/> characters in order.
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if err := d.DecodeElement(&r.Properties, &t); err != nil {
					return err
				}
			case "t":
				var text textXML
				if err := d.DecodeElement(&text, &t); err != nil {
					return err
				}
				sb.WriteString(text.Value)
			case "tab":
				sb.WriteByte('\t')
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			r.Text = sb.String()
			return nil
		}
	}
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold   *boolXML `xml:"b"`
	Italic *boolXML `xml:"i"`
}

// boolXML represents an OOXML on/off property. A present element without a
// val attribute is on.
type boolXML struct {
	Val string `xml:"val,attr"`
}

// on reports whether the property is set.
func (b *boolXML) on() bool {
	if b == nil {
		return false
	}
	switch strings.ToLower(b.Val) {
	case "false", "0", "off":
		return false
	default:
		return true
	}
}

// textXML represents text content (<w:t>).
type textXML struct {
	Value string `xml:",chardata"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

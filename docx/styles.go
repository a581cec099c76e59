package docx

import (
	"bytes"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// headingLevels maps lower-cased style ids and names to heading levels.
var headingLevels = map[string]int{
	"heading1": 1, "heading 1": 1,
	"heading2": 2, "heading 2": 2,
	"heading3": 3, "heading 3": 3,
	"heading4": 4, "heading 4": 4,
	"heading5": 5, "heading 5": 5,
	"heading6": 6, "heading 6": 6,
}

// headingLevel returns the heading level for a style id or name, or 0.
func headingLevel(style string) int {
	return headingLevels[strings.ToLower(style)]
}

var (
	styleExpr     = xpath.MustCompile("//*[local-name()='styles']/*[local-name()='style']")
	styleNameExpr = xpath.MustCompile("*[local-name()='name']")
)

// styleNames maps style ids to their display names from word/styles.xml.
type styleNames map[string]string

// parseStyleNames reads the id to name table of a styles part. Malformed
// styles yield an empty table; styles only refine heading detection.
func parseStyleNames(data []byte) styleNames {
	names := styleNames{}
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return names
	}

	for _, style := range xmlquery.QuerySelectorAll(doc, styleExpr) {
		id := attr(style, "styleId")
		if id == "" {
			continue
		}
		if name := xmlquery.QuerySelector(style, styleNameExpr); name != nil {
			names[id] = attr(name, "val")
		}
	}
	return names
}

// level resolves the heading level of a paragraph style. Built-in ids win;
// otherwise the style's display name decides, which covers documents whose
// style ids are localized.
func (s styleNames) level(styleID string) int {
	if styleID == "" {
		return 0
	}
	if level := headingLevel(styleID); level > 0 {
		return level
	}
	if name, ok := s[styleID]; ok {
		return headingLevel(name)
	}
	return 0
}

// attr returns the value of the attribute with the given local name.
func attr(n *xmlquery.Node, local string) string {
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

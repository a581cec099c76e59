package pptx

import (
	"strings"

	"github.com/tsawler/officemd/markdown"
	"github.com/tsawler/officemd/model"
)

// DefaultTitle titles the single slide of a document without top-level
// headings.
const DefaultTitle = "Presentation"

const slideMarker = "# "

// SplitSlides splits Markdown into slides. Every line starting with "# "
// opens a slide titled with the rest of the line; deeper headings are body
// text. Blank lines are dropped. Lines before the first heading form an
// untitled slide. Without any top-level heading the whole document becomes
// one slide titled defaultTitle (DefaultTitle when empty).
func SplitSlides(md, defaultTitle string) []*model.Slide {
	var slides []*model.Slide
	var current *model.Slide
	titled := false

	for _, line := range markdown.Lines(md) {
		if strings.HasPrefix(line, slideMarker) {
			titled = true
			current = &model.Slide{Title: strings.TrimSpace(line[len(slideMarker):])}
			slides = append(slides, current)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if current == nil {
			current = &model.Slide{}
			slides = append(slides, current)
		}
		current.Body = append(current.Body, line)
	}

	if titled {
		return slides
	}

	if defaultTitle == "" {
		defaultTitle = DefaultTitle
	}
	whole := &model.Slide{Title: defaultTitle}
	if current != nil {
		whole.Body = current.Body
	}
	return []*model.Slide{whole}
}

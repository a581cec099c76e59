// Package pptx converts between PowerPoint (.pptx) presentations and
// Markdown.
//
// Import scans every ppt/slides/slideN.xml entry for text, orders the slides
// by N and renders each as a "# title" heading followed by one paragraph per
// remaining line of text. Export splits Markdown on top-level headings and
// builds a minimal presentation with one title and one body shape per slide.
package pptx

import (
	"html"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/officemd/convert"
	"github.com/tsawler/officemd/markdown"
	"github.com/tsawler/officemd/model"
	"github.com/tsawler/officemd/opc"
)

const (
	slidePrefix = "ppt/slides/slide"
	slideSuffix = ".xml"
)

// Reader holds the text of a presentation's slides in slide order.
type Reader struct {
	slides []*model.Slide
}

// OpenBytes reads a presentation held in memory. The package is treated as
// a plain ZIP archive: only slide parts are read and slides without text are
// left out.
func OpenBytes(data []byte) (*Reader, error) {
	pkg, err := opc.OpenBytes(data)
	if err != nil {
		return nil, convert.Wrap(err, "failed to read PPTX archive")
	}

	type numbered struct {
		num   int
		slide *model.Slide
	}
	var found []numbered

	for _, f := range pkg.Files() {
		num, ok := slideNumber(f.Name)
		if !ok {
			continue
		}
		content, err := opc.ReadFile(f)
		if err != nil {
			return nil, convert.Wrap(err, "failed to read slide XML")
		}
		if slide := extractSlide(string(content)); slide != nil {
			found = append(found, numbered{num, slide})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].num < found[j].num
	})

	r := &Reader{slides: make([]*model.Slide, len(found))}
	for i, f := range found {
		r.slides[i] = f.slide
	}
	return r, nil
}

// Open reads a presentation file.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, convert.Wrap(err, "failed to read file")
	}
	return OpenBytes(data)
}

// slideNumber reports whether name is a slide part and extracts N from
// ppt/slides/slideN.xml. An unparsable N sorts as 0.
func slideNumber(name string) (int, bool) {
	if !strings.HasPrefix(name, slidePrefix) || !strings.HasSuffix(name, slideSuffix) {
		return 0, false
	}
	if len(name) < len(slidePrefix)+len(slideSuffix) {
		return 0, false
	}
	num, err := strconv.Atoi(name[len(slidePrefix) : len(name)-len(slideSuffix)])
	if err != nil {
		return 0, true
	}
	return num, true
}

// extractSlide collects the text of each <a:p> paragraph by scanning for
// <a:t> runs. The first non-blank paragraph is the title. It returns nil for
// a slide without text.
func extractSlide(content string) *model.Slide {
	var paras []string
	for _, para := range strings.Split(content, "<a:p>") {
		var sb strings.Builder
		for _, part := range strings.Split(para, "<a:t>") {
			if end := strings.Index(part, "</a:t>"); end >= 0 {
				sb.WriteString(html.UnescapeString(part[:end]))
			}
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			paras = append(paras, text)
		}
	}

	if len(paras) == 0 {
		return nil
	}
	return &model.Slide{Title: paras[0], Body: paras[1:]}
}

// Slides returns the slides in order.
func (r *Reader) Slides() []*model.Slide {
	return r.slides
}

// SlideCount returns the number of slides with text.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Markdown renders the slides: a "# " heading per slide title, each body
// line as its own paragraph, and a blank line between slides.
func (r *Reader) Markdown() string {
	return RenderSlides(r.slides)
}

// RenderSlides renders slides as Markdown.
func RenderSlides(slides []*model.Slide) string {
	var sb strings.Builder
	for i, s := range slides {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(markdown.HeadingPrefix(1))
		sb.WriteString(s.Title)
		sb.WriteString("\n")
		for _, line := range s.Body {
			sb.WriteString("\n")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Importer converts PPTX packages to Markdown.
type Importer struct{}

// Import converts a PPTX package held in memory to Markdown.
func (Importer) Import(data []byte) (string, error) {
	r, err := OpenBytes(data)
	if err != nil {
		return "", err
	}
	return r.Markdown(), nil
}

// Import converts a PPTX package held in memory to Markdown.
func Import(data []byte) (string, error) {
	return Importer{}.Import(data)
}

// ImportFile reads a PPTX file and converts it to Markdown.
func ImportFile(path string) (string, error) {
	r, err := Open(path)
	if err != nil {
		return "", err
	}
	return r.Markdown(), nil
}

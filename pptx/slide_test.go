package pptx

import (
	"reflect"
	"testing"

	"github.com/tsawler/officemd/model"
)

func TestSplitSlides(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want []*model.Slide
	}{
		{
			name: "two slides",
			md:   "# Slide One\nBody text\n\n# Slide Two\nMore text\n",
			want: []*model.Slide{
				{Title: "Slide One", Body: []string{"Body text"}},
				{Title: "Slide Two", Body: []string{"More text"}},
			},
		},
		{
			name: "no top-level heading",
			md:   "## Sub\n\nline one\nline two\n",
			want: []*model.Slide{{Title: "Presentation", Body: []string{"## Sub", "line one", "line two"}}},
		},
		{
			name: "empty document",
			md:   "",
			want: []*model.Slide{{Title: "Presentation"}},
		},
		{
			name: "preamble before first heading",
			md:   "intro\n# Main\n## Detail\n\n   \n- item\r\n",
			want: []*model.Slide{
				{Body: []string{"intro"}},
				{Title: "Main", Body: []string{"## Detail", "- item"}},
			},
		},
		{
			name: "heading without body",
			md:   "# Only title\n#NoSpace\n",
			want: []*model.Slide{{Title: "Only title", Body: []string{"#NoSpace"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSlides(tt.md, "")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSlides() = %s, want %s", describe(got), describe(tt.want))
			}
		})
	}
}

func TestSplitSlides_CustomDefaultTitle(t *testing.T) {
	got := SplitSlides("text", "Deck")
	if len(got) != 1 || got[0].Title != "Deck" {
		t.Errorf("SplitSlides() = %s", describe(got))
	}
}

func TestRenderSlides(t *testing.T) {
	slides := []*model.Slide{
		{Title: "A", Body: []string{"one", "two"}},
		{Title: "B"},
	}
	want := "# A\n\none\n\ntwo\n\n# B\n"
	if got := RenderSlides(slides); got != want {
		t.Errorf("RenderSlides() = %q, want %q", got, want)
	}
}

func describe(slides []*model.Slide) string {
	s := "["
	for _, sl := range slides {
		s += "{" + sl.Title + ":"
		for _, b := range sl.Body {
			s += " " + b + ";"
		}
		s += "}"
	}
	return s + "]"
}

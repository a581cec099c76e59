package model

// Slide is one presentation page: a title and ordered body lines.
type Slide struct {
	Title string
	Body  []string
}

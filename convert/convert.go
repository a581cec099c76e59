package convert

import "io"

// Importer turns the bytes of a native document into Markdown text.
type Importer interface {
	Import(data []byte) (string, error)
}

// Exporter serializes Markdown text into a native document written to w.
type Exporter interface {
	Export(markdown string, w io.Writer) error
}

package opc

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// DefaultCompression is the deflate level used when none is configured.
const DefaultCompression = flate.DefaultCompression

// Writer builds a container by appending deflate-compressed parts.
type Writer struct {
	zw    *zip.Writer
	level int
}

// NewWriter returns a Writer that writes the archive to w using the given
// deflate level (flate.HuffmanOnly through flate.BestCompression).
func NewWriter(w io.Writer, level int) (*Writer, error) {
	if level < flate.HuffmanOnly || level > flate.BestCompression {
		return nil, fmt.Errorf("invalid compression level %d", level)
	}

	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})
	return &Writer{zw: zw, level: level}, nil
}

// WritePart adds one entry to the archive.
func (w *Writer) WritePart(name string, data []byte) error {
	fw, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// WriteString adds one entry whose content is s.
func (w *Writer) WriteString(name, s string) error {
	return w.WritePart(name, []byte(s))
}

// WriteXML marshals v with the standard XML declaration and adds it as an
// entry.
func (w *Writer) WriteXML(name string, v any) error {
	data, err := MarshalXML(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	return w.WritePart(name, data)
}

// Close finishes the archive. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.zw.Close(); err != nil {
		return fmt.Errorf("finishing ZIP archive: %w", err)
	}
	return nil
}

// MarshalXML renders v as a standalone XML part.
func MarshalXML(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xmlDeclaration)+len(body))
	out = append(out, xmlDeclaration...)
	return append(out, body...), nil
}

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Package opc reads and writes Open Packaging Conventions containers, the ZIP
// packages underlying DOCX, XLSX and PPTX files.
package opc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// Package is a read-only view of a ZIP container held in memory.
type Package struct {
	zr    *zip.Reader
	files map[string]*zip.File
}

// OpenBytes opens a container from its raw bytes.
func OpenBytes(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	p := &Package{
		zr:    zr,
		files: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		p.files[f.Name] = f
	}
	return p, nil
}

// Files returns the archive entries in archive order.
func (p *Package) Files() []*zip.File {
	return p.zr.File
}

// Has reports whether the archive contains an entry with the given name.
func (p *Package) Has(name string) bool {
	_, ok := p.files[name]
	return ok
}

// Read returns the content of the named entry.
func (p *Package) Read(name string) ([]byte, error) {
	f, ok := p.files[name]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	return ReadFile(f)
}

// Validate checks that every required entry exists.
func (p *Package) Validate(required ...string) error {
	for _, name := range required {
		if !p.Has(name) {
			return fmt.Errorf("missing required file: %s", name)
		}
	}
	return nil
}

// ReadFile reads one archive entry.
func ReadFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name, err)
	}
	return data, nil
}

// Package markdown converts between Markdown text and the shared block model.
//
// Parse turns Markdown into a flat stream of block and inline events using
// goldmark with the GFM table extension. A Builder consumes that stream and
// produces model blocks, and Render goes the other way, producing the
// restricted Markdown dialect every importer emits: ATX headings, paragraphs
// with *italic*, **bold** and ***bold italic*** runs, and pipe tables with a
// separator row.
package markdown

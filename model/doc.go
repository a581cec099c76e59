// Package model defines the short-lived structures the converters build while
// walking or synthesizing a document: the block model shared by the
// word-processing reader and writer (headings, paragraphs, tables made of
// emphasis runs), the typed cells of a spreadsheet sheet, and presentation
// slides.
//
// Nothing here is retained between conversions. Every converter creates its
// own values per call, so the types carry no synchronization.
package model

// Package xlsx converts between spreadsheets and Markdown.
//
// Import reads XLSX workbooks, OpenDocument spreadsheets (.ods) and CSV
// files. Each sheet becomes a "## name" section holding a pipe table whose
// first row is the header; long sheets are capped at a fixed number of data
// rows with a note saying how many were left out.
//
// Export writes every pipe table of a Markdown document to its own sheet
// (Table1, Table2, ...) with all cells stored as text. A document without
// tables is written line by line into column A of a single sheet.
package xlsx

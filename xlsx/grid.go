package xlsx

import "github.com/tsawler/officemd/model"

// trimGrid crops rows to the bounding box of their non-empty cells and pads
// every row to the same width.
func trimGrid(rows [][]model.Cell) [][]model.Cell {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for r, row := range rows {
		for c, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			if minRow < 0 {
				minRow = r
			}
			maxRow = r
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}
	if minRow < 0 {
		return nil
	}

	width := maxCol - minCol + 1
	out := make([][]model.Cell, 0, maxRow-minRow+1)
	for _, row := range rows[minRow : maxRow+1] {
		cropped := make([]model.Cell, width)
		for c := minCol; c <= maxCol && c < len(row); c++ {
			cropped[c-minCol] = row[c]
		}
		out = append(out, cropped)
	}
	return out
}

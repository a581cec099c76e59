package xlsx

import (
	"fmt"
	"strconv"
	"strings"
)

// Sheet size limits of the XLSX format.
const (
	maxColumns   = 16384
	maxRows      = 1048576
	maxCellChars = 32767
)

// ParseCellRef parses a cell reference like "A1" or "AA100" into column and
// row indices (0-indexed). Absolute markers ("$B$3") are accepted.
func ParseCellRef(ref string) (col, row int, err error) {
	ref = strings.ReplaceAll(ref, "$", "")
	if ref == "" {
		return 0, 0, fmt.Errorf("empty cell reference")
	}

	i := 0
	for i < len(ref) && isLetter(ref[i]) {
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("invalid cell reference %q: no column letters", ref)
	}
	if i == len(ref) {
		return 0, 0, fmt.Errorf("invalid cell reference %q: no row number", ref)
	}

	col = ColumnToIndex(ref[:i])
	if col < 0 || col >= maxColumns {
		return 0, 0, fmt.Errorf("invalid column: %s", ref[:i])
	}

	n, err := strconv.Atoi(ref[i:])
	if err != nil || n < 1 || n > maxRows {
		return 0, 0, fmt.Errorf("invalid row: %s", ref[i:])
	}
	return col, n - 1, nil
}

// ColumnToIndex converts column letters to a 0-indexed column number:
// A=0, Z=25, AA=26. It returns -1 for anything that is not letters.
func ColumnToIndex(col string) int {
	if col == "" {
		return -1
	}
	result := 0
	for _, c := range strings.ToUpper(col) {
		if c < 'A' || c > 'Z' {
			return -1
		}
		result = result*26 + int(c-'A') + 1
		if result > maxColumns {
			return -1
		}
	}
	return result - 1
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

package xlsx

import "testing"

func TestParseCellRef(t *testing.T) {
	tests := []struct {
		ref     string
		wantCol int
		wantRow int
		wantErr bool
	}{
		{"A1", 0, 0, false},
		{"B1", 1, 0, false},
		{"Z1", 25, 0, false},
		{"AA1", 26, 0, false},
		{"AZ1", 51, 0, false},
		{"C100", 2, 99, false},
		{"$B$3", 1, 2, false},
		{"xfd1048576", 16383, 1048575, false},
		{"XFE1", 0, 0, true},
		{"A1048577", 0, 0, true},
		{"", 0, 0, true},
		{"1", 0, 0, true},
		{"A", 0, 0, true},
		{"A0", 0, 0, true},
		{"A-1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			col, row, err := ParseCellRef(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCellRef(%q) expected error, got col=%d, row=%d", tt.ref, col, row)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCellRef(%q) unexpected error: %v", tt.ref, err)
			}
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("ParseCellRef(%q) = (%d, %d), want (%d, %d)", tt.ref, col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		col  string
		want int
	}{
		{"A", 0},
		{"b", 1},
		{"Z", 25},
		{"AA", 26},
		{"ZZ", 701},
		{"AAA", 702},
		{"", -1},
		{"A1", -1},
	}

	for _, tt := range tests {
		if got := ColumnToIndex(tt.col); got != tt.want {
			t.Errorf("ColumnToIndex(%q) = %d, want %d", tt.col, got, tt.want)
		}
	}
}

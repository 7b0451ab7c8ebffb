package problemgen

import "testing"

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{9999999999, "9,999,999,999"},
		{-1234, "-1,234"},
	}
	for _, tc := range tests {
		if got := FormatThousands(tc.n); got != tc.want {
			t.Errorf("FormatThousands(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		digits int
		want   int
	}{
		{0, 1},
		{1, 1},
		{3, 3},
		{4, 5},
		{6, 7},
		{7, 9},
		{10, 13},
	}
	for _, tc := range tests {
		if got := ColumnWidth(tc.digits); got != tc.want {
			t.Errorf("ColumnWidth(%d) = %d, want %d", tc.digits, got, tc.want)
		}
	}
}

func TestRenderTerm(t *testing.T) {
	tests := []struct {
		v     int64
		width int
		want  string
	}{
		{1234, 5, " 1,234"},
		{-56, 5, "-   56"},
		{7, 5, "     7"},
		{12345, 3, " 12,345"},
	}
	for _, tc := range tests {
		if got := RenderTerm(tc.v, tc.width); got != tc.want {
			t.Errorf("RenderTerm(%d, %d) = %q, want %q", tc.v, tc.width, got, tc.want)
		}
	}
}

func TestRenderColumn_Aligned(t *testing.T) {
	got := renderColumn([]int64{1234, -56, 7}, 4)
	want := " 1,234\n-   56\n     7"
	if got != want {
		t.Errorf("renderColumn = %q, want %q", got, want)
	}
}

func TestDigitCount(t *testing.T) {
	tests := []struct {
		n    int64
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{-999, 3},
		{1000000000, 10},
	}
	for _, tc := range tests {
		if got := digitCount(tc.n); got != tc.want {
			t.Errorf("digitCount(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

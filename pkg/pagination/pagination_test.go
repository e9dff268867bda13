package pagination

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{13, 6, 3},
		{5, 0, 1}, // unusable size falls back to the default
	}
	for _, tt := range tests {
		if got := TotalPages(tt.count, tt.size); got != tt.want {
			t.Fatalf("TotalPages(%d,%d) = %d, want %d", tt.count, tt.size, got, tt.want)
		}
	}
}

func TestWindowReconstructsInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	size := 3

	var rebuilt []int
	_, total := Window(items, 1, size)
	for page := 1; page <= total; page++ {
		window, _ := Window(items, page, size)
		rebuilt = append(rebuilt, window...)
	}
	if len(rebuilt) != len(items) {
		t.Fatalf("expected %d items after reconstruction, got %d", len(items), len(rebuilt))
	}
	for i := range items {
		if rebuilt[i] != items[i] {
			t.Fatalf("reconstruction diverged at %d: %d != %d", i, rebuilt[i], items[i])
		}
	}
}

func TestWindowOutOfRange(t *testing.T) {
	items := []string{"a", "b"}
	if window, total := Window(items, 0, 2); window != nil || total != 1 {
		t.Fatalf("page 0 must be empty, got %v (total %d)", window, total)
	}
	if window, total := Window(items, 2, 2); window != nil || total != 1 {
		t.Fatalf("page past the end must be empty, got %v (total %d)", window, total)
	}
	if window, total := Window([]string{}, 1, 2); window != nil || total != 0 {
		t.Fatalf("empty input must give zero pages, got %v (total %d)", window, total)
	}
}

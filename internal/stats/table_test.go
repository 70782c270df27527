package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Category", "Score", "Accuracy"}
	rows := [][]string{
		{"hard-weak", "2/3", "66.7%"},
		{"pair-strong", "10/10", "100.0%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := FormatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Category    Score Accuracy" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "hard-weak     2/3    66.7%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "pair-strong 10/10   100.0%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := FormatTable([]string{"A", "B"}, [][]string{{"世", "x"}, {"ok", "y"}}, nil)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1] != "世 x" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

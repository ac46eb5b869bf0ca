package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Tier", "Rounds", "Win %"}
	rows := [][]string{
		{"EASY", "12", "75.0%"},
		{"INSANE", "3", "0.0%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Tier   Rounds Win %" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "EASY       12 75.0%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "INSANE      3  0.0%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"A", "B"}, [][]string{{"日", "x"}, {"a", "y"}}, nil)
	want := []string{"A  B", "日 x", "a  y"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil lines, got %v", lines)
	}
}

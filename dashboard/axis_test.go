package dashboard

import "testing"

func TestNiceStep(t *testing.T) {
	cases := []struct {
		rangeValue float64
		ticks      int
		expected   float64
	}{
		{37, 3, 20},
		{37, 2, 50},
		{100, 5, 50},
		{9, 4, 5},
		{0.9, 4, 0.5},
		{0, 5, 1},
	}
	for _, tc := range cases {
		if got := NiceStep(tc.rangeValue, tc.ticks); got != tc.expected {
			t.Fatalf("NiceStep(%v, %d) expected %v, got %v", tc.rangeValue, tc.ticks, tc.expected, got)
		}
	}
}

func TestAxisBounds(t *testing.T) {
	low, high, step := AxisBounds(5, 95, 5)
	if low != 0 || high != 100 || step != 50 {
		t.Fatalf("AxisBounds(5, 95, 5) expected (0, 100, 50), got (%v, %v, %v)", low, high, step)
	}

	// Non-negative data never gets a negative floor.
	low, _, _ = AxisBounds(10, 30, 5)
	if low < 0 {
		t.Fatalf("expected non-negative low, got %v", low)
	}

	// Negative data keeps its negative floor.
	low, high, step = AxisBounds(-10, 90, 5)
	if low != -50 || high != 100 || step != 50 {
		t.Fatalf("AxisBounds(-10, 90, 5) expected (-50, 100, 50), got (%v, %v, %v)", low, high, step)
	}

	// A flat series still produces a non-empty window.
	low, high, _ = AxisBounds(40, 40, 5)
	if high <= low {
		t.Fatalf("flat series expected high > low, got (%v, %v)", low, high)
	}
}

func TestShortTickLabel(t *testing.T) {
	cases := []struct {
		value    float64
		prefix   string
		expected string
	}{
		{4e6, "$", "$4M"},
		{120000, "$", "$120k"},
		{2.5e9, "$", "$2.5B"},
		{75, "$", "$75"},
		{-1500, "$", "-$1.5k"},
		{350, "", "350"},
	}
	for _, tc := range cases {
		if got := ShortTickLabel(tc.value, tc.prefix); got != tc.expected {
			t.Fatalf("ShortTickLabel(%v, %q) expected %q, got %q", tc.value, tc.prefix, tc.expected, got)
		}
	}
}

func TestTickLabels(t *testing.T) {
	labels := TickLabels(0, 50000, 4, "$")
	expected := []string{"$0", "$50k", "$100k", "$150k", "$200k"}
	if len(labels) != len(expected) {
		t.Fatalf("expected %d labels, got %d", len(expected), len(labels))
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Fatalf("TickLabels[%d] expected %q, got %q", i, expected[i], labels[i])
		}
	}
}

func TestPctTickLabel(t *testing.T) {
	if got := PctTickLabel(12.5); got != "12.5%" {
		t.Fatalf("PctTickLabel(12.5) expected 12.5%%, got %q", got)
	}
	if got := PctTickLabel(40); got != "40%" {
		t.Fatalf("PctTickLabel(40) expected 40%%, got %q", got)
	}
}

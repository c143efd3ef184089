package dashboard

import (
	"testing"
	"time"
)

func TestResolveDatePreset(t *testing.T) {
	now := time.Date(2024, time.June, 15, 13, 45, 0, 0, time.UTC)
	day := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := day.Add(24 * time.Hour)

	r := ResolveDatePreset("today", now)
	if r.Start == nil || !r.Start.Equal(day) || r.End == nil || !r.End.Equal(tomorrow) {
		t.Fatalf("today expected [%s, %s), got %+v", day, tomorrow, r)
	}

	r = ResolveDatePreset("yesterday", now)
	if r.Start == nil || !r.Start.Equal(day.Add(-24*time.Hour)) || r.End == nil || !r.End.Equal(day) {
		t.Fatalf("yesterday expected [%s, %s), got %+v", day.Add(-24*time.Hour), day, r)
	}

	r = ResolveDatePreset("LAST7", now)
	if r.Start == nil || !r.Start.Equal(day.Add(-7*24*time.Hour)) || r.End == nil || !r.End.Equal(tomorrow) {
		t.Fatalf("last7 expected start 7 days back, got %+v", r)
	}

	r = ResolveDatePreset("", now)
	if r.Start != nil || r.End != nil {
		t.Fatalf("empty preset expected open range, got %+v", r)
	}
	r = ResolveDatePreset("fortnight", now)
	if r.Start != nil || r.End != nil {
		t.Fatalf("unknown preset expected open range, got %+v", r)
	}
}

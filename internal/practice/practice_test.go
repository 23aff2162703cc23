package practice

import (
	"testing"
	"time"
)

func TestDateKeyUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	// 02:00 on the 5th in UTC+10 is still the 4th in UTC.
	d := time.Date(2024, 3, 5, 2, 0, 0, 0, loc)
	if got := DateKey(d); got != "2024-03-04" {
		t.Fatalf("got %q", got)
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	a := WordIndex(d, "salt", 1000)
	b := WordIndex(d.Add(3*time.Hour), "salt", 1000)
	if a != b {
		t.Fatalf("same day gave different indexes: %d vs %d", a, b)
	}
	if a < 0 || a >= 1000 {
		t.Fatalf("index out of range: %d", a)
	}
	if WordIndex(d, "other-salt", 1000) == a && WordIndex(d.AddDate(0, 0, 1), "salt", 1000) == a {
		t.Fatal("index should vary with salt or date")
	}
}

func TestWordIndexEmptyList(t *testing.T) {
	if got := WordIndex(time.Now(), "salt", 0); got != 0 {
		t.Fatalf("got %d", got)
	}
}

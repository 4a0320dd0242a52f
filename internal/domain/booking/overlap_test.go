package booking_test

import (
	"testing"
	"time"

	booking "github.com/garagehub/marketplace-api/internal/domain/booking"
)

func at(t *testing.T, hm string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", "2026-09-07 "+hm)
	if err != nil {
		t.Fatalf("bad clock %q: %v", hm, err)
	}
	return ts
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"partial overlap", "10:00", "11:30", "11:00", "12:00", true},
		{"b inside a", "09:00", "12:00", "10:00", "11:00", true},
		{"a inside b", "10:00", "11:00", "09:00", "12:00", true},
		{"touching, a before b", "09:00", "10:00", "10:00", "11:00", false},
		{"touching, b before a", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
		{"zero-length a at b start", "10:00", "10:00", "10:00", "11:00", false},
		{"zero-length a inside b", "10:30", "10:30", "10:00", "11:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.Overlaps(
				at(t, tc.aStart), at(t, tc.aEnd),
				at(t, tc.bStart), at(t, tc.bEnd),
			)
			if got != tc.want {
				t.Fatalf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	a1, a2 := at(t, "10:00"), at(t, "11:30")
	b1, b2 := at(t, "11:00"), at(t, "12:00")

	if booking.Overlaps(a1, a2, b1, b2) != booking.Overlaps(b1, b2, a1, a2) {
		t.Fatal("overlap check must not depend on argument order")
	}
}

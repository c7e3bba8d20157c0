package datestamp

import (
	"testing"
	"time"
)

func TestToTimestamp_RoundTrip(t *testing.T) {
	dates := []string{
		"2024-01-01",
		"2024-02-29",
		"2024-12-31",
		"1999-06-15",
		"2030-10-05",
	}

	for _, date := range dates {
		t.Run(date, func(t *testing.T) {
			ts := ToTimestamp(date)
			if ts == nil {
				t.Fatalf("ToTimestamp(%q) = nil, want timestamp", date)
			}
			got := FromTimestamp(ts)
			if got == nil || *got != date {
				t.Errorf("FromTimestamp(ToTimestamp(%q)) = %v, want %q", date, got, date)
			}
		})
	}
}

func TestToTimestamp_RoundTripAcrossTimezones(t *testing.T) {
	zones := []string{"UTC", "America/New_York", "Asia/Tokyo", "Pacific/Auckland"}
	date := "2024-03-10"

	orig := time.Local
	defer func() { time.Local = orig }()

	for _, zone := range zones {
		t.Run(zone, func(t *testing.T) {
			loc, err := time.LoadLocation(zone)
			if err != nil {
				t.Skipf("zone %s not available: %v", zone, err)
			}
			time.Local = loc

			ts := ToTimestamp(date)
			if ts == nil {
				t.Fatalf("ToTimestamp(%q) = nil in %s", date, zone)
			}
			got := FromTimestamp(ts)
			if got == nil || *got != date {
				t.Errorf("round trip in %s = %v, want %q", zone, got, date)
			}
		})
	}
}

func TestToTimestamp_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"not-a-date",
		"2024-13-01",
		"2024-02-30",
		"2023-02-29",
		"15-01-2024",
		"2024/01/15",
	}

	for _, input := range inputs {
		t.Run("input="+input, func(t *testing.T) {
			if ts := ToTimestamp(input); ts != nil {
				t.Errorf("ToTimestamp(%q) = %d, want nil", input, *ts)
			}
			if got := FromTimestamp(ToTimestamp(input)); got != nil {
				t.Errorf("FromTimestamp(ToTimestamp(%q)) = %q, want nil", input, *got)
			}
		})
	}
}

func TestTimeToTimestamp(t *testing.T) {
	if ts := TimeToTimestamp(time.Time{}); ts != nil {
		t.Errorf("TimeToTimestamp(zero) = %d, want nil", *ts)
	}

	moment := time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local)
	ts := TimeToTimestamp(moment)
	if ts == nil {
		t.Fatal("TimeToTimestamp returned nil for non-zero time")
	}
	got := FromTimestamp(ts)
	if got == nil || *got != "2024-05-20" {
		t.Errorf("FromTimestamp(TimeToTimestamp) = %v, want 2024-05-20", got)
	}
}

func TestFromTimestamp_Nil(t *testing.T) {
	if got := FromTimestamp(nil); got != nil {
		t.Errorf("FromTimestamp(nil) = %q, want nil", *got)
	}
}

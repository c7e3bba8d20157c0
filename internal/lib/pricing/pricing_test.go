package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/avdeevmax/gym-ledger/internal/models"
)

func TestQuote_TableTests(t *testing.T) {
	tests := []struct {
		name      string
		fee       int64
		months    int
		wantTotal int64
		wantRate  float64
	}{
		{
			name:      "one month no discount",
			fee:       50000,
			months:    1,
			wantTotal: 50000,
			wantRate:  0,
		},
		{
			name:      "three months no discount",
			fee:       50000,
			months:    3,
			wantTotal: 150000,
			wantRate:  0,
		},
		{
			name:      "five months still no discount",
			fee:       50000,
			months:    5,
			wantTotal: 250000,
			wantRate:  0,
		},
		{
			name:      "six months five percent",
			fee:       50000,
			months:    6,
			wantTotal: 285000,
			wantRate:  0.05,
		},
		{
			name:      "eleven months five percent",
			fee:       50000,
			months:    11,
			wantTotal: 522500,
			wantRate:  0.05,
		},
		{
			name:      "twelve months ten percent",
			fee:       50000,
			months:    12,
			wantTotal: 540000,
			wantRate:  0.10,
		},
		{
			name:      "half-up rounding on odd fee",
			fee:       333,
			months:    6,
			wantTotal: 1898, // 333*6*0.95 = 1898.1 -> 1898
			wantRate:  0.05,
		},
		{
			name:      "zero fee",
			fee:       0,
			months:    12,
			wantTotal: 0,
			wantRate:  0.10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quote(tt.fee, tt.months)
			if err != nil {
				t.Fatalf("Quote(%d, %d) returned error: %v", tt.fee, tt.months, err)
			}
			if got.TotalPrice != tt.wantTotal {
				t.Errorf("Quote(%d, %d).TotalPrice = %d, want %d", tt.fee, tt.months, got.TotalPrice, tt.wantTotal)
			}
			if got.DiscountRate != tt.wantRate {
				t.Errorf("Quote(%d, %d).DiscountRate = %v, want %v", tt.fee, tt.months, got.DiscountRate, tt.wantRate)
			}
		})
	}
}

func TestQuote_InvalidDuration(t *testing.T) {
	for _, months := range []int{0, 13, -1, 100} {
		if _, err := Quote(50000, months); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Quote(50000, %d) error = %v, want ErrInvalidDuration", months, err)
		}
	}
}

func TestQuote_InvalidFee(t *testing.T) {
	if _, err := Quote(-1, 3); !errors.Is(err, ErrInvalidFee) {
		t.Errorf("Quote(-1, 3) error = %v, want ErrInvalidFee", err)
	}
}

func TestExtend(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		current   *models.BillingPeriod
		months    int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "no current period starts today",
			current:   nil,
			months:    3,
			wantStart: today,
			wantEnd:   time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "expired period restarts from today",
			current: &models.BillingPeriod{
				StartDate: time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
				Months:    3,
			},
			months:    3,
			wantStart: today,
			wantEnd:   time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "period ending today restarts from today",
			current: &models.BillingPeriod{
				StartDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
				EndDate:   today,
				Months:    3,
			},
			months:    1,
			wantStart: today,
			wantEnd:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "active period extends back-to-back",
			current: &models.BillingPeriod{
				StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
				Months:    6,
			},
			months:    3,
			wantStart: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extend(tt.current, tt.months, today)
			if err != nil {
				t.Fatalf("Extend returned error: %v", err)
			}
			if !got.StartDate.Equal(tt.wantStart) {
				t.Errorf("StartDate = %v, want %v", got.StartDate, tt.wantStart)
			}
			if !got.EndDate.Equal(tt.wantEnd) {
				t.Errorf("EndDate = %v, want %v", got.EndDate, tt.wantEnd)
			}
			if got.Months != tt.months {
				t.Errorf("Months = %d, want %d", got.Months, tt.months)
			}
		})
	}
}

func TestExtend_InvalidDuration(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	if _, err := Extend(nil, 0, today); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("Extend(nil, 0) error = %v, want ErrInvalidDuration", err)
	}
}

func TestAddMonths_DayClamping(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "jan 31 plus one month clamps to feb 29 in leap year",
			start:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "jan 31 plus one month clamps to feb 28 otherwise",
			start:  time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "may 31 plus one month clamps to june 30",
			start:  time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "mid-month day is preserved",
			start:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			months: 6,
			want:   time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "year transition",
			start:  time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
			months: 3,
			want:   time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "twelve months lands on same day next year",
			start:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			months: 12,
			want:   time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

package paging

import (
	"errors"
	"strconv"
	"testing"
)

type locker struct {
	Number string
	Status string
}

func hundredLockers() []locker {
	items := make([]locker, 0, 100)
	for i := 1; i <= 100; i++ {
		items = append(items, locker{Number: strconv.Itoa(i), Status: "available"})
	}
	return items
}

func TestPaginate(t *testing.T) {
	items := hundredLockers()

	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantFirst string
		wantLast  string
		wantLen   int
	}{
		{
			name:      "first page of fifty",
			page:      1,
			pageSize:  50,
			wantFirst: "1",
			wantLast:  "50",
			wantLen:   50,
		},
		{
			name:      "second page of fifty",
			page:      2,
			pageSize:  50,
			wantFirst: "51",
			wantLast:  "100",
			wantLen:   50,
		},
		{
			name:     "page past the end is empty",
			page:     3,
			pageSize: 50,
			wantLen:  0,
		},
		{
			name:      "partial last page",
			page:      4,
			pageSize:  30,
			wantFirst: "91",
			wantLast:  "100",
			wantLen:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Paginate(items, tt.page, tt.pageSize)
			if err != nil {
				t.Fatalf("Paginate returned error: %v", err)
			}
			if got.Total != 100 {
				t.Errorf("Total = %d, want 100", got.Total)
			}
			if len(got.Data) != tt.wantLen {
				t.Fatalf("len(Data) = %d, want %d", len(got.Data), tt.wantLen)
			}
			if tt.wantLen > 0 {
				if got.Data[0].Number != tt.wantFirst {
					t.Errorf("first item = %s, want %s", got.Data[0].Number, tt.wantFirst)
				}
				if got.Data[len(got.Data)-1].Number != tt.wantLast {
					t.Errorf("last item = %s, want %s", got.Data[len(got.Data)-1].Number, tt.wantLast)
				}
			}
		})
	}
}

func TestPaginate_Invalid(t *testing.T) {
	items := hundredLockers()
	for _, args := range [][2]int{{0, 50}, {-1, 50}, {1, 0}, {1, -5}} {
		if _, err := Paginate(items, args[0], args[1]); !errors.Is(err, ErrInvalidPage) {
			t.Errorf("Paginate(page=%d, size=%d) error = %v, want ErrInvalidPage", args[0], args[1], err)
		}
	}
}

func TestApply_Search(t *testing.T) {
	items := hundredLockers()

	got := Apply(items, Filter{Search: "10"},
		func(l locker) string { return l.Status },
		func(l locker) string { return l.Number })

	// содержит "10": 10, 100 — и только они в диапазоне 1..100
	want := map[string]bool{"10": true, "100": true}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for _, l := range got {
		if !want[l.Number] {
			t.Errorf("unexpected item %q in result", l.Number)
		}
	}
}

func TestApply_SearchCaseInsensitive(t *testing.T) {
	items := []locker{
		{Number: "VIP-1", Status: "occupied"},
		{Number: "vip-2", Status: "available"},
		{Number: "A-3", Status: "available"},
	}

	got := Apply(items, Filter{Search: "vip"}, nil,
		func(l locker) string { return l.Number })
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestApply_Status(t *testing.T) {
	items := []locker{
		{Number: "1", Status: "occupied"},
		{Number: "2", Status: "available"},
		{Number: "3", Status: "occupied"},
	}
	statusOf := func(l locker) string { return l.Status }
	numberOf := func(l locker) string { return l.Number }

	got := Apply(items, Filter{Status: "occupied"}, statusOf, numberOf)
	if len(got) != 2 {
		t.Fatalf("status=occupied: len = %d, want 2", len(got))
	}

	if got := Apply(items, Filter{Status: StatusAny}, statusOf, numberOf); len(got) != 3 {
		t.Errorf("status=all: len = %d, want 3", len(got))
	}
	if got := Apply(items, Filter{}, statusOf, numberOf); len(got) != 3 {
		t.Errorf("empty filter: len = %d, want 3", len(got))
	}
}

func TestApply_CombinedBeforePagination(t *testing.T) {
	items := hundredLockers()
	for i := range items {
		if i%2 == 0 {
			items[i].Status = "occupied"
		}
	}

	filtered := Apply(items, Filter{Status: "occupied", Search: "1"},
		func(l locker) string { return l.Status },
		func(l locker) string { return l.Number })

	page, err := Paginate(filtered, 1, 10)
	if err != nil {
		t.Fatalf("Paginate returned error: %v", err)
	}
	if page.Total != len(filtered) {
		t.Errorf("Total = %d, want %d (post-filter count)", page.Total, len(filtered))
	}
	for _, l := range page.Data {
		if l.Status != "occupied" {
			t.Errorf("item %q has status %q, want occupied", l.Number, l.Status)
		}
	}
}

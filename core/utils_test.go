package core

import (
	"reflect"
	"testing"
	"time"
)

func TestRound(t *testing.T) {
	tests := []struct {
		f      float64
		places int
		want   float64
	}{
		{f: 120.456, places: 2, want: 120.46},
		{f: 33.33333, places: 1, want: 33.3},
		{f: -12.25, places: 1, want: -12.3},
		{f: 42, places: 2, want: 42},
	}
	for _, tt := range tests {
		if got := Round(tt.f, tt.places); got != tt.want {
			t.Errorf("Round(%v, %d) = %v; want %v", tt.f, tt.places, got, tt.want)
		}
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.February, 3, 23, 59, 0, 0, time.UTC)
	if got := Today(now); got != "2024-02-03" {
		t.Errorf("Today() = %q; want %q", got, "2024-02-03")
	}
	if _, err := ParseDate("2024-13-01"); err == nil {
		t.Error("ParseDate() accepted an invalid month")
	}
}

func TestParseOrderings(t *testing.T) {
	tests := []struct {
		name string
		val  string
		want []DBOrdering
	}{
		{name: "empty", val: "", want: nil},
		{name: "ascending", val: "name", want: []DBOrdering{{Field: "name", Ascending: true}}},
		{
			name: "many", val: "-rating, name,,-",
			want: []DBOrdering{{Field: "rating"}, {Field: "name", Ascending: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseOrderings(tt.val); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseOrderings() = %v; want %v", got, tt.want)
			}
		})
	}

	if s := (DBOrdering{Field: "rating"}).String(); s != "rating DESC" {
		t.Errorf("String() = %q", s)
	}
}

package datetime

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "One year", a: "2023-01-01", b: "2024-01-01", expected: 365},
		{name: "Leap year", a: "2024-01-01", b: "2025-01-01", expected: 366},
		{name: "Same day", a: "2023-06-15", b: "2023-06-15", expected: 0},
		{name: "Reversed order", a: "2024-01-01", b: "2023-01-01", expected: 365},
		{name: "Half year", a: "2023-01-01", b: "2023-07-02", expected: 182},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseTime(DateTimeLayout, tt.a)
			b := MustParseTime(DateTimeLayout, tt.b)
			if got := DaysBetween(a, b); got != tt.expected {
				t.Errorf("DaysBetween(%s, %s) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestYearFraction(t *testing.T) {
	anchor := MustParseTime(DateTimeLayout, "2023-01-01")

	tests := []struct {
		name     string
		date     string
		expected float64
	}{
		{name: "Anchor itself", date: "2023-01-01", expected: 0},
		{name: "One 365-day year", date: "2024-01-01", expected: 1},
		{name: "Quarter-ish", date: "2023-04-04", expected: 93.0 / 365.0},
		{name: "Before the anchor", date: "2022-01-01", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := MustParseTime(DateTimeLayout, tt.date)
			if got := YearFraction(anchor, d); got != tt.expected {
				t.Errorf("YearFraction(anchor, %s) = %v, expected %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestMustParseTimePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseTime did not panic on an invalid date")
		}
	}()
	MustParseTime(DateTimeLayout, "not-a-date")
}

func TestMustParseTime(t *testing.T) {
	got := MustParseTime(DateTimeLayout, "2023-03-14")
	want := time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MustParseTime = %v, expected %v", got, want)
	}
}

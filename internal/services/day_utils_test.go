package services

import (
	"testing"
	"time"
)

func TestDayRangeCoversWholeDay(t *testing.T) {
	location, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	value := time.Date(2026, 3, 5, 23, 30, 0, 0, location)
	start, end := DayRange(value, location)

	if !start.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, location)) {
		t.Fatalf("wrong day start: %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 6, 0, 0, 0, 0, location)) {
		t.Fatalf("wrong day end: %v", end)
	}
	if !value.Before(end) || value.Before(start) {
		t.Fatal("the original instant must fall inside its own day range")
	}
}

func TestDateAtLocationConvertsAcrossZones(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 23:00 UTC on the 5th is already the 6th in Tokyo.
	value := time.Date(2026, 3, 5, 23, 0, 0, 0, time.UTC)
	day := DateAtLocation(value, tokyo)
	if day.Day() != 6 {
		t.Fatalf("expected the 6th in Tokyo, got %v", day)
	}

	if day := DateAtLocation(value, nil); day.Day() != 5 {
		t.Fatalf("nil location must fall back to UTC, got %v", day)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 5, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 5, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, evening) {
		t.Fatal("same calendar day expected")
	}
	if SameDay(evening, nextDay) {
		t.Fatal("different calendar days expected")
	}
}

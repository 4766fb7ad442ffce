package booking

import (
	"testing"
	"time"
)

var testToday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestSlots_Enumeration(t *testing.T) {
	slots := Slots()
	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Errorf("expected last slot 16:30, got %s", slots[len(slots)-1])
	}
	for _, s := range slots {
		if s == "12:00" || s == "12:30" {
			t.Errorf("lunch slot %s should not be bookable", s)
		}
	}
}

func TestValidateSlot(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		time    string
		wantErr bool
	}{
		{"valid future", "2026-03-11", "09:00", false},
		{"valid today", "2026-03-10", "16:30", false},
		{"past date", "2026-03-09", "09:00", true},
		{"bad date format", "11-03-2026", "09:00", true},
		{"not a date", "soon", "09:00", true},
		{"lunch slot", "2026-03-11", "12:00", true},
		{"lunch half slot", "2026-03-11", "12:30", true},
		{"before opening", "2026-03-11", "08:30", true},
		{"after last slot", "2026-03-11", "17:00", true},
		{"off-grid minute", "2026-03-11", "09:15", true},
		{"empty time", "2026-03-11", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateSlot(tc.date, tc.time, testToday)
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateSlot_ReturnsParsedDate(t *testing.T) {
	date, err := ValidateSlot("2026-04-01", "10:30", testToday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.Year() != 2026 || date.Month() != time.April || date.Day() != 1 {
		t.Errorf("unexpected parsed date: %v", date)
	}
}

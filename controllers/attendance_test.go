package controllers

import "testing"

func TestAttendanceRateZeroRecords(t *testing.T) {
	if got := AttendanceRate(0, 0); got != "0%" {
		t.Fatalf("expected 0%% for no records, got %q", got)
	}
}

func TestAttendanceRateTwoOfThree(t *testing.T) {
	if got := AttendanceRate(2, 3); got != "66.7%" {
		t.Fatalf("expected 66.7%%, got %q", got)
	}
}

func TestAttendanceRateAllPresent(t *testing.T) {
	if got := AttendanceRate(5, 5); got != "100.0%" {
		t.Fatalf("expected 100.0%%, got %q", got)
	}
}

func TestAttendanceRateNonePresent(t *testing.T) {
	if got := AttendanceRate(0, 4); got != "0.0%" {
		t.Fatalf("expected 0.0%%, got %q", got)
	}
}

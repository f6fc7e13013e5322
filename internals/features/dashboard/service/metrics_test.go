package service

import (
	"testing"
	"time"
)

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestRate(t *testing.T) {
	tests := []struct {
		name    string
		present int64
		total   int64
		want    float64
	}{
		{"zero of zero is exactly zero", 0, 0, 0},
		{"all present", 10, 10, 100},
		{"none present", 0, 10, 0},
		{"two thirds rounds to 2 decimals", 2, 3, 66.67},
		{"one third rounds down", 1, 3, 33.33},
		{"half", 1, 2, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.present, tt.total); got != tt.want {
				t.Errorf("Rate(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}

func TestCollectionRate(t *testing.T) {
	if got := CollectionRate(0, 0); got != 0 {
		t.Errorf("CollectionRate(0, 0) = %v, want 0", got)
	}
	if got := CollectionRate(50, 200); got != 25 {
		t.Errorf("CollectionRate(50, 200) = %v, want 25", got)
	}
	if got := CollectionRate(1, 3); got != 33.33 {
		t.Errorf("CollectionRate(1, 3) = %v, want 33.33", got)
	}
}

func TestMonthWindow(t *testing.T) {
	loc := jakarta(t)
	now := time.Date(2026, 2, 15, 12, 0, 0, 0, loc)

	buckets := MonthWindow(now, loc)
	if len(buckets) != 4 {
		t.Fatalf("got %d buckets, want 4", len(buckets))
	}

	// melintasi batas tahun: Nov, Des 2025 lalu Jan, Feb 2026
	want := []struct {
		year  int
		month int
	}{
		{2025, 11}, {2025, 12}, {2026, 1}, {2026, 2},
	}
	for i, w := range want {
		if buckets[i].Year != w.year || buckets[i].Month != w.month {
			t.Errorf("bucket[%d] = %d-%d, want %d-%d",
				i, buckets[i].Year, buckets[i].Month, w.year, w.month)
		}
	}
}

func TestWindowStart(t *testing.T) {
	loc := jakarta(t)
	now := time.Date(2026, 2, 15, 12, 0, 0, 0, loc)

	got := WindowStart(now, loc)
	want := time.Date(2025, 11, 1, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("WindowStart = %v, want %v", got, want)
	}
}

func TestBucketAttendance(t *testing.T) {
	loc := jakarta(t)
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, loc)
	buckets := MonthWindow(now, loc)

	records := []AttendanceDay{
		{Date: time.Date(2026, 1, 5, 0, 0, 0, 0, loc), Present: true},
		{Date: time.Date(2026, 1, 6, 0, 0, 0, 0, loc), Present: false},
		{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, loc), Present: true},
		{Date: time.Date(2026, 4, 1, 0, 0, 0, 0, loc), Present: true},
		{Date: time.Date(2026, 4, 2, 0, 0, 0, 0, loc), Present: true},
		{Date: time.Date(2026, 4, 3, 0, 0, 0, 0, loc), Present: false},
	}

	out := BucketAttendance(records, buckets, loc)

	// Jan: 1/2, Feb: kosong, Mar: 1/1, Apr: 2/3
	if out[0].Present != 1 || out[0].Total != 2 || out[0].Rate != 50 {
		t.Errorf("Jan bucket = %+v", out[0])
	}
	if out[1].Total != 0 || out[1].Rate != 0 {
		t.Errorf("empty Feb bucket = %+v, want rate 0 without division error", out[1])
	}
	if out[2].Present != 1 || out[2].Total != 1 || out[2].Rate != 100 {
		t.Errorf("Mar bucket = %+v", out[2])
	}
	if out[3].Present != 2 || out[3].Total != 3 || out[3].Rate != 66.67 {
		t.Errorf("Apr bucket = %+v", out[3])
	}
}

func TestBucketAttendanceUsesLocalCalendarDay(t *testing.T) {
	loc := jakarta(t)
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, loc)
	buckets := MonthWindow(now, loc)

	// 31 Mar 20:00 UTC == 1 Apr 03:00 WIB — harus masuk bucket April
	utcInstant := time.Date(2026, 3, 31, 20, 0, 0, 0, time.UTC)
	out := BucketAttendance([]AttendanceDay{{Date: utcInstant, Present: true}}, buckets, loc)

	if out[2].Total != 0 {
		t.Errorf("record counted in March bucket, want April: %+v", out[2])
	}
	if out[3].Total != 1 || out[3].Present != 1 {
		t.Errorf("April bucket = %+v, want total 1 present 1", out[3])
	}
}

func TestNormalizeToLocalDay(t *testing.T) {
	loc := jakarta(t)

	// 17 Aug 20:00 UTC == 18 Aug 03:00 WIB
	in := time.Date(2026, 8, 17, 20, 0, 0, 0, time.UTC)
	got := NormalizeToLocalDay(in, loc)
	want := time.Date(2026, 8, 18, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("NormalizeToLocalDay = %v, want %v", got, want)
	}
}

func TestHolidaysFor(t *testing.T) {
	loc := jakarta(t)

	got := HolidaysFor("Indonesia", 2026, loc)
	if len(got) == 0 {
		t.Fatal("expected holidays for Indonesia")
	}
	found := false
	for _, h := range got {
		if h.Name == "Hari Kemerdekaan" {
			found = true
			if h.Date != "2026-08-17" {
				t.Errorf("Hari Kemerdekaan = %s, want 2026-08-17", h.Date)
			}
		}
	}
	if !found {
		t.Error("Hari Kemerdekaan missing from holiday list")
	}

	if got := HolidaysFor("Atlantis", 2026, loc); len(got) != 0 {
		t.Errorf("unknown country should resolve to empty list, got %d entries", len(got))
	}
}

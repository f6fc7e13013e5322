package service

import (
	"math"
	"time"
)

// AttendanceDay: satu baris absensi yang sudah diambil dari DB.
type AttendanceDay struct {
	Date    time.Time
	Present bool
}

// MonthBucket: partisi satu bulan kalender di timezone sekolah.
type MonthBucket struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Label   string  `json:"label"`
	Present int64   `json:"present"`
	Total   int64   `json:"total"`
	Rate    float64 `json:"rate"`
}

// Rate = present/total*100 dibulatkan 2 desimal; 0 untuk 0 data (bukan NaN).
func Rate(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*100*100) / 100
}

// CollectionRate = paid/due*100 dibulatkan 2 desimal; 0 kalau belum ada tagihan.
func CollectionRate(paid, due float64) float64 {
	if due == 0 {
		return 0
	}
	return math.Round(paid/due*100*100) / 100
}

// MonthWindow: 4 bucket bulan kalender (3 bulan lalu s/d bulan berjalan)
// dihitung di timezone sekolah.
func MonthWindow(now time.Time, loc *time.Location) []MonthBucket {
	local := now.In(loc)
	buckets := make([]MonthBucket, 0, 4)
	for i := 3; i >= 0; i-- {
		m := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -i, 0)
		buckets = append(buckets, MonthBucket{
			Year:  m.Year(),
			Month: int(m.Month()),
			Label: m.Format("Jan 2006"),
		})
	}
	return buckets
}

// WindowStart: awal bucket tertua — batas bawah query absensi.
func WindowStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -3, 0)
}

// BucketAttendance bagi baris absensi yang sudah diambil ke partisi bulannya.
// Perbandingan per HARI KALENDER lokal, bukan instant UTC.
func BucketAttendance(records []AttendanceDay, buckets []MonthBucket, loc *time.Location) []MonthBucket {
	out := make([]MonthBucket, len(buckets))
	copy(out, buckets)

	for _, r := range records {
		d := r.Date.In(loc)
		for i := range out {
			if d.Year() == out[i].Year && int(d.Month()) == out[i].Month {
				out[i].Total++
				if r.Present {
					out[i].Present++
				}
				break
			}
		}
	}
	for i := range out {
		out[i].Rate = Rate(out[i].Present, out[i].Total)
	}
	return out
}

// NormalizeToLocalDay buang komponen jam/zona — hanya hari kalender lokal
// yang dibandingkan, biar tidak geser sehari di timezone non-UTC.
func NormalizeToLocalDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

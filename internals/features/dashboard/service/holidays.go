package service

import "time"

// Holiday: libur nasional, tanggal per hari kalender lokal.
type Holiday struct {
	Name  string `json:"name"`
	Date  string `json:"date"` // YYYY-MM-DD di timezone sekolah
	Month int    `json:"-"`
	Day   int    `json:"-"`
}

// Tabel statis libur per negara (tanggal tetap saja; libur lunar/hijriah
// bergeser tiap tahun dan sengaja tidak dimasukkan).
var holidayTable = map[string][]Holiday{
	"Indonesia": {
		{Name: "Tahun Baru", Month: 1, Day: 1},
		{Name: "Hari Buruh", Month: 5, Day: 1},
		{Name: "Hari Lahir Pancasila", Month: 6, Day: 1},
		{Name: "Hari Kemerdekaan", Month: 8, Day: 17},
		{Name: "Hari Natal", Month: 12, Day: 25},
	},
	"Malaysia": {
		{Name: "New Year's Day", Month: 1, Day: 1},
		{Name: "Labour Day", Month: 5, Day: 1},
		{Name: "National Day", Month: 8, Day: 31},
		{Name: "Malaysia Day", Month: 9, Day: 16},
		{Name: "Christmas Day", Month: 12, Day: 25},
	},
	"Singapore": {
		{Name: "New Year's Day", Month: 1, Day: 1},
		{Name: "Labour Day", Month: 5, Day: 1},
		{Name: "National Day", Month: 8, Day: 9},
		{Name: "Christmas Day", Month: 12, Day: 25},
	},
}

// HolidaysFor resolve libur negara untuk satu tahun, dinormalisasi ke hari
// kalender lokal sekolah. Negara yang tidak dikenal dapat daftar kosong.
func HolidaysFor(country string, year int, loc *time.Location) []Holiday {
	src, ok := holidayTable[country]
	if !ok {
		return []Holiday{}
	}
	out := make([]Holiday, 0, len(src))
	for _, h := range src {
		d := time.Date(year, time.Month(h.Month), h.Day, 0, 0, 0, 0, loc)
		out = append(out, Holiday{
			Name: h.Name,
			Date: d.Format("2006-01-02"),
		})
	}
	return out
}

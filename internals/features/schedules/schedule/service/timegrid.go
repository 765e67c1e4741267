package service

import (
	"fmt"
	"math"
	"math/rand"
)

// GridRowCount baris grid per hari: 08:00 sampai 19:00.
const GridRowCount = 12

// GridCell satu penghuni sel grid. Label kosong berarti lanjutan
// (continuation) dari sesi yang header-nya ada di baris sebelumnya.
type GridCell struct {
	SessionID int64  `json:"session_id"`
	Label     string `json:"label"`
	Colour    string `json:"colour"`
}

// GridRow satu baris jam; penghuni dikelompokkan per hari.
type GridRow struct {
	Time string                `json:"time"`
	Days map[string][]GridCell `json:"days"`
}

// TimeGrid adalah tampilan jadwal mingguan. Murni turunan dari daftar
// sesi: dibangun ulang setiap ada perubahan, tidak pernah disimpan.
type TimeGrid struct {
	Rows []GridRow `json:"rows"`
}

// EmptyGrid bikin grid kosong 12 baris (08:00..19:00) tanpa penghuni.
func EmptyGrid() TimeGrid {
	rows := make([]GridRow, GridRowCount)
	for i := range rows {
		days := make(map[string][]GridCell, len(Weekdays))
		for _, d := range Weekdays {
			days[d] = []GridCell{}
		}
		rows[i] = GridRow{
			Time: FormatHour(DayStartHour + float64(i)),
			Days: days,
		}
	}
	return TimeGrid{Rows: rows}
}

// PopulateGrid isi grid dari daftar sesi, dilihat dari sudut pandang
// seorang tutor (viewer boleh kosong untuk tampilan netral):
//   - header di baris floor(start): "SIGNED UP" kalau viewer ada di
//     roster, selain itu "Available: n"
//   - baris lanjutan (label kosong, warna sama) sampai baris terakhir
//     yang disentuh sesi; sesi di bawah satu jam tetap satu baris
func PopulateGrid(sessions []Session, viewer string) TimeGrid {
	grid := EmptyGrid()
	palette := SessionPalette(len(sessions))

	for i, s := range sessions {
		colour := palette[i]
		headerRow := int(math.Floor(s.Start)) - int(DayStartHour)
		if headerRow < 0 || headerRow >= GridRowCount {
			continue
		}

		label := fmt.Sprintf("Available: %d", s.AvailableSlots())
		if viewer != "" && s.HasTutor(viewer) {
			label = "SIGNED UP"
		}
		grid.Rows[headerRow].Days[s.Day] = append(grid.Rows[headerRow].Days[s.Day], GridCell{
			SessionID: s.ID,
			Label:     label,
			Colour:    colour,
		})

		// lanjutan dihitung dari start pecahan: sesi mulai setengah jam
		// tidak menambah baris ekstra
		continuations := int(math.Ceil(s.End)-s.Start) - 1
		for j := 1; j <= continuations; j++ {
			row := headerRow + j
			if row >= GridRowCount {
				break
			}
			grid.Rows[row].Days[s.Day] = append(grid.Rows[row].Days[s.Day], GridCell{
				SessionID: s.ID,
				Colour:    colour,
			})
		}
	}

	return grid
}

const paletteSize = 50

// SessionPalette hasilkan n warna hex untuk sesi. Palet tetap 50 warna
// gelap (luma dijaga supaya teks putih tetap terbaca); lewat dari itu
// jatuh ke hitam.
func SessionPalette(n int) []string {
	rng := rand.New(rand.NewSource(7))
	colours := make([]string, 0, paletteSize)
	for i := 0; i < paletteSize; i++ {
		r := rng.Intn(256)
		g := rng.Intn(256)
		b := rng.Intn(256)
		// warna terlalu terang digelapkan 50 per kanal
		if luma(r, g, b) > 192 {
			r = clampChannel(r - 50)
			g = clampChannel(g - 50)
			b = clampChannel(b - 50)
		}
		colours = append(colours, fmt.Sprintf("#%02X%02X%02X", r, g, b))
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		if i < paletteSize {
			out[i] = colours[i]
		} else {
			out[i] = "#000000"
		}
	}
	return out
}

func luma(r, g, b int) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

package service

import (
	"strings"
	"testing"
)

func TestEmptyGrid(t *testing.T) {
	grid := EmptyGrid()

	if len(grid.Rows) != GridRowCount {
		t.Fatalf("baris grid = %d, mau %d", len(grid.Rows), GridRowCount)
	}
	if grid.Rows[0].Time != "08:00" {
		t.Fatalf("baris pertama = %q, mau 08:00", grid.Rows[0].Time)
	}
	if grid.Rows[11].Time != "19:00" {
		t.Fatalf("baris terakhir = %q, mau 19:00", grid.Rows[11].Time)
	}
	for _, row := range grid.Rows {
		for _, d := range Weekdays {
			if len(row.Days[d]) != 0 {
				t.Fatalf("grid kosong masih ada penghuni di %s %s", row.Time, d)
			}
		}
	}
}

func TestPopulateGridHeaderAndContinuations(t *testing.T) {
	sessions := []Session{
		{ID: 7, Day: "Monday", Start: 10, End: 12.5, Location: "Lab A", Capacity: 3, Roster: []string{"ABCDEF001"}},
	}

	grid := PopulateGrid(sessions, "")

	// header di baris 10:00 (index 2), lanjutan di 11:00 dan 12:00
	header := grid.Rows[2].Days["Monday"]
	if len(header) != 1 {
		t.Fatalf("header tidak ada di baris 10:00: %+v", grid.Rows[2])
	}
	if header[0].Label != "Available: 2" {
		t.Fatalf("label header = %q, mau \"Available: 2\"", header[0].Label)
	}
	if header[0].SessionID != 7 {
		t.Fatalf("session id header = %d", header[0].SessionID)
	}

	for _, rowIdx := range []int{3, 4} {
		cells := grid.Rows[rowIdx].Days["Monday"]
		if len(cells) != 1 {
			t.Fatalf("lanjutan hilang di baris %s", grid.Rows[rowIdx].Time)
		}
		if cells[0].Label != "" {
			t.Fatalf("lanjutan harus tanpa label, dapat %q", cells[0].Label)
		}
		if cells[0].Colour != header[0].Colour {
			t.Fatalf("warna lanjutan %q != warna header %q", cells[0].Colour, header[0].Colour)
		}
	}

	// baris lain tetap kosong
	if len(grid.Rows[5].Days["Monday"]) != 0 {
		t.Fatalf("baris 13:00 harus kosong: %+v", grid.Rows[5])
	}
	if len(grid.Rows[2].Days["Tuesday"]) != 0 {
		t.Fatal("hari lain harus kosong")
	}
}

func TestPopulateGridHalfHourStart(t *testing.T) {
	// mulai 10:30 selesai 12:30: header 10:00 + satu lanjutan 11:00,
	// baris 12:00 tidak disentuh
	sessions := []Session{
		{ID: 9, Day: "Tuesday", Start: 10.5, End: 12.5, Location: "Lab B", Capacity: 2},
	}

	grid := PopulateGrid(sessions, "")

	if len(grid.Rows[2].Days["Tuesday"]) != 1 {
		t.Fatalf("header hilang di baris 10:00: %+v", grid.Rows[2])
	}
	if len(grid.Rows[3].Days["Tuesday"]) != 1 {
		t.Fatalf("lanjutan hilang di baris 11:00: %+v", grid.Rows[3])
	}
	if len(grid.Rows[4].Days["Tuesday"]) != 0 {
		t.Fatalf("baris 12:00 tidak boleh disentuh sesi 10:30-12:30: %+v", grid.Rows[4])
	}
}

func TestPopulateGridViewerSignedUp(t *testing.T) {
	sessions := []Session{
		{ID: 1, Day: "Friday", Start: 9, End: 10, Capacity: 2, Roster: []string{"ABCDEF001"}},
	}

	grid := PopulateGrid(sessions, "ABCDEF001")
	cell := grid.Rows[1].Days["Friday"][0]
	if cell.Label != "SIGNED UP" {
		t.Fatalf("viewer terdaftar harus lihat SIGNED UP, dapat %q", cell.Label)
	}

	grid = PopulateGrid(sessions, "ABCDEF999")
	cell = grid.Rows[1].Days["Friday"][0]
	if cell.Label != "Available: 1" {
		t.Fatalf("viewer lain harus lihat sisa slot, dapat %q", cell.Label)
	}
}

func TestPopulateGridSubHourLastRow(t *testing.T) {
	sessions := []Session{
		{ID: 3, Day: "Wednesday", Start: 19, End: 19.5, Capacity: 1},
	}

	grid := PopulateGrid(sessions, "")
	if len(grid.Rows[11].Days["Wednesday"]) != 1 {
		t.Fatal("sesi di bawah satu jam harus tetap satu baris")
	}
	for i := 0; i < 11; i++ {
		if len(grid.Rows[i].Days["Wednesday"]) != 0 {
			t.Fatalf("baris %s harus kosong", grid.Rows[i].Time)
		}
	}
}

func TestSessionPalette(t *testing.T) {
	colours := SessionPalette(60)

	if len(colours) != 60 {
		t.Fatalf("palet = %d warna, mau 60", len(colours))
	}
	for i, c := range colours {
		if !strings.HasPrefix(c, "#") || len(c) != 7 {
			t.Fatalf("warna %d tidak berformat hex: %q", i, c)
		}
	}
	// lewat 50 sesi jatuh ke hitam
	for i := 50; i < 60; i++ {
		if colours[i] != "#000000" {
			t.Fatalf("warna ke-%d harus #000000, dapat %q", i, colours[i])
		}
	}
	// deterministik antar pemanggilan
	again := SessionPalette(60)
	for i := range colours {
		if colours[i] != again[i] {
			t.Fatalf("palet tidak deterministik di index %d", i)
		}
	}
}

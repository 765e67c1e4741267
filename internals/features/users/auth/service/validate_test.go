package service

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"siswa@myuct.ac.za", true},
		{"a.b+c_d-e@kampus.id", true},
		{"x@y", true},
		{"tanpa-at", false},
		{"@kosong.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, mau %v", tt.email, got, tt.want)
		}
	}
}

func TestValidStudentNumber(t *testing.T) {
	tests := []struct {
		sn   string
		want bool
	}{
		{"ABCDEF001", true},
		{"abcdef999", true},
		{"AbCdEf123", true},
		{"ABCDE001", false},   // huruf kurang
		{"ABCDEFG01", false},  // huruf kebanyakan
		{"ABCDEF01", false},   // angka kurang
		{"ABCDEF0011", false}, // angka kebanyakan
		{"ABC123DEF", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidStudentNumber(tt.sn); got != tt.want {
			t.Errorf("ValidStudentNumber(%q) = %v, mau %v", tt.sn, got, tt.want)
		}
	}
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "rahasia-banget" {
		t.Fatal("hash tidak boleh sama dengan plaintext")
	}
	if !CheckPassword(hash, "rahasia-banget") {
		t.Fatal("password benar harus cocok")
	}
	if CheckPassword(hash, "salah") {
		t.Fatal("password salah tidak boleh cocok")
	}
}

func TestGeneratePassword(t *testing.T) {
	p1, err := GeneratePassword(12)
	if err != nil {
		t.Fatal(err)
	}
	if len(p1) != 12 {
		t.Fatalf("panjang = %d, mau 12", len(p1))
	}

	p2, err := GeneratePassword(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(p2) != 12 {
		t.Fatalf("panjang default = %d, mau 12", len(p2))
	}
}

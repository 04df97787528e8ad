// file: internals/helpers/slug_test.go
package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SMA Negeri 1 Bandung", "sma-negeri-1-bandung"},
		{"  Sekolah   Harapan  ", "sekolah-harapan"},
		{"Al-Hikmah (Pusat)", "al-hikmah-pusat"},
		{"___", ""},
		{"", ""},
		{"sudah-slug", "sudah-slug"},
		{"ANGKA 123!", "angka-123"},
	}
	for _, tt := range tests {
		if got := GenerateSlug(tt.in); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package config

import "testing"

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"8123456789", "8123456789"},
		{"  weekly  ", "weekly"},
		{"spirit/liquid", "spiritliquid"},
		{"a:b", "ab"},
		{"..", BadFileName},
		{"../../etc", "etc"},
		{".hidden", "hidden"},
		{"line\nbreak\t", "linebreak"},
		{"", BadFileName},
		{"\x00", BadFileName},
		{"Финал 3:1", "Финал 31"},
		{"1_2", "1_2"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

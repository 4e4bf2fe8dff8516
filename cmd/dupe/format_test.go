package main

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0 B"},
		{in: 1023, want: "1023 B"},
		{in: 1024, want: "1.00 KB"},
		{in: 1536, want: "1.50 KB"},
		{in: 10 * 1024 * 1024, want: "10.00 MB"},
		{in: 3 << 30, want: "3.00 GB"},
		{in: 1 << 20, want: "1.00 MB"},
	}

	for _, tt := range tests {
		if got := formatSize(tt.in); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package utils

import (
	"testing"
	"time"
)

func TestDisplayTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "UTCMorningToJakartaAfternoon",
			in:   time.Date(2024, 3, 5, 7, 30, 0, 0, time.UTC),
			want: "05 Mar 2024 14:30",
		},
		{
			name: "MidnightRollsToNextDay",
			in:   time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC),
			want: "01 Jan 2025 03:00",
		},
		{
			name: "ZeroTimeIsEmpty",
			in:   time.Time{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayTime(tt.in); got != tt.want {
				t.Errorf("DisplayTime(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCSVTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "UTCMorningToJakartaAfternoon",
			in:   time.Date(2024, 3, 5, 7, 30, 0, 0, time.UTC),
			want: "2024-03-05 14:30:00",
		},
		{
			name: "ZeroTimeIsEmpty",
			in:   time.Time{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CSVTime(tt.in); got != tt.want {
				t.Errorf("CSVTime(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseUserAgent(t *testing.T) {
	browser, os, device := ParseUserAgent("")
	if browser != "Unknown Browser" || os != "Unknown OS" || device != "Desktop" {
		t.Errorf("empty UA: got (%q, %q, %q)", browser, os, device)
	}

	const chrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	browser, os, device = ParseUserAgent(chrome)
	if browser != "Chrome" {
		t.Errorf("expected Chrome, got %q", browser)
	}
	if os != "Windows" {
		t.Errorf("expected Windows, got %q", os)
	}
	if device != "Desktop" {
		t.Errorf("expected Desktop, got %q", device)
	}
}

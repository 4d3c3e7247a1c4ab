package status

import (
	"testing"
	"time"
)

func TestParseLastModified(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		wantOK bool
	}{
		{"rfc1123", "Mon, 02 Jan 2006 15:04:05 GMT", true},
		{"rfc850", "Monday, 02-Jan-06 15:04:05 GMT", true},
		{"ansi c", "Mon Jan  2 15:04:05 2006", true},
		{"garbage", "not a date", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseLastModified(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ParseLastModified(%q) ok=%v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && parsed.Year() != 2006 {
				t.Errorf("parsed year %d, want 2006", parsed.Year())
			}
			if !ok && !parsed.Equal(time.Time{}) {
				t.Error("failed parse should return the zero time")
			}
		})
	}
}

func TestExtractContentType(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		want     string
		wantOK   bool
	}{
		{"exact key", map[string]string{"Content-Type": "text/html"}, "text/html", true},
		{"lowercase key", map[string]string{"content-type": "application/json"}, "application/json", true},
		{"charset stripped", map[string]string{"Content-Type": "text/html; charset=utf-8"}, "text/html", true},
		{"missing", map[string]string{"Server": "nginx"}, "", false},
		{"empty map", map[string]string{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractContentType(tt.headers)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractContentType = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsHTMLContent(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"text/html", true},
		{"TEXT/HTML", true},
		{"application/xhtml+xml", true},
		{"application/json", false},
		{"text/plain", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsHTMLContent(tt.contentType); got != tt.want {
			t.Errorf("IsHTMLContent(%q) = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}

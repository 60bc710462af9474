package files

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestampName(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "afternoon",
			at:   time.Date(2024, 1, 31, 14, 30, 5, 0, time.UTC),
			want: "20240131-143005PM.wav",
		},
		{
			name: "morning",
			at:   time.Date(2024, 12, 1, 9, 0, 59, 999, time.UTC),
			want: "20241201-090059AM.wav",
		},
		{
			name: "midnight",
			at:   time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
			want: "20250607-000000AM.wav",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimestampName(tt.at))
		})
	}
}

func TestTimestampNameOrdersChronologically(t *testing.T) {
	morning := TimestampName(time.Date(2024, 1, 1, 11, 59, 59, 0, time.UTC))
	afternoon := TimestampName(time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC))
	assert.Less(t, morning, afternoon)
}

func TestTimestampNameSameSecondCollides(t *testing.T) {
	a := TimestampName(time.Date(2024, 1, 1, 8, 0, 0, 100, time.UTC))
	b := TimestampName(time.Date(2024, 1, 1, 8, 0, 0, 900000000, time.UTC))
	assert.Equal(t, a, b)
}

func TestTranscriptName(t *testing.T) {
	assert.Equal(t, "20240131-143005PM.wav.txt", TranscriptName("20240131-143005PM.wav"))
	assert.False(t, HasAllowedExt(TranscriptName("a.wav"), []string{AudioExt}))
}

func TestHasAllowedExt(t *testing.T) {
	allowed := []string{".wav"}
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"wav_lowercase", "audio.wav", true},
		{"wav_uppercase", "audio.WAV", true},
		{"mp3", "audio.mp3", false},
		{"no_extension", "audiofile", false},
		{"multiple_dots", "audio.test.wav", true},
		{"similar_extension", "audio.wavx", false},
		{"trailing_space", "audio.wav ", false},
		{"transcript", "audio.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAllowedExt(tt.filename, allowed))
		})
	}
}

func TestIsSafeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain", "20240131-143005PM.wav", true},
		{"empty", "", false},
		{"dot", ".", false},
		{"parent", "..", false},
		{"traversal", "../secret.wav", false},
		{"nested", "a/b.wav", false},
		{"backslash", `a\b.wav`, false},
		{"embedded_dots", "a..wav", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeName(tt.in))
		})
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "audio/wav", ContentType("a.WAV"))
	assert.Equal(t, "text/plain; charset=utf-8", ContentType("a.txt"))
	assert.Equal(t, "application/octet-stream", ContentType("a.bin"))
}

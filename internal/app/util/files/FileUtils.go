package files

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	// AudioExt is the extension given to every generated audio file.
	AudioExt = ".wav"
	// TranscriptExt is appended to a recording's name for its transcript.
	TranscriptExt = ".txt"

	// 24-hour clock keeps lexicographic order chronological; the AM/PM
	// marker is kept so names match the established layout.
	timestampLayout = "20060102-150405PM"
)

// TimestampName returns the stored filename for audio created at t,
// e.g. 20240131-143005PM.wav. Names have one-second resolution.
func TimestampName(t time.Time) string {
	return t.Format(timestampLayout) + AudioExt
}

// TranscriptName returns the sibling transcript filename of a recording,
// e.g. 20240131-143005PM.wav.txt.
func TranscriptName(recording string) string {
	return recording + TranscriptExt
}

// HasAllowedExt reports whether name ends with one of the allowed extensions.
// The comparison ignores case.
func HasAllowedExt(name string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if strings.ToLower(a) == ext {
			return true
		}
	}
	return false
}

// IsSafeName reports whether name can be joined to a collection directory
// without escaping it.
func IsSafeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}

// ContentType returns the MIME type served for a stored file.
func ContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		return "audio/wav"
	case ".txt":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

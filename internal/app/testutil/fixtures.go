package testutil

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"speech-studio/internal/config"
)

// FixedTime is the reference clock used across tests. It formats as
// 20240131-143005PM.wav.
var FixedTime = time.Date(2024, 1, 31, 14, 30, 5, 0, time.UTC)

// FixedClock always returns FixedTime
func FixedClock() time.Time {
	return FixedTime
}

// SilentWAV returns a mono 16-bit PCM WAV file of the given length
func SilentWAV(d time.Duration, sampleRate int) []byte {
	samples := int(d.Seconds() * float64(sampleRate))
	dataSize := uint32(samples * 2)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))           // fmt chunk size
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1))            // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))   // sample rate
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

// NewObservedLogger returns a logger whose entries can be inspected
func NewObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// StorageConfig returns a local storage configuration rooted in a temp dir
func StorageConfig(t *testing.T) config.StorageConfig {
	t.Helper()
	root := t.TempDir()
	return config.StorageConfig{
		Backend:           config.BackendLocal,
		RecordingsDir:     filepath.Join(root, "uploads"),
		SynthesizedDir:    filepath.Join(root, "tts"),
		AllowedExtensions: []string{".wav"},
	}
}

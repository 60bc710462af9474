package model

// Transcription pairs a stored recording with its transcript file.
type Transcription struct {
	Recording      string
	TranscriptName string
	Text           string
}

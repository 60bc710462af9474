package model

import "time"

// Collection names one of the flat directories managed by the store.
type Collection string

const (
	// Recordings holds uploaded audio and their transcripts.
	Recordings Collection = "uploads"
	// Synthesized holds audio produced from submitted text.
	Synthesized Collection = "tts"
)

func (c Collection) String() string {
	return string(c)
}

type FileInfo struct {
	Collection Collection
	Name       string
	Size       int64
	ModTime    time.Time
}

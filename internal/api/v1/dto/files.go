package dto

import "time"

// FileResponse describes one stored file
type FileResponse struct {
	Name          string    `json:"name"`
	Collection    string    `json:"collection"`
	Size          int64     `json:"size"`
	ModifiedAt    time.Time `json:"modified_at"`
	URL           string    `json:"url"`
	TranscriptURL string    `json:"transcript_url,omitempty"`
}

// FileListResponse is a listing of one collection, most recent first
type FileListResponse struct {
	Items []FileResponse `json:"items"`
	Total int            `json:"total"`
}

// TranscriptResponse carries the transcript text of a recording
type TranscriptResponse struct {
	Recording string `json:"recording"`
	Name      string `json:"name"`
	Text      string `json:"text"`
}

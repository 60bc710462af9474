package config

import "time"

// Default configuration constants
const (
	// Server defaults
	DefaultHost         = ""
	DefaultHTTPPort     = "5001"
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 120 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
	DefaultMaxUploadMB  = 32

	// Storage defaults
	DefaultStorageBackend = BackendLocal
	DefaultRecordingsDir  = "uploads"
	DefaultSynthesizedDir = "tts"
	DefaultMinioEndpoint  = "localhost:9000"
	DefaultMinioBucket    = "speech-studio"

	// Speech defaults
	DefaultSpeechProvider = "google"
	DefaultLanguageCode   = "en-US"
	DefaultVoiceLanguage  = "en-GB"
	DefaultOpenAIVoice    = "alloy"
	DefaultSpeechTimeout  = 90 * time.Second

	DefaultEnvironment = "development"
)

// Storage backends
const (
	BackendLocal = "local"
	BackendMinio = "minio"
)

// DefaultAllowedExtensions is the upload allow-list.
var DefaultAllowedExtensions = []string{".wav"}

// DefaultCORSOrigins lets any origin read the JSON API.
var DefaultCORSOrigins = []string{"*"}

package config

import "time"

// Config is the complete application configuration. It is built once at
// startup and passed explicitly to the components that need it.
type Config struct {
	Environment string        `yaml:"environment" validate:"oneof=development production test"`
	Server      ServerConfig  `yaml:"server"`
	Storage     StorageConfig `yaml:"storage"`
	Speech      SpeechConfig  `yaml:"speech"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port" validate:"required,numeric"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	MaxUploadMB  int64         `yaml:"max_upload_mb" validate:"gte=1,lte=1024"`
	CORSOrigins  []string      `yaml:"cors_origins"`
}

// StorageConfig describes where recordings and synthesized audio live
type StorageConfig struct {
	Backend           string      `yaml:"backend" validate:"oneof=local minio"`
	RecordingsDir     string      `yaml:"recordings_dir" validate:"required"`
	SynthesizedDir    string      `yaml:"synthesized_dir" validate:"required,nefield=RecordingsDir"`
	AllowedExtensions []string    `yaml:"allowed_extensions" validate:"min=1,dive,startswith=."`
	Minio             MinioConfig `yaml:"minio"`
}

// MinioConfig is used when Backend is "minio"; the directory names become
// object key prefixes inside Bucket.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// SpeechConfig selects and configures the cloud speech provider
type SpeechConfig struct {
	Provider      string        `yaml:"provider" validate:"required"`
	LanguageCode  string        `yaml:"language_code" validate:"required"`
	VoiceLanguage string        `yaml:"voice_language" validate:"required"`
	Timeout       time.Duration `yaml:"timeout"`

	// Google Cloud Speech-to-Text / Text-to-Speech
	GoogleCredentialsFile string `yaml:"google_credentials_file"`
	GoogleVoice           string `yaml:"google_voice"` // empty lets the service pick one for VoiceLanguage
	SampleRateHertz       int32  `yaml:"sample_rate_hertz" validate:"gte=0"`

	// OpenAI audio endpoints
	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIBaseURL string `yaml:"openai_base_url"`
	OpenAIVoice   string `yaml:"openai_voice"`
}

// Default returns a configuration populated with default values
func Default() *Config {
	return &Config{
		Environment: DefaultEnvironment,
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultHTTPPort,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
			MaxUploadMB:  DefaultMaxUploadMB,
			CORSOrigins:  append([]string(nil), DefaultCORSOrigins...),
		},
		Storage: StorageConfig{
			Backend:           DefaultStorageBackend,
			RecordingsDir:     DefaultRecordingsDir,
			SynthesizedDir:    DefaultSynthesizedDir,
			AllowedExtensions: append([]string(nil), DefaultAllowedExtensions...),
			Minio: MinioConfig{
				Endpoint: DefaultMinioEndpoint,
				Bucket:   DefaultMinioBucket,
			},
		},
		Speech: SpeechConfig{
			Provider:      DefaultSpeechProvider,
			LanguageCode:  DefaultLanguageCode,
			VoiceLanguage: DefaultVoiceLanguage,
			Timeout:       DefaultSpeechTimeout,
			OpenAIVoice:   DefaultOpenAIVoice,
		},
	}
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr returns the host:port the HTTP server listens on
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envPaths lists the .env candidates in lookup order. The first one found wins.
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error since variables may be set system-wide.
// It returns the path that was loaded, or "" when none exists.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// Load builds the configuration: defaults, then the optional YAML file,
// then environment overrides, then validation.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	}
	if path != "" {
		if err := cfg.MergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides configuration values from environment variables
func (c *Config) ApplyEnv() error {
	setString(&c.Environment, "APP_ENV")

	setString(&c.Server.Host, "SERVER_HOST")
	setString(&c.Server.Port, "PORT", "SERVER_PORT")
	if err := setDuration(&c.Server.ReadTimeout, "SERVER_READ_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&c.Server.WriteTimeout, "SERVER_WRITE_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&c.Server.IdleTimeout, "SERVER_IDLE_TIMEOUT"); err != nil {
		return err
	}
	if v := getEnv("MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_MB %q: %w", v, err)
		}
		c.Server.MaxUploadMB = n
	}
	if v := getEnv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}

	setString(&c.Storage.Backend, "STORAGE_BACKEND")
	setString(&c.Storage.RecordingsDir, "RECORDINGS_DIR")
	setString(&c.Storage.SynthesizedDir, "TTS_DIR")
	if v := getEnv("ALLOWED_EXTENSIONS"); v != "" {
		c.Storage.AllowedExtensions = splitList(v)
	}
	setString(&c.Storage.Minio.Endpoint, "MINIO_ENDPOINT")
	setString(&c.Storage.Minio.AccessKey, "MINIO_ACCESS_KEY")
	setString(&c.Storage.Minio.SecretKey, "MINIO_SECRET_KEY")
	setString(&c.Storage.Minio.Bucket, "MINIO_BUCKET")
	if v := getEnv("MINIO_USE_SSL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid MINIO_USE_SSL %q: %w", v, err)
		}
		c.Storage.Minio.UseSSL = b
	}

	setString(&c.Speech.Provider, "SPEECH_PROVIDER")
	setString(&c.Speech.LanguageCode, "SPEECH_LANGUAGE_CODE")
	setString(&c.Speech.VoiceLanguage, "SPEECH_VOICE_LANGUAGE")
	if err := setDuration(&c.Speech.Timeout, "SPEECH_TIMEOUT"); err != nil {
		return err
	}
	setString(&c.Speech.GoogleCredentialsFile, "GOOGLE_APPLICATION_CREDENTIALS")
	setString(&c.Speech.GoogleVoice, "SPEECH_VOICE_NAME")
	if v := getEnv("SPEECH_SAMPLE_RATE_HERTZ"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid SPEECH_SAMPLE_RATE_HERTZ %q: %w", v, err)
		}
		c.Speech.SampleRateHertz = int32(n)
	}
	setString(&c.Speech.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&c.Speech.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&c.Speech.OpenAIVoice, "OPENAI_VOICE")

	return nil
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

func getEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func setString(dst *string, keys ...string) {
	if v := getEnv(keys...); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := getEnv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}

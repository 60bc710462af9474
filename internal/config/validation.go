package config

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"speech-studio/internal/app/errors"
)

var validate = validator.New()

// Validate checks struct tags first, then the cross-field rules the tags
// cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.InvalidField(fieldPath(fe.Namespace()), fmt.Sprintf("failed %q rule", fe.Tag()))
		}
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	for name, d := range map[string]time.Duration{
		"server.read":  c.Server.ReadTimeout,
		"server.write": c.Server.WriteTimeout,
		"server.idle":  c.Server.IdleTimeout,
		"speech":       c.Speech.Timeout,
	} {
		if err := ValidateTimeout(d, name); err != nil {
			return errors.Wrap(errors.ErrInvalidConfig, err.Error())
		}
	}

	if c.Storage.Backend == BackendMinio {
		if c.Storage.Minio.Endpoint == "" {
			return errors.InvalidField("storage.minio.endpoint", "required for minio backend")
		}
		if c.Storage.Minio.Bucket == "" {
			return errors.InvalidField("storage.minio.bucket", "required for minio backend")
		}
	}

	if c.Speech.Provider == "openai" {
		if err := ValidateAPIKey(c.Speech.OpenAIAPIKey, "OpenAI"); err != nil {
			return errors.Wrap(errors.ErrMissingAPIKey, err.Error())
		}
	}
	if c.Speech.OpenAIBaseURL != "" {
		if err := ValidateURL(c.Speech.OpenAIBaseURL, "OpenAI base"); err != nil {
			return errors.Wrap(errors.ErrInvalidConfig, err.Error())
		}
	}
	return nil
}

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", keyType)
	}

	switch keyType {
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OpenAI API key format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OpenAI API key format: too short")
		}
	}

	return nil
}

// ValidateURL validates URL format
func ValidateURL(url string, name string) error {
	if url == "" {
		return fmt.Errorf("%s URL is required", name)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%s URL must start with http:// or https://", name)
	}

	return nil
}

// fieldPath turns "Config.Storage.RecordingsDir" into "storage.recordingsdir"
func fieldPath(namespace string) string {
	namespace = strings.TrimPrefix(namespace, "Config.")
	return strings.ToLower(namespace)
}

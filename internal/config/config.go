package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	pkgerrors "github.com/ankitkandwal-git/publication-Research-Journal/pkg/errors"
)

// Backend override values. Empty means auto-select from the credential set.
const (
	BackendMemory     = "memory"
	BackendCloudinary = "cloudinary"
)

const (
	defaultAddress      = ":8080"
	defaultFolder       = "certificates"
	defaultStoreTimeout = 15 * time.Second
	defaultListTimeout  = 10 * time.Second
)

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Complete reports whether the full credential triple is present.
func (c CloudinaryConfig) Complete() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// Partial reports a credential set that names Cloudinary but cannot reach
// it: some of the triple is set, the rest is missing.
func (c CloudinaryConfig) Partial() bool {
	any := c.CloudName != "" || c.APIKey != "" || c.APISecret != ""
	return any && !c.Complete()
}

type Config struct {
	Address      string
	Backend      string
	Cloudinary   CloudinaryConfig
	StoreTimeout time.Duration
	ListTimeout  time.Duration
}

func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Backend, validation.In("", BackendMemory, BackendCloudinary)),
	)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return pkgerrors.NewValidationErrorFromOzzo(verrs)
		}
		return err
	}
	return nil
}

// Load reads the configuration from the environment once, at process start.
func Load() (Config, error) {
	cfg := Config{
		Address: os.Getenv("ADDR"),
		Backend: os.Getenv("STORAGE_BACKEND"),
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    os.Getenv("CLOUDINARY_UPLOAD_FOLDER"),
		},
		StoreTimeout: defaultStoreTimeout,
		ListTimeout:  defaultListTimeout,
	}

	if cfg.Address == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Address = ":" + port
		} else {
			cfg.Address = defaultAddress
		}
	}

	if cfg.Cloudinary.Folder == "" {
		cfg.Cloudinary.Folder = defaultFolder
	}

	var err error
	if cfg.StoreTimeout, err = durationEnv("STORE_TIMEOUT", defaultStoreTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ListTimeout, err = durationEnv("LIST_TIMEOUT", defaultListTimeout); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", name, d)
	}
	return d, nil
}

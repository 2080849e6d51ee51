package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"videothingy/chapter-viewer/utils"
)

// Settings is everything the viewer reads from its environment.
type Settings struct {
	SupabaseURL     string `validate:"required,url"`
	SupabaseKey     string `validate:"required"`
	Port            string `validate:"required,numeric"`
	LogLevel        string
	ThumbnailBucket string `validate:"required"`
}

var validate = validator.New()

// Load reads settings from the environment, after loading a .env file if
// one exists in the working directory.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds validated Settings from a lookup function.
func FromEnv(getenv func(string) string) (Settings, error) {
	key := getenv("SUPABASE_ANON_KEY")
	if key == "" {
		key = getenv("SUPABASE_SERVICE_KEY")
	}
	s := Settings{
		SupabaseURL:     strings.TrimSuffix(getenv("SUPABASE_URL"), "/"),
		SupabaseKey:     key,
		Port:            orDefault(getenv("PORT"), "8080"),
		LogLevel:        orDefault(getenv("LOG_LEVEL"), "info"),
		ThumbnailBucket: orDefault(getenv("THUMBNAIL_BUCKET"), "thumbnails"),
	}
	if err := validate.Struct(s); err != nil {
		msgs := utils.FormatValidationErrors(err, func(f string) string { return envNames[f] })
		return Settings{}, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
	}
	return s, nil
}

// Addr is the listen address for the HTTP server.
func (s Settings) Addr() string {
	return ":" + s.Port
}

var envNames = map[string]string{
	"SupabaseURL":     "SUPABASE_URL",
	"SupabaseKey":     "SUPABASE_ANON_KEY",
	"Port":            "PORT",
	"ThumbnailBucket": "THUMBNAIL_BUCKET",
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

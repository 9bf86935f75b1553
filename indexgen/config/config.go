package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the defaults of the batch run; command line flags override them.
type Config struct {
	LogLevel        string `env:"LOG_LEVEL" env-default:"ERROR"`
	ReferencePath   string `env:"REFERENCE_PATH" env-default:"reference.tsv"`
	ReferenceLimit  int    `env:"REFERENCE_LIMIT" env-default:"200"`
	ExcludePOS      string `env:"REFERENCE_EXCLUDE_POS" env-default:"n"`
	FilterMode      string `env:"REFERENCE_FILTER_MODE" env-default:"include"`
	Stemmer         string `env:"EXTRACT_STEMMER" env-default:"snowball"`
	StopWords       bool   `env:"EXTRACT_STOP_WORDS" env-default:"true"`
	MaxDocumentSize int    `env:"EXTRACT_MAX_DOCUMENT_SIZE" env-default:"1048576"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

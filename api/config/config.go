package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ServerConfig struct {
	Address         string        `yaml:"address" env:"API_ADDRESS" env-default:"localhost:80"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"API_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"API_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"API_SHUTDOWN_TIMEOUT" env-default:"30s"`
}

// AdminConfig holds the single account allowed to index, drop and reload.
type AdminConfig struct {
	User      string        `yaml:"user" env:"ADMIN_USER" env-default:"indexer-admin"`
	Password  string        `yaml:"password" env:"ADMIN_PASSWORD" env-default:"password"`
	JwtSecret string        `yaml:"jwt_secret" env:"ADMIN_JWT_KEY" env-default:"keyword-index-secret"`
	TokenTtl  time.Duration `yaml:"token_ttl" env:"ADMIN_TOKEN_TTL" env-default:"15m"`
}

type Limits struct {
	KeywordsConcurrency int `yaml:"keywords_concurrency" env:"KEYWORDS_CONCURRENCY" env-default:"10"`
	TermsRate           int `yaml:"terms_rate" env:"TERMS_RATE" env-default:"100"`
}

type Config struct {
	LogLevel       string `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	IndexerAddress string `yaml:"indexer_address" env:"INDEXER_ADDRESS" env-default:"indexer:82"`

	Server ServerConfig `yaml:"api_server"`
	Admin  AdminConfig  `yaml:"admin"`
	Limits Limits       `yaml:"limits"`
}

func MustLoad(configPath string, cfg *Config) {
	if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}
}

package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres or mysql
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret   string `yaml:"secret"`
		TTL      int    `yaml:"ttl"`       // access token lifetime, minutes
		ResetTTL int    `yaml:"reset_ttl"` // password-reset token lifetime, minutes
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type     string `yaml:"type"`      // only "local" is implemented
		BasePath string `yaml:"base_path"` // filesystem root for uploads
		BaseURL  string `yaml:"base_url"`  // public URL prefix
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // bytes
		AllowedTypes []string `yaml:"allowed_types"` // MIME types
	} `yaml:"upload"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or, when DATABASE_URL is set (the test and
// container path), builds the config from environment variables.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.Driver = os.Getenv("DATABASE_DRIVER")
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	cfg.Email.SMTPHost = "smtp.test.com"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "nao-responda@pettime.com"
	cfg.Email.FromName = "PetTime"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "pettime-secret"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 8 * 60 // 8 hours
	}
	if cfg.JWT.ResetTTL == 0 {
		cfg.JWT.ResetTTL = 60 // 1 hour
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB, matches the old body cap
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
		}
	}
}

// GetConfig returns the loaded config, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

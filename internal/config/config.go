package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Token    TokenConfig    `yaml:"token"`
	Store    StoreConfig    `yaml:"store"`
	Corpus   CorpusConfig   `yaml:"corpus"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type TokenConfig struct {
	SecretKey         string `yaml:"secret_key"`
	AccessExpireDays  int    `yaml:"access_expire_days"`
	RefreshExpireDays int    `yaml:"refresh_expire_days"`
	SecureCookies     bool   `yaml:"secure_cookies"`
}

// StoreConfig locates the local data directory. Media blobs live under
// <path>/media/<note_id>/.
type StoreConfig struct {
	Path          string `yaml:"path"`
	MaxUploadSize int64  `yaml:"max_upload_size"`
}

// CorpusConfig enables the pre-built corpus stores. A store is only
// opened at startup when its flag is set.
type CorpusConfig struct {
	ConnectEnRu   bool   `yaml:"connect_en_ru"`
	ConnectEnPron bool   `yaml:"connect_en_pron"`
	ConnectDePron bool   `yaml:"connect_de_pron"`
	EnRuPath      string `yaml:"en_ru_path"`
	EnPronPath    string `yaml:"en_pron_path"`
	DePronPath    string `yaml:"de_pron_path"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxAge     int    `yaml:"max_age"`
	MaxBackups int    `yaml:"max_backups"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if data, err := os.ReadFile("configs/config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.overrideFromEnv()
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) overrideFromEnv() {
	// Database
	if val := os.Getenv("POSTGRES_DB_URL"); val != "" {
		c.Database.URL = val
	}
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.Database.Port = port
		}
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.DBName = val
	}

	// Token
	if val := os.Getenv("TOKEN_SECRET_KEY"); val != "" {
		c.Token.SecretKey = val
	}
	if val := os.Getenv("TOKEN_ACCESS_EXPIRE_DAYS"); val != "" {
		if days, err := strconv.Atoi(val); err == nil {
			c.Token.AccessExpireDays = days
		}
	}
	if val := os.Getenv("TOKEN_REFRESH_EXPIRE_DAYS"); val != "" {
		if days, err := strconv.Atoi(val); err == nil {
			c.Token.RefreshExpireDays = days
		}
	}
	if val := os.Getenv("TOKEN_SECURE_COOKIES"); val != "" {
		c.Token.SecureCookies = val == "true" || val == "1"
	}

	// Server
	if val := os.Getenv("SERVER_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.Server.Port = port
		}
	}
	if val := os.Getenv("GIN_MODE"); val != "" {
		c.Server.Mode = val
	}

	// Local store
	if val := os.Getenv("STORE_PATH"); val != "" {
		c.Store.Path = val
	}

	// Corpus flags
	if val := os.Getenv("CONNECT_EN_RU_DB"); val != "" {
		c.Corpus.ConnectEnRu = val == "true" || val == "1"
	}
	if val := os.Getenv("CONNECT_EN_PRON_DB"); val != "" {
		c.Corpus.ConnectEnPron = val == "true" || val == "1"
	}
	if val := os.Getenv("CONNECT_DE_PRON_DB"); val != "" {
		c.Corpus.ConnectDePron = val == "true" || val == "1"
	}
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3456
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Token.AccessExpireDays == 0 {
		c.Token.AccessExpireDays = 1
	}
	if c.Token.RefreshExpireDays == 0 {
		c.Token.RefreshExpireDays = 30
	}

	if c.Store.Path == "" {
		c.Store.Path = "data"
	}
	if c.Store.MaxUploadSize == 0 {
		c.Store.MaxUploadSize = 52428800 // 50MB
	}

	if c.Corpus.EnRuPath == "" {
		c.Corpus.EnRuPath = "data/json/en_ru.json"
	}
	if c.Corpus.EnPronPath == "" {
		c.Corpus.EnPronPath = "data/pron/en_pron.bin"
	}
	if c.Corpus.DePronPath == "" {
		c.Corpus.DePronPath = "data/pron/de_pron.bin"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "./logs/app.log"
	}
}

// Validate fails fast on a misconfigured process: the server refuses to
// start without a database DSN, a token secret, or with a refresh
// lifetime that does not strictly exceed the access lifetime.
func (c *Config) Validate() error {
	if c.Database.URL == "" && c.Database.DBName == "" {
		return fmt.Errorf("database connection not specified (POSTGRES_DB_URL or DB_NAME)")
	}
	if c.Token.SecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY not specified")
	}
	if c.Token.AccessExpireDays <= 0 {
		return fmt.Errorf("TOKEN_ACCESS_EXPIRE_DAYS not specified")
	}
	if c.Token.RefreshExpireDays <= c.Token.AccessExpireDays {
		return fmt.Errorf("TOKEN_REFRESH_EXPIRE_DAYS (%d) must exceed TOKEN_ACCESS_EXPIRE_DAYS (%d)",
			c.Token.RefreshExpireDays, c.Token.AccessExpireDays)
	}
	return nil
}

func (c *Config) GetDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User,
		c.Database.Password, c.Database.DBName, c.Database.SSLMode)
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ModeDev     = "dev"
	ModeRelease = "release"

	DefaultPath = "config/config.yaml"

	// DB パスワードは環境変数で上書き可能（ファイルに平文で置きたくない場合）
	envDBPassword = "LIBRARY_DB_PASSWORD"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // mysql | postgres | pgx | sqlite
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Path     string `yaml:"path"` // sqlite 用
	Migrate  bool   `yaml:"migrate"`

	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	TLS         Certs    `yaml:"tls"`
	CORSOrigins []string `yaml:"cors_origins"`
	Docs        bool     `yaml:"docs"`
}

type LendingConfig struct {
	// 返却期限（暦日）を計算するタイムゾーン
	Timezone string `yaml:"timezone"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type Config struct {
	Version   string          `yaml:"version"`
	Mode      string          `yaml:"mode"`
	Server    ServerConfig    `yaml:"server"`
	DB        DatabaseConfig  `yaml:"database"`
	Lending   LendingConfig   `yaml:"lending"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
	}
	return Parse(buf)
}

func Parse(buf []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
	}
	if v := os.Getenv(envDBPassword); v != "" {
		cfg.DB.Password = v
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = ModeDev
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.DB.Driver == "" {
		c.DB.Driver = "sqlite"
	}
	if c.DB.Driver == "sqlite" && c.DB.Path == "" {
		c.DB.Path = "library.db"
	}
	if c.DB.Port == 0 {
		switch c.DB.Driver {
		case "mysql":
			c.DB.Port = 3306
		case "postgres", "pgx":
			c.DB.Port = 5432
		}
	}
	if c.Lending.Timezone == "" {
		c.Lending.Timezone = "UTC"
	}
}

func (c *Config) validate() error {
	if c.Mode != ModeDev && c.Mode != ModeRelease {
		return fmt.Errorf("mode は dev か release を指定: %q", c.Mode)
	}
	switch c.DB.Driver {
	case "mysql", "postgres", "pgx", "sqlite":
	default:
		return fmt.Errorf("未対応の database.driver: %q", c.DB.Driver)
	}
	if _, err := time.LoadLocation(c.Lending.Timezone); err != nil {
		return fmt.Errorf("lending.timezone が不正: %w", err)
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit は 0 以上")
	}
	return nil
}

// Location は lending.timezone を解決する（validate 済みなので失敗時は UTC）
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Lending.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TLSEnabled: cert/key 両方あるときだけ HTTPS で起動
func (c *Config) TLSEnabled() bool {
	return c.Server.TLS.Cert != "" && c.Server.TLS.Key != ""
}

package core

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arnav-motiramani/daily-doodles/internal/core/srv"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var conf CoreConfig
	if err = toml.Unmarshal(raw, &conf); err != nil {
		panic(err)
	}
	conf.rawConfig = raw
	return conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string   `toml:"addr"`
	Log      Log      `toml:"log"`
	Postgres PGConfig `toml:"postgres"`

	AI srv.AIConfig `toml:"ai"`

	Security Security `toml:"security"`

	rawConfig []byte
}

type CustomConfigPayload[T any] struct {
	CustomConfig T `toml:"custom_config"`
}

func NewCustomConfigPayload[T any]() CustomConfigPayload[T] {
	return CustomConfigPayload[T]{}
}

// LoadCustomConfig re-decodes the raw config file so plugins can carry
// their own sections without the core knowing their shape.
func (c CoreConfig) LoadCustomConfig(v any) error {
	if len(c.rawConfig) == 0 {
		return nil
	}
	return toml.Unmarshal(c.rawConfig, v)
}

type Security struct {
	JWTSecret      string `toml:"jwt_secret"`
	TokenExpireDay int    `toml:"token_expire_day"`
}

func (s *Security) FromENV() {
	s.JWTSecret = os.Getenv("DOODLES_SECURITY_JWT_SECRET")
	s.TokenExpireDay = 30
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("DOODLES_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.AI.FromENV()
	c.Security.FromENV()
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("DOODLES_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("DOODLES_LOG_LEVEL")
	l.Path = os.Getenv("DOODLES_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

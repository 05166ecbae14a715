package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreTypeMemory = "memory"
	StoreTypeSQLite = "sqlite"
)

// Server содержит настройки HTTP-сервера.
type Server struct {
	Address    string `mapstructure:"address"`
	Path       string `mapstructure:"path"`
	Debug      bool   `mapstructure:"debug"`
	Playground bool   `mapstructure:"playground"`
}

// Store описывает хранилище ссылок.
type Store struct {
	Type  string `mapstructure:"type"`
	DSN   string `mapstructure:"dsn"`
	Debug bool   `mapstructure:"debug"`
}

// Logging содержит настройки логирования.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config объединяет все разделы конфигурации.
type Config struct {
	Server  Server  `mapstructure:"server"`
	Store   Store   `mapstructure:"store"`
	Logging Logging `mapstructure:"logging"`
}

// Load читает конфигурацию из файла и окружения с помощью viper.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/linkfeed")

	// Настройка для environment variables
	v.SetEnvPrefix("LINKFEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvironmentVariables(v)

	// Файл конфигурации опционален
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() Config {
	return Config{
		Server: Server{
			Address:    ":4000",
			Path:       "/graphql",
			Playground: true,
		},
		Store: Store{
			Type: StoreTypeMemory,
			DSN:  "file::memory:",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// setDefaults устанавливает значения по умолчанию
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.path", d.Server.Path)
	v.SetDefault("server.debug", d.Server.Debug)
	v.SetDefault("server.playground", d.Server.Playground)

	v.SetDefault("store.type", d.Store.Type)
	v.SetDefault("store.dsn", d.Store.DSN)
	v.SetDefault("store.debug", d.Store.Debug)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// bindEnvironmentVariables привязывает переменные окружения к конфигурации
func bindEnvironmentVariables(v *viper.Viper) {
	v.BindEnv("server.address", "LINKFEED_SERVER_ADDRESS")
	v.BindEnv("server.path", "LINKFEED_SERVER_PATH")
	v.BindEnv("server.debug", "LINKFEED_SERVER_DEBUG")
	v.BindEnv("server.playground", "LINKFEED_SERVER_PLAYGROUND")

	v.BindEnv("store.type", "LINKFEED_STORE_TYPE")
	v.BindEnv("store.dsn", "LINKFEED_STORE_DSN")
	v.BindEnv("store.debug", "LINKFEED_STORE_DEBUG")

	v.BindEnv("logging.level", "LINKFEED_LOGGING_LEVEL")
	v.BindEnv("logging.format", "LINKFEED_LOGGING_FORMAT")
}

// Validate проверяет корректность конфигурации
func Validate(cfg Config) error {
	if cfg.Server.Address == "" {
		return fmt.Errorf("server address cannot be empty")
	}

	if !strings.HasPrefix(cfg.Server.Path, "/") {
		return fmt.Errorf("server path must start with '/', got: %q", cfg.Server.Path)
	}

	switch cfg.Store.Type {
	case StoreTypeMemory:
	case StoreTypeSQLite:
		// Ссылки живут только в памяти процесса
		if !IsMemoryDSN(cfg.Store.DSN) {
			return fmt.Errorf("sqlite store requires an in-memory DSN, got: %s", cfg.Store.DSN)
		}
	default:
		return fmt.Errorf("store type must be '%s' or '%s', got: %s",
			StoreTypeMemory, StoreTypeSQLite, cfg.Store.Type)
	}

	validLogLevels := []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
	isValidLevel := false
	for _, level := range validLogLevels {
		if strings.ToLower(cfg.Logging.Level) == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		return fmt.Errorf("invalid logging level: %s. Valid levels: %v", cfg.Logging.Level, validLogLevels)
	}

	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging format must be 'text' or 'json', got: %s", cfg.Logging.Format)
	}

	return nil
}

// IsMemoryDSN сообщает, указывает ли DSN на базу SQLite в памяти:
// ровно ":memory:" либо URI "file:" с ":memory:" или mode=memory.
func IsMemoryDSN(dsn string) bool {
	if dsn == ":memory:" {
		return true
	}
	if !strings.HasPrefix(dsn, "file:") {
		return false
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return false
	}
	return u.Opaque == ":memory:" || u.Query().Get("mode") == "memory"
}

// IsDevelopment возвращает true, если приложение запущено в режиме разработки
func (c Config) IsDevelopment() bool {
	return c.Server.Debug
}

// String возвращает строковое представление конфигурации
func (c Config) String() string {
	return fmt.Sprintf("Config{Server: %+v, Store: {Type: %s, DSN: %s}, Logging: %+v}",
		c.Server, c.Store.Type, c.Store.DSN, c.Logging)
}

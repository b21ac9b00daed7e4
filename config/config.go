package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is where Load looks for the optional JSON config file.
const DefaultPath = "config/config.json"

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// AppConfig holds file and environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via the environment.
type AppConfig struct {
	App      ServerConfig   `json:"app"`
	Database DatabaseConfig `json:"database"`
	Log      LogConfig      `json:"log"`
}

// ServerConfig configures the HTTP side of the process.
type ServerConfig struct {
	Port            string        `json:"port"             env:"APP_PORT,PORT"           env-default:"4000"`
	GinMode         string        `json:"gin_mode"         env:"GIN_MODE"                env-default:"release"`
	AllowedOrigins  []string      `json:"allowed_origins"  env:"CORS_ALLOWED_ORIGINS"    env-default:"*" env-separator:","`
	ReadTimeout     time.Duration `json:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"60s"`
	WriteTimeout    time.Duration `json:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"30s"`
}

// DatabaseConfig configures the persistence gateway and its connection pool.
type DatabaseConfig struct {
	Driver          string        `json:"driver"             env:"DB_DRIVER"                 env-default:"postgres"`
	URL             string        `json:"url"                env:"DATABASE_URL,DATABASE_URI"`
	Host            string        `json:"host"               env:"DB_HOST"                   env-default:"127.0.0.1"`
	Port            string        `json:"port"               env:"DB_PORT"`
	User            string        `json:"user"               env:"DB_USER"`
	Password        string        `json:"password"           env:"DB_PASSWORD"`
	Name            string        `json:"name"               env:"DB_NAME"                   env-default:"quoramock"`
	SSLMode         string        `json:"sslmode"            env:"DB_SSLMODE"                env-default:"disable"`
	MaxOpenConns    int           `json:"max_open_conns"     env:"DB_MAX_OPEN_CONNS"         env-default:"20"`
	MaxIdleConns    int           `json:"max_idle_conns"     env:"DB_MAX_IDLE_CONNS"         env-default:"5"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"  env:"DB_CONN_MAX_LIFETIME"      env-default:"30m"`
	ConnMaxIdleTime time.Duration `json:"conn_max_idle_time" env:"DB_CONN_MAX_IDLE_TIME"     env-default:"10m"`
	AutoMigrate     bool          `json:"auto_migrate"       env:"DB_AUTO_MIGRATE"           env-default:"true"`
	SlowThreshold   time.Duration `json:"slow_threshold"     env:"DB_SLOW_THRESHOLD"         env-default:"2s"`
	// LogLevel mirrors LogConfig.Level; filled by Load so the gateway can derive gorm's level.
	LogLevel string `json:"-"`
}

// LogConfig configures zap and the lumberjack rolling files.
type LogConfig struct {
	Level      string `json:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Path       string `json:"path"         env:"LOG_PATH"`
	GinPath    string `json:"gin_path"     env:"GIN_LOG_PATH,GIN_PATH"`
	MaxSizeMB  int    `json:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"100"`
	MaxBackups int    `json:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"`
	MaxAgeDays int    `json:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"7"`
	Compress   bool   `json:"compress"     env:"LOG_COMPRESS"     env-default:"false"`
}

// Load reads configuration. Precedence: defaults -> JSON file at path (when present) -> environment.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig

	if path != "" && fileExists(path) {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("read env: %w", err)
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.Database.LogLevel = cfg.Log.Level

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the process cannot start with.
func (c AppConfig) Validate() error {
	if strings.TrimSpace(c.App.Port) == "" {
		return errors.New("app port must be set")
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN() == "" {
		return errors.New("database connection string is empty; set DATABASE_URL")
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return errors.New("database pool sizes must not be negative")
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a driver-specific DSN built from the parts.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	switch d.Driver {
	case DriverPostgres:
		if d.Host == "" || d.Name == "" {
			return ""
		}
		// URL form so credentials with spaces, quotes or '@' are escaped.
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(orDefault(d.User, "postgres"), d.Password),
			Host:     net.JoinHostPort(d.Host, orDefault(d.Port, "5432")),
			Path:     "/" + d.Name,
			RawQuery: url.Values{"sslmode": {orDefault(d.SSLMode, "disable")}}.Encode(),
		}
		return u.String()
	case DriverMySQL:
		if d.Host == "" || d.Name == "" {
			return ""
		}
		// clientFoundRows makes RowsAffected count matched rows, not changed ones.
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
			orDefault(d.User, "root"),
			d.Password,
			d.Host,
			orDefault(d.Port, "3306"),
			d.Name,
		)
	case DriverSQLite:
		if d.Name == "" {
			return ""
		}
		return fmt.Sprintf("file:%s.db?_pragma=foreign_keys(1)", d.Name)
	}
	return ""
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogLevel        string

	DB   DBConfig
	SMTP SMTPConfig

	// HMAC secret for session bearer tokens.
	JWTSecret string
}

type DBConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("shutdown.timeout", "10s")
	v.SetDefault("log.level", "info")

	v.SetDefault("db.host", "postgres")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "booking")
	v.SetDefault("db.password", "booking")
	v.SetDefault("db.name", "booking_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")

	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "no-reply@booking.local")

	v.SetDefault("jwt.secret", "")

	_ = v.BindEnv("http.addr", "BOOKING_HTTP_ADDR", "HTTP_ADDR")
	_ = v.BindEnv("db.host", "BOOKING_DB_HOST", "DB_HOST")
	_ = v.BindEnv("db.port", "BOOKING_DB_PORT", "DB_PORT")
	_ = v.BindEnv("db.user", "BOOKING_DB_USER", "DB_USER")
	_ = v.BindEnv("db.password", "BOOKING_DB_PASSWORD", "DB_PASSWORD")
	_ = v.BindEnv("db.name", "BOOKING_DB_NAME", "DB_NAME")
	_ = v.BindEnv("smtp.host", "BOOKING_SMTP_HOST", "SMTP_HOST")
	_ = v.BindEnv("smtp.port", "BOOKING_SMTP_PORT", "SMTP_PORT")
	_ = v.BindEnv("smtp.username", "BOOKING_SMTP_USERNAME", "SMTP_USERNAME")
	_ = v.BindEnv("smtp.password", "BOOKING_SMTP_PASSWORD", "SMTP_PASSWORD")
	_ = v.BindEnv("smtp.from", "BOOKING_SMTP_FROM", "SMTP_FROM")
	_ = v.BindEnv("jwt.secret", "BOOKING_JWT_SECRET", "JWT_SECRET")

	shutdownTimeout, err := time.ParseDuration(v.GetString("shutdown.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("parse shutdown.timeout: %w", err)
	}
	connMaxLifetime, err := time.ParseDuration(v.GetString("db.conn_max_lifetime"))
	if err != nil {
		return Config{}, fmt.Errorf("parse db.conn_max_lifetime: %w", err)
	}

	cfg := Config{
		HTTPAddr:        strings.TrimSpace(v.GetString("http.addr")),
		ShutdownTimeout: shutdownTimeout,
		LogLevel:        v.GetString("log.level"),
		DB: DBConfig{
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			Name:            v.GetString("db.name"),
			SSLMode:         v.GetString("db.sslmode"),
			TimeZone:        v.GetString("db.timezone"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifeTime: connMaxLifetime,
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("smtp.host"),
			Port:     v.GetInt("smtp.port"),
			Username: v.GetString("smtp.username"),
			Password: v.GetString("smtp.password"),
			From:     v.GetString("smtp.from"),
		},
		JWTSecret: v.GetString("jwt.secret"),
	}

	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return Config{}, fmt.Errorf("invalid DB config: host/user/name must not be empty")
	}

	return cfg, nil
}

package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Redis        Redis
	Session      Session
	RabbitMQ     RabbitMQ
	Auth         Auth
	Log          Log
	GeminiApiKey string
}

type Server struct {
	Port string
	Mode string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Session selects where in-progress quiz sessions live. TTL of zero keeps
// abandoned sessions until the user starts another quiz.
type Session struct {
	Backend string // "memory" or "redis"
	TTL     time.Duration
}

type RabbitMQ struct {
	URI      string
	Exchange string
}

type Auth struct {
	JWTSecret string
}

type Log struct {
	Level  string
	Format string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_SQLITE_PATH", "lingoquiz.db")
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("SESSION_TTL", "0s")
	viper.SetDefault("RABBITMQ_EXCHANGE", "rating.events")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("GIN_MODE")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SQLitePath = viper.GetString("DATABASE_SQLITE_PATH")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.Session.Backend = viper.GetString("SESSION_BACKEND")
	config.Session.TTL = viper.GetDuration("SESSION_TTL")

	config.RabbitMQ.URI = viper.GetString("RABBITMQ_URI")
	config.RabbitMQ.Exchange = viper.GetString("RABBITMQ_EXCHANGE")

	config.Auth.JWTSecret = viper.GetString("AUTH_JWT_SECRET")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Format = viper.GetString("LOG_FORMAT")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("sessionBackend", config.Session.Backend).
		Dur("sessionTTL", config.Session.TTL).
		Bool("rabbitmqConfigured", config.RabbitMQ.URI != "").
		Bool("authEnabled", config.Auth.JWTSecret != "").
		Msg("Config loaded")
	return &config, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string     `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	GRPCPort   string     `yaml:"grpc-port" env:"GRPC_PORT" env-default:"9091"`
	Redis      Redis      `yaml:"redis"`
	Mongo      Mongo      `yaml:"mongo"`
	Prediction Prediction `yaml:"prediction"`
	Bot        Bot        `yaml:"bot"`
	WebSocket  WebSocket  `yaml:"websocket"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Mongo struct {
	URI      string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"tictactoe"`
}

type Prediction struct {
	DefaultRating int `yaml:"default-rating" env-default:"1000"`
	RatingBand    int `yaml:"rating-band" env-default:"200"`
	HistoryLimit  int `yaml:"history-limit" env-default:"5"`
}

type Bot struct {
	SkillLevel int `yaml:"skill-level" env:"BOT_SKILL_LEVEL" env-default:"4000"`
}

type WebSocket struct {
	WriteTimeout time.Duration `yaml:"write-timeout" env-default:"10s"`
	PingInterval time.Duration `yaml:"ping-interval" env-default:"30s"`
	SendBuffer   int           `yaml:"send-buffer" env-default:"64"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

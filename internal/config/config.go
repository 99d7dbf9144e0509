// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env"`
	StorageDir      string `yaml:"storage_dir"`
	HTTPServer      `yaml:"http_server"`
	DeepL           `yaml:"deepl"`
	RedisConnection `yaml:"redis_connection"`
	Session         `yaml:"session"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// DeepL структура для настройки клиента провайдера перевода.
// Ключ можно переопределить переменной окружения DEEPL_API_KEY.
type DeepL struct {
	Endpoint string        `yaml:"endpoint" env-default:"https://api-free.deepl.com"`
	APIKey   string        `yaml:"api_key" env:"DEEPL_API_KEY"`
	Timeout  time.Duration `yaml:"timeout" env-default:"10s"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес означает, что сессии хранятся в памяти процесса.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// Session структура для настройки времени жизни сессий
type Session struct {
	TTL time.Duration `yaml:"ttl" env-default:"24h"`
}

// MustLoad функция для загрузки конфига, путь берется из CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageDir: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"DeepL:\n"+
			"  Endpoint: %s\n"+
			"  APIKey: %s\n"+
			"  Timeout: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"  MaxRetries: %d\n"+
			"  DialTimeout: %s\n"+
			"  Timeout: %s\n"+
			"Session:\n"+
			"  TTL: %s\n",
		c.Env,
		c.StorageDir,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Endpoint,
		redact(c.APIKey),
		c.DeepL.Timeout,
		c.AddressRedis,
		c.User,
		c.DB,
		c.MaxRetries,
		c.DialTimeout,
		c.TimeoutRedis,
		c.TTL,
	)
}

// redact скрывает секрет в выводе конфига при старте.
func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}

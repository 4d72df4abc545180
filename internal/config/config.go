package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Загрузка конфигурации: .env -> config.yaml (опционально) -> переменные окружения через cleanenv

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Bookero   BookeroConfig   `yaml:"bookero"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	State     StateConfig     `yaml:"state"`
	Redis     RedisConfig     `yaml:"redis"`
	Logger    LoggerConfig    `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type SchedulerConfig struct {
	Enabled    bool   `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"true"`
	Spec       string `yaml:"spec" env:"POLL_SCHEDULE" env-default:"*/10 * * * *"` // cron или @every 20m
	RunOnStart bool   `yaml:"run_on_start" env:"POLL_RUN_ON_START" env-default:"true"`
	// CycleTimeout - предел одного цикла, иначе зависший запрос блокирует все следующие. 0 - без предела
	CycleTimeout time.Duration `yaml:"cycle_timeout" env:"POLL_CYCLE_TIMEOUT" env-default:"5m"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`   // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

type PostgresConfig struct {
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-required:"true"`
	DBName          string        `yaml:"dbname" env:"POSTGRES_DB" env-default:"slot_notifier"`
	SSLMode         string        `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
}

// BookeroConfig - параметры запроса getMonth. Всё, кроме service, константы деплоя.
type BookeroConfig struct {
	BaseURL       string        `yaml:"base_url" env:"BOOKERO_BASE_URL" env-default:"https://plugin.bookero.pl/plugin-api/v2/getMonth"`
	BookeroID     string        `yaml:"bookero_id" env:"BOOKERO_ID" env-default:"SnLKupjwDaPO"`
	Lang          string        `yaml:"lang" env-default:"pl"`
	PeriodicityID int           `yaml:"periodicity_id" env-default:"0"`
	People        int           `yaml:"people" env-default:"1"`
	PlusMonths    int           `yaml:"plus_months" env-default:"0"`
	Timeout       time.Duration `yaml:"timeout" env:"BOOKERO_TIMEOUT" env-default:"0s"` // 0 - таймаут транспорта по умолчанию
	UserAgent     string        `yaml:"user_agent" env-default:"slot-notifier/1.0"`
}

type TelegramConfig struct {
	Token           string        `yaml:"token" env:"BOT_TOKEN" env-required:"true"`
	AdminChatID     int64         `yaml:"admin_chat_id" env:"ADMIN_CHAT_ID" env-required:"true"`
	LongPollTimeout time.Duration `yaml:"long_poll_timeout" env-default:"10s"`
	ReserveURL      string        `yaml:"reserve_url" env:"RESERVE_URL" env-default:"https://rezerwacja.zielona-gora.pl/"`
}

// StateConfig - где хранить последнюю увиденную дату по каждому сервису
type StateConfig struct {
	Backend       string `yaml:"backend" env:"STATE_BACKEND" env-default:"memory"` // memory|redis|postgres
	ResetOnNoTerm bool   `yaml:"reset_on_no_term" env:"STATE_RESET_ON_NO_TERM" env-default:"false"`
}

type RedisConfig struct {
	Addr        string        `yaml:"addr" env:"REDIS_ADDR"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user" env:"REDIS_USER"`
	DB          int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	KeyPrefix   string        `yaml:"key_prefix" env-default:"slot-notifier:last-term:"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"3s"`
}

func LoadConfig() (*Config, error) {
	return Load(fetchConfigPath())
}

// Load - читает .env (если есть), затем файл конфигурации (если указан) и окружение.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if configPath != "" {
		// ReadConfig сам дочитывает окружение поверх файла
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate - проверки, которые не выразить тегами cleanenv
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Telegram.Token) == "" {
		return errors.New("telegram token is empty")
	}
	if c.Telegram.AdminChatID == 0 {
		return errors.New("admin chat id is empty")
	}
	if c.Scheduler.Enabled && strings.TrimSpace(c.Scheduler.Spec) == "" {
		return errors.New("scheduler spec is empty")
	}
	if c.Scheduler.CycleTimeout < 0 {
		return errors.New("scheduler cycle timeout is negative")
	}
	switch c.State.Backend {
	case BackendMemory, BackendPostgres:
	case BackendRedis:
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return errors.New("redis state backend requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown state backend: %q", c.State.Backend)
	}
	return nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}

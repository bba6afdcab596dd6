// config реализует конфигурацию recipes-service: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	DB         DBConfig         `yaml:"db"`
	MealDB     MealDBConfig     `yaml:"mealdb"`
	Auth       AuthConfig       `yaml:"auth"`
	Engagement EngagementConfig `yaml:"engagement"`
	Popular    PopularConfig    `yaml:"popular"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
}

// TimeoutConfig — общий дедлайн обработки HTTP-запроса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// MetricsConfig — отдельный HTTP для health/metrics.
type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"METRICS_PORT" env-default:"9090"`
}

// Addr возвращает адрес в формате host:port.
func (m MetricsConfig) Addr() string {
	return net.JoinHostPort(m.Host, m.Port)
}

// DBConfig — настройки подключения к MongoDB (документы рецептов и пользователей).
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// MealDBConfig — внешний каталог рецептов и кэш его ответов.
type MealDBConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"MEALDB_BASE_URL"   env-default:"https://www.themealdb.com/api/json/v1/1"`
	Timeout   time.Duration `yaml:"timeout"    env:"MEALDB_TIMEOUT"    env-default:"10s"`
	CacheSize int           `yaml:"cache_size" env:"MEALDB_CACHE_SIZE" env-default:"512"`
	CacheTTL  time.Duration `yaml:"cache_ttl"  env:"MEALDB_CACHE_TTL"  env-default:"10m"`
}

// AuthConfig — проверка токенов провайдера идентичности.
type AuthConfig struct {
	JWTSecret string   `yaml:"jwt_secret" env:"JWT_SECRET"   env-required:"true"`
	Issuer    string   `yaml:"issuer"     env:"JWT_ISSUER"   env-default:"recipes-auth"`
	Audience  []string `yaml:"audience"   env:"JWT_AUDIENCE" env-default:"recipes-app" env-separator:","`

	// Разрешить действия от имени пользователя с неподтверждённым email.
	// По умолчанию такие токены считаются анонимными.
	AllowUnverifiedEmail bool `yaml:"allow_unverified_email" env:"ALLOW_UNVERIFIED_EMAIL"`
}

// EngagementConfig — локальный кэш документов вовлечённости.
type EngagementConfig struct {
	CacheSize int `yaml:"cache_size" env:"ENGAGEMENT_CACHE_SIZE" env-default:"1024"`
}

// PopularConfig — раздел «популярное» на главном экране.
type PopularConfig struct {
	// Сколько рецептов и ингредиентов отдавать по умолчанию.
	Size int `yaml:"size" env:"POPULAR_SIZE" env-default:"20"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", p, err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	var (
		out *Config
		err error
	)

	switch envPath := os.Getenv("CONFIG_PATH"); {
	case path != "":
		out, err = readFile(path)
	case envPath != "":
		out, err = readFile(envPath)
	default:
		if _, statErr := os.Stat("local.yaml"); statErr == nil {
			out, err = readFile("local.yaml")
			break
		}

		if err = cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
		out = &cfg
	}

	if err != nil {
		return nil, err
	}

	if err := out.validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if c.MealDB.BaseURL == "" {
		return fmt.Errorf("mealdb.base_url is required")
	}

	if c.MealDB.Timeout <= 0 {
		return fmt.Errorf("mealdb.timeout must be > 0")
	}

	if c.MealDB.CacheSize <= 0 {
		return fmt.Errorf("mealdb.cache_size must be > 0")
	}

	if c.MealDB.CacheTTL <= 0 {
		return fmt.Errorf("mealdb.cache_ttl must be > 0")
	}

	if c.Engagement.CacheSize <= 0 {
		return fmt.Errorf("engagement.cache_size must be > 0")
	}

	if c.Popular.Size <= 0 || c.Popular.Size > 100 {
		return fmt.Errorf("popular.size must be in [1, 100]")
	}

	return nil
}

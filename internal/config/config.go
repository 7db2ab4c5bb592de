package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Photon PhotonConfig
	GenAI  GenAIConfig
	Redis  RedisConfig
	Cache  CacheConfig
	Search SearchConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// PhotonConfig - настройки клиента поискового API (Photon/Komoot)
type PhotonConfig struct {
	BaseURL        string
	Language       string
	RequestTimeout time.Duration
	// FetchLimit is how many features to request from the provider;
	// more than the suggestion cap to absorb client-side filtering loss.
	FetchLimit int
}

// GenAIConfig - настройки клиента генеративного провайдера
type GenAIConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	Temperature    float64
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// Enabled toggles the Redis suggestion cache; the service runs fully
	// without it.
	Enabled        bool
	SearchCacheTTL time.Duration
}

// SearchConfig - настройки оркестратора автодополнения
type SearchConfig struct {
	Debounce       time.Duration
	SuggestionCap  int
	MinQueryLength int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env отсутствует в контейнерных окружениях - конфигурация из env
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Photon: PhotonConfig{
			BaseURL:        viper.GetString("PHOTON_BASE_URL"),
			Language:       viper.GetString("PHOTON_LANGUAGE"),
			RequestTimeout: time.Duration(viper.GetInt("PHOTON_REQUEST_TIMEOUT")) * time.Second,
			FetchLimit:     viper.GetInt("PHOTON_FETCH_LIMIT"),
		},
		GenAI: GenAIConfig{
			BaseURL:        viper.GetString("GENAI_BASE_URL"),
			APIKey:         viper.GetString("GENAI_API_KEY"),
			Model:          viper.GetString("GENAI_MODEL"),
			Temperature:    viper.GetFloat64("GENAI_TEMPERATURE"),
			RequestTimeout: time.Duration(viper.GetInt("GENAI_REQUEST_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:        viper.GetBool("CACHE_ENABLED"),
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Search: SearchConfig{
			Debounce:       time.Duration(viper.GetInt("SEARCH_DEBOUNCE_MS")) * time.Millisecond,
			SuggestionCap:  viper.GetInt("SEARCH_SUGGESTION_CAP"),
			MinQueryLength: viper.GetInt("SEARCH_MIN_QUERY_LENGTH"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Photon.BaseURL == "" {
		cfg.Photon.BaseURL = "https://photon.komoot.io"
	}
	if cfg.Photon.Language == "" {
		cfg.Photon.Language = "en"
	}
	if cfg.Photon.RequestTimeout == 0 {
		cfg.Photon.RequestTimeout = 10 * time.Second
	}
	if cfg.Photon.FetchLimit == 0 {
		cfg.Photon.FetchLimit = 15
	}
	if cfg.GenAI.BaseURL == "" {
		cfg.GenAI.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.GenAI.Model == "" {
		cfg.GenAI.Model = "gemini-3-flash-preview"
	}
	if cfg.GenAI.Temperature == 0 {
		cfg.GenAI.Temperature = 0.4
	}
	if cfg.GenAI.RequestTimeout == 0 {
		cfg.GenAI.RequestTimeout = 120 * time.Second
	}
	if cfg.Cache.SearchCacheTTL == 0 {
		cfg.Cache.SearchCacheTTL = 15 * time.Minute
	}
	if cfg.Search.Debounce == 0 {
		cfg.Search.Debounce = 400 * time.Millisecond
	}
	if cfg.Search.SuggestionCap == 0 {
		cfg.Search.SuggestionCap = 10
	}
	if cfg.Search.MinQueryLength == 0 {
		cfg.Search.MinQueryLength = 2
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

package config

import "time"

// Config holds the application configuration
type Config struct {
	BackendURL    string        `mapstructure:"backend_url"`
	HTTPPort      int           `mapstructure:"http_port"`
	Platform      string        `mapstructure:"platform"`
	ModifyTimeout time.Duration `mapstructure:"modify_timeout"`
	CacheBackend  string        `mapstructure:"cache_backend"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	RedisAddress  string        `mapstructure:"redis_address"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	ArtifactDir   string        `mapstructure:"artifact_dir"`
	TemplatesFile string        `mapstructure:"templates_file"`
	LogLevel      string        `mapstructure:"log_level"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		BackendURL:    "http://localhost:8000",
		HTTPPort:      3000,
		Platform:      "mobile",
		ModifyTimeout: 90 * time.Second,
		CacheBackend:  "memory",
		ArtifactDir:   "./artifacts",
		TemplatesFile: "./templates.yaml",
		LogLevel:      "info",
	}
}

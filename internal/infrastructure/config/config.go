package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	sharedConfig "github.com/shjfcs/foodwatch/internal/shared/config"
)

type Config struct {
	Server      sharedConfig.ServerConfig     `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Auth        sharedConfig.AuthConfig       `mapstructure:"auth"`
	Redis       sharedConfig.RedisConfig      `mapstructure:"redis"`
	Attachments sharedConfig.AttachmentConfig `mapstructure:"attachments"`
	S3          sharedConfig.S3Config         `mapstructure:"s3"`
	Casbin      sharedConfig.CasbinConfig     `mapstructure:"casbin"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configuration from configPath (or configs/config.yaml when empty)
// and FOODWATCH_* environment variables. A missing config file is tolerated so
// that a container can be configured from the environment alone.
func Load(env, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("FOODWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.timezone", "Asia/Dubai")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "foodwatch_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 480)
	v.SetDefault("auth.jwt.issuer", "foodwatch")

	// Redis defaults; an empty host keeps rate limits in process
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Attachment defaults
	v.SetDefault("attachments.driver", "local")
	v.SetDefault("attachments.local_root", "./uploads")
	v.SetDefault("attachments.max_bytes", 10<<20)
	v.SetDefault("attachments.allowed_extensions", []string{"pdf", "jpg", "jpeg", "png"})
	v.SetDefault("attachments.staged_ttl", 24*time.Hour)
	v.SetDefault("attachments.reap_interval", time.Hour)
	v.SetDefault("attachments.upload_rate_per_minute", 30)

	// S3 defaults
	v.SetDefault("s3.region", "me-central-1")
	v.SetDefault("s3.path_style", false)

	v.SetDefault("casbin.seed_policies", true)
}

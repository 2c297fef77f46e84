package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`

	LogFileName string `toml:"log_file_name"`
	LogLevel    string `toml:"log_level"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryDSN string `toml:"sentry_dsn"`
	SentryEnv string `toml:"sentry_env"`

	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort int    `toml:"prometheus_metrics_port"`

	// PostureTipsCSVPath: path to the CSV file with posture tips,
	// served via the random tip endpoint
	PostureTipsCSVPath string `toml:"posture_tips_csv_path"`

	// LoginRateLimitAllowedPerMin: allowed login requests per minute per IP
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// TreatmentPlanCacheExpireSeconds: TTL for cached treatment plans
	TreatmentPlanCacheExpireSeconds int `toml:"treatment_plan_cache_expire_seconds"`
}

type Toml struct {
	Development Config `toml:"development"`
	Production  Config `toml:"production"`
}

func Load(env, path string) (*Config, error) {
	var conf Toml
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	switch env {
	case "production", "prod", "p":
		return &conf.Production, nil
	case "development", "dev", "d":
		return &conf.Development, nil
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}
}

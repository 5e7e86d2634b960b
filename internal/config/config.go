package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		PG         `yaml:"postgres"`
		HTTP       `yaml:"http"`
		GRPC       `yaml:"grpc"`
		Prometheus `yaml:"prometheus"`
		Auth       `yaml:"auth"`
		RateLimit  `yaml:"rate_limit"`
		Cache      `yaml:"cache"`
		Kafka      `yaml:"kafka"`
		Pipeline   `yaml:"pipeline"`
		Monitor    `yaml:"monitor"`
		Scheduler  `yaml:"scheduler"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	}

	PG struct {
		MaxPoolSize    int    `env-required:"true" env:"MAX_POOL_SIZE" yaml:"max_pool_size"`
		URL            string `env-required:"true" env:"PG_URL"`
		MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
	}

	HTTP struct {
		Port            string        `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"5s"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	GRPC struct {
		Port string `env-required:"true" yaml:"port" env:"GRPC_PORT"`
	}

	Auth struct {
		APIKeys       []string      `yaml:"api_keys" env:"API_KEYS" env-separator:","`
		JWTSecret     string        `env:"JWT_SECRET"`
		TokenTTL      time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"12h"`
		MaxAttempts   int           `yaml:"max_attempts" env-default:"5"`
		LockFor       time.Duration `yaml:"lock_for" env-default:"15m"`
		RedirectURL   string        `yaml:"redirect_url" env-default:"/dashboard/"`
		AdminUsername string        `yaml:"admin_username" env:"ADMIN_USERNAME"`
		AdminPassword string        `env:"ADMIN_PASSWORD"`
	}

	RateLimit struct {
		RPS       float64       `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"50"`
		Burst     int           `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"100"`
		ExpiresIn time.Duration `yaml:"expires_in" env-default:"3m"`
	}

	Cache struct {
		Backend         string        `yaml:"backend" env:"CACHE_BACKEND" env-default:"memory"`
		RedisAddr       string        `yaml:"redis_addr" env:"REDIS_ADDR"`
		RedisPassword   string        `env:"REDIS_PASSWORD"`
		RedisDB         int           `yaml:"redis_db" env:"REDIS_DB"`
		RedisPrefix     string        `yaml:"redis_prefix" env-default:"logsentinel:"`
		LogCountsTTL    time.Duration `yaml:"log_counts_ttl" env-default:"300s"`
		RecentTTL       time.Duration `yaml:"recent_anomalies_ttl" env-default:"60s"`
		ChartDataTTL    time.Duration `yaml:"chart_data_ttl" env-default:"600s"`
		SystemStatusTTL time.Duration `yaml:"system_status_ttl" env-default:"300s"`
	}

	Kafka struct {
		Enabled      bool          `yaml:"enabled" env:"KAFKA_ENABLED"`
		Brokers      []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic        string        `yaml:"topic" env:"KAFKA_TOPIC" env-default:"anomalies"`
		WriteTimeout time.Duration `yaml:"write_timeout" env-default:"5s"`
	}

	Pipeline struct {
		LogsDir  string   `yaml:"logs_dir" env:"PIPELINE_LOGS_DIR" env-default:"logs"`
		Commands []string `yaml:"commands"`
	}

	Monitor struct {
		ProbesEnabled bool          `yaml:"probes_enabled" env:"MONITOR_PROBES"`
		ZookeeperAddr string        `yaml:"zookeeper_addr" env:"ZOOKEEPER_ADDR"`
		ProbeTimeout  time.Duration `yaml:"probe_timeout" env-default:"3s"`
		DiskPath      string        `yaml:"disk_path" env-default:"/"`
		CPUInterval   time.Duration `yaml:"cpu_interval" env-default:"200ms"`
	}

	Scheduler struct {
		WarmUpSpec      string        `yaml:"warm_up" env-default:"@every 5m"`
		HostSampleSpec  string        `yaml:"host_sample" env-default:"@every 30s"`
		StatusCheckSpec string        `yaml:"status_check" env-default:"@every 1m"`
		JobTimeout      time.Duration `yaml:"job_timeout" env-default:"30s"`
	}
)

const ENV_PATH = "infra/.env.dev"

func loadDotEnv() {
	err := godotenv.Load(ENV_PATH)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", ENV_PATH).Debug("No .env file, using process environment")
		return
	}
	if err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}
}

func New() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = "infra/config.yaml"
	}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Auth struct {
		// OpenReads allows unauthenticated GETs on collection and
		// instance resources. Writes always require a token.
		OpenReads bool `yaml:"open_reads"`
	} `yaml:"auth"`

	Stats struct {
		APIURL       string `yaml:"api_url"`       // gigwork API base, e.g. http://localhost:4000
		Token        string `yaml:"token"`         // credential token for API fetches
		ListenHost   string `yaml:"listen_host"`   // stat service bind host
		ListenPort   int    `yaml:"listen_port"`   // stat service bind port
		PollInterval int    `yaml:"poll_interval"` // seconds between poll cycles
	} `yaml:"stats"`
}

// PollInterval returns the stats poll interval as a duration,
// defaulting to 120 seconds.
func (c *Config) PollInterval() time.Duration {
	if c.Stats.PollInterval <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.Stats.PollInterval) * time.Second
}

var AppConfig *Config

// LoadConfig reads config.yaml (path from CONFIG_PATH), falling back to
// environment variables when DATABASE_URL is set. A .env file is loaded
// first when present.
func LoadConfig() {
	var cfg Config

	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	cfg.Auth.OpenReads = os.Getenv("AUTH_OPEN_READS") == "true"

	cfg.Stats.APIURL = os.Getenv("STATS_API_URL")
	cfg.Stats.Token = os.Getenv("STATS_TOKEN")
	cfg.Stats.ListenPort, _ = strconv.Atoi(os.Getenv("STATS_LISTEN_PORT"))
	cfg.Stats.PollInterval, _ = strconv.Atoi(os.Getenv("STATS_POLL_INTERVAL"))

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Stats.ListenPort == 0 {
		cfg.Stats.ListenPort = 5000
	}
	if cfg.Stats.PollInterval == 0 {
		cfg.Stats.PollInterval = 120
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

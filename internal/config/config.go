package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDSN             string `yaml:"db_dsn"`
	LogFile           string `yaml:"log_file"`
	LowStockThreshold int    `yaml:"low_stock_threshold"`
	FastMoverLimit    int    `yaml:"fast_mover_limit"`
}

const defaultConfigPath = "tillkeeper.yaml"

// Load builds the config from defaults, then an optional YAML file
// (TILLKEEPER_CONFIG or ./tillkeeper.yaml), then environment variables.
// A .env file in the working directory is honored; real env wins.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DBDSN:             "tillkeeper.db", // sqlite file in the working directory
		LowStockThreshold: 5,
		FastMoverLimit:    5,
	}

	path := os.Getenv("TILLKEEPER_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			log.Printf("[config] ignoring unreadable config file %s: %v", path, err)
		}
	}

	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.DBDSN = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	if cfg.LowStockThreshold < 0 {
		cfg.LowStockThreshold = 0
	}
	if cfg.FastMoverLimit <= 0 {
		cfg.FastMoverLimit = 5
	}

	log.Printf("[config] DB_DSN=%s LOG_FILE=%s low_stock=%d fast_movers=%d",
		cfg.DBDSN, cfg.LogFile, cfg.LowStockThreshold, cfg.FastMoverLimit)
	return cfg
}

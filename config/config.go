package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`
}

type ServerConfig struct {
	Port            int      `json:"port"`
	Host            string   `json:"host"`
	AllowedOrigins  []string `json:"allowed_origins"`
	ShutdownTimeout int      `json:"shutdown_timeout_seconds"`
}

// LoadConfig layers configuration sources: defaults, then an optional
// JSON config file, then environment variables (a .env file is picked
// up if present), then command-line flags.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10,
		},
	}

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config/config.json"
	}

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.Open(configPath)
		if err == nil {
			defer file.Close()
			decoder := json.NewDecoder(file)
			if err := decoder.Decode(cfg); err != nil {
				fmt.Printf("Warning: Failed to decode config file: %v\n", err)
			}
		}
	}

	loadEnv(cfg)

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	var serverPort int
	var serverHost string

	fs.IntVar(&serverPort, "port", 0, "Server port")
	fs.StringVar(&serverHost, "host", "", "Server host")

	_ = fs.Parse(os.Args[1:])

	if isFlagPassed(fs, "port") {
		cfg.Server.Port = serverPort
	}
	if isFlagPassed(fs, "host") {
		cfg.Server.Host = serverHost
	}

	return cfg, nil
}

func isFlagPassed(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func loadEnv(cfg *Config) {
	if val := os.Getenv("SERVER_PORT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = p
		}
	}
	if val := os.Getenv("SERVER_HOST"); val != "" {
		cfg.Server.Host = val
	}
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		parts := strings.Split(val, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.Server.AllowedOrigins = parts
	}
	if val := os.Getenv("SHUTDOWN_TIMEOUT"); val != "" {
		if p, err := strconv.Atoi(val); err == nil {
			cfg.Server.ShutdownTimeout = p
		}
	}
}

func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}

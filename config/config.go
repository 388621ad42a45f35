package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DBUrl       string
	BaseUrl     string
	TokenSecret string
	TokenTTL    time.Duration
	Debug       bool
}

// ParseFlags reads configuration from command-line flags, with defaults
// taken from the environment (a local .env file is loaded first, if any).
func ParseFlags() (cfg Config, err error) {
	godotenv.Load()

	var host string
	flag.StringVar(&host, "host", envOr("REFFORM_HOST", "0.0.0.0"), "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", uint(envOrInt("REFFORM_PORT", 80)), "listen port number (default 80)")
	flag.StringVar(&cfg.DBUrl, "db-url", envOr("REFFORM_DB_URL", "refform.sqlite"), "path to SQLite3 DB file (default refform.sqlite)")
	flag.StringVar(&cfg.BaseUrl, "base-url", envOr("REFFORM_BASE_URL", ""), "public base URL used to build referral links")
	flag.StringVar(&cfg.TokenSecret, "token-secret", envOr("REFFORM_TOKEN_SECRET", ""), "secret key for token encryption and decryption")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", uint(envOrInt("REFFORM_TOKEN_TTL", 120)), "token TTL in seconds (default 120)")
	flag.BoolVar(&cfg.Debug, "debug", os.Getenv("REFFORM_DEBUG") == "true", "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	if cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret")
	}
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = cfg.Url()
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

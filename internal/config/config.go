package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// InsecureJWTSecret é usado quando JWT_SECRET não é informado. Nunca deve ir para produção.
const InsecureJWTSecret = "troque_este_segredo_em_producao"

// Config centraliza a configuração carregada do ambiente.
type Config struct {
	Port             int
	DB               DBConfig
	RedisURL         string
	CacheTTL         time.Duration
	JWTSecret        string
	JWTAccessTTL     time.Duration
	AllowOrigins     []string
	RateLimitPublic  RateLimitConfig
	RateLimitAuth    RateLimitConfig
	DebugToken       string
	LogLevel         string
	InsecureDefaults bool
}

// DBConfig descreve o acesso ao Postgres.
type DBConfig struct {
	DSN              string
	Host             string
	Port             int
	User             string
	Password         string
	Name             string
	MaxConns         int32
	StatementTimeout time.Duration
}

// RateLimitConfig representa limites simples para throttling.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// ConnString devolve o DSN explícito ou monta um a partir dos campos separados.
func (c DBConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	return u.String()
}

// Load carrega variáveis de ambiente e aplica defaults seguros.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	dbCfg, err := loadDB()
	if err != nil {
		return nil, err
	}
	cfg.DB = dbCfg

	cfg.RedisURL = strings.TrimSpace(getEnv("REDIS_URL", ""))
	cacheTTL, err := parseDurationEnv("CACHE_TTL", 60*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = cacheTTL

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = InsecureJWTSecret
		cfg.InsecureDefaults = true
	}

	accessTTL, err := parseDurationEnv("JWT_ACCESS_TTL", 6*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.JWTAccessTTL = accessTTL

	for _, origin := range strings.Split(getEnv("ALLOW_ORIGINS", "*"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	cfg.RateLimitPublic = RateLimitConfig{RequestsPerSecond: 10, Burst: 20}
	cfg.RateLimitAuth = RateLimitConfig{RequestsPerSecond: 10, Burst: 40}

	cfg.DebugToken = strings.TrimSpace(getEnv("DEBUG_TOKEN", ""))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info")))

	return cfg, nil
}

func loadDB() (DBConfig, error) {
	dbCfg := DBConfig{DSN: strings.TrimSpace(getEnv("DB_DSN", ""))}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil || maxConns <= 0 {
		return dbCfg, errors.New("DB_MAX_CONNS inválido")
	}
	dbCfg.MaxConns = int32(maxConns)

	timeout, err := parseDurationEnv("DB_STATEMENT_TIMEOUT", 5*time.Second)
	if err != nil {
		return dbCfg, err
	}
	dbCfg.StatementTimeout = timeout

	dbCfg.Host = getEnv("DB_HOST", "")
	dbCfg.User = getEnv("DB_USER", "")
	dbCfg.Password = getEnv("DB_PASSWORD", "")
	dbCfg.Name = getEnv("DB_NAME", "")
	portStr := getEnv("DB_PORT", "")

	if dbCfg.DSN != "" {
		if portStr != "" {
			dbCfg.Port, _ = strconv.Atoi(portStr)
		}
		return dbCfg, nil
	}

	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
		if getEnv(key, "") == "" {
			return dbCfg, fmt.Errorf("%s obrigatório", key)
		}
	}

	dbPort, err := strconv.Atoi(portStr)
	if err != nil || dbPort <= 0 {
		return dbCfg, errors.New("DB_PORT inválida")
	}
	dbCfg.Port = dbPort

	return dbCfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil || dur <= 0 {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}

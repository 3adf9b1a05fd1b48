package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	Store  StoreConfig
	Log    LogConfig
	CORS   CORSConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	site, err := loadSiteConfig(server)
	if err != nil {
		return nil, err
	}

	store, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Site:   site,
		Store:  store,
		Log:    logCfg,
		CORS:   loadCORSConfig(),
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
	// ServeAPI mounts the contact backend under /api in the same process.
	ServeAPI bool
}

// Port returns the numeric part of Addr, used to derive a same-host backend URL.
func (c ServerConfig) Port() string {
	if idx := strings.LastIndex(c.Addr, ":"); idx >= 0 {
		return c.Addr[idx+1:]
	}
	return c.Addr
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	serveAPI, err := parseBoolEnv("SERVE_API", true)
	if err != nil {
		return ServerConfig{}, err
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port, ServeAPI: serveAPI}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, ServeAPI: serveAPI}, nil
}

// SiteConfig describes the rendered portfolio and how it reaches the contact backend.
type SiteConfig struct {
	BackendBaseURL string
	// BackendTimeout is zero unless set; the contact flow itself configures no timeout.
	BackendTimeout time.Duration
	ContentFile    string
	CookieSecure   bool
}

func loadSiteConfig(server ServerConfig) (SiteConfig, error) {
	timeout, err := parseDurationEnv("BACKEND_TIMEOUT", 0)
	if err != nil {
		return SiteConfig{}, err
	}

	secure, err := parseBoolEnv("COOKIE_SECURE", false)
	if err != nil {
		return SiteConfig{}, err
	}

	baseURL := getEnvOrDefault("BACKEND_BASE_URL", "http://localhost:"+server.Port())
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return SiteConfig{}, fmt.Errorf("invalid BACKEND_BASE_URL value %q: scheme must be http or https", baseURL)
	}

	return SiteConfig{
		BackendBaseURL: baseURL,
		BackendTimeout: timeout,
		ContentFile:    strings.TrimSpace(os.Getenv("CONTENT_FILE")),
		CookieSecure:   secure,
	}, nil
}

// StoreConfig selects where inquiries and status checks are persisted.
type StoreConfig struct {
	Driver string
	Path   string
}

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

func loadStoreConfig() (StoreConfig, error) {
	driver := strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverSQLite))
	switch driver {
	case DriverSQLite, DriverMemory:
	default:
		return StoreConfig{}, fmt.Errorf("invalid STORE_DRIVER value %q", driver)
	}

	return StoreConfig{
		Driver: driver,
		Path:   getEnvOrDefault("DATABASE_PATH", "portfolio.db"),
	}, nil
}

// LogConfig 描述日志配置。
type LogConfig struct {
	Level       string
	Development bool
}

func loadLogConfig() (LogConfig, error) {
	dev, err := parseBoolEnv("LOG_DEVELOPMENT", false)
	if err != nil {
		return LogConfig{}, err
	}

	level := strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return LogConfig{}, fmt.Errorf("invalid LOG_LEVEL value %q", level)
	}

	return LogConfig{Level: level, Development: dev}, nil
}

// CORSConfig lists the origins allowed to call /api from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadCORSConfig() CORSConfig {
	raw := getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return CORSConfig{AllowedOrigins: origins}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	// 纯数字按秒处理。
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("invalid %s value %q: must not be negative", key, raw)
		}
		return time.Duration(secs) * time.Second, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val < 0 {
		return 0, fmt.Errorf("invalid %s value %q: must not be negative", key, raw)
	}
	return val, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Directions DirectionsConfig
	Maps       MapsConfig
	ETL        ETLConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
}

// DirectionsConfig selects and configures the upstream directions provider.
// Provider is one of "google" or "osrm"; Metric documents the distance metric
// of the geospatial store ("geodesic" for geography columns).
type DirectionsConfig struct {
	Provider       string
	GoogleBaseURL  string
	GoogleAPIKey   string
	OSRMBaseURL    string
	Mode           string
	RequestTimeout time.Duration
	Metric         string
}

// MapsConfig carries the browser-side map key handed out to the debug map page.
type MapsConfig struct {
	BrowserKey string
}

type ETLConfig struct {
	OverpassURL    string
	BBox           string
	RequestTimeout time.Duration
	BatchSize      int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			QueryTimeout:    time.Duration(viper.GetInt("DB_QUERY_TIMEOUT")) * time.Second,
		},
		Directions: DirectionsConfig{
			Provider:       viper.GetString("DIRECTIONS_PROVIDER"),
			GoogleBaseURL:  viper.GetString("GOOGLE_MAPS_BASE_URL"),
			GoogleAPIKey:   viper.GetString("GOOGLE_MAPS_API_KEY"),
			OSRMBaseURL:    viper.GetString("OSRM_BASE_URL"),
			Mode:           viper.GetString("DIRECTIONS_MODE"),
			RequestTimeout: time.Duration(viper.GetInt("DIRECTIONS_REQUEST_TIMEOUT")) * time.Second,
			Metric:         viper.GetString("STORE_DISTANCE_METRIC"),
		},
		Maps: MapsConfig{
			BrowserKey: viper.GetString("MAPS_BROWSER_KEY"),
		},
		ETL: ETLConfig{
			OverpassURL:    viper.GetString("OVERPASS_URL"),
			BBox:           viper.GetString("ETL_BBOX"),
			RequestTimeout: time.Duration(viper.GetInt("ETL_REQUEST_TIMEOUT")) * time.Second,
			BatchSize:      viper.GetInt("ETL_BATCH_SIZE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 25
	}
	if cfg.Database.QueryTimeout == 0 {
		cfg.Database.QueryTimeout = 5 * time.Second
	}
	if cfg.Directions.Provider == "" {
		cfg.Directions.Provider = "google"
	}
	if cfg.Directions.GoogleBaseURL == "" {
		cfg.Directions.GoogleBaseURL = "https://maps.googleapis.com"
	}
	if cfg.Directions.OSRMBaseURL == "" {
		cfg.Directions.OSRMBaseURL = "http://router.project-osrm.org"
	}
	if cfg.Directions.Mode == "" {
		cfg.Directions.Mode = "driving"
	}
	if cfg.Directions.RequestTimeout == 0 {
		cfg.Directions.RequestTimeout = 5 * time.Second
	}
	if cfg.Directions.Metric == "" {
		cfg.Directions.Metric = "geodesic"
	}
	if cfg.ETL.OverpassURL == "" {
		cfg.ETL.OverpassURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.ETL.RequestTimeout == 0 {
		cfg.ETL.RequestTimeout = 60 * time.Second
	}
	if cfg.ETL.BatchSize == 0 {
		cfg.ETL.BatchSize = 500
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

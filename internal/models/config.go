package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Preload  bool   `mapstructure:"preload"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	Seed                int       `mapstructure:"seed"`
	StartDate           time.Time `mapstructure:"start_date"`
	EndDate             time.Time `mapstructure:"end_date"`
	TickIntervalMinutes int       `mapstructure:"tick_interval_minutes"`
	Continuous          bool      `mapstructure:"continuous"`

	InitialVenues      int `mapstructure:"initial_venues"`
	StaffPerVenueMin   int `mapstructure:"staff_per_venue_min"`
	StaffPerVenueMax   int `mapstructure:"staff_per_venue_max"`
	MaxActiveCustomers int `mapstructure:"max_active_customers"`

	CityName                 string  `mapstructure:"city_name"`
	CityPopularityMultiplier float64 `mapstructure:"city_popularity_multiplier"`
	CityAffluence            float64 `mapstructure:"city_affluence"`

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs int    `mapstructure:"session_timeout_ms"`

	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	OutputFormat      string `mapstructure:"output_format"`
	OutputDestination string `mapstructure:"output_destination"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

// LoadConfig initializes and reads the configuration using Viper.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate fails fast on configuration that indicates a content bug rather
// than a runtime condition.
func (cfg *Config) Validate() error {
	if cfg.TickIntervalMinutes <= 0 {
		return fmt.Errorf("tick_interval_minutes must be positive, got %d", cfg.TickIntervalMinutes)
	}
	if !cfg.EndDate.After(cfg.StartDate) {
		return fmt.Errorf("end_date %s is not after start_date %s", cfg.EndDate, cfg.StartDate)
	}
	if cfg.InitialVenues <= 0 {
		return fmt.Errorf("initial_venues must be positive, got %d", cfg.InitialVenues)
	}
	if cfg.MaxActiveCustomers <= 0 {
		return fmt.Errorf("max_active_customers must be positive, got %d", cfg.MaxActiveCustomers)
	}
	if cfg.StaffPerVenueMin <= 0 || cfg.StaffPerVenueMax < cfg.StaffPerVenueMin {
		return fmt.Errorf("invalid staff_per_venue range [%d,%d]", cfg.StaffPerVenueMin, cfg.StaffPerVenueMax)
	}
	if cfg.CityPopularityMultiplier <= 0 {
		return fmt.Errorf("city_popularity_multiplier must be positive, got %f", cfg.CityPopularityMultiplier)
	}
	if cfg.CityAffluence <= 0 {
		return fmt.Errorf("city_affluence must be positive, got %f", cfg.CityAffluence)
	}
	return nil
}

package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name             string `envconfig:"NAME" default:"bengkel"`
		Timezone         string `envconfig:"TIMEZONE" default:"Asia/Jakarta"`
		LogLevel         string `envconfig:"LOG_LEVEL"`
		StrictStatusFlow bool   `envconfig:"STRICT_STATUS_FLOW" default:"false"`
	} `envconfig:"APP"`

	Storage struct {
		Dir string `envconfig:"DIR" default:".bengkel"`
	} `envconfig:"STORAGE"`

	// Admin holds the seed credentials for the reserved administrator
	// account created on first run when the users collection is empty.
	Admin struct {
		ID       string `envconfig:"ID" default:"admin"`
		FullName string `envconfig:"FULL_NAME" default:"Administrator"`
		Username string `envconfig:"USERNAME" default:"admin"`
		Password string `envconfig:"PASSWORD" default:"admin123"`
		Email    string `envconfig:"EMAIL" default:"admin@bengkel.com"`
		Phone    string `envconfig:"PHONE" default:"081234567890"`
		Address  string `envconfig:"ADDRESS" default:"Jl. Admin No. 1"`
	} `envconfig:"ADMIN"`

	Cache struct {
		TTL int `envconfig:"TTL" default:"300"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Application configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

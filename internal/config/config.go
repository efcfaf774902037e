package config

import (
	"errors"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	CourseServiceURL     string        `env:"COURSE_SERVICE_URL" env-default:"http://localhost:8001/api"`
	AssessmentServiceURL string        `env:"ASSESSMENT_SERVICE_URL" env-default:"http://localhost:8082"`
	IdentityURL          string        `env:"IDENTITY_URL" env-default:"https://identitytoolkit.googleapis.com/v1"`
	IdentityAPIKey       string        `env:"IDENTITY_API_KEY"`
	TokenStore           string        `env:"TOKEN_STORE" env-default:"file"`
	TokenFile            string        `env:"TOKEN_FILE" env-default:".smartlearn/auth.json"`
	RedisURL             string        `env:"REDIS_URL" env-default:"localhost:6379"`
	CommandTimeout       time.Duration `env:"COMMAND_TIMEOUT" env-default:"30s"`
	HTTPTimeout          time.Duration `env:"HTTP_TIMEOUT" env-default:"15s"`
}

func New() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig("./config/.env", &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

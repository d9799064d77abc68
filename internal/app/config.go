package app

import (
	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/utils"
)

type Config struct {
	Port string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port: utils.GetEnv("PORT", "5000", log),
	}
}

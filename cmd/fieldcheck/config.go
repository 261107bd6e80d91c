package main

import (
	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/pattern"
)

type appConfig struct {
	Env              string `env:"APP_ENV" envDefault:"development"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"fieldcheck"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	PatternCacheSize int    `env:"PATTERN_CACHE_SIZE" envDefault:"256"`
	SpecsDir         string `env:"SPECS_DIR" envDefault:"./forms"`
	MessagesFile     string `env:"MESSAGES_FILE"`

	HTTP httpserver.Config
}

func (c appConfig) cacheSize() int {
	if c.PatternCacheSize <= 0 {
		return pattern.DefaultCacheSize
	}
	return c.PatternCacheSize
}

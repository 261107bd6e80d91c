// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached for the life of the process, so Load can be called
// from anywhere without re-reading the environment.
//
//	type ServerConfig struct {
//	    Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//	    SpecsDir string `env:"SPECS_DIR" envDefault:"./forms"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The default .env in the working directory is loaded on first use when it
// exists. LoadEnv loads explicit files instead; values already present in the
// process environment are never overwritten. Reload bypasses the cache and
// ResetCache drops every cached type, which tests rely on.
//
// Errors are sentinels comparable with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile, ErrNilPointer and ErrConfigNotLoaded.
package config

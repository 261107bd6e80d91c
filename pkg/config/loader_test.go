package config_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
)

type serverConfig struct {
	Addr      string `env:"FC_TEST_ADDR" envDefault:":8080"`
	CacheSize int    `env:"FC_TEST_CACHE_SIZE" envDefault:"256"`
	Debug     bool   `env:"FC_TEST_DEBUG" envDefault:"false"`
}

type overriddenConfig struct {
	Addr      string `env:"FC_TEST_OVERRIDE_ADDR" envDefault:":8080"`
	CacheSize int    `env:"FC_TEST_OVERRIDE_CACHE" envDefault:"256"`
}

type singletonConfig struct {
	Value string `env:"FC_TEST_SINGLETON" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"FC_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value    string   `env:"FC_TEST_FILE_VALUE"`
	List     []string `env:"FC_TEST_FILE_LIST" envSeparator:","`
	Priority string   `env:"FC_TEST_FILE_PRIORITY"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.False(t, cfg.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FC_TEST_OVERRIDE_ADDR", ":9090")
	t.Setenv("FC_TEST_OVERRIDE_CACHE", "16")

	var cfg overriddenConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 16, cfg.CacheSize)
}

func TestLoadIsCached(t *testing.T) {
	t.Setenv("FC_TEST_SINGLETON", "first")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("FC_TEST_SINGLETON", "second")

	var cached singletonConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, "first", cached.Value)

	var reloaded singletonConfig
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoadConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg serverConfig
			assert.NoError(t, config.Load(&cfg))
			assert.Equal(t, ":8080", cfg.Addr)
		}()
	}
	wg.Wait()
}

func TestLoadMissingRequired(t *testing.T) {
	os.Unsetenv("FC_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })

	t.Setenv("FC_TEST_REQUIRED", "present")
	require.NoError(t, config.Load(&cfg), "a failed parse is retried")
	assert.Equal(t, "present", cfg.Value)
}

func TestLoadNilPointer(t *testing.T) {
	assert.ErrorIs(t, config.Load[serverConfig](nil), config.ErrNilPointer)
	assert.ErrorIs(t, config.Reload[serverConfig](nil), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("FC_TEST_FILE_VALUE")
	os.Unsetenv("FC_TEST_FILE_LIST")
	t.Setenv("FC_TEST_FILE_PRIORITY", "process")
	t.Cleanup(func() {
		os.Unsetenv("FC_TEST_FILE_VALUE")
		os.Unsetenv("FC_TEST_FILE_LIST")
	})
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	assert.Equal(t, "process", cfg.Priority, "process environment wins over the file")

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}

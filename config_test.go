package taskline

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// chdir changes into dir for the duration of the test. It stands in for
// t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfigProjectFile(t *testing.T) {
	chdir(t, t.TempDir())
	err := os.WriteFile("taskline.toml", []byte("data_file = \"work.json\"\nlog_level = \"debug\"\n"), 0644)
	assert.NoError(t, err)

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "work.json", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigHiddenFile(t *testing.T) {
	chdir(t, t.TempDir())
	err := os.WriteFile(".taskline.toml", []byte("data_file = \"hidden.json\"\n"), 0644)
	assert.NoError(t, err)

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "hidden.json", cfg.DataFile)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel, "unset fields keep defaults")
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	chdir(t, t.TempDir())
	err := os.WriteFile("taskline.toml", []byte("data_file = \"work.json\"\n"), 0644)
	assert.NoError(t, err)
	t.Setenv("TASKLINE_FILE", "env.json")
	t.Setenv("TASKLINE_LOG_LEVEL", "error")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "env.json", cfg.DataFile)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	chdir(t, t.TempDir())
	err := os.WriteFile("taskline.toml", []byte("data_file = [broken\n"), 0644)
	assert.NoError(t, err)

	_, err = LoadConfig()
	assert.Error(t, err, "a broken config file is user input and must fail loudly")
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/ringlight/internal/config"
)

const testConfig = `
log:
  level: debug
health:
  pollInterval: 30s
simulator:
  propagationDelay: 1s
  devices:
    - id: "765432"
      name: Front
      capabilities: [light, siren]
      lights: "on"
  groups:
    - id: mock-group-id
      name: Landscape
      lights: true
`

func Test_LoadFile(t *testing.T) {

	t.Run("should read values from the file and fill in defaults", func(t *testing.T) {
		t.Parallel()

		// arrange
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

		// act
		cfg, err := config.LoadFile(path)

		// assert
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 30*time.Second, cfg.Health.PollInterval)
		assert.Equal(t, time.Second, cfg.Simulator.PropagationDelay)
		assert.Equal(t, 30*time.Second, cfg.Entities.ScanInterval)
		assert.Equal(t, 10.0, cfg.Entities.RefreshRate)
		assert.Equal(t, "ringlight.db", cfg.Database.Path)

		require.Len(t, cfg.Simulator.Devices, 1)
		assert.Equal(t, "765432", cfg.Simulator.Devices[0].ID)
		assert.Equal(t, []string{"light", "siren"}, cfg.Simulator.Devices[0].Capabilities)
		assert.Equal(t, "on", cfg.Simulator.Devices[0].Lights)

		require.Len(t, cfg.Simulator.Groups, 1)
		assert.Equal(t, "Landscape", cfg.Simulator.Groups[0].Name)
		assert.True(t, cfg.Simulator.Groups[0].Lights)
	})

	t.Run("missing file: should return an error", func(t *testing.T) {
		t.Parallel()

		// act
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

		// assert
		assert.Error(t, err)
	})
}

func Test_ParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, config.ParseLevel("DEBUG"))
	assert.Equal(t, log.ErrorLevel, config.ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, config.ParseLevel("nonsense"))
}

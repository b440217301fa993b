package config

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	cfg.Store(nil)
	v = nil
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  history_ascending: false
ui:
  window:
    width: 1024
    height: 768
  board:
    cell_size: 120
colors:
  mark_x: [10, 20, 30]
logging:
  level: debug
  format: json
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	resetGlobals()
	err = Init(configFile)
	require.NoError(t, err)

	c := Get()
	assert.False(t, c.Game.HistoryAscending)
	assert.Equal(t, 1024, c.UI.Window.Width)
	assert.Equal(t, 768, c.UI.Window.Height)
	assert.Equal(t, 120, c.UI.Board.CellSize)
	assert.Equal(t, [3]int{10, 20, 30}, c.Colors.MarkX)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, configFile, ConfigFilePath())

	// Untouched keys keep their defaults.
	assert.Equal(t, "Tic-Tac-Toe", c.UI.Window.Title)
	assert.Equal(t, [3]int{50, 100, 200}, c.Colors.MarkO)
}

func TestInitWithDefaults(t *testing.T) {
	resetGlobals()

	err := Init("/non/existent/path/config.yaml")
	require.NoError(t, err)

	c := Get()
	require.NotNil(t, c)
	assert.True(t, c.Game.HistoryAscending)
	assert.Equal(t, 96, c.UI.Board.CellSize)
	assert.Equal(t, [3]int{255, 215, 0}, c.Colors.WinLine)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.False(t, c.Development.VerboseEvents)
}

func TestInitRejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("ui:\n  board:\n    cell_size: 0\n"), 0644))

	resetGlobals()
	err := Init(configFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cell_size")
}

func TestInitRejectsMalformedFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("ui: [\n  window: {\n"), 0644))

	resetGlobals()
	err := Init(configFile)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestEnvironmentVariables(t *testing.T) {
	resetGlobals()

	t.Setenv("TTT_UI_WINDOW_WIDTH", "900")
	t.Setenv("TTT_LOGGING_LEVEL", "warn")
	t.Setenv("TTT_GAME_HISTORY_ASCENDING", "false")

	err := Init("")
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 900, c.UI.Window.Width)
	assert.Equal(t, "warn", c.Logging.Level)
	assert.False(t, c.Game.HistoryAscending)
}

func TestSet(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	Set("ui.board.cell_size", 64)
	Set("development.verbose_events", true)

	c := Get()
	assert.Equal(t, 64, c.UI.Board.CellSize)
	assert.True(t, c.Development.VerboseEvents)
}

func TestSetLeavesEarlierSnapshotsUnchanged(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	before := Get()
	Set("ui.window.width", 1000)

	assert.Equal(t, 640, before.UI.Window.Width)
	assert.Equal(t, 1000, Get().UI.Window.Width)
}

func TestWatchConfig_ReloadDuringReads(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("ui:\n  window:\n    width: 700\n"), 0644))

	resetGlobals()
	require.NoError(t, Init(configFile))
	before := Get()

	var reloaded atomic.Bool
	WatchConfig(func(err error) {
		if err == nil && Get().UI.Window.Width == 800 {
			reloaded.Store(true)
		}
	})

	done := make(chan struct{})
	var readers sync.WaitGroup
	for i := 0; i < 4; i++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-done:
					return
				default:
					c := Get()
					_ = c.UI.Window.Width + c.UI.Window.Height + c.UI.Board.CellSize
				}
			}
		}()
	}

	require.NoError(t, os.WriteFile(configFile, []byte("ui:\n  window:\n    width: 800\n"), 0644))
	assert.Eventually(t, reloaded.Load, 5*time.Second, 10*time.Millisecond)

	close(done)
	readers.Wait()

	assert.Equal(t, 700, before.UI.Window.Width)
	assert.Equal(t, 400, Get().UI.Window.Height)
}

func TestGetHelpers(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init(""))

	Set("test.string", "hello")
	Set("test.int", 42)
	Set("test.bool", true)

	assert.Equal(t, "hello", GetString("test.string"))
	assert.Equal(t, 42, GetInt("test.int"))
	assert.True(t, GetBool("test.bool"))
	assert.NotNil(t, GetViper())
}

func TestValidate(t *testing.T) {
	valid := func(t *testing.T) *Config {
		t.Helper()
		resetGlobals()
		require.NoError(t, Init(""))
		c := *Get()
		return &c
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"zero window", func(c *Config) { c.UI.Window.Width = 0 }, "ui.window"},
		{"negative offset", func(c *Config) { c.UI.Board.OffsetY = -1 }, "offsets"},
		{"zero row height", func(c *Config) { c.UI.History.RowHeight = 0 }, "row_height"},
		{"button taller than row", func(c *Config) { c.UI.History.ButtonHeight = c.UI.History.RowHeight + 1 }, "button_height"},
		{"color out of range", func(c *Config) { c.Colors.GridLines = [3]int{0, 256, 0} }, "colors.grid_lines[1]"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"json log format", func(c *Config) { c.Logging.Format = "JSON" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid(t)
			tt.mutate(c)
			err := Validate(c)
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	UI          UIConfig          `mapstructure:"ui"`
	Colors      ColorsConfig      `mapstructure:"colors"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game session settings
type GameConfig struct {
	HistoryAscending bool `mapstructure:"history_ascending"`
}

// UIConfig holds GUI client configuration
type UIConfig struct {
	Window  WindowConfig  `mapstructure:"window"`
	Board   BoardConfig   `mapstructure:"board"`
	History HistoryConfig `mapstructure:"history"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// BoardConfig places the 3x3 grid inside the window
type BoardConfig struct {
	CellSize int `mapstructure:"cell_size"`
	OffsetX  int `mapstructure:"offset_x"`
	OffsetY  int `mapstructure:"offset_y"`
}

// HistoryConfig places the status line, reverse button and history list
type HistoryConfig struct {
	X            int `mapstructure:"x"`
	Y            int `mapstructure:"y"`
	RowHeight    int `mapstructure:"row_height"`
	ButtonWidth  int `mapstructure:"button_width"`
	ButtonHeight int `mapstructure:"button_height"`
}

// ColorsConfig holds RGB colors for the GUI
type ColorsConfig struct {
	Background   [3]int `mapstructure:"background"`
	Cell         [3]int `mapstructure:"cell"`
	WinLine      [3]int `mapstructure:"win_line"`
	MarkX        [3]int `mapstructure:"mark_x"`
	MarkO        [3]int `mapstructure:"mark_o"`
	GridLines    [3]int `mapstructure:"grid_lines"`
	Text         [3]int `mapstructure:"text"`
	CurrentEntry [3]int `mapstructure:"current_entry"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseEvents   bool `mapstructure:"verbose_events"`
	ShowCoordinates bool `mapstructure:"show_coordinates"`
}

var (
	// Global config instance. Readers get an immutable snapshot; updates
	// swap in a new *Config.
	cfg atomic.Pointer[Config]
	v   *viper.Viper

	// mu serializes updates that decode from v.
	mu sync.Mutex
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.history_ascending", true)

	// UI defaults
	v.SetDefault("ui.window.width", 640)
	v.SetDefault("ui.window.height", 400)
	v.SetDefault("ui.window.title", "Tic-Tac-Toe")
	v.SetDefault("ui.board.cell_size", 96)
	v.SetDefault("ui.board.offset_x", 32)
	v.SetDefault("ui.board.offset_y", 48)
	v.SetDefault("ui.history.x", 360)
	v.SetDefault("ui.history.y", 48)
	v.SetDefault("ui.history.row_height", 22)
	v.SetDefault("ui.history.button_width", 240)
	v.SetDefault("ui.history.button_height", 20)

	// Color defaults
	v.SetDefault("colors.background", []int{30, 30, 36})
	v.SetDefault("colors.cell", []int{235, 235, 235})
	v.SetDefault("colors.win_line", []int{255, 215, 0})
	v.SetDefault("colors.mark_x", []int{200, 50, 50})
	v.SetDefault("colors.mark_o", []int{50, 100, 200})
	v.SetDefault("colors.grid_lines", []int{60, 60, 60})
	v.SetDefault("colors.text", []int{230, 230, 230})
	v.SetDefault("colors.current_entry", []int{255, 215, 0})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("development.verbose_events", false)
	v.SetDefault("development.show_coordinates", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/tictactoe")
	}

	v.SetEnvPrefix("TTT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("error reading config file: %w", err)
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Store(c)
	return nil
}

// isNotFound reports a missing config file. Only a missing file falls back to
// defaults; unreadable or malformed files are errors.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Get returns the current config. The returned value must not be modified.
func Get() *Config {
	if c := cfg.Load(); c != nil {
		return c
	}
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	return cfg.Load()
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	mu.Lock()
	defer mu.Unlock()

	v.Set(key, value)
	next := &Config{}
	if err := v.Unmarshal(next); err == nil {
		cfg.Store(next)
	}
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. A reload that fails
// validation keeps the previous values and is reported through onChange.
func WatchConfig(onChange func(error)) {
	w := v
	w.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		mu.Lock()
		next := &Config{}
		err := w.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err == nil {
			cfg.Store(next)
		}
		mu.Unlock()

		if onChange != nil {
			onChange(err)
		}
	})
	w.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.Board.CellSize <= 0 {
		return fmt.Errorf("ui.board.cell_size must be positive")
	}
	if c.UI.Board.OffsetX < 0 || c.UI.Board.OffsetY < 0 {
		return fmt.Errorf("ui.board offsets must be non-negative")
	}
	if c.UI.History.RowHeight <= 0 {
		return fmt.Errorf("ui.history.row_height must be positive")
	}
	if c.UI.History.ButtonWidth <= 0 || c.UI.History.ButtonHeight <= 0 {
		return fmt.Errorf("ui.history button dimensions must be positive")
	}
	if c.UI.History.ButtonHeight > c.UI.History.RowHeight {
		return fmt.Errorf("ui.history.button_height must not exceed row_height")
	}

	validateRGB := func(rgb [3]int, name string) error {
		for i, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}

	colors := []struct {
		rgb  [3]int
		name string
	}{
		{c.Colors.Background, "colors.background"},
		{c.Colors.Cell, "colors.cell"},
		{c.Colors.WinLine, "colors.win_line"},
		{c.Colors.MarkX, "colors.mark_x"},
		{c.Colors.MarkO, "colors.mark_o"},
		{c.Colors.GridLines, "colors.grid_lines"},
		{c.Colors.Text, "colors.text"},
		{c.Colors.CurrentEntry, "colors.current_entry"},
	}
	for _, col := range colors {
		if err := validateRGB(col.rgb, col.name); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}

// Package config loads the TOML configuration, writing a default file on
// first launch.
package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultBaseURL        = "http://localhost:5094"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Help    string `toml:"help"`
	Refresh string `toml:"refresh"`
	Create  string `toml:"create"`
	Edit    string `toml:"edit"`
	Delete  string `toml:"delete"`
	Left    string `toml:"left"`
	Right   string `toml:"right"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	ZoomIn  string `toml:"zoom_in"`
	ZoomOut string `toml:"zoom_out"`
	Today   string `toml:"today"`
	Start   string `toml:"start"`
	Jump    string `toml:"jump"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
	First   string `toml:"first"`
	Last    string `toml:"last"`
}

// Timeline holds the viewport tuning knobs.
type Timeline struct {
	MinZoom        float64 `toml:"min_zoom"`
	MaxZoom        float64 `toml:"max_zoom"`
	LookbackDays   int     `toml:"lookback_days"`
	DayStep        int     `toml:"day_step"`
	WeekStep       int     `toml:"week_step"`
	SidePanelWidth int     `toml:"side_panel_width"`
}

type Config struct {
	BaseURL        string   `toml:"base_url"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
	TickMillis     int      `toml:"tick_ms"`
	Keys           Keymap   `toml:"keys"`
	Timeline       Timeline `toml:"timeline"`
}

// ResolveConfigPath prefers the user config dir, falling back to the working
// directory when it cannot be determined.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "sweem", DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// fillDefaults backfills zero values so a hand-edited partial file still
// yields a working configuration.
func (c *Config) fillDefaults() {
	d := defaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = d.TimeoutSeconds
	}
	if c.TickMillis <= 0 {
		c.TickMillis = d.TickMillis
	}
	if c.Timeline.MinZoom <= 0 {
		c.Timeline.MinZoom = d.Timeline.MinZoom
	}
	if c.Timeline.MaxZoom <= 0 {
		c.Timeline.MaxZoom = d.Timeline.MaxZoom
	}
	if c.Timeline.LookbackDays <= 0 {
		c.Timeline.LookbackDays = d.Timeline.LookbackDays
	}
	if c.Timeline.DayStep <= 0 {
		c.Timeline.DayStep = d.Timeline.DayStep
	}
	if c.Timeline.WeekStep <= 0 {
		c.Timeline.WeekStep = d.Timeline.WeekStep
	}
	if c.Timeline.SidePanelWidth <= 0 {
		c.Timeline.SidePanelWidth = d.Timeline.SidePanelWidth
	}
	fillKey(&c.Keys.Quit, d.Keys.Quit)
	fillKey(&c.Keys.Help, d.Keys.Help)
	fillKey(&c.Keys.Refresh, d.Keys.Refresh)
	fillKey(&c.Keys.Create, d.Keys.Create)
	fillKey(&c.Keys.Edit, d.Keys.Edit)
	fillKey(&c.Keys.Delete, d.Keys.Delete)
	fillKey(&c.Keys.Left, d.Keys.Left)
	fillKey(&c.Keys.Right, d.Keys.Right)
	fillKey(&c.Keys.Up, d.Keys.Up)
	fillKey(&c.Keys.Down, d.Keys.Down)
	fillKey(&c.Keys.ZoomIn, d.Keys.ZoomIn)
	fillKey(&c.Keys.ZoomOut, d.Keys.ZoomOut)
	fillKey(&c.Keys.Today, d.Keys.Today)
	fillKey(&c.Keys.Start, d.Keys.Start)
	fillKey(&c.Keys.Jump, d.Keys.Jump)
	fillKey(&c.Keys.Confirm, d.Keys.Confirm)
	fillKey(&c.Keys.Cancel, d.Keys.Cancel)
	fillKey(&c.Keys.First, d.Keys.First)
	fillKey(&c.Keys.Last, d.Keys.Last)
}

func fillKey(binding *string, def string) {
	if *binding == "" {
		*binding = def
	}
}

func defaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: 30,
		TickMillis:     33,
		Keys: Keymap{
			Quit:    "q",
			Help:    "?",
			Refresh: "r",
			Create:  "c",
			Edit:    "e",
			Delete:  "d",
			Left:    "h",
			Right:   "l",
			Up:      "k",
			Down:    "j",
			ZoomIn:  "+",
			ZoomOut: "-",
			Today:   "t",
			Start:   "home",
			Jump:    "enter",
			Confirm: "enter",
			Cancel:  "esc",
			First:   "g",
			Last:    "G",
		},
		Timeline: Timeline{
			MinZoom:        0.25,
			MaxZoom:        14.0,
			LookbackDays:   30,
			DayStep:        1,
			WeekStep:       7,
			SidePanelWidth: 26,
		},
	}
}

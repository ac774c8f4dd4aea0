// Package config handles picsort configuration loading.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Loop        LoopConfig       `yaml:"loop"`
	GUI         GUIConfig        `yaml:"gui"`
	Logging     LoggingConfig    `yaml:"logging"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// WindowConfig holds the main window settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
	// WaitTimeout bounds a blocking wait for events. Zero waits forever.
	WaitTimeout time.Duration `yaml:"wait_timeout"`
}

// LoopConfig holds frame loop settings.
type LoopConfig struct {
	// PollsPerWait is the number of non-blocking polls between two
	// blocking waits.
	PollsPerWait int `yaml:"polls_per_wait"`
}

// GUIConfig holds immediate-mode GUI settings.
type GUIConfig struct {
	FontPath   string     `yaml:"font_path"` // TTF file, empty for the built-in font
	FontSize   float32    `yaml:"font_size"`
	FontScale  float32    `yaml:"font_scale"` // applied on top of the display density
	ClearColor [3]float32 `yaml:"clear_color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds screenshot settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:       1280,
			Height:      720,
			Title:       "picsort",
			VSync:       true,
			WaitTimeout: 500 * time.Millisecond,
		},
		Loop: LoopConfig{
			PollsPerWait: 5,
		},
		GUI: GUIConfig{
			FontSize:   13,
			FontScale:  1,
			ClearColor: [3]float32{0.3, 0.3, 0.3},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
	}
}

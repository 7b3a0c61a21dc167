// Package config loads the gaze cursor settings file.
package config

import "time"

// DefaultPath is where the settings file is looked up when no path is given.
const DefaultPath = "config.json"

// Config holds the tuning parameters read once at startup. Key names match
// the settings files written by earlier versions of the tool.
type Config struct {
	SmoothingFactor            float64    `json:"SMOOTHING_FACTOR" toml:"SMOOTHING_FACTOR" yaml:"SMOOTHING_FACTOR"`
	HorizontalSensitivity      [2]float64 `json:"HORIZONTAL_SENSITIVITY" toml:"HORIZONTAL_SENSITIVITY" yaml:"HORIZONTAL_SENSITIVITY"`
	VerticalSensitivity        [2]float64 `json:"VERTICAL_SENSITIVITY" toml:"VERTICAL_SENSITIVITY" yaml:"VERTICAL_SENSITIVITY"`
	BlinkEARThreshold          float64    `json:"BLINK_EAR_THRESHOLD" toml:"BLINK_EAR_THRESHOLD" yaml:"BLINK_EAR_THRESHOLD"`
	ClickDurationSeconds       float64    `json:"CLICK_DURATION_SECONDS" toml:"CLICK_DURATION_SECONDS" yaml:"CLICK_DURATION_SECONDS"`
	DoubleClickIntervalSeconds float64    `json:"DOUBLE_CLICK_INTERVAL_SECONDS" toml:"DOUBLE_CLICK_INTERVAL_SECONDS" yaml:"DOUBLE_CLICK_INTERVAL_SECONDS"`

	// RightClickEARMargin is how far above the blink threshold the left eye
	// must be before a right wink counts. It is an absolute EAR offset and does
	// not scale with BlinkEARThreshold.
	RightClickEARMargin  float64 `json:"RIGHT_CLICK_EAR_MARGIN" toml:"RIGHT_CLICK_EAR_MARGIN" yaml:"RIGHT_CLICK_EAR_MARGIN"`
	PauseCooldownSeconds float64 `json:"PAUSE_COOLDOWN_SECONDS" toml:"PAUSE_COOLDOWN_SECONDS" yaml:"PAUSE_COOLDOWN_SECONDS"`
	PausedIdleSeconds    float64 `json:"PAUSED_IDLE_SECONDS" toml:"PAUSED_IDLE_SECONDS" yaml:"PAUSED_IDLE_SECONDS"`
	PauseKey             string  `json:"PAUSE_KEY" toml:"PAUSE_KEY" yaml:"PAUSE_KEY"`
	QuitKey              string  `json:"QUIT_KEY" toml:"QUIT_KEY" yaml:"QUIT_KEY"`

	CameraDevices   []int    `json:"CAMERA_DEVICES" toml:"CAMERA_DEVICES" yaml:"CAMERA_DEVICES"`
	DetectorCommand []string `json:"DETECTOR_COMMAND" toml:"DETECTOR_COMMAND" yaml:"DETECTOR_COMMAND"`
	AudioFeedback   bool     `json:"AUDIO_FEEDBACK" toml:"AUDIO_FEEDBACK" yaml:"AUDIO_FEEDBACK"`
	AudioVolume     float64  `json:"AUDIO_VOLUME" toml:"AUDIO_VOLUME" yaml:"AUDIO_VOLUME"`

	LogLevel  string `json:"LOG_LEVEL" toml:"LOG_LEVEL" yaml:"LOG_LEVEL"`
	LogFormat string `json:"LOG_FORMAT" toml:"LOG_FORMAT" yaml:"LOG_FORMAT"`
}

// Default returns the settings written on first run.
func Default() *Config {
	return &Config{
		SmoothingFactor:            0.7,
		HorizontalSensitivity:      [2]float64{0.2, 0.8},
		VerticalSensitivity:        [2]float64{0.3, 0.5},
		BlinkEARThreshold:          0.2,
		ClickDurationSeconds:       0.25,
		DoubleClickIntervalSeconds: 0.5,

		RightClickEARMargin:  0.1,
		PauseCooldownSeconds: 0.2,
		PausedIdleSeconds:    0.1,
		PauseKey:             "space",
		QuitKey:              "q",

		CameraDevices:   []int{0, 1},
		DetectorCommand: []string{"facemesh-detector"},
		AudioFeedback:   false,
		AudioVolume:     0.5,

		LogLevel:  "info",
		LogFormat: "text",
	}
}

func (c *Config) ClickDuration() time.Duration {
	return seconds(c.ClickDurationSeconds)
}

func (c *Config) DoubleClickInterval() time.Duration {
	return seconds(c.DoubleClickIntervalSeconds)
}

func (c *Config) PauseCooldown() time.Duration {
	return seconds(c.PauseCooldownSeconds)
}

func (c *Config) PausedIdle() time.Duration {
	return seconds(c.PausedIdleSeconds)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

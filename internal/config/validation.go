package config

import (
	"fmt"
	"strings"
)

// ValidationError describes one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is every problem found in one settings file.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks value ranges the schema cannot express.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.SmoothingFactor < 0 || c.SmoothingFactor >= 1 {
		errs = append(errs, ValidationError{"SMOOTHING_FACTOR", fmt.Sprintf("must be in [0, 1), got %g", c.SmoothingFactor)})
	}
	if c.HorizontalSensitivity[0] >= c.HorizontalSensitivity[1] {
		errs = append(errs, ValidationError{"HORIZONTAL_SENSITIVITY", fmt.Sprintf("low %g must be below high %g", c.HorizontalSensitivity[0], c.HorizontalSensitivity[1])})
	}
	if c.VerticalSensitivity[0] >= c.VerticalSensitivity[1] {
		errs = append(errs, ValidationError{"VERTICAL_SENSITIVITY", fmt.Sprintf("low %g must be below high %g", c.VerticalSensitivity[0], c.VerticalSensitivity[1])})
	}
	if c.BlinkEARThreshold <= 0 {
		errs = append(errs, ValidationError{"BLINK_EAR_THRESHOLD", "must be positive"})
	}
	if c.ClickDurationSeconds <= 0 {
		errs = append(errs, ValidationError{"CLICK_DURATION_SECONDS", "must be positive"})
	}
	if c.DoubleClickIntervalSeconds <= 0 {
		errs = append(errs, ValidationError{"DOUBLE_CLICK_INTERVAL_SECONDS", "must be positive"})
	}
	if c.RightClickEARMargin < 0 {
		errs = append(errs, ValidationError{"RIGHT_CLICK_EAR_MARGIN", "must not be negative"})
	}
	if c.PauseCooldownSeconds < 0 {
		errs = append(errs, ValidationError{"PAUSE_COOLDOWN_SECONDS", "must not be negative"})
	}
	if c.PausedIdleSeconds < 0 {
		errs = append(errs, ValidationError{"PAUSED_IDLE_SECONDS", "must not be negative"})
	}
	if strings.TrimSpace(c.PauseKey) == "" {
		errs = append(errs, ValidationError{"PAUSE_KEY", "must not be empty"})
	}
	if strings.TrimSpace(c.QuitKey) == "" {
		errs = append(errs, ValidationError{"QUIT_KEY", "must not be empty"})
	}
	if c.PauseKey == c.QuitKey {
		errs = append(errs, ValidationError{"QUIT_KEY", "must differ from PAUSE_KEY"})
	}
	if c.AudioVolume < 0 || c.AudioVolume > 1 {
		errs = append(errs, ValidationError{"AUDIO_VOLUME", fmt.Sprintf("must be in [0, 1], got %g", c.AudioVolume)})
	}
	if len(c.CameraDevices) == 0 {
		errs = append(errs, ValidationError{"CAMERA_DEVICES", "at least one device is required"})
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{"LOG_FORMAT", fmt.Sprintf("unsupported format %q", c.LogFormat)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

package gesture

// Config holds every tunable threshold used by the recognizers. A Config
// is fixed at recognizer-set construction; switching presets means
// building a fresh set. Distances are in screen points, durations in
// milliseconds, angles in radians.
type Config struct {
	TapMaxDurationMs       int64   `json:"tap_max_duration_ms"`
	TapMaxDistance         float64 `json:"tap_max_distance"`
	DoubleTapMaxIntervalMs int64   `json:"double_tap_max_interval_ms"`
	TripleTapMaxIntervalMs int64   `json:"triple_tap_max_interval_ms"`
	LongPressMinDurationMs int64   `json:"long_press_min_duration_ms"`
	LongPressMaxMovement   float64 `json:"long_press_max_movement"`
	SwipeMinDistance       float64 `json:"swipe_min_distance"`
	SwipeMinVelocity       float64 `json:"swipe_min_velocity"`
	SwipeMaxDurationMs     int64   `json:"swipe_max_duration_ms"`
	PinchMinScaleChange    float64 `json:"pinch_min_scale_change"`
	RotationMinAngleChange float64 `json:"rotation_min_angle_change"`
	PanMinDistance         float64 `json:"pan_min_distance"`
	EdgeThreshold          float64 `json:"edge_threshold"`
	ScreenWidth            float64 `json:"screen_width"`
	ScreenHeight           float64 `json:"screen_height"`
	TouchSlop              float64 `json:"touch_slop"`
}

// DefaultConfig returns thresholds tuned for a phone-sized touchscreen.
func DefaultConfig() Config {
	return Config{
		TapMaxDurationMs:       300,
		TapMaxDistance:         10.0,
		DoubleTapMaxIntervalMs: 300,
		TripleTapMaxIntervalMs: 300,
		LongPressMinDurationMs: 500,
		LongPressMaxMovement:   10.0,
		SwipeMinDistance:       50.0,
		SwipeMinVelocity:       100.0,
		SwipeMaxDurationMs:     500,
		PinchMinScaleChange:    0.02,
		RotationMinAngleChange: 0.05,
		PanMinDistance:         5.0,
		EdgeThreshold:          20.0,
		ScreenWidth:            390.0,
		ScreenHeight:           844.0,
		TouchSlop:              8.0,
	}
}

// IOSNavigationConfig mimics iOS system navigation: tight edge zones and
// snappier swipes for back-gesture style interaction.
func IOSNavigationConfig() Config {
	c := DefaultConfig()
	c.EdgeThreshold = 16.0
	c.SwipeMinVelocity = 120.0
	c.SwipeMaxDurationMs = 400
	return c
}

// MacOSTrackpadConfig tunes for trackpad input: fine pointer precision,
// sensitive pinch and rotation, desktop screen dimensions.
func MacOSTrackpadConfig() Config {
	c := DefaultConfig()
	c.TapMaxDistance = 6.0
	c.TouchSlop = 4.0
	c.PinchMinScaleChange = 0.01
	c.RotationMinAngleChange = 0.02
	c.PanMinDistance = 2.0
	c.ScreenWidth = 1440.0
	c.ScreenHeight = 900.0
	return c
}

// TouchscreenConfig tunes for large capacitive panels where fingers are
// less precise than on a phone.
func TouchscreenConfig() Config {
	c := DefaultConfig()
	c.TapMaxDistance = 12.0
	c.TouchSlop = 10.0
	c.SwipeMinDistance = 60.0
	return c
}

// GamingConfig trades tolerance for latency: short tap windows and fast
// swipes so inputs resolve as quickly as possible.
func GamingConfig() Config {
	c := DefaultConfig()
	c.TapMaxDurationMs = 150
	c.DoubleTapMaxIntervalMs = 200
	c.TripleTapMaxIntervalMs = 200
	c.LongPressMinDurationMs = 300
	c.SwipeMaxDurationMs = 300
	c.SwipeMinVelocity = 200.0
	c.PanMinDistance = 3.0
	return c
}

// AccessibilityConfig relaxes every timing and distance constraint for
// users with limited dexterity.
func AccessibilityConfig() Config {
	c := DefaultConfig()
	c.TapMaxDurationMs = 600
	c.TapMaxDistance = 20.0
	c.DoubleTapMaxIntervalMs = 600
	c.TripleTapMaxIntervalMs = 600
	c.LongPressMinDurationMs = 700
	c.LongPressMaxMovement = 20.0
	c.SwipeMinVelocity = 50.0
	c.SwipeMaxDurationMs = 900
	c.PinchMinScaleChange = 0.05
	c.RotationMinAngleChange = 0.1
	c.PanMinDistance = 10.0
	return c
}

// presets maps preset names to their constructors. "default" is the
// fallback for unknown names in ConfigForPreset.
var presets = map[string]func() Config{
	"default":        DefaultConfig,
	"ios_navigation": IOSNavigationConfig,
	"macos_trackpad": MacOSTrackpadConfig,
	"touchscreen":    TouchscreenConfig,
	"gaming":         GamingConfig,
	"accessibility":  AccessibilityConfig,
}

// PresetNames returns the known preset names in stable order.
func PresetNames() []string {
	return []string{"default", "ios_navigation", "macos_trackpad", "touchscreen", "gaming", "accessibility"}
}

// ConfigForPreset returns the named preset's config and whether the name
// was known. Unknown names return DefaultConfig and false.
func ConfigForPreset(name string) (Config, bool) {
	fn, ok := presets[name]
	if !ok {
		return DefaultConfig(), false
	}
	return fn(), true
}

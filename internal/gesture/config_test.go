package gesture

import "testing"

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if c.TapMaxDurationMs != 300 {
		t.Errorf("TapMaxDurationMs = %d, want 300", c.TapMaxDurationMs)
	}
	if c.TapMaxDistance != 10.0 {
		t.Errorf("TapMaxDistance = %v, want 10.0", c.TapMaxDistance)
	}
	if c.LongPressMinDurationMs != 500 {
		t.Errorf("LongPressMinDurationMs = %d, want 500", c.LongPressMinDurationMs)
	}
	if c.SwipeMinDistance != 50.0 {
		t.Errorf("SwipeMinDistance = %v, want 50.0", c.SwipeMinDistance)
	}
	if c.SwipeMinVelocity != 100.0 {
		t.Errorf("SwipeMinVelocity = %v, want 100.0", c.SwipeMinVelocity)
	}
	if c.PinchMinScaleChange != 0.02 {
		t.Errorf("PinchMinScaleChange = %v, want 0.02", c.PinchMinScaleChange)
	}
	if c.RotationMinAngleChange != 0.05 {
		t.Errorf("RotationMinAngleChange = %v, want 0.05", c.RotationMinAngleChange)
	}
	if c.EdgeThreshold != 20.0 {
		t.Errorf("EdgeThreshold = %v, want 20.0", c.EdgeThreshold)
	}
	if c.ScreenWidth != 390.0 || c.ScreenHeight != 844.0 {
		t.Errorf("screen = %vx%v, want 390x844", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TouchSlop != 8.0 {
		t.Errorf("TouchSlop = %v, want 8.0", c.TouchSlop)
	}
}

func TestPresetsOverrideSubsets(t *testing.T) {
	def := DefaultConfig()

	trackpad := MacOSTrackpadConfig()
	if trackpad.TapMaxDistance >= def.TapMaxDistance {
		t.Errorf("trackpad TapMaxDistance = %v, want tighter than default %v",
			trackpad.TapMaxDistance, def.TapMaxDistance)
	}
	if trackpad.LongPressMinDurationMs != def.LongPressMinDurationMs {
		t.Errorf("trackpad LongPressMinDurationMs = %d, want default %d untouched",
			trackpad.LongPressMinDurationMs, def.LongPressMinDurationMs)
	}

	gaming := GamingConfig()
	if gaming.TapMaxDurationMs >= def.TapMaxDurationMs {
		t.Errorf("gaming TapMaxDurationMs = %d, want shorter than default %d",
			gaming.TapMaxDurationMs, def.TapMaxDurationMs)
	}

	access := AccessibilityConfig()
	if access.TapMaxDurationMs <= def.TapMaxDurationMs {
		t.Errorf("accessibility TapMaxDurationMs = %d, want longer than default %d",
			access.TapMaxDurationMs, def.TapMaxDurationMs)
	}
	if access.SwipeMinVelocity >= def.SwipeMinVelocity {
		t.Errorf("accessibility SwipeMinVelocity = %v, want lower than default %v",
			access.SwipeMinVelocity, def.SwipeMinVelocity)
	}

	ios := IOSNavigationConfig()
	if ios.EdgeThreshold >= def.EdgeThreshold {
		t.Errorf("ios EdgeThreshold = %v, want tighter than default %v",
			ios.EdgeThreshold, def.EdgeThreshold)
	}
}

func TestConfigForPreset(t *testing.T) {
	for _, name := range PresetNames() {
		if _, ok := ConfigForPreset(name); !ok {
			t.Errorf("ConfigForPreset(%q) reported unknown", name)
		}
	}

	c, ok := ConfigForPreset("no-such-preset")
	if ok {
		t.Error("ConfigForPreset(\"no-such-preset\") reported known")
	}
	if c != DefaultConfig() {
		t.Error("unknown preset did not fall back to defaults")
	}
}

package model

// TreeTheme selects the seasonal palette for the tree.
type TreeTheme string

const (
	ThemeDefault TreeTheme = "default"
	ThemeAutumn  TreeTheme = "autumn"
	ThemeSpring  TreeTheme = "spring"
	ThemeWinter  TreeTheme = "winter"
)

// AmbientSound selects the looping background sound.
type AmbientSound string

const (
	AmbientNone   AmbientSound = "none"
	AmbientRain   AmbientSound = "rain"
	AmbientForest AmbientSound = "forest"
	AmbientOcean  AmbientSound = "ocean"
)

// Settings defines editable user preferences.
type Settings struct {
	FocusMinutes int
	TreeTheme    TreeTheme
	Ambient      AmbientSound
	Autostart    bool
}

// DefaultSettings returns default settings for FocusTree.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes: 25,
		TreeTheme:    ThemeDefault,
		Ambient:      AmbientNone,
		Autostart:    false,
	}
}

// ValidTheme reports whether the value names a known tree theme.
func ValidTheme(value TreeTheme) bool {
	switch value {
	case ThemeDefault, ThemeAutumn, ThemeSpring, ThemeWinter:
		return true
	}
	return false
}

// ValidAmbient reports whether the value names a known ambient sound.
func ValidAmbient(value AmbientSound) bool {
	switch value {
	case AmbientNone, AmbientRain, AmbientForest, AmbientOcean:
		return true
	}
	return false
}

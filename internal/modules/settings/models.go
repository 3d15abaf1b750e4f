package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Setting keys stored in config.db
const (
	KeyTheme              = "theme"
	KeyDisclaimerAccepted = "disclaimer_accepted"
	KeyActiveTab          = "active_tab"

	// SIPKeyPrefix prefixes per-fund SIP overrides, e.g. "sip_active:mf-0"
	SIPKeyPrefix = "sip_active:"
)

// Theme is the UI colour scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Tab is a portfolio page tab
type Tab string

const (
	TabEquity Tab = "equity"
	TabFnO    Tab = "fno"
	TabMF     Tab = "mf"
)

// ErrInvalidSetting is returned for a value outside a setting's allowed set
var ErrInvalidSetting = errors.New("invalid setting value")

// SettingDefaults holds the value used when a key has never been stored
var SettingDefaults = map[string]string{
	KeyTheme:              string(ThemeDark),
	KeyDisclaimerAccepted: "false",
	KeyActiveTab:          string(TabEquity),
}

// SettingDescriptions documents each preference
var SettingDescriptions = map[string]string{
	KeyTheme:              "Colour scheme: dark or light",
	KeyDisclaimerAccepted: "Whether the user acknowledged that all market data is simulated",
	KeyActiveTab:          "Last opened portfolio tab: equity, fno or mf",
}

// Preferences is the typed snapshot of the UI preferences
type Preferences struct {
	Theme              Theme `json:"theme"`
	DisclaimerAccepted bool  `json:"disclaimer_accepted"`
	ActiveTab          Tab   `json:"active_tab"`
}

// DefaultPreferences returns the preferences of a fresh install
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeDark, DisclaimerAccepted: false, ActiveTab: TabEquity}
}

// PreferencesUpdate is a partial update; nil fields are left unchanged
type PreferencesUpdate struct {
	Theme              *string `json:"theme,omitempty"`
	DisclaimerAccepted *bool   `json:"disclaimer_accepted,omitempty"`
	ActiveTab          *string `json:"active_tab,omitempty"`
}

// ParseTheme validates a theme name (case-insensitive)
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeDark, ThemeLight:
		return t, nil
	default:
		return "", fmt.Errorf("theme %q: %w", s, ErrInvalidSetting)
	}
}

// ParseTab validates a tab name (case-insensitive)
func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabEquity, TabFnO, TabMF:
		return t, nil
	default:
		return "", fmt.Errorf("active tab %q: %w", s, ErrInvalidSetting)
	}
}

// SIPKey returns the settings key of a fund's SIP override
func SIPKey(fundID string) string {
	return SIPKeyPrefix + fundID
}

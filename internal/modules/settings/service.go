package settings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aristath/bazaar/internal/events"
	"github.com/rs/zerolog"
)

// Service owns the preferences snapshot. Load reads it once at startup; Update
// writes through to the repository and replaces the snapshot.
type Service struct {
	repo   *Repository
	events *events.Manager
	mu     sync.RWMutex
	prefs  Preferences
	log    zerolog.Logger
}

// NewService creates a settings service. eventManager may be nil.
func NewService(repo *Repository, eventManager *events.Manager, log zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		events: eventManager,
		prefs:  DefaultPreferences(),
		log:    log.With().Str("service", "settings").Logger(),
	}
}

// Load reads the stored preferences into the snapshot. Stored values outside
// the allowed set fall back to their defaults.
func (s *Service) Load() (Preferences, error) {
	prefs := DefaultPreferences()

	theme, err := s.repo.Get(KeyTheme)
	if err != nil {
		return prefs, err
	}
	if theme != nil {
		if t, err := ParseTheme(*theme); err == nil {
			prefs.Theme = t
		} else {
			s.log.Warn().Str("value", *theme).Msg("Ignoring stored theme")
		}
	}

	tab, err := s.repo.Get(KeyActiveTab)
	if err != nil {
		return prefs, err
	}
	if tab != nil {
		if t, err := ParseTab(*tab); err == nil {
			prefs.ActiveTab = t
		} else {
			s.log.Warn().Str("value", *tab).Msg("Ignoring stored active tab")
		}
	}

	prefs.DisclaimerAccepted, err = s.repo.GetBool(KeyDisclaimerAccepted, false)
	if err != nil {
		return prefs, err
	}

	s.mu.Lock()
	s.prefs = prefs
	s.mu.Unlock()

	s.log.Debug().
		Str("theme", string(prefs.Theme)).
		Str("active_tab", string(prefs.ActiveTab)).
		Bool("disclaimer_accepted", prefs.DisclaimerAccepted).
		Msg("Preferences loaded")
	return prefs, nil
}

// Preferences returns the current snapshot
func (s *Service) Preferences() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Update validates every field of u before storing any of them
func (s *Service) Update(u PreferencesUpdate) (Preferences, error) {
	type change struct {
		key   string
		value string
		typed interface{}
	}
	var changes []change

	if u.Theme != nil {
		t, err := ParseTheme(*u.Theme)
		if err != nil {
			return s.Preferences(), err
		}
		changes = append(changes, change{KeyTheme, string(t), t})
	}
	if u.ActiveTab != nil {
		t, err := ParseTab(*u.ActiveTab)
		if err != nil {
			return s.Preferences(), err
		}
		changes = append(changes, change{KeyActiveTab, string(t), t})
	}
	if u.DisclaimerAccepted != nil {
		changes = append(changes, change{KeyDisclaimerAccepted, FormatBool(*u.DisclaimerAccepted), *u.DisclaimerAccepted})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range changes {
		desc := SettingDescriptions[c.key]
		if err := s.repo.Set(c.key, c.value, &desc); err != nil {
			return s.prefs, err
		}
		switch v := c.typed.(type) {
		case Theme:
			s.prefs.Theme = v
		case Tab:
			s.prefs.ActiveTab = v
		case bool:
			s.prefs.DisclaimerAccepted = v
		}
		if s.events != nil {
			s.events.Emit("settings", &events.SettingsChangedData{Key: c.key, Value: c.typed})
		}
	}

	return s.prefs, nil
}

// SIPOverrides returns the stored SIP state keyed by fund id
func (s *Service) SIPOverrides() (map[string]bool, error) {
	raw, err := s.repo.GetByPrefix(SIPKeyPrefix)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]bool, len(raw))
	for fundID, v := range raw {
		overrides[fundID] = ParseBool(v)
	}
	return overrides, nil
}

// SetSIPActive stores a fund's SIP state
func (s *Service) SetSIPActive(fundID string, active bool) error {
	fundID = strings.TrimSpace(fundID)
	if fundID == "" {
		return fmt.Errorf("fund id: %w", ErrInvalidSetting)
	}
	if err := s.repo.SetBool(SIPKey(fundID), active); err != nil {
		return err
	}
	if s.events != nil {
		s.events.Emit("settings", &events.SIPChangedData{FundID: fundID, Active: active})
	}
	return nil
}

package settings

import (
	"testing"

	"github.com/aristath/bazaar/internal/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestService_LoadDefaults(t *testing.T) {
	svc := NewService(newTestRepository(t), nil, zerolog.Nop())

	prefs, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
	assert.Equal(t, ThemeDark, svc.Preferences().Theme)
}

func TestService_LoadIgnoresInvalidStoredValues(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Set(KeyTheme, "neon", nil))
	require.NoError(t, repo.Set(KeyActiveTab, "fno", nil))
	require.NoError(t, repo.SetBool(KeyDisclaimerAccepted, true))

	prefs, err := NewService(repo, nil, zerolog.Nop()).Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, prefs.Theme)
	assert.Equal(t, TabFnO, prefs.ActiveTab)
	assert.True(t, prefs.DisclaimerAccepted)
}

func TestService_UpdatePersists(t *testing.T) {
	repo := newTestRepository(t)
	bus := events.NewBus(8, zerolog.Nop())
	sub := bus.Subscribe(events.SettingsChanged)
	svc := NewService(repo, events.NewManager(bus, zerolog.Nop()), zerolog.Nop())

	prefs, err := svc.Update(PreferencesUpdate{Theme: strPtr("Light"), DisclaimerAccepted: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, prefs.Theme)
	assert.True(t, prefs.DisclaimerAccepted)
	assert.Equal(t, TabEquity, prefs.ActiveTab)
	assert.Len(t, sub.C, 2)

	reloaded, err := NewService(repo, nil, zerolog.Nop()).Load()
	require.NoError(t, err)
	assert.Equal(t, prefs, reloaded)
}

func TestService_UpdateRejectsWithoutPartialWrites(t *testing.T) {
	repo := newTestRepository(t)
	svc := NewService(repo, nil, zerolog.Nop())

	_, err := svc.Update(PreferencesUpdate{Theme: strPtr("light"), ActiveTab: strPtr("crypto")})
	assert.ErrorIs(t, err, ErrInvalidSetting)

	stored, err := repo.Get(KeyTheme)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Equal(t, ThemeDark, svc.Preferences().Theme)
}

func TestService_SIP(t *testing.T) {
	bus := events.NewBus(8, zerolog.Nop())
	sub := bus.Subscribe(events.SIPChanged)
	svc := NewService(newTestRepository(t), events.NewManager(bus, zerolog.Nop()), zerolog.Nop())

	overrides, err := svc.SIPOverrides()
	require.NoError(t, err)
	assert.Empty(t, overrides)

	require.NoError(t, svc.SetSIPActive("mf-0", false))
	require.NoError(t, svc.SetSIPActive("mf-3", true))
	assert.ErrorIs(t, svc.SetSIPActive(" ", true), ErrInvalidSetting)

	overrides, err = svc.SIPOverrides()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"mf-0": false, "mf-3": true}, overrides)

	event := <-sub.C
	data, ok := event.Data.(*events.SIPChangedData)
	require.True(t, ok)
	assert.Equal(t, "mf-0", data.FundID)
}

func TestParse(t *testing.T) {
	theme, err := ParseTheme(" DARK ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	_, err = ParseTheme("")
	assert.ErrorIs(t, err, ErrInvalidSetting)

	tab, err := ParseTab("MF")
	require.NoError(t, err)
	assert.Equal(t, TabMF, tab)
}

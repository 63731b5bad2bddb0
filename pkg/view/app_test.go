package view

import (
	"errors"
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tably/tably/pkg/config"
)

func TestAppInit(t *testing.T) {
	app := NewApp(config.NewConfig(), "0.0.1")
	require.NoError(t, app.Init())

	assert.False(t, app.IsRunning())
	assert.Equal(t, "fleet", app.Content().Name())
	assert.Contains(t, app.indicator.GetText(true), "sort NAME ascending")
}

func TestAppKeyboard(t *testing.T) {
	app := NewApp(config.NewConfig(), "0.0.1")
	require.NoError(t, app.Init())

	evt := app.keyboard(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.Nil(t, evt)

	evt = app.keyboard(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	assert.NotNil(t, evt)

	evt = app.keyboard(tcell.NewEventKey(tcell.KeyCtrlC, rune(tcell.KeyCtrlC), tcell.ModCtrl))
	assert.Nil(t, evt)
}

func TestFlashMessages(t *testing.T) {
	f := NewFlash(nil)

	f.Info("fleet refreshed")
	assert.Contains(t, f.GetText(true), "[INFO] fleet refreshed")

	f.Warn("slow refresh")
	assert.Contains(t, f.GetText(true), "[WARN] slow refresh")

	f.Err(errors.New("boom"))
	assert.Contains(t, f.GetText(true), "[ERROR] boom")

	f.Err(nil)
	assert.Contains(t, f.GetText(true), "[ERROR] boom")

	f.Clear()
	assert.Empty(t, f.GetText(true))
}

func TestFlashLevels(t *testing.T) {
	uu := map[string]struct {
		level  FlashLevel
		prefix string
		color  tcell.Color
	}{
		"info": {level: FlashInfo, prefix: "[INFO]", color: tcell.ColorGreen},
		"warn": {level: FlashWarn, prefix: "[WARN]", color: tcell.ColorYellow},
		"err":  {level: FlashErr, prefix: "[ERROR]", color: tcell.ColorRed},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.prefix, flashPrefix(u.level))
			assert.Equal(t, u.color, flashColor(u.level))
		})
	}
}

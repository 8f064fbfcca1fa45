package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabFromQuery(t *testing.T) {
	assert.Equal(t, TabCustom, TabFromQuery("custom"))
	assert.Equal(t, TabDemo, TabFromQuery("demo"))
	assert.Equal(t, TabDemo, TabFromQuery(""))
	assert.Equal(t, TabDemo, TabFromQuery("Custom"))
	assert.Equal(t, TabDemo, TabFromQuery("unknown"))
}

func TestTab_RoundTrip(t *testing.T) {
	for _, tab := range []Tab{TabDemo, TabCustom} {
		u, err := url.Parse(tab.URL())
		require.NoError(t, err)
		assert.Equal(t, "/", u.Path)
		assert.Equal(t, tab, TabFromQuery(u.Query().Get("tab")))
		assert.Equal(t, tab, TabFromIndex(tab.Index()))
	}

	assert.Equal(t, 0, TabDemo.Index())
	assert.Equal(t, 1, TabCustom.Index())
	assert.Equal(t, TabDemo, TabFromIndex(7))
	assert.Equal(t, TabDemo, TabFromIndex(-1))
}

func TestTabButtons(t *testing.T) {
	app := newTestAppConfig()

	buttons := TabButtons(TabCustom, &app.Meet)
	require.Len(t, buttons, 2)
	assert.Equal(t, "Demo", buttons[0].Label)
	assert.Equal(t, "/?tab=demo", buttons[0].Href)
	assert.False(t, buttons[0].Pressed)
	assert.Equal(t, "Customizada", buttons[1].Label)
	assert.Equal(t, "/?tab=custom", buttons[1].Href)
	assert.True(t, buttons[1].Pressed)

	pressed := 0
	for _, b := range TabButtons(TabDemo, &app.Meet) {
		if b.Pressed {
			pressed++
		}
	}
	assert.Equal(t, 1, pressed)
}

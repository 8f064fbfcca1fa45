package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoomModel() *RoomModel {
	app := newTestAppConfig()
	return NewRoomModel(app, app.Logger)
}

func TestValidateRoomName(t *testing.T) {
	assert.NoError(t, ValidateRoomName("abcd-1234"))
	assert.NoError(t, ValidateRoomName("Team_Room"))

	assert.ErrorIs(t, ValidateRoomName(""), ErrInvalidRoomName)
	assert.ErrorIs(t, ValidateRoomName("bad name"), ErrInvalidRoomName)
	assert.ErrorIs(t, ValidateRoomName("bad%20name"), ErrInvalidRoomName)
	assert.ErrorIs(t, ValidateRoomName("../etc"), ErrInvalidRoomName)
}

func TestRoomModel_GetRoomPage(t *testing.T) {
	m := newTestRoomModel()

	page, err := m.GetRoomPage("abcd-1234")
	require.NoError(t, err)
	assert.Equal(t, "abcd-1234", page.RoomName)
	assert.Equal(t, "/api/connection-details", page.ConnectionDetailsUrl)
	assert.NotEmpty(t, page.SdkScriptUrl)

	_, err = m.GetRoomPage("bad name")
	assert.ErrorIs(t, err, ErrInvalidRoomName)
}

func TestRoomModel_GetCustomRoomPage(t *testing.T) {
	m := newTestRoomModel()

	t.Run("missing query", func(t *testing.T) {
		page, err := m.GetCustomRoomPage("wss://demo.livekit.cloud", "")
		assert.ErrorIs(t, err, ErrMissingLiveKitQuery)
		require.NotNil(t, page)
		assert.NotEmpty(t, page.Error)
		assert.Equal(t, "/?tab=custom", page.BackUrl)
	})

	t.Run("opaque token", func(t *testing.T) {
		page, err := m.GetCustomRoomPage("wss://demo.livekit.cloud", "opaque")
		require.NoError(t, err)
		assert.Equal(t, "wss://demo.livekit.cloud", page.LiveKitUrl)
		assert.Equal(t, "opaque", page.Token)
		assert.Nil(t, page.Preview)
		assert.Empty(t, page.Error)
	})
}

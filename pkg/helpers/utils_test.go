package helpers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	s, err := RandomString(64)
	require.NoError(t, err)
	assert.Len(t, s, 64)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]+$`), s)

	other, err := RandomString(64)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)

	empty, err := RandomString(0)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGenerateRoomId(t *testing.T) {
	id, err := GenerateRoomId()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{4}-[a-z0-9]{4}$`), id)
}

func TestEncodePassphrase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "alphanumeric", in: "abcXYZ019", want: "abcXYZ019"},
		{name: "unreserved marks", in: "-_.!~*'()", want: "-_.!~*'()"},
		{name: "space", in: "my secret", want: "my%20secret"},
		{name: "reserved", in: "a+b/c?d=e&f#g", want: "a%2Bb%2Fc%3Fd%3De%26f%23g"},
		{name: "percent", in: "100%", want: "100%25"},
		{name: "utf8", in: "ção", want: "%C3%A7%C3%A3o"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodePassphrase(tt.in)
			assert.Equal(t, tt.want, got)

			decoded, err := DecodePassphrase(got)
			assert.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestDecodePassphrase(t *testing.T) {
	p, err := DecodePassphrase("a+b")
	assert.NoError(t, err)
	assert.Equal(t, "a+b", p)

	_, err = DecodePassphrase("%zz")
	assert.Error(t, err)
}

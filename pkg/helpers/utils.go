package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"
)

const (
	randomStringChars = "abcdefghijklmnopqrstuvwxyz0123456789"
	upperHex          = "0123456789ABCDEF"
)

// RandomString returns length characters drawn from lowercase letters and digits.
func RandomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	n := big.NewInt(int64(len(randomStringChars)))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		builder.WriteByte(randomStringChars[num.Int64()])
	}
	return builder.String(), nil
}

// GenerateRoomId returns an identifier of the form "abcd-1234".
func GenerateRoomId() (string, error) {
	first, err := RandomString(4)
	if err != nil {
		return "", err
	}
	second, err := RandomString(4)
	if err != nil {
		return "", err
	}
	return first + "-" + second, nil
}

// EncodePassphrase percent-encodes p the same way the browser's
// encodeURIComponent does, so the room page can decode it client side.
func EncodePassphrase(p string) string {
	var builder strings.Builder
	builder.Grow(len(p))
	for i := 0; i < len(p); i++ {
		c := p[i]
		if isURIComponentUnreserved(c) {
			builder.WriteByte(c)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(upperHex[c>>4])
		builder.WriteByte(upperHex[c&0x0f])
	}
	return builder.String()
}

// DecodePassphrase reverses EncodePassphrase. A '+' stays a '+'.
func DecodePassphrase(s string) (string, error) {
	return url.PathUnescape(s)
}

func isURIComponentUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

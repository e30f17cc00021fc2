package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmCodec_RoundTrip(t *testing.T) {
	codec := NewConfirmCodec("secret", "salt")

	token := codec.Generate("alice@x.com")
	email, err := codec.Confirm(token, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", email)

	// Confirming the same token twice yields the same email.
	email, err = codec.Confirm(token, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", email)
}

func TestConfirmCodec_Expired(t *testing.T) {
	codec := NewConfirmCodec("secret", "salt")

	token := codec.Generate("alice@x.com")

	codec.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err := codec.Confirm(token, time.Hour)
	assert.ErrorIs(t, err, ErrConfirmTokenExpired)
}

func TestConfirmCodec_Tampered(t *testing.T) {
	codec := NewConfirmCodec("secret", "salt")

	token := codec.Generate("alice@x.com")
	parts := strings.Split(token, ".")
	tampered := parts[0] + "x." + parts[1] + "." + parts[2]

	_, err := codec.Confirm(tampered, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidConfirmToken)
}

func TestConfirmCodec_WrongSalt(t *testing.T) {
	codec := NewConfirmCodec("secret", "salt")
	other := NewConfirmCodec("secret", "other-salt")

	token := codec.Generate("alice@x.com")
	_, err := other.Confirm(token, time.Hour)
	assert.ErrorIs(t, err, ErrInvalidConfirmToken)
}

func TestConfirmCodec_Malformed(t *testing.T) {
	codec := NewConfirmCodec("secret", "salt")

	for _, token := range []string{"", "a.b", "not a token", "a.b.c.d"} {
		_, err := codec.Confirm(token, time.Hour)
		assert.ErrorIs(t, err, ErrInvalidConfirmToken, "token %q", token)
	}
}

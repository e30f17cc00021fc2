package template

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderConfirmation(t *testing.T) {
	body := RenderConfirmation(DefaultConfirmationBody, ConfirmationData{
		Email:  "drinker@example.com",
		URL:    "https://bar.example/confirm/abc",
		MaxAge: time.Hour,
	})

	assert.Contains(t, body, "https://bar.example/confirm/abc")
	assert.Contains(t, body, "drinker@example.com")
	assert.Contains(t, body, "within 1 hour")
	assert.NotContains(t, body, "{{")
}

func TestRenderConfirmation_MaxAge(t *testing.T) {
	tests := []struct {
		maxAge time.Duration
		want   string
	}{
		{time.Hour, "1 hour"},
		{2 * time.Hour, "2 hours"},
		{90 * time.Minute, "90 minutes"},
		{30 * time.Minute, "30 minutes"},
	}

	for _, tt := range tests {
		got := RenderConfirmation("{{confirm.max_age}}", ConfirmationData{MaxAge: tt.maxAge})
		assert.Equal(t, tt.want, got, "max age %s", tt.maxAge)
	}
}

func TestRenderConfirmation_UnknownVariableKept(t *testing.T) {
	got := RenderConfirmation("hello {{user.name}}", ConfirmationData{Email: "x@y.z"})
	assert.Equal(t, "hello {{user.name}}", got)
}

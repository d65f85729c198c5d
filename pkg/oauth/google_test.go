package oauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoogleServiceEnabled(t *testing.T) {
	assert.False(t, NewGoogleService(GoogleConfig{}).Enabled())
	assert.False(t, NewGoogleService(GoogleConfig{ClientID: "id"}).Enabled())
	assert.True(t, NewGoogleService(GoogleConfig{ClientID: "id", ClientSecret: "secret"}).Enabled())
}

func TestConsentURLCarriesState(t *testing.T) {
	svc := NewGoogleService(GoogleConfig{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/api/auth/google/callback",
	})

	url := svc.ConsentURL("abc123")
	assert.Contains(t, url, "state=abc123")
	assert.Contains(t, url, "client_id=id")
	assert.Contains(t, url, "accounts.google.com")
}

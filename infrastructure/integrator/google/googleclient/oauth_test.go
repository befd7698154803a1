package googleclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

func testOAuthAppConfig() *config.Config {
	return &config.Config{
		GoogleAds: config.GoogleAds{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost:8000/v1/oauth/google/callback",
			AuthURL:      "https://accounts.google.com/o/oauth2/auth",
			TokenURL:     "https://oauth2.googleapis.com/token",
			Scopes: []string{
				"https://www.googleapis.com/auth/adwords",
				"https://www.googleapis.com/auth/userinfo.email",
			},
		},
	}
}

func TestOAuthConfig(t *testing.T) {
	cfg := testOAuthAppConfig()

	oauthCfg := OAuthConfig(cfg)

	assert.Equal(t, "client-id", oauthCfg.ClientID)
	assert.Equal(t, "client-secret", oauthCfg.ClientSecret)
	assert.Equal(t, cfg.GoogleAds.RedirectURL, oauthCfg.RedirectURL)
	assert.Equal(t, cfg.GoogleAds.AuthURL, oauthCfg.Endpoint.AuthURL)
	assert.Equal(t, cfg.GoogleAds.TokenURL, oauthCfg.Endpoint.TokenURL)
	assert.Equal(t, cfg.GoogleAds.Scopes, oauthCfg.Scopes)
}

func TestAuthCodeURL(t *testing.T) {
	cfg := testOAuthAppConfig()

	url := AuthCodeURL(cfg, "estado-assinado")

	assert.Contains(t, url, cfg.GoogleAds.AuthURL)
	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "prompt=consent")
	assert.Contains(t, url, "state=estado-assinado")
	// Os dois escopos configurados entram na URL separados por espaço (%20 ou +)
	assert.Contains(t, url, "scope=")
	assert.Contains(t, url, "adwords")
	assert.Contains(t, url, "userinfo.email")
}

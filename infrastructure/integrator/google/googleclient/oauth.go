package googleclient

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// OAuthConfig monta a configuração OAuth2 do Google a partir das variáveis de ambiente.
func OAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleAds.ClientID,
		ClientSecret: cfg.GoogleAds.ClientSecret,
		RedirectURL:  cfg.GoogleAds.RedirectURL,
		Scopes:       cfg.GoogleAds.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.GoogleAds.AuthURL,
			TokenURL: cfg.GoogleAds.TokenURL,
		},
	}
}

// AuthCodeURL gera a URL de consentimento com acesso offline, exigindo o
// refresh token mesmo em reconexões (prompt=consent).
func AuthCodeURL(cfg *config.Config, state string) string {
	oauthCfg := OAuthConfig(cfg)
	return oauthCfg.AuthCodeURL(
		state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange troca o código de autorização pelos tokens de acesso e refresh.
func Exchange(ctx context.Context, cfg *config.Config, code string) (*domain.TokenBundle, error) {
	oauthCfg := OAuthConfig(cfg)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.GoogleAds.RequestTimeoutS)*time.Second)
	defer cancel()

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	return &domain.TokenBundle{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
		Scopes:       cfg.GoogleAds.Scopes,
	}, nil
}

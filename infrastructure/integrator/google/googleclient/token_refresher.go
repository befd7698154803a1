package googleclient

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// TokenRefresher renova tokens de acesso antes da expiração e persiste o resultado.
type TokenRefresher interface {
	NeedsRefresh(credential *domain.Credential) bool
	Refresh(credential *domain.Credential) (*domain.Credential, error)
}

type OAuthTokenRefresher struct {
	cfg            *config.Config
	credentialRepo repository.CredentialRepository
	refreshMutex   sync.Mutex
}

func NewTokenRefresher(
	cfg *config.Config,
	credentialRepo repository.CredentialRepository,
) TokenRefresher {
	return &OAuthTokenRefresher{
		cfg:            cfg,
		credentialRepo: credentialRepo,
	}
}

// NeedsRefresh considera o token expirado quando ele vence dentro da janela de
// antecedência configurada, evitando usar um token que morre no meio da sincronização.
func (r *OAuthTokenRefresher) NeedsRefresh(credential *domain.Credential) bool {
	if credential.AccessToken == "" {
		return true
	}

	skew := time.Duration(r.cfg.GoogleAds.RefreshSkewMins) * time.Minute

	return !credential.TokenExpiry.After(time.Now().Add(skew))
}

// Refresh faz uma única tentativa de renovação via refresh token. Falhas
// terminais (invalid_grant) desativam a credencial; falhas transitórias só
// incrementam o contador de erros.
func (r *OAuthTokenRefresher) Refresh(credential *domain.Credential) (*domain.Credential, error) {
	r.refreshMutex.Lock()
	defer r.refreshMutex.Unlock()

	if credential.RefreshToken == "" {
		logrus.WithField("credential_id", credential.ID).
			Error("Credencial sem refresh token, é necessário reautorizar")
		return nil, r.fail(credential, &RefreshError{
			Terminal: true,
			Err:      errors.New("credencial sem refresh token"),
		})
	}

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(r.cfg.GoogleAds.RequestTimeoutS)*time.Second,
	)
	defer cancel()

	oauthCfg := OAuthConfig(r.cfg)
	source := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: credential.RefreshToken})

	token, err := source.Token()
	if err != nil {
		return nil, r.fail(credential, classifyRefreshError(err))
	}

	bundle := &domain.TokenBundle{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
		Scopes:       credential.Scopes,
	}

	if err := r.credentialRepo.UpdateToken(credential.ID, bundle); err != nil {
		logrus.WithError(err).Error("Erro ao persistir o token renovado")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"credential_id": credential.ID,
		"expiry":        token.Expiry.Format(time.RFC3339),
	}).Info("Token de acesso renovado com sucesso")

	refreshed := *credential
	refreshed.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		refreshed.RefreshToken = token.RefreshToken
	}
	refreshed.TokenExpiry = token.Expiry
	refreshed.ErrorCount = 0
	refreshed.LastError = nil

	return &refreshed, nil
}

// fail registra a falha na credencial antes de propagá-la.
func (r *OAuthTokenRefresher) fail(credential *domain.Credential, refreshErr *RefreshError) error {
	if err := r.credentialRepo.RecordError(credential.ID, refreshErr.Err.Error()); err != nil {
		logrus.WithError(err).Error("Erro ao registrar falha de renovação na credencial")
	}

	if refreshErr.Terminal {
		logrus.WithField("credential_id", credential.ID).
			Error("Refresh token revogado ou expirado, desativando credencial")

		if err := r.credentialRepo.Deactivate(credential.ID); err != nil {
			logrus.WithError(err).Error("Erro ao desativar credencial revogada")
		}
	}

	return refreshErr
}

// classifyRefreshError separa invalid_grant (terminal) de erros de rede e 5xx
// do provedor (transitórios).
func classifyRefreshError(err error) *RefreshError {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if retrieveErr.ErrorCode == "invalid_grant" {
			return &RefreshError{Terminal: true, Err: err}
		}
		if retrieveErr.Response != nil && retrieveErr.Response.StatusCode < http.StatusInternalServerError {
			return &RefreshError{Terminal: true, Err: err}
		}
		return &RefreshError{Terminal: false, Err: err}
	}

	// Sem resposta do provedor: falha de rede, portanto transitória
	return &RefreshError{Terminal: false, Err: err}
}

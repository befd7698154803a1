package googleclient

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

func testRefresherConfig() *config.Config {
	return &config.Config{
		GoogleAds: config.GoogleAds{
			ClientID:        "client-id",
			ClientSecret:    "client-secret",
			RedirectURL:     "http://localhost:8000/v1/oauth/google/callback",
			AuthURL:         "https://accounts.google.com/o/oauth2/auth",
			TokenURL:        "https://oauth2.googleapis.com/token",
			Scopes:          []string{"https://www.googleapis.com/auth/adwords"},
			RefreshSkewMins: 5,
			RequestTimeoutS: 5,
		},
	}
}

func TestNeedsRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	refresher := NewTokenRefresher(testRefresherConfig(), credentialRepo)

	tests := []struct {
		name       string
		credential *domain.Credential
		expected   bool
	}{
		{
			name: "Deve renovar quando o token expira dentro da janela de antecedência",
			credential: &domain.Credential{
				AccessToken: "token",
				TokenExpiry: time.Now().Add(4 * time.Minute),
			},
			expected: true,
		},
		{
			name: "Não deve renovar quando o token ainda vale além da janela",
			credential: &domain.Credential{
				AccessToken: "token",
				TokenExpiry: time.Now().Add(10 * time.Minute),
			},
			expected: false,
		},
		{
			name: "Deve renovar quando o token de acesso está vazio",
			credential: &domain.Credential{
				TokenExpiry: time.Now().Add(time.Hour),
			},
			expected: true,
		},
		{
			name: "Deve renovar quando o token já expirou",
			credential: &domain.Credential{
				AccessToken: "token",
				TokenExpiry: time.Now().Add(-time.Minute),
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, refresher.NeedsRefresh(tt.credential))
		})
	}
}

func TestRefresh_SemRefreshTokenDesativaCredencial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	refresher := NewTokenRefresher(testRefresherConfig(), credentialRepo)

	credential := &domain.Credential{
		ID:          "CRED01",
		AccessToken: "expirado",
		TokenExpiry: time.Now().Add(-time.Hour),
	}

	credentialRepo.EXPECT().RecordError("CRED01", gomock.Any()).Return(nil)
	credentialRepo.EXPECT().Deactivate("CRED01").Return(nil)

	refreshed, err := refresher.Refresh(credential)

	assert.Nil(t, refreshed)
	assert.ErrorIs(t, err, ErrReauthRequired)
}

func TestClassifyRefreshError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		terminal bool
	}{
		{
			name: "invalid_grant é terminal",
			err: &oauth2.RetrieveError{
				ErrorCode: "invalid_grant",
				Response:  &http.Response{StatusCode: http.StatusBadRequest},
			},
			terminal: true,
		},
		{
			name: "Resposta 4xx do provedor é terminal",
			err: &oauth2.RetrieveError{
				ErrorCode: "invalid_client",
				Response:  &http.Response{StatusCode: http.StatusUnauthorized},
			},
			terminal: true,
		},
		{
			name: "Resposta 5xx do provedor é transitória",
			err: &oauth2.RetrieveError{
				Response: &http.Response{StatusCode: http.StatusServiceUnavailable},
			},
			terminal: false,
		},
		{
			name:     "Falha de rede sem resposta é transitória",
			err:      errors.New("dial tcp: connection refused"),
			terminal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refreshErr := classifyRefreshError(tt.err)

			assert.Equal(t, tt.terminal, refreshErr.Terminal)
			if tt.terminal {
				assert.ErrorIs(t, refreshErr, ErrReauthRequired)
			} else {
				assert.ErrorIs(t, refreshErr, ErrTransientAuth)
			}
		})
	}
}

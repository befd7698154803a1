package connecting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	clientmocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/googleclient/mocks"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConnectConfig() *config.Config {
	return &config.Config{
		SecretKey: "test-secret-key",
		GoogleAds: config.GoogleAds{
			ClientID:        "client-id",
			ClientSecret:    "client-secret",
			RedirectURL:     "http://localhost:8000/v1/oauth/google/callback",
			AuthURL:         "https://accounts.google.com/o/oauth2/auth",
			TokenURL:        "https://oauth2.googleapis.com/token",
			Scopes:          []string{"https://www.googleapis.com/auth/adwords"},
			RequestTimeoutS: 5,
		},
	}
}

func newConnectService(t *testing.T) (*Service, *mocks.MockCredentialRepository, *clientmocks.MockClientFactory) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	clientFactory := clientmocks.NewMockClientFactory(ctrl)

	service := NewService(testConnectConfig(), credentialRepo, clientFactory).(*Service)
	return service, credentialRepo, clientFactory
}

func TestGetAuthorizationURL(t *testing.T) {
	service, _, _ := newConnectService(t)

	url, err := service.GetAuthorizationURL(42)

	assert.NoError(t, err)
	assert.Contains(t, url, "https://accounts.google.com/o/oauth2/auth")
	assert.Contains(t, url, "client_id=client-id")
	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "prompt=consent")
	assert.Contains(t, url, "state=")
}

func TestStateRoundTrip(t *testing.T) {
	service, _, _ := newConnectService(t)

	state, err := service.signState(42)
	assert.NoError(t, err)

	userID, err := service.parseState(state)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestParseState_Invalido(t *testing.T) {
	service, _, _ := newConnectService(t)

	tests := []struct {
		name  string
		state func() string
	}{
		{
			name:  "State vazio",
			state: func() string { return "" },
		},
		{
			name:  "State que não é um JWT",
			state: func() string { return "nao-e-um-jwt" },
		},
		{
			name: "State assinado com outra chave",
			state: func() string {
				claims := jwt.RegisteredClaims{
					Subject:   "42",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
				}
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
				signed, _ := token.SignedString([]byte("outra-chave"))
				return signed
			},
		},
		{
			name: "State expirado",
			state: func() string {
				claims := jwt.RegisteredClaims{
					Subject:   "42",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				}
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
				signed, _ := token.SignedString([]byte("test-secret-key"))
				return signed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.parseState(tt.state())
			assert.Error(t, err)
		})
	}
}

func TestHandleCallback_SemCodigo(t *testing.T) {
	service, _, _ := newConnectService(t)

	state, err := service.signState(42)
	assert.NoError(t, err)

	credential, err := service.HandleCallback(context.Background(), state, "")

	assert.Nil(t, credential)

	var connectErr *ConnectError
	assert.True(t, errors.As(err, &connectErr))
	assert.ErrorIs(t, err, ErrCodeRequired)
}

func TestHandleCallback_StateInvalido(t *testing.T) {
	service, _, _ := newConnectService(t)

	credential, err := service.HandleCallback(context.Background(), "state-forjado", "codigo")

	assert.Nil(t, credential)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestGetCredential(t *testing.T) {
	service, credentialRepo, _ := newConnectService(t)

	stored := &domain.Credential{
		ID:                "CRED01",
		UserID:            42,
		Provider:          domain.ProviderGoogle,
		ExternalAccountID: "1111111111",
		Active:            true,
	}

	credentialRepo.EXPECT().GetActiveByUserID(42, domain.ProviderGoogle).Return(stored, nil)

	response, err := service.GetCredential(42)

	assert.NoError(t, err)
	assert.Equal(t, "CRED01", response.ID)
	assert.Equal(t, "1111111111", response.ExternalAccountID)
}

func TestGetCredential_SemCredencial(t *testing.T) {
	service, credentialRepo, _ := newConnectService(t)

	credentialRepo.EXPECT().GetActiveByUserID(42, domain.ProviderGoogle).Return(nil, nil)

	response, err := service.GetCredential(42)

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestDisconnect(t *testing.T) {
	service, credentialRepo, _ := newConnectService(t)

	stored := &domain.Credential{ID: "CRED01", UserID: 42, Active: true}

	credentialRepo.EXPECT().GetActiveByUserID(42, domain.ProviderGoogle).Return(stored, nil)
	credentialRepo.EXPECT().Deactivate("CRED01").Return(nil)

	assert.NoError(t, service.Disconnect(42))
}

func TestRefreshAccessibleCustomers(t *testing.T) {
	service, credentialRepo, clientFactory := newConnectService(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := clientmocks.NewMockClient(ctrl)

	stored := &domain.Credential{ID: "CRED01", UserID: 42, Active: true}
	customers := []string{"1111111111", "2222222222"}

	credentialRepo.EXPECT().GetActiveByUserID(42, domain.ProviderGoogle).Return(stored, nil)
	clientFactory.EXPECT().GetClientForCredential(stored, "").Return(client, nil)
	client.EXPECT().ListAccessibleCustomers().Return(customers, nil)
	credentialRepo.EXPECT().UpdateAccessibleCustomers("CRED01", customers).Return(nil)

	result, err := service.RefreshAccessibleCustomers(42)

	assert.NoError(t, err)
	assert.Equal(t, customers, result)
}

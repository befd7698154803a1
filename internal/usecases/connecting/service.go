package connecting

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// stateTTL limita a validade do state emitido para o fluxo de autorização.
const stateTTL = 10 * time.Minute

type ConnectService interface {
	GetAuthorizationURL(userID int) (string, error)
	HandleCallback(ctx context.Context, state, code string) (*domain.CredentialResponse, error)
	GetCredential(userID int) (*domain.CredentialResponse, error)
	Disconnect(userID int) error
	RefreshAccessibleCustomers(userID int) ([]string, error)
}

type Service struct {
	cfg            *config.Config
	credentialRepo repository.CredentialRepository
	clientFactory  googleclient.ClientFactory
}

func NewService(
	cfg *config.Config,
	credentialRepo repository.CredentialRepository,
	clientFactory googleclient.ClientFactory,
) ConnectService {
	return &Service{
		cfg:            cfg,
		credentialRepo: credentialRepo,
		clientFactory:  clientFactory,
	}
}

// GetAuthorizationURL gera a URL de consentimento do Google com um state
// assinado que amarra o callback ao usuário autenticado.
func (s *Service) GetAuthorizationURL(userID int) (string, error) {
	state, err := s.signState(userID)
	if err != nil {
		return "", NewConnectError(err, apiErrors.ErrInternalServer, "Erro ao gerar state do OAuth")
	}

	return googleclient.AuthCodeURL(s.cfg, state), nil
}

// HandleCallback troca o código de autorização por tokens, descobre as contas
// acessíveis e persiste a credencial do usuário.
func (s *Service) HandleCallback(ctx context.Context, state, code string) (*domain.CredentialResponse, error) {
	if code == "" {
		return nil, NewConnectError(ErrCodeRequired, apiErrors.ErrInvalidRequest, "Callback sem código de autorização")
	}

	userID, err := s.parseState(state)
	if err != nil {
		logrus.WithError(err).Warn("oauth: state inválido recebido no callback")
		return nil, NewConnectError(ErrInvalidState, apiErrors.ErrOAuthState, "State inválido ou expirado")
	}

	bundle, err := googleclient.Exchange(ctx, s.cfg, code)
	if err != nil {
		logrus.WithError(err).Error("oauth: erro ao trocar código por tokens")
		return nil, NewConnectError(ErrTokenExchange, apiErrors.ErrOAuthExchange, "Falha na troca do código de autorização")
	}

	// O cliente usa o token recém-emitido; a credencial ainda não existe no banco
	client := googleclient.NewClient(s.cfg, bundle.AccessToken, "")

	customerIDs, err := client.ListAccessibleCustomers()
	if err != nil {
		logrus.WithError(err).Error("oauth: erro ao listar contas acessíveis")
		return nil, NewConnectError(ErrAccessibleCustomers, apiErrors.ErrExternalService, "Falha ao listar contas acessíveis")
	}

	if len(customerIDs) == 0 {
		return nil, NewConnectError(ErrAccessibleCustomers, apiErrors.ErrInvalidRequest, "A credencial não tem acesso a nenhuma conta de anúncios")
	}

	// O primeiro customer acessível vira a conta de login da credencial
	credential, err := s.credentialRepo.SaveOrUpdate(userID, domain.ProviderGoogle, customerIDs[0], bundle)
	if err != nil {
		logrus.WithError(err).Error("oauth: erro ao persistir credencial")
		return nil, NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar credencial")
	}

	if err := s.credentialRepo.UpdateAccessibleCustomers(credential.ID, customerIDs); err != nil {
		logrus.WithError(err).Warn("oauth: erro ao salvar contas acessíveis da credencial")
	} else {
		credential.AccessibleCustomers = customerIDs
	}

	logrus.WithFields(logrus.Fields{
		"user_id":             userID,
		"external_account_id": credential.ExternalAccountID,
		"accessible_accounts": len(customerIDs),
	}).Info("oauth: credencial conectada com sucesso")

	return credential.ToResponse(), nil
}

func (s *Service) GetCredential(userID int) (*domain.CredentialResponse, error) {
	credential, err := s.credentialRepo.GetActiveByUserID(userID, domain.ProviderGoogle)
	if err != nil {
		return nil, NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar credencial")
	}

	if credential == nil {
		return nil, NewConnectError(ErrCredentialNotFound, apiErrors.ErrNoCredential, "Usuário não possui credencial ativa")
	}

	return credential.ToResponse(), nil
}

// Disconnect desativa a credencial sem apagá-la; os dados sincronizados permanecem.
func (s *Service) Disconnect(userID int) error {
	credential, err := s.credentialRepo.GetActiveByUserID(userID, domain.ProviderGoogle)
	if err != nil {
		return NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar credencial")
	}

	if credential == nil {
		return NewConnectError(ErrCredentialNotFound, apiErrors.ErrNoCredential, "Usuário não possui credencial ativa")
	}

	if err := s.credentialRepo.Deactivate(credential.ID); err != nil {
		return NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao desativar credencial")
	}

	logrus.WithField("user_id", userID).Info("oauth: credencial desconectada")

	return nil
}

// RefreshAccessibleCustomers reconsulta as contas visíveis pela credencial e
// atualiza o cache persistido.
func (s *Service) RefreshAccessibleCustomers(userID int) ([]string, error) {
	credential, err := s.credentialRepo.GetActiveByUserID(userID, domain.ProviderGoogle)
	if err != nil {
		return nil, NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar credencial")
	}

	if credential == nil {
		return nil, NewConnectError(ErrCredentialNotFound, apiErrors.ErrNoCredential, "Usuário não possui credencial ativa")
	}

	client, err := s.clientFactory.GetClientForCredential(credential, "")
	if err != nil {
		return nil, err
	}

	customerIDs, err := client.ListAccessibleCustomers()
	if err != nil {
		logrus.WithError(err).Error("oauth: erro ao listar contas acessíveis")
		return nil, NewConnectError(ErrAccessibleCustomers, apiErrors.ErrExternalService, "Falha ao listar contas acessíveis")
	}

	if err := s.credentialRepo.UpdateAccessibleCustomers(credential.ID, customerIDs); err != nil {
		return nil, NewConnectError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas acessíveis")
	}

	return customerIDs, nil
}

type stateClaims struct {
	jwt.RegisteredClaims
}

func (s *Service) signState(userID int) (string, error) {
	claims := stateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(stateTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) parseState(state string) (int, error) {
	token, err := jwt.ParseWithClaims(state, &stateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*stateClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidState
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrInvalidState
	}

	return userID, nil
}

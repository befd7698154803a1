package googleclient

import (
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// ClientFactory entrega clientes autenticados garantindo que o token de acesso
// esteja válido antes de qualquer chamada ao provedor.
type ClientFactory interface {
	GetClient(userID int, loginCustomerID string) (Client, error)
	GetClientForCredential(credential *domain.Credential, loginCustomerID string) (Client, error)
}

type Factory struct {
	cfg            *config.Config
	credentialRepo repository.CredentialRepository
	refresher      TokenRefresher
}

func NewFactory(
	cfg *config.Config,
	credentialRepo repository.CredentialRepository,
	refresher TokenRefresher,
) ClientFactory {
	return &Factory{
		cfg:            cfg,
		credentialRepo: credentialRepo,
		refresher:      refresher,
	}
}

// GetClient busca a credencial ativa do usuário e monta um cliente pronto para uso.
func (f *Factory) GetClient(userID int, loginCustomerID string) (Client, error) {
	credential, err := f.credentialRepo.GetActiveByUserID(userID, domain.ProviderGoogle)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar credencial do usuário")
		return nil, err
	}

	if credential == nil {
		return nil, ErrNoCredential
	}

	return f.GetClientForCredential(credential, loginCustomerID)
}

// GetClientForCredential renova o token se necessário e registra o uso da credencial.
func (f *Factory) GetClientForCredential(
	credential *domain.Credential,
	loginCustomerID string,
) (Client, error) {
	if f.refresher.NeedsRefresh(credential) {
		refreshed, err := f.refresher.Refresh(credential)
		if err != nil {
			return nil, err
		}
		credential = refreshed
	}

	if err := f.credentialRepo.UpdateLastUsed(credential.ID); err != nil {
		logrus.WithError(err).Warn("Erro ao registrar uso da credencial")
	}

	return NewClient(f.cfg, credential.AccessToken, loginCustomerID), nil
}

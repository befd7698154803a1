package account

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

type AccountService interface {
	ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error)
	UpdateAccount(request *domain.UpdateAdAccountRequest) error
	GetAccountPerformance(accountID string, filters *domain.InsightFilters) ([]*domain.PerformanceRecord, error)
	ListCampaigns(accountID string) ([]*domain.Campaign, error)
}

type Service struct {
	accountRepository     repository.AccountRepository
	campaignRepository    repository.CampaignRepository
	performanceRepository repository.PerformanceRepository
}

func NewService(
	accountRepository repository.AccountRepository,
	campaignRepository repository.CampaignRepository,
	performanceRepository repository.PerformanceRepository,
) AccountService {
	return &Service{
		accountRepository:     accountRepository,
		campaignRepository:    campaignRepository,
		performanceRepository: performanceRepository,
	}
}

func (s *Service) ListAdAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	adAccountsResponse := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		adAccountsResponse = append(adAccountsResponse, &domain.AdAccountResponse{
			ID:           account.ID,
			ExternalID:   account.ExternalID,
			Name:         account.Name,
			Nickname:     account.Nickname,
			CurrencyCode: account.CurrencyCode,
			Timezone:     account.Timezone,
			IsManager:    account.IsManager,
			Status:       account.Status,
			SyncStatus:   account.SyncStatus,
			LastSyncedAt: account.LastSyncedAt,
		})
	}

	return adAccountsResponse, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAdAccountRequest) error {
	if request.ID == "" {
		return NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	if request.Status != nil {
		status := domain.AdAccountStatus(*request.Status)
		if status != domain.AdAccountStatusActive && status != domain.AdAccountStatusInactive {
			return NewAccountErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, request.ID, "Status de conta inválido")
		}
	}

	// Busca a conta para verificar se existe
	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, request.ID, "Conta não encontrada")
	}

	if err := s.accountRepository.UpdateAccount(request); err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return nil
}

// GetAccountPerformance consulta as métricas já sincronizadas da conta no
// intervalo pedido; não consulta o provedor.
func (s *Service) GetAccountPerformance(accountID string, filters *domain.InsightFilters) ([]*domain.PerformanceRecord, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrAccountNotFound, accountID, "Conta não encontrada")
	}

	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, NewAccountErrorWithID(ErrInvalidDateRange, apiErrors.ErrMissingRequiredData, accountID, "Datas de início e fim são obrigatórias")
	}

	if filters.EndDate.Before(*filters.StartDate) {
		return nil, NewAccountErrorWithID(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, accountID, "A data final precisa ser posterior à inicial")
	}

	records, err := s.performanceRepository.ListByAccountAndRange(accountID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": accountID,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Error("Erro ao consultar métricas da conta")
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao consultar métricas da conta")
	}

	return records, nil
}

func (s *Service) ListCampaigns(accountID string) ([]*domain.Campaign, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	campaigns, err := s.campaignRepository.ListByAccountID(accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao listar campanhas da conta")
	}

	return campaigns, nil
}

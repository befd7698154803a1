package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newAccountService(t *testing.T) (AccountService, *mocks.MockAccountRepository, *mocks.MockCampaignRepository, *mocks.MockPerformanceRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	performanceRepo := mocks.NewMockPerformanceRepository(ctrl)

	return NewService(accountRepo, campaignRepo, performanceRepo), accountRepo, campaignRepo, performanceRepo
}

func TestListAdAccounts(t *testing.T) {
	service, accountRepo, _, _ := newAccountService(t)

	accounts := []*domain.AdAccount{
		{
			ID:           "ACC001",
			ExternalID:   "1111111111",
			Name:         "Conta Principal",
			Nickname:     stringPtr("Loja Centro"),
			CurrencyCode: "BRL",
			Status:       domain.AdAccountStatusActive,
			SyncStatus:   domain.SyncStatusIdle,
		},
		{
			ID:         "ACC002",
			ExternalID: "2222222222",
			Name:       "Conta Secundária",
			Status:     domain.AdAccountStatusInactive,
			SyncStatus: domain.SyncStatusFailed,
		},
	}

	accountRepo.EXPECT().ListAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive}).Return(accounts, nil)

	response, err := service.ListAdAccounts([]domain.AdAccountStatus{domain.AdAccountStatusActive})

	assert.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "ACC001", response[0].ID)
	assert.Equal(t, "Loja Centro", *response[0].Nickname)
	assert.Equal(t, domain.SyncStatusFailed, response[1].SyncStatus)
}

func TestUpdateAccount(t *testing.T) {
	tests := []struct {
		name        string
		request     *domain.UpdateAdAccountRequest
		setup       func(accountRepo *mocks.MockAccountRepository)
		expectedErr error
	}{
		{
			name:        "Deve rejeitar requisição sem ID",
			request:     &domain.UpdateAdAccountRequest{},
			expectedErr: ErrAccountIDRequired,
		},
		{
			name: "Deve rejeitar status desconhecido",
			request: &domain.UpdateAdAccountRequest{
				ID:     "ACC001",
				Status: stringPtr("SUSPENDED"),
			},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:    "Deve rejeitar conta inexistente",
			request: &domain.UpdateAdAccountRequest{ID: "ACC404"},
			setup: func(accountRepo *mocks.MockAccountRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)
			},
			expectedErr: ErrAccountNotFound,
		},
		{
			name: "Deve atualizar apelido e status válidos",
			request: &domain.UpdateAdAccountRequest{
				ID:       "ACC001",
				Nickname: stringPtr("Loja Norte"),
				Status:   stringPtr("INACTIVE"),
			},
			setup: func(accountRepo *mocks.MockAccountRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(&domain.AdAccount{ID: "ACC001"}, nil)
				accountRepo.EXPECT().UpdateAccount(gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, _ := newAccountService(t)

			if tt.setup != nil {
				tt.setup(accountRepo)
			}

			err := service.UpdateAccount(tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetAccountPerformance(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		accountID   string
		filters     *domain.InsightFilters
		setup       func(accountRepo *mocks.MockAccountRepository, performanceRepo *mocks.MockPerformanceRepository)
		expectedErr error
		expectedLen int
	}{
		{
			name:        "Deve exigir o ID da conta",
			accountID:   "",
			expectedErr: ErrAccountIDRequired,
		},
		{
			name:      "Deve exigir as duas datas",
			accountID: "ACC001",
			filters:   &domain.InsightFilters{StartDate: timePtr(start)},
			setup: func(accountRepo *mocks.MockAccountRepository, _ *mocks.MockPerformanceRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(&domain.AdAccount{ID: "ACC001"}, nil)
			},
			expectedErr: ErrInvalidDateRange,
		},
		{
			name:      "Deve rejeitar intervalo invertido",
			accountID: "ACC001",
			filters:   &domain.InsightFilters{StartDate: timePtr(end), EndDate: timePtr(start)},
			setup: func(accountRepo *mocks.MockAccountRepository, _ *mocks.MockPerformanceRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(&domain.AdAccount{ID: "ACC001"}, nil)
			},
			expectedErr: ErrInvalidDateRange,
		},
		{
			name:      "Deve listar métricas do intervalo",
			accountID: "ACC001",
			filters:   &domain.InsightFilters{StartDate: timePtr(start), EndDate: timePtr(end)},
			setup: func(accountRepo *mocks.MockAccountRepository, performanceRepo *mocks.MockPerformanceRepository) {
				accountRepo.EXPECT().GetAccountByID("ACC001").Return(&domain.AdAccount{ID: "ACC001"}, nil)
				performanceRepo.EXPECT().ListByAccountAndRange("ACC001", start, end).Return([]*domain.PerformanceRecord{
					{AccountID: "ACC001", Date: start, Clicks: 10, Cost: 1.50},
					{AccountID: "ACC001", Date: end, Clicks: 4, Cost: 0.75},
				}, nil)
			},
			expectedLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, accountRepo, _, performanceRepo := newAccountService(t)

			if tt.setup != nil {
				tt.setup(accountRepo, performanceRepo)
			}

			records, err := service.GetAccountPerformance(tt.accountID, tt.filters)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, records, tt.expectedLen)
		})
	}
}

func TestListCampaigns(t *testing.T) {
	service, _, campaignRepo, _ := newAccountService(t)

	campaigns := []*domain.Campaign{
		{ID: "CAMP01", AccountID: "ACC001", Name: "Campanha Pesquisa"},
	}

	campaignRepo.EXPECT().ListByAccountID("ACC001").Return(campaigns, nil)

	result, err := service.ListCampaigns("ACC001")

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "CAMP01", result[0].ID)
}

package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (Authenticator, *mocks.MockUserRepository, *mocks.MockAccountRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	cfg := &config.Config{SecretKey: "test-secret-key"}

	return NewService(userRepo, accountRepo, cfg), userRepo, accountRepo
}

func hashPassword(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(userRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:        "Deve exigir email e senha",
			email:       "",
			password:    "",
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "Deve rejeitar usuário inexistente",
			email:    "naoexiste@email.com",
			password: "Senha@123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("naoexiste@email.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Deve rejeitar usuário desativado",
			email:    "inativo@email.com",
			password: "Senha@123",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("inativo@email.com").Return(&domain.User{
					ID:     7,
					Email:  "inativo@email.com",
					Active: false,
				}, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Deve rejeitar senha incorreta",
			email:    "usuario@email.com",
			password: "SenhaErrada@1",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("usuario@email.com").Return(&domain.User{
					ID:           7,
					Email:        "usuario@email.com",
					Active:       true,
					PasswordHash: hashPassword(t, "Senha@123"),
				}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _ := newAuthService(t)

			if tt.setup != nil {
				tt.setup(userRepo)
			}

			token, err := service.LoginUser(tt.email, tt.password)

			assert.Empty(t, token)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestLoginUser_TokenValido(t *testing.T) {
	service, userRepo, _ := newAuthService(t)

	// Email é normalizado antes da consulta
	userRepo.EXPECT().GetUserByEmail("usuario@email.com").Return(&domain.User{
		ID:           7,
		Name:         "Vinícius",
		Email:        "usuario@email.com",
		Active:       true,
		RoleID:       1,
		PasswordHash: hashPassword(t, "Senha@123"),
	}, nil)

	token, err := service.LoginUser("  Usuario@Email.com ", "Senha@123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 1, claims.UserRoleID)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name        string
		user        *domain.User
		setup       func(userRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:        "Deve exigir os campos obrigatórios",
			user:        &domain.User{Email: "novo@email.com"},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name: "Deve rejeitar email já cadastrado",
			user: &domain.User{
				Name:         "Novo",
				Lastname:     "Usuário",
				Email:        "novo@email.com",
				PasswordHash: "Senha@123",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("novo@email.com").Return(&domain.User{ID: 9}, nil)
			},
			expectedErr: ErrUserAlreadyExists,
		},
		{
			name: "Deve criar usuário com senha hasheada e papel padrão",
			user: &domain.User{
				Name:         "Novo",
				Lastname:     "Usuário",
				Email:        "  Novo@Email.com ",
				PasswordHash: "Senha@123",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("novo@email.com").Return(nil, nil)
				userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
					assert.Equal(t, "novo@email.com", user.Email)
					assert.Equal(t, 3, user.RoleID)
					assert.False(t, user.Active)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@123")))
					return user, nil
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _ := newAuthService(t)

			if tt.setup != nil {
				tt.setup(userRepo)
			}

			created, err := service.CreateUser(tt.user)

			if tt.expectedErr != nil {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, created)
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _, _ := newAuthService(t)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "Senha forte", password: "Senha@123", valid: true},
		{name: "Senha curta", password: "Ab@1", valid: false},
		{name: "Sem maiúscula", password: "senha@123", valid: false},
		{name: "Sem minúscula", password: "SENHA@123", valid: false},
		{name: "Sem número", password: "Senha@abc", valid: false},
		{name: "Sem caractere especial", password: "Senha1234", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	t.Run("Deve rejeitar solicitante sem perfil de administrador", func(t *testing.T) {
		service, userRepo, _ := newAuthService(t)

		userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, RoleID: 3}, nil)

		password, err := service.GenerateStrongPassword(7, 9)

		assert.Empty(t, password)
		assert.Error(t, err)
	})

	t.Run("Deve gerar senha forte e atualizar o usuário alvo", func(t *testing.T) {
		service, userRepo, _ := newAuthService(t)

		userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: 1}, nil)
		userRepo.EXPECT().GetUserByID(9).Return(&domain.User{ID: 9, RoleID: 3}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
			assert.Equal(t, 9, user.ID)
			assert.NotEmpty(t, user.PasswordHash)
			return nil
		})

		password, err := service.GenerateStrongPassword(1, 9)

		assert.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})
}

func TestLinkUserAccount(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(userRepo *mocks.MockUserRepository, accountRepo *mocks.MockAccountRepository)
		wantErr bool
	}{
		{
			name: "Deve rejeitar usuário inexistente",
			setup: func(userRepo *mocks.MockUserRepository, _ *mocks.MockAccountRepository) {
				userRepo.EXPECT().GetUserByID(7).Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name: "Deve rejeitar conta de anúncio não sincronizada",
			setup: func(userRepo *mocks.MockUserRepository, accountRepo *mocks.MockAccountRepository) {
				userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7}, nil)
				accountRepo.EXPECT().GetAccountByID("ACC404").Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name: "Deve vincular conta de anúncio existente",
			setup: func(userRepo *mocks.MockUserRepository, accountRepo *mocks.MockAccountRepository) {
				userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7}, nil)
				accountRepo.EXPECT().GetAccountByID("ACC404").Return(&domain.AdAccount{ID: "ACC404"}, nil)
				userRepo.EXPECT().LinkUserAccount(7, "ACC404").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, accountRepo := newAuthService(t)

			tt.setup(userRepo, accountRepo)

			err := service.LinkUserAccount(7, "ACC404")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetUserLinkedAccounts(t *testing.T) {
	service, userRepo, accountRepo := newAuthService(t)

	userRepo.EXPECT().GetUserLinkedAccounts(7).Return([]string{"ACC001", "ACC002", "ACC003"}, nil)
	accountRepo.EXPECT().GetAccountByID("ACC001").Return(&domain.AdAccount{
		ID:     "ACC001",
		Name:   "Conta Ativa",
		Status: domain.AdAccountStatusActive,
	}, nil)
	accountRepo.EXPECT().GetAccountByID("ACC002").Return(&domain.AdAccount{
		ID:     "ACC002",
		Name:   "Conta Inativa",
		Status: domain.AdAccountStatusInactive,
	}, nil)
	accountRepo.EXPECT().GetAccountByID("ACC003").Return(nil, nil)

	accounts, err := service.GetUserLinkedAccounts(7)

	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, "ACC001", accounts[0].ID)
}

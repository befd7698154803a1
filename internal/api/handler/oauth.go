package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/connecting"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
)

type AuthorizationURLResponse struct {
	URL string `json:"url"`
}

// GetOAuthURL devolve a URL de consentimento do Google para o usuário autenticado
func GetOAuthURL(service connecting.ConnectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		url, err := service.GetAuthorizationURL(userClaims.UserID)
		if err != nil {
			logrus.Error("Error generating authorization URL:", err)
			writeConnectError(w, err, "Erro ao gerar URL de autorização")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(AuthorizationURLResponse{URL: url}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// OAuthCallback recebe o redirect do Google com code e state. Rota pública:
// a identidade do usuário vem do state assinado.
func OAuthCallback(service connecting.ConnectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - OAuthCallback")

		state := r.URL.Query().Get("state")
		code := r.URL.Query().Get("code")

		if errorParam := r.URL.Query().Get("error"); errorParam != "" {
			logrus.WithField("error", errorParam).Warn("oauth: consentimento negado pelo usuário")
			apiErrors.WriteError(w, apiErrors.ErrOAuthExchange, "Autorização negada pelo usuário", map[string]any{
				"provider_error": errorParam,
			})
			return
		}

		credential, err := service.HandleCallback(r.Context(), state, code)
		if err != nil {
			logrus.Error("Error handling OAuth callback:", err)
			writeConnectError(w, err, "Erro ao concluir conexão com o Google Ads")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(credential); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetOAuthCredential devolve a credencial ativa do usuário (sem tokens)
func GetOAuthCredential(service connecting.ConnectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		credential, err := service.GetCredential(userClaims.UserID)
		if err != nil {
			writeConnectError(w, err, "Erro ao buscar credencial")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(credential); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DisconnectOAuth desativa a credencial do usuário
func DisconnectOAuth(service connecting.ConnectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DisconnectOAuth")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := service.Disconnect(userClaims.UserID); err != nil {
			logrus.Error("Error disconnecting credential:", err)
			writeConnectError(w, err, "Erro ao desconectar credencial")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]any{
			"message": "Credencial desconectada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	})
}

// RefreshAccessibleAccounts reconsulta as contas visíveis pela credencial do usuário
func RefreshAccessibleAccounts(service connecting.ConnectService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		customers, err := service.RefreshAccessibleCustomers(userClaims.UserID)
		if err != nil {
			logrus.Error("Error refreshing accessible accounts:", err)
			writeConnectError(w, err, "Erro ao atualizar contas acessíveis")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]any{
			"accessible_customers": customers,
		}
		json.NewEncoder(w).Encode(response)
	})
}

// writeConnectError mapeia os erros do fluxo de conexão para códigos de API
func writeConnectError(w http.ResponseWriter, err error, fallbackMessage string) {
	var connectErr *connecting.ConnectError
	if errors.As(err, &connectErr) {
		apiErrors.WriteError(w, connectErr.Code, connectErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}

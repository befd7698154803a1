package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/google/googleclient"
	"github.com/vfg2006/ads-manager-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

const defaultSyncRunsLimit = 20

// SyncAccount dispara a sincronização síncrona da hierarquia de uma conta
// externa e devolve o resumo da execução
func SyncAccount(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncAccount")

		externalID := httprouter.ParamsFromContext(r.Context()).ByName("externalId")
		if externalID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID externo da conta é obrigatório", nil)
			return
		}

		filters, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		summary, err := service.SyncAccount(externalID, filters)
		if err != nil {
			logrus.Error("Error syncing account:", err)
			writeSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListSyncRuns devolve o histórico recente de execuções de sincronização
func ListSyncRuns(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultSyncRunsLimit)
		if value := r.URL.Query().Get("limit"); value != "" {
			parsed, err := strconv.ParseUint(value, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := service.ListRecentRuns(limit)
		if err != nil {
			logrus.Error("Error listing sync runs:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções de sincronização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(runs); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeSyncError mapeia os erros de sincronização para códigos de API
func writeSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, syncing.ErrSyncInProgress):
		apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento para esta conta", nil)

	case errors.Is(err, syncing.ErrNoCredentialForAccount), errors.Is(err, googleclient.ErrNoCredential):
		apiErrors.WriteError(w, apiErrors.ErrNoCredential, "Nenhuma credencial ativa para a conta informada", nil)

	case errors.Is(err, googleclient.ErrReauthRequired):
		apiErrors.WriteError(w, apiErrors.ErrReauthRequired, "Credencial revogada, é necessário reautorizar via OAuth", nil)

	case errors.Is(err, googleclient.ErrTransientAuth):
		apiErrors.WriteError(w, apiErrors.ErrProviderTransient, "Falha temporária ao renovar o token, tente novamente", nil)

	case errors.Is(err, syncing.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro de banco de dados durante a sincronização", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar conta", nil)
	}
}

package google

import (
	"fmt"

	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// ValidationError indica um registro do provedor que não pôde ser normalizado
// para o vocabulário interno (enum desconhecido, número ou data malformados).
type ValidationError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("valor inválido do provedor em %s.%s: %q", e.Resource, e.Field, e.Value)
}

// ResourceFetchError envolve uma falha de busca preservando o tipo de recurso e
// o id do pai, para que a reconciliação registre o erro sem abortar os irmãos.
type ResourceFetchError struct {
	Kind     domain.ResourceKind
	ParentID string
	Err      error
}

func (e *ResourceFetchError) Error() string {
	return fmt.Sprintf("erro ao buscar %s de %s: %v", e.Kind, e.ParentID, e.Err)
}

func (e *ResourceFetchError) Unwrap() error {
	return e.Err
}

package usecase

import (
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain"
)

// domainNotFound envuelve ErrNotFound con la entidad y el ID ausentes, para
// que el transporte pueda mapear el estado 404 con errors.Is.
func domainNotFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
}

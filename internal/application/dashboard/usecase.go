package dashboard

import (
	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

// DashboardUseCase arma los totales de la pantalla inicial del SPA
// (productos, personas, usuarios, movimientos y alertas de stock).
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve los contadores agregados.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	c, err := uc.repo.Counters()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Products:   c.Products,
		People:     c.People,
		Users:      c.Users,
		Movements:  c.Movements,
		LowStock:   c.LowStock,
		OutOfStock: c.OutOfStock,
	}, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas para la pantalla inicial.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Counters devuelve los totales en una sola consulta.
func (r *DashboardRepo) Counters() (*repository.DashboardCounters, error) {
	query := `
		SELECT
			(SELECT count(*) FROM produtos),
			(SELECT count(*) FROM pessoas),
			(SELECT count(*) FROM usuarios),
			(SELECT count(*) FROM estoque_movimentos),
			(SELECT count(*) FROM produtos p
				LEFT JOIN estoque e ON e.produto_id = p.id
				WHERE COALESCE(e.quantidade, 0) > 0 AND COALESCE(e.quantidade, 0) <= p.estoque_minimo),
			(SELECT count(*) FROM produtos p
				LEFT JOIN estoque e ON e.produto_id = p.id
				WHERE COALESCE(e.quantidade, 0) <= 0)`
	var c repository.DashboardCounters
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.Products, &c.People, &c.Users, &c.Movements, &c.LowStock, &c.OutOfStock,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counters: %w", err)
	}
	return &c, nil
}

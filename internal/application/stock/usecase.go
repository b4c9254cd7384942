package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/domain"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
	domstock "github.com/oliveiradev/estoque-api/internal/domain/stock"
	"github.com/shopspring/decimal"
)

// LedgerUseCase registra movimientos de stock de forma transaccional y responde
// las consultas de cantidad en mano. Los movimientos son hechos inmutables:
// el stock materializado se mantiene en la misma transacción que cada insert,
// con bloqueo de fila (SELECT FOR UPDATE) para escritores concurrentes.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	personRepo  repository.PersonRepository
	movRepo     repository.StockMovementRepository
	stockRepo   repository.StockRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	personRepo repository.PersonRepository,
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		personRepo:  personRepo,
		movRepo:     movRepo,
		stockRepo:   stockRepo,
	}
}

// RegisterMovement valida, sella la fecha y registra un movimiento de stock.
// ENTRADA suma a la cantidad en mano; SAIDA resta. Una SAIDA que dejaría el
// stock negativo se rechaza con ErrInsufficientStock (no se rastrean backorders).
func (uc *LedgerUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	person, err := uc.personRepo.GetByID(in.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		PersonID:  in.PersonID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Date:      now,
		Notes:     in.Notes,
		CreatedAt: now,
	}

	// Inicia transacción; Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace)
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquea la fila de stock para evitar condiciones de carrera entre escritores
		current, err := stockRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		newQty := current.Quantity.Add(mov.SignedQuantity())
		if mov.Type == entity.MovementSaida && newQty.LessThan(decimal.Zero) {
			return domain.ErrInsufficientStock
		}
		// Escritura relativa: si el producto aún no tiene fila, FOR UPDATE no
		// bloqueó nada y dos primeras entradas concurrentes leen ambas cero;
		// sumar el delta (en vez de escribir el total calculado) hace que las
		// dos queden reflejadas. Una SAIDA solo llega aquí con fila existente
		// (desde cero siempre se rechaza arriba), así que sí corre bloqueada.
		if err := stockRepo.AddQuantity(in.ProductID, mov.SignedQuantity()); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// GetOnHand devuelve la cantidad en mano de un producto con su estado
// (out, low, normal). Producto inexistente retorna ErrNotFound.
func (uc *LedgerUseCase) GetOnHand(ctx context.Context, productID string) (*dto.StockItemResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	current, err := uc.stockRepo.Get(productID)
	if err != nil {
		return nil, err
	}
	return toStockItemResponse(product, current.Quantity), nil
}

// ListMovements devuelve los movimientos ordenados por fecha ascendente
// (empates por orden de inserción), con filtros opcionales por producto,
// tipo y rango de fechas (RFC 3339).
func (uc *LedgerUseCase) ListMovements(ctx context.Context, q dto.MovementListQuery) ([]dto.MovementResponse, error) {
	q.DefaultPage()
	filter := repository.MovementFilter{
		ProductID: q.ProductID,
		Type:      q.Type,
		Limit:     q.Limit,
		Offset:    q.Offset,
	}
	if q.From != "" {
		t, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &t
	}
	if q.To != "" {
		t, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.To = &t
	}
	list, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out, nil
}

// Panel devuelve todos los productos con su cantidad en mano y estado,
// para la pantalla de panel de estoque.
func (uc *LedgerUseCase) Panel(ctx context.Context) ([]dto.StockItemResponse, error) {
	items, err := uc.stockRepo.ListWithProducts()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toStockItemResponse(&it.Product, it.Quantity.Quantity))
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		PersonID:  m.PersonID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Date:      m.Date,
		Notes:     m.Notes,
	}
}

func toStockItemResponse(p *entity.Product, qty decimal.Decimal) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ProductID: p.ID,
		Name:      p.Name,
		Code:      p.Code,
		Unit:      p.Unit,
		Quantity:  qty,
		MinStock:  p.MinStock,
		Status:    domstock.Status(qty, p.MinStock),
	}
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/oliveiradev/estoque-api/internal/application/dto"
	"github.com/oliveiradev/estoque-api/internal/domain"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	"github.com/oliveiradev/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se edita aquí:
// se deriva de los movimientos.
type ProductUseCase struct {
	repo    repository.ProductRepository
	movRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movRepo repository.StockMovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movRepo: movRepo}
}

// Create crea un nuevo producto. El código debe ser único (ErrDuplicate si ya existe).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Code:        in.Code,
		Unit:        in.Unit,
		MinStock:    in.MinStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto existente con los campos presentes.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Code != nil && *in.Code != product.Code {
		existing, err := uc.repo.GetByCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = *in.Unit
	}
	if in.MinStock != nil {
		if in.MinStock.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Limit: limit, Offset: offset}, nil
}

// Delete elimina un producto. Si existen movimientos que lo referencian
// se rechaza con ErrConflict (el historial debe seguir siendo interpretable).
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.movRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Code:        p.Code,
		Unit:        p.Unit,
		MinStock:    p.MinStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Errores de la búsqueda de comercios por nombre.
var (
	ErrMerchantNameEmpty = domain.NewUnprocessable("Parameter 'name' cannot be empty")
	ErrMerchantNoMatch   = domain.NewNotFoundMessage("Merchant", "Merchant not found")
)

// MerchantUseCase consultas de comercios.
type MerchantUseCase struct {
	merchants repository.MerchantRepository
}

// NewMerchantUseCase construye el caso de uso.
func NewMerchantUseCase(merchants repository.MerchantRepository) *MerchantUseCase {
	return &MerchantUseCase{merchants: merchants}
}

// List devuelve todos los comercios.
func (uc *MerchantUseCase) List(ctx context.Context) (*dto.MerchantListResponse, error) {
	list, err := uc.merchants.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewMerchantListResponse(list), nil
}

// GetByID obtiene un comercio.
func (uc *MerchantUseCase) GetByID(ctx context.Context, id int64) (*dto.MerchantResponse, error) {
	m, err := uc.merchants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NewNotFound("Merchant", id)
	}
	return dto.NewMerchantResponse(m), nil
}

// Find primer comercio (orden alfabético) cuyo nombre contiene name, sin distinguir mayúsculas.
func (uc *MerchantUseCase) Find(ctx context.Context, name string) (*dto.MerchantResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMerchantNameEmpty
	}
	m, err := uc.merchants.FindFirstByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMerchantNoMatch
	}
	return dto.NewMerchantResponse(m), nil
}

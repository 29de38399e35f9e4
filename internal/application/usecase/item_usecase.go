package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/validation"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/metrics"
)

const (
	msgMerchantMustExist = "Merchant must exist"
	msgNegativeUnitPrice = "Unit price must be greater than or equal to 0"
)

// ItemUseCase consultas y CRUD de ítems. El borrado vive en catalog.DeleteItemUseCase.
type ItemUseCase struct {
	items     repository.ItemRepository
	merchants repository.MerchantRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(items repository.ItemRepository, merchants repository.MerchantRepository) *ItemUseCase {
	return &ItemUseCase{items: items, merchants: merchants}
}

// List devuelve todos los ítems.
func (uc *ItemUseCase) List(ctx context.Context) (*dto.ItemListResponse, error) {
	list, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewItemListResponse(list), nil
}

// ListByMerchant ítems de un comercio; NotFound si el comercio no existe.
func (uc *ItemUseCase) ListByMerchant(ctx context.Context, merchantID int64) (*dto.ItemListResponse, error) {
	merchant, err := uc.merchants.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.NewNotFound("Merchant", merchantID)
	}
	list, err := uc.items.FindItemsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return dto.NewItemListResponse(list), nil
}

// GetByID obtiene un ítem.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewItemResponse(item), nil
}

// Create valida presencia, precio no negativo y existencia del comercio.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	messages, err := validationMessages(validation.Struct(in))
	if err != nil {
		return nil, err
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		messages = append(messages, msgNegativeUnitPrice)
	}
	if in.MerchantID == nil {
		messages = append(messages, msgMerchantMustExist)
	} else {
		ok, err := uc.merchantExists(ctx, *in.MerchantID)
		if err != nil {
			return nil, err
		}
		if !ok {
			messages = append(messages, msgMerchantMustExist)
		}
	}
	if len(messages) > 0 {
		return nil, domain.NewValidation(messages...)
	}

	item := &entity.Item{
		Name:        in.Name,
		Description: in.Description,
		UnitPrice:   *in.UnitPrice,
		MerchantID:  *in.MerchantID,
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return dto.NewItemResponse(item), nil
}

// Update aplica solo los campos enviados, con las mismas reglas que Create.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	messages, err := validationMessages(validation.Struct(in))
	if err != nil {
		return nil, err
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		messages = append(messages, msgNegativeUnitPrice)
	}
	if in.MerchantID != nil && *in.MerchantID != item.MerchantID {
		ok, err := uc.merchantExists(ctx, *in.MerchantID)
		if err != nil {
			return nil, err
		}
		if !ok {
			messages = append(messages, msgMerchantMustExist)
		}
	}
	if len(messages) > 0 {
		return nil, domain.NewValidation(messages...)
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.MerchantID != nil {
		item.MerchantID = *in.MerchantID
	}
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return dto.NewItemResponse(item), nil
}

// Merchant devuelve el comercio dueño del ítem.
func (uc *ItemUseCase) Merchant(ctx context.Context, itemID int64) (*dto.MerchantResponse, error) {
	item, err := uc.find(ctx, itemID)
	if err != nil {
		return nil, err
	}
	merchant, err := uc.merchants.GetByID(ctx, item.MerchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.NewNotFound("Merchant", item.MerchantID)
	}
	return dto.NewMerchantResponse(merchant), nil
}

// FindAll resuelve los parámetros a un único filtro y lo ejecuta.
// Si la combinación es inválida no se consulta el almacén.
func (uc *ItemUseCase) FindAll(ctx context.Context, params catalog.FilterParams) (*dto.ItemListResponse, error) {
	filter, err := catalog.ResolveItemFilter(params)
	if err != nil {
		metrics.ItemSearchesTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	metrics.ItemSearchesTotal.WithLabelValues(string(filter.Mode)).Inc()

	list, err := uc.items.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewItemListResponse(list), nil
}

func (uc *ItemUseCase) find(ctx context.Context, id int64) (*entity.Item, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NewNotFound("Item", id)
	}
	return item, nil
}

func (uc *ItemUseCase) merchantExists(ctx context.Context, id int64) (bool, error) {
	m, err := uc.merchants.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

// validationMessages separa los mensajes de validación de cualquier otro error.
func validationMessages(err error) ([]string, error) {
	if err == nil {
		return nil, nil
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Messages, nil
	}
	return nil, err
}

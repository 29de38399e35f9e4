package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CreateItemRequest entrada para crear un ítem.
type CreateItemRequest struct {
	Name        string           `json:"name" validate:"notblank"`
	Description string           `json:"description" validate:"notblank"`
	UnitPrice   *decimal.Decimal `json:"unit_price" validate:"required"`
	MerchantID  *int64           `json:"merchant_id"` // ausente o inexistente: "Merchant must exist"
}

// UpdateItemRequest actualización parcial; nil = sin cambios.
type UpdateItemRequest struct {
	Name        *string          `json:"name" validate:"omitnil,notblank"`
	Description *string          `json:"description" validate:"omitnil,notblank"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	MerchantID  *int64           `json:"merchant_id" label:"Merchant"`
}

// CreateItemEnvelope acepta el cuerpo {"item": {...}}.
type CreateItemEnvelope struct {
	Item *CreateItemRequest `json:"item"`
}

// UpdateItemEnvelope acepta el cuerpo {"item": {...}}.
type UpdateItemEnvelope struct {
	Item *UpdateItemRequest `json:"item"`
}

// ItemAttributes atributos serializados de un ítem. unit_price y merchant_id viajan como números.
type ItemAttributes struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	MerchantID  int64   `json:"merchant_id"`
}

// ItemResource recurso JSON:API de un ítem.
type ItemResource = Resource[ItemAttributes]

// ItemResponse documento con un ítem.
type ItemResponse = Document[ItemResource]

// ItemListResponse documento con una lista de ítems (posiblemente vacía).
type ItemListResponse = Document[[]ItemResource]

// NewItemResource serializa un ítem.
func NewItemResource(it *entity.Item) ItemResource {
	return ItemResource{
		ID:   formatID(it.ID),
		Type: TypeItem,
		Attributes: ItemAttributes{
			Name:        it.Name,
			Description: it.Description,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			MerchantID:  it.MerchantID,
		},
	}
}

// NewItemResponse envuelve un ítem en {"data": {...}}.
func NewItemResponse(it *entity.Item) *ItemResponse {
	return &ItemResponse{Data: NewItemResource(it)}
}

// NewItemListResponse envuelve los ítems en {"data": [...]}; nunca serializa null.
func NewItemListResponse(items []*entity.Item) *ItemListResponse {
	out := make([]ItemResource, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemResource(it))
	}
	return &ItemListResponse{Data: out}
}

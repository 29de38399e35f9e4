package dto

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// MerchantAttributes atributos serializados de un comercio.
type MerchantAttributes struct {
	Name string `json:"name"`
}

// MerchantResource recurso JSON:API de un comercio.
type MerchantResource = Resource[MerchantAttributes]

// MerchantResponse documento con un comercio.
type MerchantResponse = Document[MerchantResource]

// MerchantListResponse documento con una lista de comercios.
type MerchantListResponse = Document[[]MerchantResource]

// NewMerchantResource serializa un comercio.
func NewMerchantResource(m *entity.Merchant) MerchantResource {
	return MerchantResource{
		ID:         formatID(m.ID),
		Type:       TypeMerchant,
		Attributes: MerchantAttributes{Name: m.Name},
	}
}

// NewMerchantResponse envuelve un comercio en {"data": {...}}.
func NewMerchantResponse(m *entity.Merchant) *MerchantResponse {
	return &MerchantResponse{Data: NewMerchantResource(m)}
}

// NewMerchantListResponse envuelve los comercios en {"data": [...]}.
func NewMerchantListResponse(list []*entity.Merchant) *MerchantListResponse {
	out := make([]MerchantResource, 0, len(list))
	for _, m := range list {
		out = append(out, NewMerchantResource(m))
	}
	return &MerchantListResponse{Data: out}
}

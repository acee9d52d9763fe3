package facility

import (
	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/internal/platform/openapi"
	"github.com/healthplan/healthplan/internal/platform/repository"
	"github.com/healthplan/healthplan/internal/platform/resource"
)

const (
	areasPath     = "/areas_atuacao"
	unitsPath     = "/unidades"
	addressesPath = "/enderecos_unidade"
)

type Handler struct {
	areas     *resource.Handler[ServiceArea, ServiceAreaRequest]
	units     *resource.Handler[Unit, UnitRequest]
	addresses *resource.Handler[UnitAddress, UnitAddressRequest]
}

func NewHandler(
	areas repository.Store[ServiceArea],
	units repository.Store[Unit],
	addresses repository.Store[UnitAddress],
) *Handler {
	return &Handler{
		areas:     resource.NewHandler[ServiceArea, ServiceAreaRequest](areas, "Área de atuação deletada com sucesso"),
		units:     resource.NewHandler[Unit, UnitRequest](units, "Unidade deletada com sucesso"),
		addresses: resource.NewHandler[UnitAddress, UnitAddressRequest](addresses, "Endereço da unidade deletado com sucesso"),
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	h.areas.Register(api, areasPath)
	h.units.Register(api, unitsPath)
	h.addresses.Register(api, addressesPath)
}

func (h *Handler) Describe(g *openapi.Generator) {
	g.Add(
		openapi.Resource{Name: "AreaAtuacao", Tag: "facility", Path: areasPath, Model: ServiceArea{}, Payload: ServiceAreaRequest{}},
		openapi.Resource{Name: "Unidade", Tag: "facility", Path: unitsPath, Model: Unit{}, Payload: UnitRequest{}},
		openapi.Resource{Name: "EnderecoUnidade", Tag: "facility", Path: addressesPath, Model: UnitAddress{}, Payload: UnitAddressRequest{}},
	)
}

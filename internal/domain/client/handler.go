package client

import (
	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/internal/platform/openapi"
	"github.com/healthplan/healthplan/internal/platform/resource"
)

const (
	maritalStatusesPath   = "/estados_civis"
	clientsPath           = "/clientes"
	addressesPath         = "/enderecos_cliente"
	comorbiditiesPath     = "/comorbidades"
	healthHistoriesPath   = "/historicos_saude_cliente"
	hospitalHistoriesPath = "/historicos_hospital_cliente"
)

type Handler struct {
	maritalStatuses   *resource.Handler[MaritalStatus, MaritalStatusRequest]
	clients           *resource.Handler[Client, ClientRequest]
	addresses         *resource.Handler[Address, AddressRequest]
	comorbidities     *resource.Handler[Comorbidity, ComorbidityRequest]
	healthHistories   *resource.Handler[HealthHistory, HealthHistoryRequest]
	hospitalHistories *resource.Handler[HospitalHistory, HospitalHistoryRequest]
}

func NewHandler(r Repos) *Handler {
	return &Handler{
		maritalStatuses: resource.NewHandler[MaritalStatus, MaritalStatusRequest](
			r.MaritalStatuses, "Estado civil deletado com sucesso"),
		clients: resource.NewHandler[Client, ClientRequest](
			r.Clients, "Cliente deletado com sucesso"),
		addresses: resource.NewHandler[Address, AddressRequest](
			r.Addresses, "Endereço do cliente deletado com sucesso"),
		comorbidities: resource.NewHandler[Comorbidity, ComorbidityRequest](
			r.Comorbidities, "Comorbidade deletada com sucesso"),
		healthHistories: resource.NewHandler[HealthHistory, HealthHistoryRequest](
			r.HealthHistories, "Histórico de saúde do cliente deletado com sucesso"),
		hospitalHistories: resource.NewHandler[HospitalHistory, HospitalHistoryRequest](
			r.HospitalHistories, "Histórico hospitalar do cliente deletado com sucesso"),
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	h.maritalStatuses.Register(api, maritalStatusesPath)
	h.clients.Register(api, clientsPath)
	h.addresses.Register(api, addressesPath)
	h.comorbidities.Register(api, comorbiditiesPath)
	h.healthHistories.Register(api, healthHistoriesPath)
	h.hospitalHistories.Register(api, hospitalHistoriesPath)
}

func (h *Handler) Describe(g *openapi.Generator) {
	g.Add(
		openapi.Resource{Name: "EstadoCivil", Tag: "client", Path: maritalStatusesPath, Model: MaritalStatus{}, Payload: MaritalStatusRequest{}},
		openapi.Resource{Name: "Cliente", Tag: "client", Path: clientsPath, Model: Client{}, Payload: ClientRequest{}},
		openapi.Resource{Name: "EnderecoCliente", Tag: "client", Path: addressesPath, Model: Address{}, Payload: AddressRequest{}},
		openapi.Resource{Name: "Comorbidade", Tag: "client", Path: comorbiditiesPath, Model: Comorbidity{}, Payload: ComorbidityRequest{}},
		openapi.Resource{Name: "HistoricoSaudeCliente", Tag: "client", Path: healthHistoriesPath, Model: HealthHistory{}, Payload: HealthHistoryRequest{}},
		openapi.Resource{Name: "HistoricoHospitalCliente", Tag: "client", Path: hospitalHistoriesPath, Model: HospitalHistory{}, Payload: HospitalHistoryRequest{}},
	)
}

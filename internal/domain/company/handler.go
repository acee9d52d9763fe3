package company

import (
	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/internal/platform/openapi"
	"github.com/healthplan/healthplan/internal/platform/repository"
	"github.com/healthplan/healthplan/internal/platform/resource"
)

const (
	companiesPath = "/empresas"
	plansPath     = "/convenios"
)

type Handler struct {
	companies *resource.Handler[Company, CompanyRequest]
	plans     *resource.Handler[InsurancePlan, InsurancePlanRequest]
}

func NewHandler(companies repository.Store[Company], plans repository.Store[InsurancePlan]) *Handler {
	return &Handler{
		companies: resource.NewHandler[Company, CompanyRequest](companies, "Empresa deletada com sucesso"),
		plans:     resource.NewHandler[InsurancePlan, InsurancePlanRequest](plans, "Convênio deletado com sucesso"),
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	h.companies.Register(api, companiesPath)
	h.plans.Register(api, plansPath)
}

func (h *Handler) Describe(g *openapi.Generator) {
	g.Add(
		openapi.Resource{Name: "Empresa", Tag: "company", Path: companiesPath, Model: Company{}, Payload: CompanyRequest{}},
		openapi.Resource{Name: "Convenio", Tag: "company", Path: plansPath, Model: InsurancePlan{}, Payload: InsurancePlanRequest{}},
	)
}

package doctor

import (
	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/internal/platform/openapi"
	"github.com/healthplan/healthplan/internal/platform/repository"
	"github.com/healthplan/healthplan/internal/platform/resource"
)

const (
	doctorsPath     = "/medicos"
	assignmentsPath = "/medicos_unidade"
)

type Handler struct {
	doctors     *resource.Handler[Doctor, DoctorRequest]
	assignments *resource.Handler[UnitAssignment, UnitAssignmentRequest]
}

func NewHandler(doctors repository.Store[Doctor], assignments repository.Store[UnitAssignment]) *Handler {
	return &Handler{
		doctors:     resource.NewHandler[Doctor, DoctorRequest](doctors, "Médico deletado com sucesso"),
		assignments: resource.NewHandler[UnitAssignment, UnitAssignmentRequest](assignments, "Vínculo médico-unidade deletado com sucesso"),
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	h.doctors.Register(api, doctorsPath)
	h.assignments.Register(api, assignmentsPath)
}

func (h *Handler) Describe(g *openapi.Generator) {
	g.Add(
		openapi.Resource{Name: "Medico", Tag: "doctor", Path: doctorsPath, Model: Doctor{}, Payload: DoctorRequest{}},
		openapi.Resource{Name: "MedicoUnidade", Tag: "doctor", Path: assignmentsPath, Model: UnitAssignment{}, Payload: UnitAssignmentRequest{}},
	)
}

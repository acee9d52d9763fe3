package geo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/internal/platform/openapi"
	"github.com/healthplan/healthplan/internal/platform/repository"
	"github.com/healthplan/healthplan/internal/platform/resource"
	"github.com/healthplan/healthplan/internal/platform/sqlerr"
)

const (
	statesPath        = "/estados"
	citiesPath        = "/cidades"
	citiesByStatePath = "/cidades/estado/:estado_id"
)

type Handler struct {
	states *resource.Handler[State, StateRequest]
	cities *resource.Handler[City, CityRequest]
	store  CityStore
}

func NewHandler(states repository.Store[State], cities CityStore) *Handler {
	return &Handler{
		states: resource.NewHandler[State, StateRequest](states, "Estado deletado com sucesso"),
		cities: resource.NewHandler[City, CityRequest](cities, "Cidade deletada com sucesso"),
		store:  cities,
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	h.states.Register(api, statesPath)
	h.cities.Register(api, citiesPath)
	api.GET(citiesByStatePath, h.ListCitiesByState)
}

// Describe adds the geo routes to the API document.
func (h *Handler) Describe(g *openapi.Generator) {
	g.Add(
		openapi.Resource{Name: "Estado", Tag: "geo", Path: statesPath, Model: State{}, Payload: StateRequest{}},
		openapi.Resource{Name: "Cidade", Tag: "geo", Path: citiesPath, Model: City{}, Payload: CityRequest{}},
	)
	g.AddQuery(openapi.Query{
		Resource: "Cidade",
		Path:     "/cidades/estado/{estado_id}",
		Param:    "estado_id",
		Summary:  "List the cities of one state",
	})
}

// ListCitiesByState returns the cities of one state. An unknown state yields
// an empty list.
func (h *Handler) ListCitiesByState(c echo.Context) error {
	estadoID, err := resource.ParseID(c, "estado_id")
	if err != nil {
		return err
	}
	cities, err := h.store.ListByState(c.Request().Context(), estadoID)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	return c.JSON(http.StatusOK, cities)
}

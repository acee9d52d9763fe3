// Package resource serves the uniform list/get/create/update/delete HTTP
// surface shared by every healthplan entity.
package resource

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthplan/healthplan/internal/platform/errs"
	"github.com/healthplan/healthplan/internal/platform/repository"
	"github.com/healthplan/healthplan/internal/platform/sqlerr"
	"github.com/healthplan/healthplan/internal/platform/validation"
	"github.com/healthplan/healthplan/pkg/pagination"
)

// Payload is a validated request body that converts into the stored entity.
type Payload[T any] interface {
	Model() *T
}

// Message is the body returned by a successful delete.
type Message struct {
	Message string `json:"message"`
}

// Handler exposes a repository.Store over HTTP. P is the request payload
// type decoded and validated on create and update.
type Handler[T any, P Payload[T]] struct {
	store   repository.Store[T]
	deleted string
}

// NewHandler returns a handler answering deletes with deletedMessage.
func NewHandler[T any, P Payload[T]](store repository.Store[T], deletedMessage string) *Handler[T, P] {
	return &Handler[T, P]{store: store, deleted: deletedMessage}
}

// Register mounts the collection at path and the item routes at path/:id.
func (h *Handler[T, P]) Register(g *echo.Group, path string) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

func (h *Handler[T, P]) List(c echo.Context) error {
	p := pagination.FromContext(c)
	items, err := h.store.List(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler[T, P]) Get(c echo.Context) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler[T, P]) Create(c echo.Context) error {
	var payload P
	if err := validation.BindAndValidate(c, &payload); err != nil {
		return err
	}
	item, err := h.store.Create(c.Request().Context(), payload.Model())
	if err != nil {
		return sqlerr.HandleError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler[T, P]) Update(c echo.Context) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	var payload P
	if err := validation.BindAndValidate(c, &payload); err != nil {
		return err
	}
	item, err := h.store.Update(c.Request().Context(), id, payload.Model())
	if err != nil {
		return sqlerr.HandleError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler[T, P]) Delete(c echo.Context) error {
	id, err := ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.store.Delete(c.Request().Context(), id); err != nil {
		return sqlerr.HandleError(err)
	}
	return c.JSON(http.StatusOK, Message{Message: h.deleted})
}

// ParseID reads a positive integer path parameter.
func ParseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError("invalid "+name, "", []errs.FieldError{
			{Field: name, Error: "must be a positive integer"},
		})
	}
	return id, nil
}

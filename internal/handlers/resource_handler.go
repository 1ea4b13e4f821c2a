package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/bill_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/bill_tracker/internal/core/ports/services"
	"github.com/SscSPs/bill_tracker/internal/dto"
	"github.com/SscSPs/bill_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// resourceHandler serves the CRUD routes of one resource. T is the stored
// row type and R the request payload that decodes into it.
type resourceHandler[T any, R dto.Request[T]] struct {
	name       string
	service    portssvc.CRUDSvcFacade[T]
	fromDomain func(*T) R
}

// registerResourceRoutes mounts /{name}/ and /{name}/:id/ on rg.
// fromDomain seeds PATCH requests with the stored values.
func registerResourceRoutes[T any, R dto.Request[T]](
	rg *gin.RouterGroup,
	name string,
	service portssvc.CRUDSvcFacade[T],
	fromDomain func(*T) R,
) {
	h := &resourceHandler[T, R]{name: name, service: service, fromDomain: fromDomain}

	resource := rg.Group("/" + name)
	{
		resource.GET("/", h.list)
		resource.POST("/", h.create)
		resource.GET("/:id/", h.retrieve)
		resource.PUT("/:id/", h.update)
		resource.PATCH("/:id/", h.partialUpdate)
		resource.DELETE("/:id/", h.destroy)
	}
}

// parseID returns false for anything that cannot be a stored id; such
// paths are treated as missing rows.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// list godoc
// @Summary List rows of a resource
// @Description Returns every row in the resource's default order
// @Tags resources
// @Produce json
// @Param resource path string true "Resource" Enums(recurrences, bill-statuses, bank-accounts, bills, due-bills, bank-account-instances)
// @Success 200 {array} object
// @Failure 500 {object} map[string]string
// @Router /{resource}/ [get]
func (h *resourceHandler[T, R]) list(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// retrieve godoc
// @Summary Get one row
// @Tags resources
// @Produce json
// @Param resource path string true "Resource"
// @Param id path int true "Row id"
// @Success 200 {object} object
// @Failure 404 {object} map[string]string
// @Router /{resource}/{id}/ [get]
func (h *resourceHandler[T, R]) retrieve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, apperrors.NewNotFoundError(detailNotFound))
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// create godoc
// @Summary Create a row
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource"
// @Param body body object true "Row fields"
// @Success 201 {object} object
// @Failure 400 {object} map[string][]string "Per-field validation messages"
// @Router /{resource}/ [post]
func (h *resourceHandler[T, R]) create(c *gin.Context) {
	var req R
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// update godoc
// @Summary Replace a row
// @Description Omitted optional fields are reset to their defaults
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource"
// @Param id path int true "Row id"
// @Param body body object true "Row fields"
// @Success 200 {object} object
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} map[string]string
// @Router /{resource}/{id}/ [put]
func (h *resourceHandler[T, R]) update(c *gin.Context) {
	id, _, ok := h.loadForWrite(c)
	if !ok {
		return
	}

	var req R
	h.save(c, id, &req)
}

// partialUpdate godoc
// @Summary Update some fields of a row
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource"
// @Param id path int true "Row id"
// @Param body body object true "Fields to change"
// @Success 200 {object} object
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} map[string]string
// @Router /{resource}/{id}/ [patch]
func (h *resourceHandler[T, R]) partialUpdate(c *gin.Context) {
	id, existing, ok := h.loadForWrite(c)
	if !ok {
		return
	}

	req := h.fromDomain(existing)
	h.save(c, id, &req)
}

// destroy godoc
// @Summary Delete a row
// @Description Applies the cascade, protect and set-null rules of rows that reference it
// @Tags resources
// @Param resource path string true "Resource"
// @Param id path int true "Row id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Row is referenced through a protected relation"
// @Router /{resource}/{id}/ [delete]
func (h *resourceHandler[T, R]) destroy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, apperrors.NewNotFoundError(detailNotFound))
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	middleware.GetLoggerFromContext(c).Info("Row deleted", slog.String("resource", h.name), slog.Int64("id", id))
	c.Status(http.StatusNoContent)
}

// loadForWrite resolves the id of an update and makes sure the row exists
// before the body is looked at.
func (h *resourceHandler[T, R]) loadForWrite(c *gin.Context) (int64, *T, bool) {
	id, ok := parseID(c)
	if !ok {
		respondError(c, apperrors.NewNotFoundError(detailNotFound))
		return 0, nil, false
	}
	existing, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return 0, nil, false
	}
	return id, existing, true
}

func (h *resourceHandler[T, R]) save(c *gin.Context, id int64, req *R) {
	if err := bindJSON(c, req); err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, (*req).ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

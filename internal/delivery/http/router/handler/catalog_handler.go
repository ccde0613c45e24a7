package handler

import (
	"log/slog"
	"net/http"

	"rxsupply/internal/delivery/http/response"
	"rxsupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog-related handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// parseGroupID reads the optional group_id query parameter. A missing
// parameter means an anonymous viewer, who sees base prices only.
func parseGroupID(c echo.Context) (uuid.UUID, bool) {
	raw := c.QueryParam("group_id")
	if raw == "" {
		return uuid.Nil, true
	}

	groupID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return groupID, true
}

// GetCatalog handles retrieving the priced product catalog
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	groupID, ok := parseGroupID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_GROUP_ID", "Invalid group ID")
	}

	products, err := h.catalogUC.GetCatalog(c.Request().Context(), groupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Catalog retrieved successfully")
}

// GetVariantPrice handles resolving the price of a single variant
func (h *CatalogHandler) GetVariantPrice(c echo.Context) error {
	variantID, err := uuid.Parse(c.Param("variantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	groupID, ok := parseGroupID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_GROUP_ID", "Invalid group ID")
	}

	price, err := h.catalogUC.GetVariantPrice(c.Request().Context(), variantID, groupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, price, "Variant price resolved successfully")
}

package api

import (
	"net/http"

	reqdto "festivo/internal/handler/dto/request"
	resdto "festivo/internal/handler/dto/response"
	"festivo/internal/handler/httperr"
	"festivo/internal/usecase/commands"
	"festivo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries  queries.CatalogQueries
	catalogCommands commands.CatalogCommands
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries, catalogCommands commands.CatalogCommands) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries:  catalogQueries,
		catalogCommands: catalogCommands,
	}
}

// @Summary List packages
// @Description List all active event packages
// @Tags packages
// @Produce json
// @Success 200 {array} resdto.PackageResponse
// @Router /packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	views, err := h.catalogQueries.ListPackages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageViews(views))
}

// @Summary Get package
// @Description Get a single package with its customization options
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /packages/{id} [get]
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.catalogQueries.GetPackage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Create package
// @Description Create a new event package (admin only)
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePackageRequest true "Package"
// @Success 201 {object} resdto.PackageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /packages [post]
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var req reqdto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.catalogCommands.CreatePackage(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPackageView(view))
}

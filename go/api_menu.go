package orderingserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	menuhttpmapper "github.com/Apurer/bites-ordering-api/internal/domains/menu/adapters/http/mapper"
	menuports "github.com/Apurer/bites-ordering-api/internal/domains/menu/ports"
)

// MenuAPI serves the read-only menu.
type MenuAPI struct {
	menu menuports.Service
}

func NewMenuAPI(menu menuports.Service) MenuAPI {
	return MenuAPI{menu: menu}
}

// Get /v1/menu
// Lists menu items, optionally filtered by category
func (api *MenuAPI) ListMenu(c *gin.Context) {
	var category string
	if err := runtime.BindQueryParameter("form", true, false, "category", c.Request.URL.Query(), &category); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	items, err := api.menu.ListItems(c.Request.Context(), category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, menuhttpmapper.FromDomainItems(items))
}

// Get /v1/menu/categories
// Lists the category filter choices
func (api *MenuAPI) ListCategories(c *gin.Context) {
	categories, err := api.menu.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

package orderingserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	menudomain "github.com/Apurer/bites-ordering-api/internal/domains/menu/domain"
	menuports "github.com/Apurer/bites-ordering-api/internal/domains/menu/ports"
	orderinghttpmapper "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/http/mapper"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

// CartAPI wires the shopper's cart and checkout to the ordering service.
type CartAPI struct {
	ordering orderingports.Service
	menu     menuports.Service
}

func NewCartAPI(ordering orderingports.Service, menu menuports.Service) CartAPI {
	return CartAPI{ordering: ordering, menu: menu}
}

// Post /v1/cart/items
// Adds a menu item to the session cart
func (api *CartAPI) AddItem(c *gin.Context) {
	var payload orderinghttpmapper.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	item, err := api.menu.Lookup(ctx, strings.TrimSpace(payload.ItemName))
	if err != nil {
		respondError(c, err)
		return
	}
	added, err := api.ordering.AddItem(ctx, SessionID(c), item.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderinghttpmapper.FromAddedItem(added))
}

// Get /v1/cart
// Shows the session cart with prices and total
func (api *CartAPI) GetCart(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := api.ordering.ListItems(ctx, SessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderinghttpmapper.FromCartView(view, api.lookup(ctx)))
}

// Delete /v1/cart
// Empties the session cart
func (api *CartAPI) ClearCart(c *gin.Context) {
	if err := api.ordering.ClearCart(c.Request.Context(), SessionID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /v1/cart/submit
// Submits the session cart as an order
func (api *CartAPI) SubmitOrder(c *gin.Context) {
	var payload orderinghttpmapper.SubmitOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	order, err := api.ordering.Submit(c.Request.Context(), SessionID(c), orderinghttpmapper.ToCustomerDetails(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderinghttpmapper.FromDomainOrder(order, 0))
}

func (api *CartAPI) lookup(ctx context.Context) func(string) (menudomain.MenuItem, bool) {
	return func(name string) (menudomain.MenuItem, bool) {
		item, err := api.menu.Lookup(ctx, name)
		if err != nil || item == nil {
			return menudomain.MenuItem{}, false
		}
		return *item, true
	}
}

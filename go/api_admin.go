package orderingserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	orderinghttpmapper "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/http/mapper"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
)

// AdminPasswordHeader carries the operator credential.
const AdminPasswordHeader = "X-Admin-Password"

// AdminAPI is the operator's read-only view of submitted orders.
type AdminAPI struct {
	orders orderingports.OrderLister
	access orderingports.AccessChecker
}

func NewAdminAPI(orders orderingports.OrderLister, access orderingports.AccessChecker) AdminAPI {
	return AdminAPI{orders: orders, access: access}
}

// Get /v1/admin/orders
// Lists submitted orders in submission order
func (api *AdminAPI) ListOrders(c *gin.Context) {
	if !api.authorize(c) {
		return
	}
	orders, err := api.orders.ListSubmittedOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderinghttpmapper.FromDomainOrders(orders))
}

// Get /v1/admin/orders/:orderNumber
// Shows one submitted order by its 1-based position
func (api *AdminAPI) GetOrder(c *gin.Context) {
	if !api.authorize(c) {
		return
	}
	var number int
	if err := runtime.BindStyledParameterWithOptions("simple", "orderNumber", c.Param("orderNumber"), &number, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	}); err != nil {
		responder.BadRequest(c, err.Error())
		return
	}
	orders, err := api.orders.ListSubmittedOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if number < 1 || number > len(orders) {
		responder.NotFound(c, "order", number)
		return
	}
	c.JSON(http.StatusOK, orderinghttpmapper.FromDomainOrder(orders[number-1], number))
}

func (api *AdminAPI) authorize(c *gin.Context) bool {
	if api.access == nil {
		responder.Unauthorized(c, orderingports.ErrAccessDenied.Error())
		return false
	}
	if err := api.access.CheckAccess(c.Request.Context(), c.GetHeader(AdminPasswordHeader)); err != nil {
		if errors.Is(err, orderingports.ErrAccessDenied) {
			responder.Unauthorized(c, err.Error())
			return false
		}
		respondError(c, err)
		return false
	}
	return true
}

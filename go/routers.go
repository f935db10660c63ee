package orderingserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
	// Session marks routes scoped to the shopper's cart session.
	Session bool
}

// ApiHandleFunctions groups the handlers mounted by NewRouter.
type ApiHandleFunctions struct {
	MenuAPI  MenuAPI
	CartAPI  CartAPI
	AdminAPI AdminAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		handlers := []gin.HandlerFunc{route.HandlerFunc}
		if route.Session {
			handlers = append([]gin.HandlerFunc{SessionMiddleware()}, handlers...)
		}
		router.Handle(route.Method, route.Pattern, handlers...)
	}
	return router
}

// DefaultHandleFunc answers routes that have no handler wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// Healthz reports liveness.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"Healthz",
			http.MethodGet,
			"/healthz",
			Healthz,
			false,
		},
		{
			"ListMenu",
			http.MethodGet,
			"/v1/menu",
			handleFunctions.MenuAPI.ListMenu,
			false,
		},
		{
			"ListCategories",
			http.MethodGet,
			"/v1/menu/categories",
			handleFunctions.MenuAPI.ListCategories,
			false,
		},
		{
			"AddCartItem",
			http.MethodPost,
			"/v1/cart/items",
			handleFunctions.CartAPI.AddItem,
			true,
		},
		{
			"GetCart",
			http.MethodGet,
			"/v1/cart",
			handleFunctions.CartAPI.GetCart,
			true,
		},
		{
			"ClearCart",
			http.MethodDelete,
			"/v1/cart",
			handleFunctions.CartAPI.ClearCart,
			true,
		},
		{
			"SubmitOrder",
			http.MethodPost,
			"/v1/cart/submit",
			handleFunctions.CartAPI.SubmitOrder,
			true,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/v1/admin/orders",
			handleFunctions.AdminAPI.ListOrders,
			false,
		},
		{
			"GetOrder",
			http.MethodGet,
			"/v1/admin/orders/:orderNumber",
			handleFunctions.AdminAPI.GetOrder,
			false,
		},
	}
}

//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	pacttest "github.com/Apurer/bites-ordering-api/test/pact"

	orderingserver "github.com/Apurer/bites-ordering-api/go"
	menucatalog "github.com/Apurer/bites-ordering-api/internal/domains/menu/adapters/catalog"
	menuapp "github.com/Apurer/bites-ordering-api/internal/domains/menu/application"
	orderingaccess "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/access"
	orderingmemory "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/memory"
	orderingobs "github.com/Apurer/bites-ordering-api/internal/domains/ordering/adapters/observability"
	orderingapp "github.com/Apurer/bites-ordering-api/internal/domains/ordering/application"
	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestOrderingProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateMenuBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateCartHasItem: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedCart(t)
			}
			return nil, nil
		},
		pacttest.StateOrdersExist: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedCart(t)
				app.seedOrder(t)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

// contractProviderApp rebuilds the in-memory stack on every reset so each
// interaction starts from empty carts and orders.
type contractProviderApp struct {
	mu       sync.RWMutex
	router   http.Handler
	ordering orderingports.Service
	server   *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.reset(t)
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.RLock()
		router := app.router
		app.mu.RUnlock()
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	return app
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	menuRepo, err := menucatalog.NewPresetRepository(menucatalog.DefaultPreset)
	require.NoError(t, err)
	menuService := menuapp.NewService(menuRepo)

	ordering := orderingobs.New(orderingapp.NewService(orderingmemory.NewCartStore(), orderingmemory.NewOrderStore()))
	access, err := orderingaccess.NewPasswordChecker(pacttest.AdminPassword, "")
	require.NoError(t, err)

	router := gin.New()
	router.Use(gin.Recovery())
	router = orderingserver.NewRouterWithGinEngine(router, orderingserver.ApiHandleFunctions{
		MenuAPI:  orderingserver.NewMenuAPI(menuService),
		CartAPI:  orderingserver.NewCartAPI(ordering, menuService),
		AdminAPI: orderingserver.NewAdminAPI(ordering, access),
	})

	a.mu.Lock()
	a.router = router
	a.ordering = ordering
	a.mu.Unlock()
}

func (a *contractProviderApp) service() orderingports.Service {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ordering
}

func (a *contractProviderApp) seedCart(t testing.TB) {
	t.Helper()
	_, err := a.service().AddItem(context.Background(), pacttest.ContractSessionID, pacttest.ExampleItemName)
	require.NoError(t, err)
}

func (a *contractProviderApp) seedOrder(t testing.TB) {
	t.Helper()
	_, err := a.service().Submit(context.Background(), pacttest.ContractSessionID, orderingdomain.CustomerDetails{
		Name:    pacttest.ExampleCustomerName,
		Contact: pacttest.ExampleContact,
		Address: pacttest.ExampleAddress,
	})
	require.NoError(t, err)
}

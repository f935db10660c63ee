//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/Apurer/bites-ordering-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type addedItem struct {
	ItemName string `json:"itemName"`
	CartSize int    `json:"cartSize"`
	Message  string `json:"message"`
}

type orderPayload struct {
	Number       int      `json:"number"`
	ID           string   `json:"id"`
	CustomerName string   `json:"customerName"`
	Contact      string   `json:"contact"`
	Address      string   `json:"address"`
	Items        []string `json:"items"`
}

type problemDetail struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail"`
	Extensions map[string]any `json:"extensions"`
}

type apiError struct {
	status  int
	problem problemDetail
}

func (e apiError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.problem.Title, e.problem.Detail, e.status)
}

func TestStorefrontContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")
	orderMatcher := matchers.Map{
		"id":           matchers.Regex(pacttest.ExampleOrderID, pacttest.UUIDPattern),
		"customerName": matchers.Like(pacttest.ExampleCustomerName),
		"contact":      matchers.Like(pacttest.ExampleContact),
		"address":      matchers.Like(pacttest.ExampleAddress),
		"items":        matchers.ArrayMinLike(pacttest.ExampleItemName, 1),
		"submittedAt":  matchers.Like("2024-06-12T10:00:00Z"),
	}

	pact.AddInteraction().
		Given(pacttest.StateMenuBaseline).
		UponReceiving("a request for the menu categories").
		WithRequest("GET", "/v1/menu/categories").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.ArrayMinLike("All", 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateMenuBaseline).
		UponReceiving("a request to add a menu item to the cart").
		WithRequest("POST", "/v1/cart/items", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.Header("X-Session-ID", matchers.S(pacttest.ContractSessionID))
			b.JSONBody(matchers.Map{"itemName": matchers.S(pacttest.ExampleItemName)})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"itemName": matchers.S(pacttest.ExampleItemName),
				"cartSize": matchers.Like(1),
				"message":  matchers.S(pacttest.ExampleItemName + " added to cart!"),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateCartHasItem).
		UponReceiving("a request to submit the cart").
		WithRequest("POST", "/v1/cart/submit", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.Header("X-Session-ID", matchers.S(pacttest.ContractSessionID))
			b.JSONBody(pacttest.ExampleOrderForm())
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(orderMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateMenuBaseline).
		UponReceiving("a request to submit an empty cart without details").
		WithRequest("POST", "/v1/cart/submit", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.Header("X-Session-ID", matchers.S(pacttest.ContractSessionID))
			b.JSONBody(map[string]any{"customerName": "", "contact": "", "address": ""})
		}).
		WillRespondWith(http.StatusBadRequest, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/validation-error"),
				"title":  matchers.S("Validation Error"),
				"status": matchers.Like(http.StatusBadRequest),
				"extensions": matchers.Map{
					"reasons": []string{"missing_name", "missing_contact", "missing_address", "empty_cart"},
				},
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateOrdersExist).
		UponReceiving("an operator request for submitted orders").
		WithRequest("GET", "/v1/admin/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("X-Admin-Password", matchers.S(pacttest.AdminPassword))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(matchers.Map{
				"number":       matchers.Like(1),
				"id":           matchers.Regex(pacttest.ExampleOrderID, pacttest.UUIDPattern),
				"customerName": matchers.Like(pacttest.ExampleCustomerName),
				"contact":      matchers.Like(pacttest.ExampleContact),
				"address":      matchers.Like(pacttest.ExampleAddress),
				"items":        matchers.ArrayMinLike(pacttest.ExampleItemName, 1),
				"submittedAt":  matchers.Like("2024-06-12T10:00:00Z"),
			}, 1))
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newStorefrontClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var categories []string
		if err := client.do(ctx, http.MethodGet, "/v1/menu/categories", nil, nil, &categories); err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		if len(categories) == 0 {
			return fmt.Errorf("expected at least one category")
		}

		var added addedItem
		if err := client.do(ctx, http.MethodPost, "/v1/cart/items", map[string]string{"itemName": pacttest.ExampleItemName}, sessionHeader(), &added); err != nil {
			return fmt.Errorf("add item: %w", err)
		}
		if added.CartSize < 1 {
			return fmt.Errorf("expected cart size to be at least 1, got %d", added.CartSize)
		}

		var order orderPayload
		if err := client.do(ctx, http.MethodPost, "/v1/cart/submit", pacttest.ExampleOrderForm(), sessionHeader(), &order); err != nil {
			return fmt.Errorf("submit: %w", err)
		}
		if order.ID == "" || len(order.Items) == 0 {
			return fmt.Errorf("expected submitted order, got %+v", order)
		}

		err := client.do(ctx, http.MethodPost, "/v1/cart/submit", map[string]any{"customerName": "", "contact": "", "address": ""}, sessionHeader(), nil)
		apiErr, ok := err.(apiError)
		if !ok || apiErr.status != http.StatusBadRequest {
			return fmt.Errorf("expected validation problem, got %v", err)
		}

		var orders []orderPayload
		if err := client.do(ctx, http.MethodGet, "/v1/admin/orders", nil, map[string]string{"X-Admin-Password": pacttest.AdminPassword}, &orders); err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		if len(orders) == 0 || orders[0].Number != 1 {
			return fmt.Errorf("expected numbered orders, got %+v", orders)
		}
		return nil
	})
	require.NoError(t, err)
}

func sessionHeader() map[string]string {
	return map[string]string{"X-Session-ID": pacttest.ContractSessionID}
}

type storefrontClient struct {
	baseURL    string
	httpClient *http.Client
}

func newStorefrontClient(config pactconsumer.MockServerConfig) *storefrontClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &storefrontClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *storefrontClient) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var problem problemDetail
		_ = json.NewDecoder(res.Body).Decode(&problem)
		return apiError{status: res.StatusCode, problem: problem}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

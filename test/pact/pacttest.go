//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "bites-ordering-api"
	ConsumerName = "bites-storefront"

	StateMenuBaseline = "default menu loaded and carts empty"
	StateCartHasItem  = "contract session cart holds a Margherita Pizza"
	StateOrdersExist  = "one submitted order exists"
)

const (
	// ContractSessionID is the cart session shared by consumer and provider.
	ContractSessionID = "8d3b1c2e-5f4a-4b6c-9d7e-0a1b2c3d4e5f"
	// AdminPassword unlocks the operator view in contract runs.
	AdminPassword = "pact-admin"

	ExampleItemName     = "Margherita Pizza"
	ExampleCustomerName = "Pact Customer"
	ExampleContact      = "+256700000000"
	ExampleAddress      = "Plot 1, Kampala Road"
	ExampleOrderID      = "3b241101-e2bb-4255-8caf-4136c566a962"

	UUIDPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderForm provides stable checkout data for pact interactions.
func ExampleOrderForm() map[string]any {
	return map[string]any{
		"customerName": ExampleCustomerName,
		"contact":      ExampleContact,
		"address":      ExampleAddress,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}

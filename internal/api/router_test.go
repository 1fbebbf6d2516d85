package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/service"
	"github.com/minimart/storefront/internal/infrastructure/store/memory"
)

// The prometheus middleware registers collectors globally, so the test
// server is built once and shared by every test in the package.
var (
	serverOnce sync.Once
	testRouter *echo.Echo
	testAuth   *service.AuthService
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	serverOnce.Do(func() {
		userStore := memory.NewUserStore()
		productStore := memory.NewProductStore()
		cartStore := memory.NewCartStore()

		log := zerolog.Nop()
		testAuth = service.NewAuthService(userStore, "test-secret", time.Hour, log)

		testRouter = NewRouter(Deps{
			AuthService:    testAuth,
			UserService:    service.NewUserService(userStore, log),
			ProductService: service.NewProductService(productStore, service.NopAuditSink, log),
			CartService:    service.NewCartService(cartStore, service.NopAuditSink, log),
			JWTSecret:      "test-secret",
			Logger:         log,
		})
	})
	return testRouter
}

type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, method, target, token, body string) (int, apiResponse) {
	t.Helper()
	e := testServer(t)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("%s %s: body is not an envelope: %v (%s)", method, target, err, rec.Body.String())
	}
	return rec.Code, resp
}

// registerAndLogin provisions a fresh user account and returns its token.
func registerAndLogin(t *testing.T, name, email, password string) string {
	t.Helper()
	code, resp := doRequest(t, http.MethodPost, "/register", "",
		fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, password))
	if code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%s)", email, code, resp.Message)
	}
	return login(t, email, password)
}

func login(t *testing.T, email, password string) string {
	t.Helper()
	code, resp := doRequest(t, http.MethodPost, "/login", "",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	if code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", email, code, resp.Message)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("login %s: no token in response: %v", email, err)
	}
	return data.Token
}

// adminToken provisions the admin account once and logs it in.
func adminToken(t *testing.T) string {
	t.Helper()
	testServer(t)
	if _, err := testAuth.RegisterAdmin(context.Background(), "Admin", "admin@example.com", "admin-password"); err != nil && err != domain.ErrEmailTaken {
		t.Fatalf("provision admin: %v", err)
	}
	return login(t, "admin@example.com", "admin-password")
}

func TestRouter_CatalogLifecycle(t *testing.T) {
	admin := adminToken(t)
	shopper := registerAndLogin(t, "Shopper", "shopper@example.com", "shopper-pass")

	// Admin creates a product.
	code, resp := doRequest(t, http.MethodPost, "/products", admin,
		`{"name":"Mug","description":"Ceramic mug","price":15000,"imageUrl":"/mug.png"}`)
	if code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", code, resp.Message)
	}
	var created domain.Product
	if err := json.Unmarshal(resp.Data, &created); err != nil || created.ID == "" {
		t.Fatalf("create: bad payload: %v (%s)", err, resp.Data)
	}
	if created.Price != 15000 {
		t.Fatalf("create: price must round-trip, got %d", created.Price)
	}

	// A regular shopper cannot mutate the catalog: 403, not 401.
	code, resp = doRequest(t, http.MethodPost, "/products", shopper,
		`{"name":"X","description":"d","price":100,"imageUrl":"/x.png"}`)
	if code != http.StatusForbidden || resp.Status != "error" {
		t.Fatalf("non-admin create: expected 403 error, got %d %s", code, resp.Status)
	}

	// Anonymous reads are public.
	code, resp = doRequest(t, http.MethodGet, "/products/"+created.ID, "", "")
	if code != http.StatusOK {
		t.Fatalf("anonymous read: expected 200, got %d (%s)", code, resp.Message)
	}

	// Invalid patch is rejected and leaves the record untouched.
	code, _ = doRequest(t, http.MethodPut, "/products/"+created.ID, admin, `{"price":-5}`)
	if code != http.StatusBadRequest {
		t.Fatalf("negative price patch: expected 400, got %d", code)
	}
	code, resp = doRequest(t, http.MethodGet, "/products/"+created.ID, "", "")
	if code != http.StatusOK {
		t.Fatalf("re-read: expected 200, got %d", code)
	}
	var after domain.Product
	if err := json.Unmarshal(resp.Data, &after); err != nil || after.Price != 15000 {
		t.Fatalf("failed patch mutated record: %v %+v", err, after)
	}

	// Delete once, then again: 200 then 404.
	code, _ = doRequest(t, http.MethodDelete, "/products/"+created.ID, admin, "")
	if code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", code)
	}
	code, resp = doRequest(t, http.MethodDelete, "/products/"+created.ID, admin, "")
	if code != http.StatusNotFound || resp.Message != "Product not found" {
		t.Fatalf("second delete: expected 404 Product not found, got %d %q", code, resp.Message)
	}
}

func TestRouter_RegisterConflict(t *testing.T) {
	registerAndLogin(t, "Dup", "dup@example.com", "first-password")

	code, resp := doRequest(t, http.MethodPost, "/register", "",
		`{"name":"Dup Two","email":"dup@example.com","password":"other-password"}`)
	if code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", code)
	}
	if resp.Status != "error" || resp.Message != "Email already registered" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestRouter_LoginFailure(t *testing.T) {
	registerAndLogin(t, "Frank", "frank@example.com", "right-password")

	code, resp := doRequest(t, http.MethodPost, "/login", "",
		`{"email":"frank@example.com","password":"wrong-password"}`)
	if code != http.StatusUnauthorized || resp.Status != "error" {
		t.Fatalf("bad password: expected 401 error, got %d %s", code, resp.Status)
	}
}

func TestRouter_ProfileAuth(t *testing.T) {
	token := registerAndLogin(t, "Grace", "grace@example.com", "grace-password")

	// Unauthenticated update: 401.
	code, _ := doRequest(t, http.MethodPut, "/user", "", `{"name":"Nope"}`)
	if code != http.StatusUnauthorized {
		t.Fatalf("anonymous update: expected 401, got %d", code)
	}

	// Authenticated update applies to the caller's own record.
	code, resp := doRequest(t, http.MethodPut, "/user", token, `{"name":"Grace H"}`)
	if code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", code, resp.Message)
	}
	var user domain.PublicUser
	if err := json.Unmarshal(resp.Data, &user); err != nil || user.Name != "Grace H" {
		t.Fatalf("update payload: %v %+v", err, user)
	}

	// Empty patch is a 400.
	code, _ = doRequest(t, http.MethodPut, "/user", token, `{}`)
	if code != http.StatusBadRequest {
		t.Fatalf("empty patch: expected 400, got %d", code)
	}
}

func TestRouter_CartFlow(t *testing.T) {
	tokenA := registerAndLogin(t, "Henry", "henry@example.com", "henry-password")
	tokenB := registerAndLogin(t, "Iris", "iris@example.com", "iris-password")

	// Cart routes demand a session.
	code, _ := doRequest(t, http.MethodGet, "/cart", "", "")
	if code != http.StatusUnauthorized {
		t.Fatalf("anonymous cart: expected 401, got %d", code)
	}

	// Fresh cart is empty, not 404.
	code, resp := doRequest(t, http.MethodGet, "/cart", tokenA, "")
	if code != http.StatusOK {
		t.Fatalf("fresh cart: expected 200, got %d (%s)", code, resp.Message)
	}

	// A replaces; B's cart stays empty.
	code, _ = doRequest(t, http.MethodPut, "/cart", tokenA,
		`{"items":[{"product_id":"p1","name":"Mug","price":15000,"quantity":2},{"product_id":"p2","name":"Plate","price":20000,"quantity":0}]}`)
	if code != http.StatusOK {
		t.Fatalf("replace: expected 200, got %d", code)
	}

	code, resp = doRequest(t, http.MethodGet, "/cart", tokenA, "")
	if code != http.StatusOK {
		t.Fatalf("read back: expected 200, got %d", code)
	}
	var items []domain.CartItem
	if err := json.Unmarshal(resp.Data, &items); err != nil {
		t.Fatalf("cart payload: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != "p1" || items[0].Quantity != 2 {
		t.Fatalf("zero-quantity line must be dropped: %+v", items)
	}

	code, resp = doRequest(t, http.MethodGet, "/cart", tokenB, "")
	if code != http.StatusOK {
		t.Fatalf("B's cart: expected 200, got %d", code)
	}
	items = nil
	_ = json.Unmarshal(resp.Data, &items)
	if len(items) != 0 {
		t.Fatalf("B's cart affected by A: %+v", items)
	}

	// Checkout clears A's cart only.
	code, _ = doRequest(t, http.MethodPost, "/cart/checkout", tokenA, "")
	if code != http.StatusOK {
		t.Fatalf("checkout: expected 200, got %d", code)
	}
	code, resp = doRequest(t, http.MethodGet, "/cart", tokenA, "")
	if code != http.StatusOK {
		t.Fatalf("post-checkout read: expected 200, got %d", code)
	}
	items = nil
	_ = json.Unmarshal(resp.Data, &items)
	if len(items) != 0 {
		t.Fatalf("checkout must clear the cart: %+v", items)
	}
}

func TestRouter_GarbageTokenIsAnonymous(t *testing.T) {
	// A broken token is not an internal error: the session degrades to
	// anonymous and the guard answers 401.
	code, resp := doRequest(t, http.MethodGet, "/cart", "not-a-real-token", "")
	if code != http.StatusUnauthorized || resp.Status != "error" {
		t.Fatalf("garbage token: expected 401 error, got %d %s", code, resp.Status)
	}

	// Public routes still serve garbage-token requests.
	code, _ = doRequest(t, http.MethodGet, "/products", "not-a-real-token", "")
	if code != http.StatusOK {
		t.Fatalf("public route with garbage token: expected 200, got %d", code)
	}
}

func TestRouter_Health(t *testing.T) {
	code, resp := doRequest(t, http.MethodGet, "/health", "", "")
	if code != http.StatusOK || resp.Status != "ok" {
		t.Fatalf("liveness: expected 200 ok, got %d %s", code, resp.Status)
	}

	// Memory drivers have no external dependencies: always ready.
	code, _ = doRequest(t, http.MethodGet, "/health/ready", "", "")
	if code != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d", code)
	}
}

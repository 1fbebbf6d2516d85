package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// newTestContext builds an echo context the way the router would: JSON
// content type, the shared validator, and an optional session caller.
func newTestContext(method, target, body string, caller *domain.Caller) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		c.Set("caller", *caller)
	}
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}

var (
	userCaller  = domain.Caller{ID: "u1", Role: domain.RoleUser}
	adminCaller = domain.Caller{ID: "a1", Role: domain.RoleAdmin}
)

// Hand-written service stubs. Each method delegates to an optional
// function field so a test overrides only what it exercises.

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.PublicUser, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.PublicUser, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.PublicUser, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	updateFn func(ctx context.Context, userID string, patch domain.UserPatch) (*domain.PublicUser, error)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.PublicUser, error) {
	return s.updateFn(ctx, userID, patch)
}

type stubProductService struct {
	listFn   func(ctx context.Context) ([]domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, actor domain.Caller, input ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, actor domain.Caller, id string, patch domain.ProductPatch) (*domain.Product, error)
	deleteFn func(ctx context.Context, actor domain.Caller, id string) error
}

func (s *stubProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, actor domain.Caller, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubProductService) Update(ctx context.Context, actor domain.Caller, id string, patch domain.ProductPatch) (*domain.Product, error) {
	return s.updateFn(ctx, actor, id, patch)
}

func (s *stubProductService) Delete(ctx context.Context, actor domain.Caller, id string) error {
	return s.deleteFn(ctx, actor, id)
}

type stubCartService struct {
	getFn      func(ctx context.Context, userID string) ([]domain.CartItem, error)
	replaceFn  func(ctx context.Context, userID string, items []domain.CartItem) ([]domain.CartItem, error)
	checkoutFn func(ctx context.Context, userID string) error
}

func (s *stubCartService) Get(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.getFn(ctx, userID)
}

func (s *stubCartService) Replace(ctx context.Context, userID string, items []domain.CartItem) ([]domain.CartItem, error) {
	return s.replaceFn(ctx, userID, items)
}

func (s *stubCartService) Checkout(ctx context.Context, userID string) error {
	return s.checkoutFn(ctx, userID)
}

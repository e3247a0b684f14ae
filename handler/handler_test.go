package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant_backend/handler"
	"restaurant_backend/helper"
	"restaurant_backend/model"
	"restaurant_backend/router"
	"restaurant_backend/service"
	"restaurant_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrders struct {
	placed     *model.CreateOrderInput
	placeErr   error
	orders     map[uint]*model.Order
	listStatus string
	listLimit  int
	listOffset int
	statusErr  error
}

func (f *fakeOrders) PlaceOrder(_ context.Context, in model.CreateOrderInput) (*model.Order, error) {
	f.placed = &in
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	return &model.Order{DTO: model.DTO{ID: 7}, OrderNumber: "ORD-1A2B3C4D", CustomerName: in.CustomerName, Status: model.OrderStatusPending}, nil
}

func (f *fakeOrders) GetOrder(_ context.Context, id uint) (*model.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, service.ErrOrderNotFound
}

func (f *fakeOrders) GetOrderByNumber(_ context.Context, number string) (*model.Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, service.ErrOrderNotFound
}

func (f *fakeOrders) ListOrders(_ context.Context, status string, limit, offset int) ([]model.Order, int64, error) {
	f.listStatus, f.listLimit, f.listOffset = status, limit, offset
	var out []model.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, id uint, status string) (*model.Order, error) {
	o, err := f.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	o.Status = model.OrderStatus(status)
	return o, nil
}

type fakeAuth struct {
	account *model.Account
}

func (f *fakeAuth) Login(_ context.Context, in model.LoginInput) (*model.Account, string, error) {
	if f.account == nil || in.Username != f.account.Username || in.Password != "secret" {
		return nil, "", service.ErrInvalidCredentials
	}
	token, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: f.account.ID, Username: f.account.Username, Role: f.account.Role})
	return f.account, token, err
}

func (f *fakeAuth) Me(_ context.Context, id uint) (*model.Account, error) {
	if f.account == nil || f.account.ID != id {
		return nil, service.ErrInvalidCredentials
	}
	return f.account, nil
}

func setupApp(t *testing.T) (*fiber.App, *fakeOrders, *fakeAuth) {
	t.Helper()
	t.Setenv("JWT_SECRET", "handler-test-secret")

	orders := &fakeOrders{orders: map[uint]*model.Order{
		7: {DTO: model.DTO{ID: 7}, OrderNumber: "ORD-1A2B3C4D", Status: model.OrderStatusPending},
	}}
	auth := &fakeAuth{account: &model.Account{DTO: model.DTO{ID: 1}, Username: "admin", Active: true, Role: "ADMIN"}}

	app := fiber.New()
	h := handler.New(orders, auth, nil, nil, zap.NewNop())
	router.SetupRoutes(app, h, router.Content{})
	return app, orders, auth
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "admin", Role: role})
	require.NoError(t, err)
	return token
}

func do(t *testing.T, app *fiber.App, method, path, body, token string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

const orderBody = `{
	"customer_name": "Ana",
	"customer_email": "ana@example.com",
	"customer_phone": "+56 9 1111 2222",
	"delivery_street": "Av. Providencia",
	"delivery_number": "123",
	"delivery_city": "Santiago",
	"delivery_region": "RM",
	"items": [{"product_id": 1, "quantity": "2", "extras": {"10": 1}}]
}`

func TestPlaceOrder_Created(t *testing.T) {
	app, orders, _ := setupApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/v1/orders", orderBody, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	assert.Equal(t, "ORD-1A2B3C4D", data["order_number"])
	assert.Equal(t, "pending", data["status"])

	require.NotNil(t, orders.placed)
	require.Len(t, orders.placed.Items, 1)
	assert.Equal(t, "2", orders.placed.Items[0].Quantity.String())
}

func TestPlaceOrder_ValidationErrorsCarryItemIndex(t *testing.T) {
	app, orders, _ := setupApp(t)
	orders.placeErr = &service.ValidationError{Errors: []service.FieldError{
		{Index: utils.Ptr(1), Field: "product_id", Message: "product with id 99 does not exist"},
		{Field: "customer_email", Message: "enter a valid email address"},
	}}

	resp, body := do(t, app, http.MethodPost, "/api/v1/orders", orderBody, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].([]any)
	require.Len(t, errs, 2)
	first := errs[0].(map[string]any)
	assert.EqualValues(t, 1, first["index"])
	assert.Equal(t, "product_id", first["field"])
	_, hasIndex := errs[1].(map[string]any)["index"]
	assert.False(t, hasIndex)
}

func TestPlaceOrder_MalformedBody(t *testing.T) {
	app, orders, _ := setupApp(t)

	resp, _ := do(t, app, http.MethodPost, "/api/v1/orders", `{"items": [`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, orders.placed)
}

func TestListOrders_RequiresStaffToken(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, _ := do(t, app, http.MethodGet, "/api/v1/orders", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/orders", "", "not-a-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/orders", "", tokenFor(t, "CUSTOMER"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestListOrders_ForwardsFilterAndPaging(t *testing.T) {
	app, orders, _ := setupApp(t)

	resp, body := do(t, app, http.MethodGet, "/api/v1/orders?status=ready&limit=10&page=3", "", tokenFor(t, "STAFF"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", orders.listStatus)
	assert.Equal(t, 10, orders.listLimit)
	assert.Equal(t, 20, orders.listOffset)

	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["total_count"])
}

func TestListOrders_DefaultLimit(t *testing.T) {
	app, orders, _ := setupApp(t)

	resp, _ := do(t, app, http.MethodGet, "/api/v1/orders", "", tokenFor(t, "ADMIN"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 20, orders.listLimit)
	assert.Equal(t, 0, orders.listOffset)
}

func TestGetOrder(t *testing.T) {
	app, _, _ := setupApp(t)
	token := tokenFor(t, "ADMIN")

	resp, body := do(t, app, http.MethodGet, "/api/v1/orders/7", "", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ORD-1A2B3C4D", body["data"].(map[string]any)["order_number"])

	resp, _ = do(t, app, http.MethodGet, "/api/v1/orders/8", "", token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/v1/orders/abc", "", token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateOrderStatus(t *testing.T) {
	app, orders, _ := setupApp(t)
	token := tokenFor(t, "ADMIN")

	resp, body := do(t, app, http.MethodPatch, "/api/v1/orders/7/status", `{"status":"preparing"}`, token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "preparing", body["data"].(map[string]any)["status"])

	resp, _ = do(t, app, http.MethodPatch, "/api/v1/orders/7/status", `{}`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	orders.statusErr = &service.ValidationError{Errors: []service.FieldError{{Field: "status", Message: `"shipped" is not a valid status`}}}
	resp, _ = do(t, app, http.MethodPatch, "/api/v1/orders/7/status", `{"status":"shipped"}`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPatch, "/api/v1/orders/99/status", `{"status":"ready"}`, token)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderQRCode(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, _ := do(t, app, http.MethodGet, "/api/v1/orders/number/ORD-1A2B3C4D/qr", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp, _ = do(t, app, http.MethodGet, "/api/v1/orders/number/ORD-00000000/qr", "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"secret"}`, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	data := body["data"].(map[string]any)
	assert.Equal(t, cookie.Value, data["access_token"])
	assert.Equal(t, "ADMIN", data["account"].(map[string]any)["role"])

	resp, _ = do(t, app, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body = do(t, app, http.MethodPost, "/api/v1/auth/login", `{"username":"admin"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "'password'")
	assert.NotContains(t, body["error"], "Password")
}

func TestMe(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, body := do(t, app, http.MethodGet, "/api/v1/auth/me", "", tokenFor(t, "ADMIN"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", body["data"].(map[string]any)["username"])

	resp, _ = do(t, app, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCalculatePrice_RejectsNonListExtraIDs(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/v1/products/1/calculate-price", `{"extra_ids": "10"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "extra_ids must be a list", body["message"])
}

func TestUploadImage_DisabledWithoutStorage(t *testing.T) {
	app, _, _ := setupApp(t)

	resp, _ := do(t, app, http.MethodPost, "/api/v1/media/images", "", tokenFor(t, "ADMIN"))
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

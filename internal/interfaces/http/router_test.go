package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stock-ledger/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/stock-ledger/internal/interfaces/http"
)

const testPassword = "clave-operador"

var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

// buildAPI arma el router completo sobre el store en memoria.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	store := memory.NewStore()
	nop := zerolog.Nop()
	register := inventory.NewRegisterMovementUseCase(store, inventory.LedgerConfig{AllowNegativeStock: true}, nop).
		WithClock(func() time.Time { return fixedNow })

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:        usecase.NewProductUseCase(store.Products(), store, nop),
		RegisterMovement: register,
		Ledger:           inventory.NewLedgerUseCase(store, nop),
		MonthlyReport:    report.NewMonthlyReportUseCase(store.Reports(), time.UTC, infrapdf.NewMarotoReportGenerator("Estoque")),
		AuthUC: usecase.NewAuthUseCase(usecase.AuthConfig{
			Username:     testUsername,
			PasswordHash: string(hash),
			Secret:       testJWTSecret,
			ExpMinutes:   testExpMin,
			Issuer:       testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body, auth string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createProduct(t *testing.T, app *fiber.App, auth, name string, capacity int) dto.ProductResponse {
	t.Helper()
	body, _ := json.Marshal(dto.CreateProductRequest{Name: name, BoxCapacity: capacity})
	resp := doRequest(t, app, http.MethodPost, "/api/products", string(body), auth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

func TestLogin(t *testing.T) {
	app := buildAPI(t)

	resp := doRequest(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"tienda","password":"clave-operador"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, testExpMin*60, out.ExpiresIn)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login",
		`{"username":"tienda","password":"otra"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/auth/login", `{"username":""}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProducts_EscrituraRequiereToken(t *testing.T) {
	app := buildAPI(t)
	resp := doRequest(t, app, http.MethodPost, "/api/products", `{"name":"Leite","box_capacity":12}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Lecturas públicas
	resp = doRequest(t, app, http.MethodGet, "/api/products", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProducts_CRUD(t *testing.T) {
	app := buildAPI(t)
	auth := tokenForRole(t, usecase.RoleOperator)

	p := createProduct(t, app, auth, "  Leite ", 12)
	assert.Equal(t, "Leite", p.Name)
	assert.Zero(t, p.TotalStock)
	createProduct(t, app, auth, "Arroz", 6)

	resp := doRequest(t, app, http.MethodGet, "/api/products", "", "")
	list := decode[dto.ProductListResponse](t, resp)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "Arroz", list.Items[0].Name)
	assert.Equal(t, "Leite", list.Items[1].Name)

	resp = doRequest(t, app, http.MethodPut, "/api/products/"+p.ID, `{"box_capacity":24}`, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	upd := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Leite", upd.Name)
	assert.Equal(t, 24, upd.BoxCapacity)

	resp = doRequest(t, app, http.MethodPut, "/api/products/"+p.ID, `{"name":"   "}`, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/products", `{"name":"X","box_capacity":0}`, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/products/"+p.ID, "", auth)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/products/"+p.ID, "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestMovements_RegistroEHistorial(t *testing.T) {
	app := buildAPI(t)
	auth := tokenForRole(t, usecase.RoleOperator)
	p := createProduct(t, app, auth, "Leite", 12)

	body := `{"product_id":"` + p.ID + `","kind":"IN","box_count":2,"unit_count":5}`
	resp := doRequest(t, app, http.MethodPost, "/api/inventory/movements", body, auth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	mov := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, int64(29), mov.ConvertedQuantity)
	assert.Equal(t, 12, mov.BoxCapacity)

	// unit_count omitido = 0
	body = `{"product_id":"` + p.ID + `","kind":"OUT","box_count":1}`
	resp = doRequest(t, app, http.MethodPost, "/api/inventory/movements", body, auth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/products/"+p.ID, "", "")
	got := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, int64(17), got.TotalStock)
	assert.Equal(t, dto.StockDisplayDTO{Boxes: 1, Units: 5}, got.Stock)

	resp = doRequest(t, app, http.MethodGet, "/api/inventory/movements?product_id="+p.ID, "", "")
	hist := decode[dto.MovementHistoryResponse](t, resp)
	require.Equal(t, 2, hist.Total)
	assert.Equal(t, "IN", hist.Items[0].Kind)
	assert.Equal(t, "OUT", hist.Items[1].Kind)

	resp = doRequest(t, app, http.MethodGet, "/api/inventory/movements?product_id=no-existe", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, decode[dto.MovementHistoryResponse](t, resp).Total)
}

func TestMovements_Errores(t *testing.T) {
	app := buildAPI(t)
	auth := tokenForRole(t, usecase.RoleOperator)
	p := createProduct(t, app, auth, "Leite", 12)

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"vacío", `{"product_id":"` + p.ID + `","kind":"IN"}`, http.StatusBadRequest, "EMPTY_MOVEMENT"},
		{"tipo inválido", `{"product_id":"` + p.ID + `","kind":"X","box_count":1}`, http.StatusBadRequest, "VALIDATION"},
		{"negativo", `{"product_id":"` + p.ID + `","kind":"IN","unit_count":-1}`, http.StatusBadRequest, "VALIDATION"},
		{"fuera de rango", `{"product_id":"` + p.ID + `","kind":"IN","box_count":4611686018427387904}`, http.StatusBadRequest, "VALIDATION"},
		{"no numérico", `{"product_id":"` + p.ID + `","kind":"IN","box_count":"dos"}`, http.StatusBadRequest, "INVALID_BODY"},
		{"producto inexistente", `{"product_id":"nada","kind":"IN","box_count":1}`, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, "/api/inventory/movements", tc.body, auth)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}

	resp := doRequest(t, app, http.MethodGet, "/api/inventory/movements", "", "")
	assert.Zero(t, decode[dto.MovementHistoryResponse](t, resp).Total, "ningún intento fallido deja rastro")
}

func TestReconcile(t *testing.T) {
	app := buildAPI(t)
	auth := tokenForRole(t, usecase.RoleOperator)
	p := createProduct(t, app, auth, "Leite", 12)
	body := `{"product_id":"` + p.ID + `","kind":"IN","unit_count":7}`
	require.Equal(t, http.StatusCreated, doRequest(t, app, http.MethodPost, "/api/inventory/movements", body, auth).StatusCode)

	resp := doRequest(t, app, http.MethodPost, "/api/inventory/reconcile", "", auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[[]dto.ReconcileResponse](t, resp)
	require.Len(t, out, 1)
	assert.Equal(t, int64(7), out[0].Computed)
	assert.Zero(t, out[0].Drift)
	assert.False(t, out[0].Repaired)

	resp = doRequest(t, app, http.MethodPost, "/api/inventory/reconcile?product_id=nada", "", auth)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReports(t *testing.T) {
	app := buildAPI(t)
	auth := tokenForRole(t, usecase.RoleOperator)
	p := createProduct(t, app, auth, "Leite", 12)
	body := `{"product_id":"` + p.ID + `","kind":"IN","box_count":3}`
	require.Equal(t, http.StatusCreated, doRequest(t, app, http.MethodPost, "/api/inventory/movements", body, auth).StatusCode)

	resp := doRequest(t, app, http.MethodGet, "/api/reports/monthly?month=3&year=2024", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rep := decode[dto.MonthlyReportResponse](t, resp)
	assert.Equal(t, "2024-03", rep.Period)
	require.Len(t, rep.Items, 1)
	assert.Equal(t, "Leite", rep.Items[0].ProductName)

	resp = doRequest(t, app, http.MethodGet, "/api/reports/monthly?month=4&year=2024", "", "")
	assert.Empty(t, decode[dto.MonthlyReportResponse](t, resp).Items)

	resp = doRequest(t, app, http.MethodGet, "/api/reports/monthly/summary?month=3&year=2024", "", "")
	sum := decode[dto.MonthlySummaryResponse](t, resp)
	require.Len(t, sum.Items, 1)
	assert.Equal(t, int64(36), sum.Items[0].UnitsIn)

	resp = doRequest(t, app, http.MethodGet, "/api/reports/monthly/pdf?month=3&year=2024", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	for _, q := range []string{"month=marzo&year=2024", "month=13&year=2024", "month=3"} {
		resp = doRequest(t, app, http.MethodGet, "/api/reports/monthly?"+q, "", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
	}
}

package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smart-global-hub/internal/api"
	"smart-global-hub/internal/api/handlers"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/service"
	mock_service "smart-global-hub/internal/service/mocks"
	"smart-global-hub/pkg/auth"
	"smart-global-hub/pkg/cache"
	"smart-global-hub/pkg/metrics"
	"smart-global-hub/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	app      *fiber.App
	jwt      *auth.JWTManager
	users    *mock_service.MockUserStore
	agents   *mock_service.MockCounterpartyStore
	txStore  *mock_service.MockTransactionStore
	tenantID uuid.UUID
	userID   uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	logger := zap.NewNop()
	c := cache.NewMemory()
	m := metrics.NewMetrics("test")
	v := validator.New()
	jwt := auth.NewJWTManager("router-secret", time.Hour, 24*time.Hour)

	s := &testServer{
		jwt:      jwt,
		users:    mock_service.NewMockUserStore(ctrl),
		agents:   mock_service.NewMockCounterpartyStore(ctrl),
		txStore:  mock_service.NewMockTransactionStore(ctrl),
		tenantID: uuid.New(),
		userID:   uuid.New(),
	}
	suppliers := mock_service.NewMockCounterpartyStore(ctrl)
	rateStore := mock_service.NewMockRateStore(ctrl)

	agentSvc := service.NewCounterpartyService(models.PartyAgent, s.agents, c, logger)
	supplierSvc := service.NewCounterpartyService(models.PartySupplier, suppliers, c, logger)
	rateSvc := service.NewRateService(rateStore, c, time.Minute, m, logger)
	txSvc := service.NewTransactionService(s.txStore, agentSvc, supplierSvc, rateSvc, c, m, logger)

	transactor := mock_service.NewMockTransactor(ctrl)
	payments := mock_service.NewMockPaymentStore(ctrl)
	balances := mock_service.NewMockBalanceStore(ctrl)
	agentPayments := service.NewPaymentService(transactor, s.txStore, payments, balances, agentSvc, c, m, logger)
	supplierPayments := service.NewPaymentService(transactor, s.txStore, payments, balances, supplierSvc, c, m, logger)
	dashboardSvc := service.NewDashboardService(s.txStore, mock_service.NewMockDashboardStore(ctrl), c, time.Minute, m, logger)

	s.app = api.SetupRouter(&api.Handlers{
		Auth:             handlers.NewAuthHandler(service.NewAuthService(s.users, jwt, logger), v, logger),
		Agents:           handlers.NewCounterpartyHandler(agentSvc, v, logger),
		Suppliers:        handlers.NewCounterpartyHandler(supplierSvc, v, logger),
		Transactions:     handlers.NewTransactionHandler(txSvc, v, logger),
		AgentPayments:    handlers.NewPaymentHandler(agentPayments, models.PartyAgent, v, logger),
		SupplierPayments: handlers.NewPaymentHandler(supplierPayments, models.PartySupplier, v, logger),
		Rates:            handlers.NewRateHandler(rateSvc, v, logger),
		Dashboard:        handlers.NewDashboardHandler(dashboardSvc, logger),
	}, jwt, m, api.Options{}, logger)
	return s
}

func (s *testServer) token(t *testing.T, role string) string {
	tok, err := s.jwt.GenerateToken(s.userID.String(), s.tenantID.String(), "ops@example.com", role)
	require.NoError(t, err)
	return tok
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Meta       *struct {
		TotalItems  int64 `json:"totalItems"`
		TotalPages  int64 `json:"totalPages"`
		CurrentPage int   `json:"currentPage"`
	} `json:"meta"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (int, envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp.StatusCode, env
}

func TestRouter_Healthz(t *testing.T) {
	s := newTestServer(t)
	status, env := s.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
}

func TestRouter_RequiresToken(t *testing.T) {
	s := newTestServer(t)
	status, env := s.do(t, http.MethodGet, "/transactions", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusUnauthorized, env.StatusCode)
}

func TestRouter_UnknownRouteIsNotFound(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/no-such-route", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)

	status, _ = s.do(t, http.MethodGet, "/no-such-route", s.token(t, "staff"), "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(t, http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRouter_Quote(t *testing.T) {
	s := newTestServer(t)
	status, env := s.do(t, http.MethodPost, "/transactions/quote", s.token(t, "staff"),
		`{"baseAmount":10000,"buyRate":"0.1449","sellRate":0.1451,"commissionRate":0.5}`)
	require.Equal(t, http.StatusOK, status)

	var figures map[string]decimal.Decimal
	require.NoError(t, json.Unmarshal(env.Data, &figures))
	assert.Equal(t, "9.255", figures["totalEarnings"].String())
	assert.Equal(t, "1458.255", figures["agentDue"].String())
}

func TestRouter_ValidationErrors(t *testing.T) {
	s := newTestServer(t)
	status, env := s.do(t, http.MethodPost, "/transactions", s.token(t, "staff"),
		`{"agentId":"nope","baseCurrency":"USD","quoteCurrency":"USD","baseAmount":0}`)
	require.Equal(t, http.StatusBadRequest, status)

	fields := map[string]string{}
	for _, e := range env.Errors {
		fields[e.Field] = e.Message
	}
	assert.Contains(t, fields, "agentId")
	assert.Contains(t, fields, "supplierId")
	assert.Contains(t, fields, "quoteCurrency")
	assert.Contains(t, fields, "baseAmount")
}

func TestRouter_CommissionRateAboveHundredRejected(t *testing.T) {
	s := newTestServer(t)
	body := `{"agentId":"` + uuid.NewString() + `","supplierId":"` + uuid.NewString() +
		`","baseCurrency":"CNY","quoteCurrency":"USD","baseAmount":"10","commissionRate":"5000000"}`

	status, env := s.do(t, http.MethodPost, "/transactions", s.token(t, "staff"), body)
	require.Equal(t, http.StatusBadRequest, status)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "commissionRate", env.Errors[0].Field)
}

func TestRouter_CreateUserRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	body := `{"name":"Clerk","email":"clerk@example.com","password":"long-enough"}`

	status, _ := s.do(t, http.MethodPost, "/users", s.token(t, "staff"), body)
	assert.Equal(t, http.StatusForbidden, status)

	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	status, env := s.do(t, http.MethodPost, "/users", s.token(t, "admin"), body)
	assert.Equal(t, http.StatusCreated, status)
	assert.True(t, env.Success)
}

func TestRouter_ListAgentsPaginates(t *testing.T) {
	s := newTestServer(t)
	s.agents.EXPECT().List(gomock.Any(), s.tenantID, "", uint64(2), uint64(2)).
		Return([]*models.Counterparty{{ID: uuid.New(), TenantID: s.tenantID, Name: "A"}}, int64(3), nil)

	status, env := s.do(t, http.MethodGet, "/agents?page=2&limit=2", s.token(t, "staff"), "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.CurrentPage)
	assert.Equal(t, int64(2), env.Meta.TotalPages)
	assert.Equal(t, int64(3), env.Meta.TotalItems)
}

func TestRouter_DeletePaidTransactionConflicts(t *testing.T) {
	s := newTestServer(t)
	id := uuid.New()
	s.txStore.EXPECT().GetByID(gomock.Any(), s.tenantID, id).Return(&models.Transaction{
		ID:        id,
		TenantID:  s.tenantID,
		AgentPaid: decimal.NewFromInt(1),
	}, nil)

	status, env := s.do(t, http.MethodDelete, "/transactions/"+id.String(), s.token(t, "staff"), "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, service.ErrTransactionLocked.Error(), env.Message)
}

func TestRouter_BadQueryParameters(t *testing.T) {
	s := newTestServer(t)
	tok := s.token(t, "staff")

	status, _ := s.do(t, http.MethodGet, "/transactions?status=overdue", tok, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodGet, "/transactions?from=yesterday", tok, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodGet, "/transactions/not-a-uuid", tok, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRouter_Metrics(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}

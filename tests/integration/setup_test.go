package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"duitku/internal/handlers"
	"duitku/internal/logger"
	"duitku/internal/middleware"
	"duitku/internal/services"
	"duitku/internal/storage"
	"duitku/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database. Authentication follows the OWNER_PASSWORD_HASH env var,
// which tests control via t.Setenv before calling this.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	n := dbCounter.Add(1)
	return setupAppWithDSN(t, fmt.Sprintf("file:integration%d?mode=memory&cache=shared", n))
}

// setupAppWithDSN builds the stack over a specific database, letting restart
// tests open two stacks against the same data.
func setupAppWithDSN(t *testing.T, dsn string) *testApp {
	t.Helper()

	backend, err := storage.NewLocal(dsn)
	if err != nil {
		t.Fatalf("failed to open test storage: %v", err)
	}
	t.Cleanup(func() {
		if err := backend.Close(); err != nil {
			t.Errorf("failed to close test storage: %v", err)
		}
	})

	financeService, err := services.NewFinanceService(context.Background(), backend)
	if err != nil {
		t.Fatalf("failed to build finance service: %v", err)
	}

	authHandler := handlers.NewAuthHandler()
	transactionHandler := handlers.NewTransactionHandler(financeService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	goalHandler := handlers.NewGoalHandler(financeService)
	settingsHandler := handlers.NewSettingsHandler(financeService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	protected.GET("/balances", financeHandler.GetBalances)
	protected.GET("/budget/evaluate", financeHandler.EvaluateBudget)
	protected.GET("/statistics", financeHandler.GetStatistics)
	protected.POST("/reset", financeHandler.Reset)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/sync", goalHandler.SyncGoal)

	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.UpdateSettings)

	return &testApp{Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// addTransaction commits a transaction and fails the test on rejection.
func (app *testApp) addTransaction(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", "/api/v1/transactions", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 adding transaction, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["transaction"].(map[string]interface{})
}

// balances fetches the current balances.
func (app *testApp) balances(t *testing.T) map[string]interface{} {
	t.Helper()
	rec := app.request("GET", "/api/v1/balances", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching balances, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["balances"].(map[string]interface{})
}

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mgrady4/civica/internal/auth"
	"github.com/mgrady4/civica/internal/config"
	"github.com/mgrady4/civica/internal/database"
	"github.com/mgrady4/civica/internal/logger"
	"github.com/mgrady4/civica/internal/middleware"
	"github.com/mgrady4/civica/internal/repository"
	"github.com/mgrady4/civica/internal/services"
)

// testEnv wires the full stack against an in-memory store, seeded with
// the embedded source data, so handler tests exercise the same paths
// production requests take.
type testEnv struct {
	router *gin.Engine
	issuer *auth.TokenIssuer
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	db, err := database.Open(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	log := logger.New("test")
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	legislators := repository.NewLegislatorRepository(db)
	bills := repository.NewBillRepository(db)
	spending := repository.NewSpendingRepository(db)
	lobbying := repository.NewLobbyingRepository(db)
	users := repository.NewUserRepository(db)

	seeder := services.NewSeedService(legislators, bills, spending, lobbying, log)
	_, err = seeder.Reseed(ctx, services.SourceAll)
	require.NoError(t, err)

	legislatorHandler := NewLegislatorHandler(services.NewLegislatorService(legislators, log))
	billHandler := NewBillHandler(services.NewBillService(bills, log))
	spendingHandler := NewSpendingHandler(services.NewSpendingService(spending, log))
	lobbyingHandler := NewLobbyingHandler(services.NewLobbyingService(lobbying, log))
	summaryHandler := NewSummaryHandler(services.NewSummaryService(legislators, bills, spending, log))
	adminHandler := NewAdminHandler(seeder)
	authHandler := NewAuthHandler(services.NewAuthService(users, issuer, log))
	healthHandler := NewHealthHandler(db)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Sanitize())

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/legislators", legislatorHandler.Search)
	router.GET("/bills", billHandler.Search)
	router.GET("/spending", spendingHandler.Search)
	router.GET("/lobbying", lobbyingHandler.Search)
	router.GET("/summary", summaryHandler.Summary)
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(issuer))
	admin.POST("/reseed", adminHandler.Reseed)

	return &testEnv{router: router, issuer: issuer}
}

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

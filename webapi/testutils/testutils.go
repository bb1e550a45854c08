// Package testutils provides a test suite backed by a real Postgres database
// using Testcontainers, with the schema applied and the seed fixtures loaded.
package testutils

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	cashcardrepo "github.com/amirasaad/cashcard/infra/repository/cashcard"
	"github.com/amirasaad/cashcard/infra/initializer"
	fixtures "github.com/amirasaad/cashcard/internal/fixtures/cashcard"
	apppkg "github.com/amirasaad/cashcard/pkg/app"
	"github.com/amirasaad/cashcard/pkg/config"
	"github.com/amirasaad/cashcard/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// E2ETestSuite runs the full stack against a containerized Postgres: real
// schema, real seed rows, requests through the fiber app.
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	db          *gorm.DB
	app         *fiber.App
	cfg         *config.App
}

// SetupSuite starts Postgres, applies the schema, seeds the fixtures, and
// builds the app the same way cmd/server does.
func (s *E2ETestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	s.Require().NoError(initializer.RunMigrations(s.db))

	repo := cashcardrepo.New(s.db)
	seed, err := fixtures.LoadSeedCSV("")
	s.Require().NoError(err)
	for _, create := range seed {
		s.Require().NoError(repo.Create(ctx, create))
	}

	s.cfg = &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:       &config.Log{Format: "text"},
		DB:        &config.DB{Url: dsn},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}

	deps := &apppkg.Deps{
		CashCardRepo: repo,
		Logger:       slog.Default(),
	}
	s.app = webapi.SetupApp(apppkg.New(deps, s.cfg))
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// DB exposes the suite database for per-test fixtures.
func (s *E2ETestSuite) DB() *gorm.DB {
	return s.db
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

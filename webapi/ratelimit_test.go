package webapi_test

import (
	"net/http/httptest"
	"testing"
	"time"

	apppkg "github.com/amirasaad/cashcard/pkg/app"
	"github.com/amirasaad/cashcard/pkg/config"
	"github.com/amirasaad/cashcard/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type RateLimitTestSuite struct {
	suite.Suite
	app *fiber.App
	cfg *config.App
}

func (s *RateLimitTestSuite) SetupTest() {
	cfg := &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:       &config.Log{Format: "text"},
		DB:        &config.DB{},
		RateLimit: &config.RateLimit{MaxRequests: 5, Window: time.Second},
	}
	// The health endpoint never touches the repository, so empty deps are
	// enough to exercise the middleware stack.
	s.cfg = cfg
	s.app = webapi.SetupApp(apppkg.New(&apppkg.Deps{}, cfg))
}

func (s *RateLimitTestSuite) TestRateLimit() {
	for i := range [6]int{} {
		resp, err := s.app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
		s.Require().NoError(err)
		defer resp.Body.Close() //nolint:errcheck

		if i < 5 {
			s.Equal(fiber.StatusOK, resp.StatusCode, "expected OK for request %d", i+1)
		} else {
			s.Equal(fiber.StatusTooManyRequests, resp.StatusCode, "expected Too Many Requests for request %d", i+1)
		}
	}

	// Wait for the rate limit window to reset, with a margin so the test
	// does not race the limiter's fixed-window expiry.
	time.Sleep(s.cfg.RateLimit.Window + 100*time.Millisecond)

	resp, err := s.app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode, "expected OK after rate limit reset")
}

func TestRateLimitTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimitTestSuite))
}

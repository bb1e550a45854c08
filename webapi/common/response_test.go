package common_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/amirasaad/cashcard/pkg/domain"
	"github.com/amirasaad/cashcard/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	testCases := []struct {
		desc string
		err  error
		want int
	}{
		{desc: "not found", err: domain.ErrNotFound, want: fiber.StatusNotFound},
		{desc: "validation", err: domain.ErrValidation, want: fiber.StatusBadRequest},
		{desc: "already exists", err: domain.ErrAlreadyExists, want: fiber.StatusConflict},
		{desc: "unknown", err: errors.New("boom"), want: fiber.StatusInternalServerError},
		{desc: "nil", err: nil, want: fiber.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, common.ErrorToStatusCode(tc.err))
		})
	}
}

func TestProblemDetailsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Something failed", errors.New("store unavailable"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Something failed", pd.Title)
	assert.Equal(t, fiber.StatusInternalServerError, pd.Status)
	assert.Equal(t, "store unavailable", pd.Detail)
	assert.Equal(t, "/boom", pd.Instance)
}

func TestSuccessResponseJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "fetched", fiber.Map{"id": 1})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":200,"message":"fetched","data":{"id":1}}`, string(body))
}

func TestBindAndValidate(t *testing.T) {
	type input struct {
		Name string `json:"name" validate:"required"`
	}

	app := fiber.New()
	app.Post("/bind", func(c *fiber.Ctx) error {
		in, err := common.BindAndValidate[input](c)
		if err != nil {
			return nil // response already written
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "bound", in)
	})

	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{desc: "valid body", body: `{"name":"abc"}`, wantStatus: fiber.StatusOK},
		{desc: "validation failure", body: `{}`, wantStatus: fiber.StatusBadRequest},
		{desc: "malformed json", body: `{`, wantStatus: fiber.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/bind", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

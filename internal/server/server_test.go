package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, s *Server, target string) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func TestHealth(t *testing.T) {
	resp, body := get(t, New(nil), "/health/live")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestJigFormats(t *testing.T) {
	s := New(nil)
	tests := []struct {
		query, contentType, prefix string
	}{
		{"", "image/svg+xml", "<?xml"},
		{"?format=svg&steps=3", "image/svg+xml", "<?xml"},
		{"?format=png&pixels-per-mm=1", "image/png", "\x89PNG"},
		{"?format=pdf&layers=double", "application/pdf", "%PDF-"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			resp, body := get(t, s, "/api/v1/jig"+tt.query)
			require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
			assert.Equal(t, tt.contentType, resp.Header.Get(fiber.HeaderContentType))
			assert.True(t, strings.HasPrefix(string(body), tt.prefix))
		})
	}
}

func TestResponsesAreDeterministic(t *testing.T) {
	s := New(nil)
	_, a := get(t, s, "/api/v1/jig?shape=narrow&screws=dewalt-625")
	_, b := get(t, s, "/api/v1/jig?shape=narrow&screws=dewalt-625")
	assert.Equal(t, a, b)

	_, a = get(t, s, "/api/v1/template?angles=180&max-radius=10cm&fence=true")
	_, b = get(t, s, "/api/v1/template?angles=180&max-radius=10cm&fence=true")
	assert.Equal(t, a, b)
	assert.Contains(t, string(a), "180 degrees")
}

func TestErrorStatus(t *testing.T) {
	s := New(nil)
	tests := []struct {
		name, target string
		status       int
	}{
		{"bad length", "/api/v1/jig?min-radius=6furlongs", fiber.StatusBadRequest},
		{"bad shape", "/api/v1/jig?shape=hexagon", fiber.StatusBadRequest},
		{"unknown parameter", "/api/v1/jig?colour=red", fiber.StatusBadRequest},
		{"bad format", "/api/v1/jig?format=dxf", fiber.StatusBadRequest},
		{"pins overlap", "/api/v1/jig?pin-diam=10mm", fiber.StatusUnprocessableEntity},
		{"no tangent", "/api/v1/jig?shape=narrow&big-circle=1000mm", fiber.StatusUnprocessableEntity},
		{"template range", "/api/v1/template?min-radius=30cm", fiber.StatusUnprocessableEntity},
		{"template angles", "/api/v1/template?angles=45", fiber.StatusBadRequest},
		{"not found", "/api/v2/jig", fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, s, tt.target)
			assert.Equal(t, tt.status, resp.StatusCode)

			var e struct {
				Error     string `json:"error"`
				RequestID string `json:"request_id"`
			}
			require.NoError(t, json.Unmarshal(body, &e))
			assert.NotEmpty(t, e.Error)
			assert.NotEmpty(t, e.RequestID)
		})
	}
}

func TestPinCountLimit(t *testing.T) {
	resp, body := get(t, New(nil), "/api/v1/jig?shape=line&screws=none&screw-rails=none&steps=600&sub-steps=600")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "pin holes")
}

func TestEnvironmentIgnored(t *testing.T) {
	t.Setenv("RJIG_SHAPE", "hexagon")
	t.Setenv("RJIG_STEPS", "3")

	s := New(nil)
	resp, body := get(t, s, "/api/v1/jig")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "x 6")
}

func TestPresets(t *testing.T) {
	resp, body := get(t, New(nil), "/api/v1/presets")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var presets map[string]map[string]string
	require.NoError(t, json.Unmarshal(body, &presets))
	assert.Contains(t, presets["screws"], "dewalt-trim")
	assert.Contains(t, presets["screw-rails"], "default")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fiber.StatusInternalServerError, statusFor(io.ErrUnexpectedEOF))
	assert.Equal(t, fiber.StatusTeapot, statusFor(fiber.NewError(fiber.StatusTeapot)))
}

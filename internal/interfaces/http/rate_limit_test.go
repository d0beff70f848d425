package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tlt-imports/reposicion-api/internal/interfaces/http"
)

// relojFijo simula el paso del tiempo en los tests sin dormir.
type relojFijo struct {
	t time.Time
}

func (r *relojFijo) ahora() time.Time        { return r.t }
func (r *relojFijo) avanzar(d time.Duration) { r.t = r.t.Add(d) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests RateLimiter.Permitir
// ──────────────────────────────────────────────────────────────────────────────

func TestRateLimiter_PermiteHastaElMaximo(t *testing.T) {
	reloj := &relojFijo{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	rl := apphttp.NewRateLimiter(15*time.Minute, 3, reloj.ahora)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Permitir("10.0.0.1"), "intento %d debe pasar", i+1)
	}
	assert.False(t, rl.Permitir("10.0.0.1"), "el cuarto intento debe bloquearse")
}

func TestRateLimiter_VentanaVencidaReinicia(t *testing.T) {
	reloj := &relojFijo{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	rl := apphttp.NewRateLimiter(15*time.Minute, 2, reloj.ahora)

	require.True(t, rl.Permitir("10.0.0.1"))
	require.True(t, rl.Permitir("10.0.0.1"))
	require.False(t, rl.Permitir("10.0.0.1"), "agotados los intentos de la ventana")

	reloj.avanzar(15 * time.Minute)
	assert.True(t, rl.Permitir("10.0.0.1"), "vencida la ventana vuelve a permitir")
}

func TestRateLimiter_IPsIndependientes(t *testing.T) {
	reloj := &relojFijo{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	rl := apphttp.NewRateLimiter(15*time.Minute, 1, reloj.ahora)

	require.True(t, rl.Permitir("10.0.0.1"))
	require.False(t, rl.Permitir("10.0.0.1"))
	assert.True(t, rl.Permitir("10.0.0.2"), "otra IP mantiene su propia cuenta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Middleware — respuesta 429
// ──────────────────────────────────────────────────────────────────────────────

func TestRateLimiter_Middleware_Retorna429(t *testing.T) {
	reloj := &relojFijo{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	rl := apphttp.NewRateLimiter(15*time.Minute, 2, reloj.ahora)

	app := fiber.New()
	app.Post("/login", rl.Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	hacer := func() *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := hacer()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = hacer()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = hacer()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode,
		"agotada la ventana debe responder 429")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "RATE_LIMITED")
}

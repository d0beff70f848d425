package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tlt-imports/reposicion-api/internal/application/dto"
)

// ventanaIP acumula los intentos de una IP dentro de la ventana vigente.
type ventanaIP struct {
	inicio   time.Time
	intentos int
}

// RateLimiter limita peticiones por IP con ventana fija. Se usa en el login
// para frenar fuerza bruta de credenciales.
type RateLimiter struct {
	mu       sync.Mutex
	ventanas map[string]*ventanaIP
	ventana  time.Duration
	max      int
	ahora    func() time.Time
}

// NewRateLimiter construye el limitador. ahora puede ser nil y usa time.Now.
func NewRateLimiter(ventana time.Duration, max int, ahora func() time.Time) *RateLimiter {
	if ahora == nil {
		ahora = time.Now
	}
	return &RateLimiter{
		ventanas: make(map[string]*ventanaIP),
		ventana:  ventana,
		max:      max,
		ahora:    ahora,
	}
}

// Permitir registra un intento de la IP y dice si pasa.
func (rl *RateLimiter) Permitir(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.ahora()
	v, ok := rl.ventanas[ip]
	if !ok || now.Sub(v.inicio) >= rl.ventana {
		rl.ventanas[ip] = &ventanaIP{inicio: now, intentos: 1}
		rl.limpiar(now)
		return true
	}
	v.intentos++
	return v.intentos <= rl.max
}

// limpiar descarta ventanas vencidas. Se llama con el lock tomado.
func (rl *RateLimiter) limpiar(now time.Time) {
	for ip, v := range rl.ventanas {
		if now.Sub(v.inicio) >= rl.ventana {
			delete(rl.ventanas, ip)
		}
	}
}

// Middleware corta con 429 cuando la IP agota sus intentos en la ventana.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.Permitir(c.IP()) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiados intentos, reintente más tarde",
			})
		}
		return c.Next()
	}
}

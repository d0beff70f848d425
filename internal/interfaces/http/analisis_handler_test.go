package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlt-imports/reposicion-api/internal/application/analisis"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
	apphttp "github.com/tlt-imports/reposicion-api/internal/interfaces/http"
)

// catalogoVacioFake catálogo sin productos: GetBySKU nunca encuentra nada.
type catalogoVacioFake struct{}

func (catalogoVacioFake) Create(*entity.Producto) error             { return nil }
func (catalogoVacioFake) GetByID(string) (*entity.Producto, error)  { return nil, nil }
func (catalogoVacioFake) GetBySKU(string) (*entity.Producto, error) { return nil, nil }
func (catalogoVacioFake) ExistsSKU(string) (bool, error)            { return false, nil }
func (catalogoVacioFake) Update(*entity.Producto) error             { return nil }
func (catalogoVacioFake) List(repository.FiltroProductos, int, int) ([]*entity.Producto, error) {
	return nil, nil
}
func (catalogoVacioFake) ListByStatus(...workflow.Estado) ([]*entity.Producto, error) {
	return nil, nil
}
func (catalogoVacioFake) Delete(string) error                                 { return nil }
func (catalogoVacioFake) UpsertDesdeStock(string, string, entity.Stock) error { return nil }
func (catalogoVacioFake) IncrementarStock(string, decimal.Decimal) error      { return nil }
func (catalogoVacioFake) SincronizarDesconsiderados([]string) error           { return nil }

type transitoVacioFake struct{}

func (transitoVacioFake) ReplaceAll([]*entity.Transito) error          { return nil }
func (transitoVacioFake) ListAll() ([]*entity.Transito, error)         { return nil, nil }
func (transitoVacioFake) ListBySKU(string) ([]*entity.Transito, error) { return nil, nil }

type configFija struct{}

func (configFija) Get() (*entity.Configuracion, error) { return &entity.Configuracion{}, nil }
func (configFija) Save(*entity.Configuracion) error    { return nil }

func appAnalisis() *fiber.App {
	uc := analisis.NewUsecase(catalogoVacioFake{}, transitoVacioFake{}, configFija{}, nil, nil)
	app := fiber.New()
	app.Get("/api/analysis", apphttp.NewAnalisisHandler(uc).Analizar)
	return app
}

func TestAnalizar_SKUInexistenteRetorna404(t *testing.T) {
	app := appAnalisis()

	req := httptest.NewRequest(http.MethodGet, "/api/analysis?sku=NO-EXISTE", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND",
		"la respuesta debe incluir el código NOT_FOUND")
}

func TestAnalizar_PrecioVentaInvalidoRetorna400(t *testing.T) {
	app := appAnalisis()

	req := httptest.NewRequest(http.MethodGet, "/api/analysis?sku=649701&precioVenta=abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

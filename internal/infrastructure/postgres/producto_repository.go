package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
	"github.com/tlt-imports/reposicion-api/internal/domain/workflow"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
// Los detalles de cada transición del workflow viven en columnas JSONB.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const columnasProducto = `
	id, sku, descripcion, link, costo_fob_rmb, cbm, stock_actual, status,
	fecha_llegada_estimada, desconsiderado, workflow_completed, completed_at,
	sku_original, reposicion_adicional,
	request_details, quote_details, analysis_details, approval_details,
	purchase_details, manufacturing_details, shipping_details,
	created_at, updated_at`

// detallesProducto serializa los siete blobs de detalle en el orden de las
// columnas JSONB.
func detallesProducto(p *entity.Producto) ([]any, error) {
	solicitud, err := jsonONulo(p.RequestDetails)
	if err != nil {
		return nil, fmt.Errorf("serializar request_details: %w", err)
	}
	cotizacion, err := jsonONulo(p.QuoteDetails)
	if err != nil {
		return nil, fmt.Errorf("serializar quote_details: %w", err)
	}
	analisis, err := jsonONulo(p.AnalysisDetails)
	if err != nil {
		return nil, fmt.Errorf("serializar analysis_details: %w", err)
	}
	aprobacion, err := jsonONulo(p.ApprovalDetails)
	if err != nil {
		return nil, fmt.Errorf("serializar approval_details: %w", err)
	}
	compra, err := jsonONulo(p.PurchaseDetails)
	if err != nil {
		return nil, fmt.Errorf("serializar purchase_details: %w", err)
	}
	fabricacion, err := jsonONulo(p.ManufacturingDetails)
	if err != nil {
		return nil, fmt.Errorf("serializar manufacturing_details: %w", err)
	}
	envio, err := jsonONulo(p.ShippingDetails)
	if err != nil {
		return nil, fmt.Errorf("serializar shipping_details: %w", err)
	}
	return []any{solicitud, cotizacion, analisis, aprobacion, compra, fabricacion, envio}, nil
}

type filaScan interface {
	Scan(dest ...any) error
}

// escanearProducto reconstruye un producto desde una fila con columnasProducto.
func escanearProducto(row filaScan) (*entity.Producto, error) {
	var p entity.Producto
	var status string
	var blobs [7][]byte
	err := row.Scan(
		&p.ID, &p.SKU, &p.Descripcion, &p.Link, &p.CostoFobRMB, &p.CBM, &p.StockActual, &status,
		&p.FechaLlegadaEstimada, &p.Desconsiderado, &p.WorkflowCompleted, &p.CompletedAt,
		&p.SKUOriginal, &p.ReposicionAdicional,
		&blobs[0], &blobs[1], &blobs[2], &blobs[3], &blobs[4], &blobs[5], &blobs[6],
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = workflow.Estado(status)
	if p.RequestDetails, err = decodificarDetalle[entity.DetalleSolicitud](blobs[0]); err != nil {
		return nil, fmt.Errorf("decodificar request_details: %w", err)
	}
	if p.QuoteDetails, err = decodificarDetalle[entity.DetalleCotizacion](blobs[1]); err != nil {
		return nil, fmt.Errorf("decodificar quote_details: %w", err)
	}
	if p.AnalysisDetails, err = decodificarDetalle[entity.DetalleAnalisis](blobs[2]); err != nil {
		return nil, fmt.Errorf("decodificar analysis_details: %w", err)
	}
	if p.ApprovalDetails, err = decodificarDetalle[entity.DetalleAprobacion](blobs[3]); err != nil {
		return nil, fmt.Errorf("decodificar approval_details: %w", err)
	}
	if p.PurchaseDetails, err = decodificarDetalle[entity.DetalleCompra](blobs[4]); err != nil {
		return nil, fmt.Errorf("decodificar purchase_details: %w", err)
	}
	if p.ManufacturingDetails, err = decodificarDetalle[entity.DetalleFabricacion](blobs[5]); err != nil {
		return nil, fmt.Errorf("decodificar manufacturing_details: %w", err)
	}
	if p.ShippingDetails, err = decodificarDetalle[entity.DetalleEnvio](blobs[6]); err != nil {
		return nil, fmt.Errorf("decodificar shipping_details: %w", err)
	}
	return &p, nil
}

// Create persiste un producto nuevo.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	detalles, err := detallesProducto(p)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO productos (id, sku, descripcion, link, costo_fob_rmb, cbm, stock_actual, status,
			fecha_llegada_estimada, desconsiderado, workflow_completed, completed_at,
			sku_original, reposicion_adicional,
			request_details, quote_details, analysis_details, approval_details,
			purchase_details, manufacturing_details, shipping_details,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23)`
	args := []any{
		p.ID, p.SKU, p.Descripcion, p.Link, p.CostoFobRMB, p.CBM, p.StockActual, string(p.Status),
		p.FechaLlegadaEstimada, p.Desconsiderado, p.WorkflowCompleted, p.CompletedAt,
		p.SKUOriginal, p.ReposicionAdicional,
	}
	args = append(args, detalles...)
	args = append(args, p.CreatedAt, p.UpdatedAt)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSKUYaExiste
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE id = $1`
	p, err := escanearProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductoRepo) GetBySKU(sku string) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE sku = $1`
	p, err := escanearProducto(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto by sku: %w", err)
	}
	return p, nil
}

// ExistsSKU indica si ya hay un producto con ese SKU.
func (r *ProductoRepo) ExistsSKU(sku string) (bool, error) {
	var existe bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM productos WHERE sku = $1)`, sku,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists sku: %w", err)
	}
	return existe, nil
}

// Update actualiza el producto completo, incluidos SKU (renombre al aprobar)
// y los detalles del workflow.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	detalles, err := detallesProducto(p)
	if err != nil {
		return err
	}
	query := `
		UPDATE productos SET sku = $2, descripcion = $3, link = $4, costo_fob_rmb = $5, cbm = $6,
			stock_actual = $7, status = $8, fecha_llegada_estimada = $9, desconsiderado = $10,
			workflow_completed = $11, completed_at = $12, sku_original = $13, reposicion_adicional = $14,
			request_details = $15, quote_details = $16, analysis_details = $17, approval_details = $18,
			purchase_details = $19, manufacturing_details = $20, shipping_details = $21,
			updated_at = $22
		WHERE id = $1`
	args := []any{
		p.ID, p.SKU, p.Descripcion, p.Link, p.CostoFobRMB, p.CBM, p.StockActual, string(p.Status),
		p.FechaLlegadaEstimada, p.Desconsiderado, p.WorkflowCompleted, p.CompletedAt,
		p.SKUOriginal, p.ReposicionAdicional,
	}
	args = append(args, detalles...)
	args = append(args, p.UpdatedAt)
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSKUYaExiste
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// List devuelve el catálogo filtrado. Con limit <= 0 no se pagina y se
// devuelve el catálogo completo (así lo pide el análisis por lotes).
func (r *ProductoRepo) List(filtro repository.FiltroProductos, limit, offset int) ([]*entity.Producto, error) {
	var condiciones []string
	var args []any
	if filtro.Status != "" {
		args = append(args, string(filtro.Status))
		condiciones = append(condiciones, fmt.Sprintf("status = $%d", len(args)))
	}
	if !filtro.IncluirCompletados {
		condiciones = append(condiciones, "NOT workflow_completed")
	}
	if filtro.SoloEnWorkflow {
		args = append(args, string(workflow.SinReposicion))
		condiciones = append(condiciones, fmt.Sprintf("status <> $%d", len(args)))
	}
	if filtro.Busqueda != "" {
		args = append(args, "%"+filtro.Busqueda+"%")
		condiciones = append(condiciones, fmt.Sprintf("(sku ILIKE $%d OR descripcion ILIKE $%d)", len(args), len(args)))
	}
	query := `SELECT ` + columnasProducto + ` FROM productos`
	if len(condiciones) > 0 {
		query += ` WHERE ` + strings.Join(condiciones, " AND ")
	}
	query += ` ORDER BY sku`
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := escanearProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListByStatus devuelve los productos en cualquiera de los estados dados.
func (r *ProductoRepo) ListByStatus(estados ...workflow.Estado) ([]*entity.Producto, error) {
	valores := make([]string, len(estados))
	for i, e := range estados {
		valores[i] = string(e)
	}
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE status = ANY($1) ORDER BY sku`
	rows, err := r.q.Query(context.Background(), query, valores)
	if err != nil {
		return nil, fmt.Errorf("list productos by status: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := escanearProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// UpsertDesdeStock crea el producto si no existe y sincroniza stock y
// descripción desde la foto de bodegas. La descripción del Excel solo pisa la
// existente cuando viene con texto.
func (r *ProductoRepo) UpsertDesdeStock(sku, descripcion string, stock entity.Stock) error {
	query := `
		INSERT INTO productos (id, sku, descripcion, stock_actual, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (sku) DO UPDATE SET
			stock_actual = EXCLUDED.stock_actual,
			descripcion = CASE WHEN EXCLUDED.descripcion <> '' THEN EXCLUDED.descripcion ELSE productos.descripcion END,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		uuid.New().String(), sku, descripcion, stock.Total(), string(workflow.SinReposicion),
	)
	if err != nil {
		return fmt.Errorf("upsert producto desde stock: %w", err)
	}
	return nil
}

// IncrementarStock suma unidades llegadas al stock actual del SKU.
func (r *ProductoRepo) IncrementarStock(sku string, unidades decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock_actual = stock_actual + $2, updated_at = now() WHERE sku = $1`,
		sku, unidades,
	)
	if err != nil {
		return fmt.Errorf("incrementar stock: %w", err)
	}
	return nil
}

// SincronizarDesconsiderados marca como excluidos exactamente los SKU de la
// lista y desmarca el resto.
func (r *ProductoRepo) SincronizarDesconsiderados(skus []string) error {
	if skus == nil {
		skus = []string{}
	}
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET desconsiderado = (sku = ANY($1)), updated_at = now()
		 WHERE desconsiderado <> (sku = ANY($1))`,
		skus,
	)
	if err != nil {
		return fmt.Errorf("sincronizar desconsiderados: %w", err)
	}
	return nil
}

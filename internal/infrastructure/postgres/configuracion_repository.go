package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tlt-imports/reposicion-api/internal/domain"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
	"github.com/tlt-imports/reposicion-api/internal/domain/repository"
)

var _ repository.ConfiguracionRepository = (*ConfiguracionRepo)(nil)

// ConfiguracionRepo implementación del puerto ConfiguracionRepository sobre
// PostgreSQL. La configuración es una fila única (id = 1) con el documento
// completo en JSONB.
type ConfiguracionRepo struct {
	q Querier
}

// NewConfiguracionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConfiguracionRepository(q Querier) *ConfiguracionRepo {
	return &ConfiguracionRepo{q: q}
}

// Get devuelve la configuración vigente. Si la fila todavía no existe devuelve
// domain.ErrConfigNoCargada para que el caso de uso siembre los defaults.
func (r *ConfiguracionRepo) Get() (*entity.Configuracion, error) {
	var doc []byte
	err := r.q.QueryRow(context.Background(),
		`SELECT doc FROM configuracion WHERE id = 1`,
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConfigNoCargada
		}
		return nil, fmt.Errorf("get configuracion: %w", err)
	}
	var c entity.Configuracion
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("decodificar configuracion: %w", err)
	}
	return &c, nil
}

// Save guarda el documento completo, creando la fila si no existe.
func (r *ConfiguracionRepo) Save(c *entity.Configuracion) error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializar configuracion: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `
		INSERT INTO configuracion (id, doc, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		doc,
	)
	if err != nil {
		return fmt.Errorf("save configuracion: %w", err)
	}
	return nil
}

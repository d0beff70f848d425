package dto

import (
	"github.com/tlt-imports/reposicion-api/internal/application/analisis"
	"github.com/tlt-imports/reposicion-api/internal/domain/costeo"
	"github.com/tlt-imports/reposicion-api/internal/domain/entity"
)

// AnalisisItemResponse el análisis de un SKU del catálogo.
type AnalisisItemResponse struct {
	Producto        ProductoResponse `json:"producto"`
	Analisis        costeo.Resultado `json:"analisis"`
	ReposicionNueva bool             `json:"reposicionNueva,omitempty"`
}

// AnalisisResponse salida del análisis: resultados más la configuración con
// la que se calcularon.
type AnalisisResponse struct {
	Resultados []AnalisisItemResponse `json:"results"`
	Config     *entity.Configuracion  `json:"configActual"`
}

// FromResultados mapea los resultados del análisis al DTO de salida.
func FromResultados(resultados []*analisis.ResultadoProducto, cfg *entity.Configuracion) AnalisisResponse {
	items := make([]AnalisisItemResponse, 0, len(resultados))
	for _, r := range resultados {
		items = append(items, AnalisisItemResponse{
			Producto:        FromProducto(r.Producto),
			Analisis:        r.Analisis,
			ReposicionNueva: r.ReposicionNueva,
		})
	}
	return AnalisisResponse{Resultados: items, Config: cfg}
}

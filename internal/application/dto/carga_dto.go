package dto

// CargaRequest entrada para disparar el procesamiento de un Excel ya subido
// al bucket.
type CargaRequest struct {
	Ruta string `json:"filePath" validate:"required"`
}

// CargaSubidaResponse ruta en el bucket del libro recién subido; se pasa tal
// cual a POST /api/process.
type CargaSubidaResponse struct {
	Ruta string `json:"filePath"`
}

// ResumenHoja conteo de una hoja procesada: filas cargadas y filas
// descartadas por datos inválidos.
type ResumenHoja struct {
	Cargadas  int  `json:"cargadas"`
	Saltadas  int  `json:"saltadas"`
	Procesada bool `json:"procesada"`
}

// CargaResponse resumen del procesamiento completo del libro.
type CargaResponse struct {
	Ventas        ResumenHoja `json:"ventas"`
	Stock         ResumenHoja `json:"stock"`
	Transito      ResumenHoja `json:"transito"`
	Compras       ResumenHoja `json:"compras"`
	Packs         ResumenHoja `json:"packs"`
	Desconsiderar ResumenHoja `json:"desconsiderar"`
}

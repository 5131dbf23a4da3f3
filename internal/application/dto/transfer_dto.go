package dto

// ImportResult resultado agregado de una importación: filas creadas, filas
// descartadas por datos inválidos y filas cuya creación falló en el almacén.
type ImportResult struct {
	Created []ProductResponse `json:"created"`
	Skipped int               `json:"skipped"`
	Failed  int               `json:"failed"`
}

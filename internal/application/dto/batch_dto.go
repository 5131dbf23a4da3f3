package dto

// BatchCreateRow una fila nueva del buffer del cliente. ClientID es el
// identificador temporal generado en el navegador (fila Pending); el servidor
// responde asociándolo al registro persistido (Persisted) para que el cliente
// reconcilie su estado local.
type BatchCreateRow struct {
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Cost     any    `json:"cost"`
	Amount   any    `json:"amount"`
	Status   string `json:"status"`
}

// BatchCreateRequest guarda todas las filas nuevas de una vez. Si alguna fila
// no pasa la validación no se persiste ninguna.
type BatchCreateRequest struct {
	Rows []BatchCreateRow `json:"rows"`
}

// BatchCreatedItem asocia el ID temporal del cliente con el producto creado.
type BatchCreatedItem struct {
	ClientID string          `json:"clientId"`
	Product  ProductResponse `json:"product"`
}

// BatchCreateResponse resultado del guardado en lote.
type BatchCreateResponse struct {
	Created []BatchCreatedItem `json:"created"`
}

// BatchDeleteRequest elimina varios productos; una petición independiente por fila.
type BatchDeleteRequest struct {
	ProductIDs []string `json:"productIds"`
}

// BatchDeleteResponse resultado agregado del borrado en lote. Deleted contiene
// solo los IDs confirmados por el servidor; Message reporta el conteo de fallos
// ("N de M filas no se pudieron eliminar") cuando Failed > 0.
type BatchDeleteResponse struct {
	Deleted []string `json:"deleted"`
	Failed  int      `json:"failed"`
	Message string   `json:"message,omitempty"`
}

package entity

import "time"

// Organization representa un tenant (institución) dueño de sus categorías y productos.
// Se crea vía seed o por la colección /api/data; rara vez se modifica y no se elimina
// en el flujo normal.
type Organization struct {
	ID          string
	Name        string // único a nivel global (nebrija, cnse, ...)
	Description string
	CreatedAt   time.Time
}

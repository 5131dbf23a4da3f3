package postgres

import (
	"context"
	"fmt"

	"github.com/signalee/inventario-api/internal/domain/entity"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto ligado a su categoría.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, cost, amount, status, creation_date, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Cost, product.Amount,
		string(product.Status), product.CreationDate, product.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, cost, amount, status, creation_date, category_id
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Cost, &p.Amount, &p.Status, &p.CreationDate, &p.CategoryID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByCategory lista los productos de una categoría. Sin paginación: el cliente
// carga la categoría completa y pagina en memoria.
func (r *ProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	query := `
		SELECT id, name, cost, amount, status, creation_date, category_id
		FROM products WHERE category_id = $1 ORDER BY creation_date, id`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Cost, &p.Amount, &p.Status,
			&p.CreationDate, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza la fila completa del producto (el parche disperso se aplica en el caso de uso).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, cost = $3, amount = $4, status = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Cost, product.Amount, string(product.Status),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto y devuelve el registro eliminado. Borrado permanente,
// sin soft-delete. Devuelve nil sin error si el ID no existía.
func (r *ProductRepo) Delete(id string) (*entity.Product, error) {
	query := `
		DELETE FROM products WHERE id = $1
		RETURNING id, name, cost, amount, status, creation_date, category_id`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Cost, &p.Amount, &p.Status, &p.CreationDate, &p.CategoryID,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return &p, nil
}

package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/domain"
	"github.com/signalee/inventario-api/internal/domain/entity"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

// BatchUseCase implementa el contrato de sincronización de la tabla editable:
// guardar todas las filas nuevas de una vez y eliminar la multi-selección.
// Cada fila viaja como petición independiente contra el almacén (sin
// transaccionalidad entre filas); las peticiones del lote se lanzan en
// paralelo y se esperan conjuntamente.
type BatchUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *BatchUseCase {
	return &BatchUseCase{products: products, categories: categories}
}

// CreateAll valida todas las filas nuevas antes de tocar el almacén: si alguna
// está incompleta no se envía ninguna y se devuelve un único error agregado.
// Con todas válidas, una inserción concurrente por fila; la respuesta asocia el
// ID temporal del cliente (fila pendiente) con el registro persistido.
func (uc *BatchUseCase) CreateAll(organizationName, categoryName string, in dto.BatchCreateRequest) (*dto.BatchCreateResponse, error) {
	if len(in.Rows) == 0 {
		return &dto.BatchCreateResponse{Created: []dto.BatchCreatedItem{}}, nil
	}

	type prepared struct {
		clientID string
		product  *entity.Product
	}
	rows := make([]prepared, 0, len(in.Rows))
	for _, row := range in.Rows {
		cost, amount, err := coerceCostAmount(row.Cost, row.Amount)
		if err != nil || row.Name == "" || row.Status == "" || cost.IsZero() || amount == 0 {
			return nil, fmt.Errorf("%w: complete todos los campos requeridos en las filas nuevas", domain.ErrInvalidInput)
		}
		rows = append(rows, prepared{
			clientID: row.ClientID,
			product: &entity.Product{
				ID:           uuid.New().String(),
				Name:         row.Name,
				Cost:         cost,
				Amount:       amount,
				Status:       entity.Status(row.Status),
				CreationDate: time.Now(),
			},
		})
	}

	category, err := uc.categories.GetByNameAndOrganization(categoryName, organizationName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	created := make([]dto.BatchCreatedItem, len(rows))
	var g errgroup.Group
	for i, row := range rows {
		g.Go(func() error {
			row.product.CategoryID = category.ID
			if err := uc.products.Create(row.product); err != nil {
				return err
			}
			created[i] = dto.BatchCreatedItem{
				ClientID: row.clientID,
				Product:  *toProductResponse(row.product),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Sin transaccionalidad: algunas filas pueden haberse persistido ya.
		return nil, err
	}
	return &dto.BatchCreateResponse{Created: created}, nil
}

// DeleteAll lanza un DELETE independiente por cada ID seleccionado y los espera
// conjuntamente. El resultado siempre reporta qué IDs confirmó el servidor; con
// fallos parciales, Message lleva el conteo agregado
// ("N de M filas no se pudieron eliminar") sin atribuir fallos a filas concretas.
func (uc *BatchUseCase) DeleteAll(in dto.BatchDeleteRequest) (*dto.BatchDeleteResponse, error) {
	if len(in.ProductIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var (
		mu      sync.Mutex
		deleted []string
		failed  int
	)
	var g errgroup.Group
	for _, id := range in.ProductIDs {
		g.Go(func() error {
			record, err := uc.products.Delete(id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil || record == nil {
				failed++
				return nil
			}
			deleted = append(deleted, id)
			return nil
		})
	}
	_ = g.Wait()

	resp := &dto.BatchDeleteResponse{
		Deleted: deleted,
		Failed:  failed,
	}
	if resp.Deleted == nil {
		resp.Deleted = []string{}
	}
	if failed > 0 {
		resp.Message = fmt.Sprintf("%d de %d filas no se pudieron eliminar", failed, len(in.ProductIDs))
	}
	return resp, nil
}

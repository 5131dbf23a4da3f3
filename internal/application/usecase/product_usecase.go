package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/domain"
	"github.com/signalee/inventario-api/internal/domain/entity"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

// sentinelProductID valor que el cliente envía para filas aún sin persistir;
// nunca es un ID válido de actualización.
const sentinelProductID = "0"

// ProductUseCase casos de uso CRUD para productos, siempre en el ámbito
// (organizationName, categoryName) que viaja en la ruta.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// List devuelve los productos de la categoría (resuelta por nombre dentro de la
// organización). Una categoría inexistente produce lista vacía, no error: el
// contrato del listado nunca es 404.
func (uc *ProductUseCase) List(organizationName, categoryName string) ([]dto.ProductResponse, error) {
	category, err := uc.categories.GetByNameAndOrganization(categoryName, organizationName)
	if err != nil {
		return nil, err
	}
	items := []dto.ProductResponse{}
	if category == nil {
		return items, nil
	}
	list, err := uc.products.ListByCategory(category.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Create valida el payload, resuelve la categoría por (nombre, organización) y
// persiste el producto. Los cuatro campos son obligatorios y un valor vacío o
// cero se rechaza como entrada inválida. La fecha de creación la fija el servidor.
func (uc *ProductUseCase) Create(organizationName, categoryName string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	cost, amount, err := coerceCostAmount(in.Cost, in.Amount)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.Status == "" || cost.IsZero() || amount == 0 {
		return nil, domain.ErrInvalidInput
	}

	category, err := uc.categories.GetByNameAndOrganization(categoryName, organizationName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		CategoryID:   category.ID,
		Name:         in.Name,
		Cost:         cost,
		Amount:       amount,
		Status:       entity.Status(in.Status),
		CreationDate: time.Now(),
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica un parche disperso: solo cambian los campos presentes en la
// petición. Cost se coerce a decimal y Amount a entero; un productId ausente o
// igual al centinela "0" es entrada inválida.
func (uc *ProductUseCase) Update(in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.ProductID == "" || in.ProductID == sentinelProductID {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Cost != nil {
		f, err := cast.ToFloat64E(in.Cost)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = decimal.NewFromFloat(f)
	}
	if in.Amount != nil {
		n, err := cast.ToIntE(in.Amount)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.Amount = n
	}
	if in.Status != nil {
		product.Status = entity.Status(*in.Status)
	}

	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto y devuelve el registro eliminado. Un ID inexistente
// no puede tener éxito en silencio: produce ErrProductNotFound.
func (uc *ProductUseCase) Delete(productID string) (*dto.ProductResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	deleted, err := uc.products.Delete(productID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(deleted), nil
}

// coerceCostAmount convierte cost a decimal y amount a entero desde número o
// cadena numérica. nil se mapea a cero (el llamante decide si cero es válido).
func coerceCostAmount(costIn, amountIn any) (decimal.Decimal, int, error) {
	cost := decimal.Zero
	if costIn != nil {
		f, err := cast.ToFloat64E(costIn)
		if err != nil {
			return decimal.Zero, 0, domain.ErrInvalidInput
		}
		cost = decimal.NewFromFloat(f)
	}
	amount := 0
	if amountIn != nil {
		n, err := cast.ToIntE(amountIn)
		if err != nil {
			return decimal.Zero, 0, domain.ErrInvalidInput
		}
		amount = n
	}
	return cost, amount, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Cost:         p.Cost,
		Amount:       p.Amount,
		Status:       string(p.Status),
		CreationDate: p.CreationDate,
		CategoryID:   p.CategoryID,
	}
}

package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalee/inventario-api/internal/application/dto"
	"github.com/signalee/inventario-api/internal/application/usecase"
	"github.com/signalee/inventario-api/internal/domain"
	"github.com/signalee/inventario-api/internal/domain/entity"
)

// buildProductUseCase prepara el caso de uso con la categoría devices de
// nebrija ya provisionada.
func buildProductUseCase() (*usecase.ProductUseCase, *fakeProductRepo, *fakeCategoryRepo) {
	categories := newFakeCategoryRepo()
	categories.add("nebrija", &entity.Category{ID: "cat-devices", OrganizationID: "org-nebrija", Name: "devices"})
	products := newFakeProductRepo()
	return usecase.NewProductUseCase(products, categories), products, categories
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_PersisteYCompletaCampos(t *testing.T) {
	uc, products, _ := buildProductUseCase()

	out, err := uc.Create("nebrija", "devices", dto.CreateProductRequest{
		Name:   "Meta Quest 3S",
		Cost:   800,
		Amount: 2,
		Status: "En almacen",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "el ID lo emite el servidor")
	assert.Equal(t, "cat-devices", out.CategoryID)
	assert.True(t, out.Cost.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, 2, out.Amount)
	assert.False(t, out.CreationDate.IsZero(), "la fecha de creación la fija el servidor")
	assert.Equal(t, 1, products.count())
}

// Los campos numéricos admiten cadena numérica (el cliente envía inputs de texto).
func TestProductCreate_CoerceNumerosDesdeCadena(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	out, err := uc.Create("nebrija", "devices", dto.CreateProductRequest{
		Name:   "Impresora 3D",
		Cost:   "499.99",
		Amount: "3",
		Status: "En transito",
	})
	require.NoError(t, err)
	assert.True(t, out.Cost.Equal(decimal.NewFromFloat(499.99)))
	assert.Equal(t, 3, out.Amount)
}

// Un valor vacío o cero en cualquiera de los cuatro campos es entrada inválida.
func TestProductCreate_RechazaCamposVaciosOCero(t *testing.T) {
	uc, products, _ := buildProductUseCase()

	cases := []dto.CreateProductRequest{
		{Name: "", Cost: 10, Amount: 1, Status: "En almacen"},
		{Name: "Portátil", Cost: 0, Amount: 1, Status: "En almacen"},
		{Name: "Portátil", Cost: 10, Amount: 0, Status: "En almacen"},
		{Name: "Portátil", Cost: 10, Amount: 1, Status: ""},
		{Name: "Portátil", Cost: nil, Amount: 1, Status: "En almacen"},
	}
	for _, in := range cases {
		_, err := uc.Create("nebrija", "devices", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, 0, products.count(), "ninguna petición inválida debe persistir")
}

func TestProductCreate_RechazaNumeroNoParseable(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	_, err := uc.Create("nebrija", "devices", dto.CreateProductRequest{
		Name: "Portátil", Cost: "ochocientos", Amount: 1, Status: "En almacen",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	_, err := uc.Create("nebrija", "vehiculos", dto.CreateProductRequest{
		Name: "Furgoneta", Cost: 20000, Amount: 1, Status: "En transito",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_CategoriaInexistenteDevuelveListaVacia(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	// El contrato del listado nunca es 404: lista vacía.
	items, err := uc.List("nebrija", "vehiculos")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestProductList_DevuelveSoloLaCategoria(t *testing.T) {
	uc, _, categories := buildProductUseCase()
	categories.add("nebrija", &entity.Category{ID: "cat-materials", OrganizationID: "org-nebrija", Name: "materials"})

	_, err := uc.Create("nebrija", "devices", dto.CreateProductRequest{Name: "Tablet", Cost: 300, Amount: 4, Status: "En almacen"})
	require.NoError(t, err)
	_, err = uc.Create("nebrija", "materials", dto.CreateProductRequest{Name: "Camisetas", Cost: 12, Amount: 50, Status: "En almacen"})
	require.NoError(t, err)

	items, err := uc.List("nebrija", "devices")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tablet", items[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_ParcheDispersoDejaElRestoIntacto(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	created, err := uc.Create("nebrija", "devices", dto.CreateProductRequest{
		Name: "Meta Quest 3S", Cost: 800, Amount: 2, Status: "En transito",
	})
	require.NoError(t, err)

	// Solo viaja amount; el resto de campos no debe cambiar.
	out, err := uc.Update(dto.UpdateProductRequest{ProductID: created.ID, Amount: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Amount)
	assert.Equal(t, "Meta Quest 3S", out.Name)
	assert.True(t, out.Cost.Equal(decimal.NewFromInt(800)))
	assert.Equal(t, "En transito", out.Status)
	assert.Equal(t, created.CreationDate, out.CreationDate, "la fecha de creación nunca cambia en un update")
}

func TestProductUpdate_CoerceCostDesdeCadena(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	created, err := uc.Create("nebrija", "devices", dto.CreateProductRequest{
		Name: "Monitor", Cost: 150, Amount: 1, Status: "En almacen",
	})
	require.NoError(t, err)

	out, err := uc.Update(dto.UpdateProductRequest{ProductID: created.ID, Cost: "199.5"})
	require.NoError(t, err)
	assert.True(t, out.Cost.Equal(decimal.NewFromFloat(199.5)))
}

// "0" es el ID centinela de filas aún no guardadas; un update con él es inválido.
func TestProductUpdate_RechazaIDCentinela(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	_, err := uc.Update(dto.UpdateProductRequest{ProductID: "0"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(dto.UpdateProductRequest{ProductID: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_ProductoInexistente(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	name := "Otro"
	_, err := uc.Update(dto.UpdateProductRequest{ProductID: "no-existe", Name: &name})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductDelete_DevuelveElRegistroEliminado(t *testing.T) {
	uc, products, _ := buildProductUseCase()
	created, err := uc.Create("nebrija", "devices", dto.CreateProductRequest{
		Name: "Proyector", Cost: 600, Amount: 1, Status: "En almacen",
	})
	require.NoError(t, err)

	out, err := uc.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "Proyector", out.Name)
	assert.Equal(t, 0, products.count())
}

// Borrar algo inexistente no puede tener éxito en silencio.
func TestProductDelete_ProductoInexistente(t *testing.T) {
	uc, _, _ := buildProductUseCase()
	_, err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

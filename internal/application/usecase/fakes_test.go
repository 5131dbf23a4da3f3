package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/signalee/inventario-api/internal/domain"
	"github.com/signalee/inventario-api/internal/domain/entity"
	"github.com/signalee/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia, compartidos por los tests
// del paquete. Protegidos con mutex porque los casos de uso en lote lanzan
// operaciones concurrentes contra el repositorio.
// ──────────────────────────────────────────────────────────────────────────────

// fakeCategoryRepo resuelve categorías por (nombre, organización).
type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories []*entity.Category
	// byScope indexa "organización/categoría" -> entidad
	byScope map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byScope: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) add(organizationName string, category *entity.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories, category)
	f.byScope[organizationName+"/"+category.Name] = category
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) GetByNameAndOrganization(name, organizationName string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byScope[organizationName+"/"+name], nil
}

func (f *fakeCategoryRepo) ListByOrganization(organizationID string) ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*entity.Category{}
	for _, c := range f.categories {
		if c.OrganizationID == organizationID {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeProductRepo almacena productos en orden de inserción.
type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
	// failDelete fuerza el fallo del borrado para los IDs indicados
	failDelete map[string]bool
	// failCreate fuerza el fallo de toda inserción
	failCreate bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{failDelete: map[string]bool{}}
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("fallo de inserción simulado")
	}
	copied := *product
	f.products = append(f.products, &copied)
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*entity.Product{}
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.products {
		if p.ID == product.ID {
			copied := *product
			f.products[i] = &copied
			return nil
		}
	}
	return errors.New("producto inexistente")
}

func (f *fakeProductRepo) Delete(id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete[id] {
		return nil, errors.New("fallo de borrado simulado")
	}
	for i, p := range f.products {
		if p.ID == id {
			deleted := *p
			f.products = append(f.products[:i], f.products[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.products)
}

// fakeSummaryRepo devuelve filas predefinidas para el resumen.
type fakeSummaryRepo struct {
	rows map[string][]repository.ProductWithCategory
}

func (f *fakeSummaryRepo) ListByOrganization(_ context.Context, organizationName string) ([]repository.ProductWithCategory, error) {
	return f.rows[organizationName], nil
}

// fakeOrgRepo colección de organizaciones con unicidad por nombre.
type fakeOrgRepo struct {
	mu   sync.Mutex
	orgs []*entity.Organization
}

func (f *fakeOrgRepo) Create(org *entity.Organization) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.Name == org.Name {
			return domain.ErrDuplicate
		}
	}
	copied := *org
	f.orgs = append(f.orgs, &copied)
	return nil
}

func (f *fakeOrgRepo) GetByID(id string) (*entity.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.ID == id {
			copied := *o
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) GetByName(name string) (*entity.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.Name == name {
			copied := *o
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeOrgRepo) List() ([]*entity.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Organization, len(f.orgs))
	copy(out, f.orgs)
	return out, nil
}

// fakeTxRunner ejecuta el callback contra los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	orgs       *fakeOrgRepo
	categories *fakeCategoryRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.OrganizationRepository, repository.CategoryRepository) error) error {
	return fn(f.orgs, f.categories)
}

package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/signalee/inventario-api/internal/application/transfer"
	"github.com/signalee/inventario-api/internal/application/usecase"
	"github.com/signalee/inventario-api/internal/domain"
	"github.com/signalee/inventario-api/internal/domain/entity"
	"github.com/signalee/inventario-api/internal/domain/repository"
	apphttp "github.com/signalee/inventario-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria y aplicación Fiber de prueba con el router completo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	mu      sync.Mutex
	byScope map[string]*entity.Category
	byOrg   map[string][]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byScope: map[string]*entity.Category{}, byOrg: map[string][]*entity.Category{}}
}

func (f *fakeCategoryRepo) add(organizationName string, category *entity.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byScope[organizationName+"/"+category.Name] = category
	f.byOrg[category.OrganizationID] = append(f.byOrg[category.OrganizationID], category)
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byOrg[category.OrganizationID] = append(f.byOrg[category.OrganizationID], category)
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
	return f.byOrg[organizationID], nil
}

type fakeProductRepo struct {
	mu         sync.Mutex
	products   []*entity.Product
	failDelete map[string]bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{failDelete: map[string]bool{}}
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
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

type fakeSummaryRepo struct {
	rows map[string][]repository.ProductWithCategory
}

func (f *fakeSummaryRepo) ListByOrganization(_ context.Context, organizationName string) ([]repository.ProductWithCategory, error) {
	return f.rows[organizationName], nil
}

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

func (f *fakeOrgRepo) GetByID(string) (*entity.Organization, error)   { return nil, nil }
func (f *fakeOrgRepo) GetByName(string) (*entity.Organization, error) { return nil, nil }

func (f *fakeOrgRepo) List() ([]*entity.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Organization, len(f.orgs))
	copy(out, f.orgs)
	return out, nil
}

type fakeTxRunner struct {
	orgs       *fakeOrgRepo
	categories *fakeCategoryRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.OrganizationRepository, repository.CategoryRepository) error) error {
	return fn(f.orgs, f.categories)
}

type fakePDFGenerator struct{}

func (fakePDFGenerator) GenerateTable(string, []string, [][]string, string) ([]byte, error) {
	return []byte("%PDF-1.7 fake"), nil
}

type fakeWorkbookGenerator struct{}

func (fakeWorkbookGenerator) GenerateWorkbook(string, []string, [][]string) ([]byte, error) {
	return []byte("PK fake xlsx"), nil
}

// testEnv la aplicación de prueba con acceso a los fakes para sembrar datos.
type testEnv struct {
	app        *fiber.App
	products   *fakeProductRepo
	categories *fakeCategoryRepo
	summaries  *fakeSummaryRepo
}

// buildTestApp levanta la API completa sobre los fakes, con la categoría
// devices de nebrija ya provisionada.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()

	categories := newFakeCategoryRepo()
	categories.add("nebrija", &entity.Category{ID: "cat-devices", OrganizationID: "org-nebrija", Name: "devices"})
	products := newFakeProductRepo()
	summaries := &fakeSummaryRepo{rows: map[string][]repository.ProductWithCategory{}}
	orgs := &fakeOrgRepo{}

	productUC := usecase.NewProductUseCase(products, categories)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		OrganizationUC: usecase.NewOrganizationUseCase(orgs, &fakeTxRunner{orgs: orgs, categories: categories}),
		ProductUC:      productUC,
		SummaryUC:      usecase.NewSummaryUseCase(summaries),
		BatchUC:        usecase.NewBatchUseCase(products, categories),
		ExportUC:       transfer.NewExportUseCase(categories, products, fakePDFGenerator{}, fakeWorkbookGenerator{}),
		ImportUC:       transfer.NewImportUseCase(productUC),
	})
	return &testEnv{app: app, products: products, categories: categories, summaries: summaries}
}

// doJSON lanza una petición con cuerpo JSON y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

package transfer_test

import (
	"sync"

	"github.com/signalee/inventario-api/internal/domain/entity"
)

// Fakes en memoria de los puertos que usa el paquete: persistencia y
// generadores de archivo. Los tests verifican el contenido de las filas que
// llega a los generadores, no el binario que producen.

type fakeCategoryRepo struct {
	byScope map[string]*entity.Category
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error { return nil }

func (f *fakeCategoryRepo) GetByNameAndOrganization(name, organizationName string) (*entity.Category, error) {
	return f.byScope[organizationName+"/"+name], nil
}

func (f *fakeCategoryRepo) ListByOrganization(string) ([]*entity.Category, error) {
	return nil, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
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

func (f *fakeProductRepo) Update(product *entity.Product) error { return nil }

func (f *fakeProductRepo) Delete(id string) (*entity.Product, error) { return nil, nil }

// fakePDFGenerator captura los argumentos de la última generación.
type fakePDFGenerator struct {
	title   string
	headers []string
	rows    [][]string
	footer  string
}

func (f *fakePDFGenerator) GenerateTable(title string, headers []string, rows [][]string, footer string) ([]byte, error) {
	f.title, f.headers, f.rows, f.footer = title, headers, rows, footer
	return []byte("%PDF-1.7 fake"), nil
}

// fakeWorkbookGenerator captura los argumentos de la última generación.
type fakeWorkbookGenerator struct {
	sheet   string
	headers []string
	rows    [][]string
}

func (f *fakeWorkbookGenerator) GenerateWorkbook(sheet string, headers []string, rows [][]string) ([]byte, error) {
	f.sheet, f.headers, f.rows = sheet, headers, rows
	return []byte("PK fake xlsx"), nil
}

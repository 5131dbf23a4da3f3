// seed crea el esquema relacional y puebla las organizaciones de ejemplo con
// sus categorías por defecto. Es idempotente: se puede ejecutar varias veces.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/signalee/inventario-api/internal/domain/entity"
	"github.com/signalee/inventario-api/internal/infrastructure/postgres"
	"github.com/signalee/inventario-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS organizations (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
	id              UUID PRIMARY KEY,
	name            TEXT NOT NULL,
	organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
	UNIQUE (name, organization_id)
);

CREATE TABLE IF NOT EXISTS products (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	cost          NUMERIC(12,2) NOT NULL DEFAULT 0,
	amount        INTEGER NOT NULL DEFAULT 0,
	status        TEXT NOT NULL DEFAULT 'Desconocido',
	creation_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	category_id   UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_categories_organization ON categories(organization_id);
`

// Organizaciones de ejemplo.
var organizations = []struct {
	name        string
	description string
}{
	{"nebrija", "Instituto Nebrija"},
	{"puenteuropa", "IFPS Puenteuropa"},
	{"alcazaren", "Alcazarén Formación"},
	{"cnse", "Fundación CNSE"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fail("crear esquema: %v", err)
	}
	fmt.Println("esquema creado/verificado")

	for _, org := range organizations {
		orgID, err := upsertOrganization(ctx, pool, org.name, org.description)
		if err != nil {
			fail("organización %s: %v", org.name, err)
		}
		fmt.Printf("organización lista: %s\n", org.name)

		for _, categoryName := range entity.DefaultCategoryNames {
			if err := upsertCategory(ctx, pool, categoryName, orgID); err != nil {
				fail("categoría %s de %s: %v", categoryName, org.name, err)
			}
			fmt.Printf("  categoría lista: %s\n", categoryName)
		}
	}

	fmt.Println("seed completado")
}

// upsertOrganization inserta la organización si no existe y devuelve su ID.
func upsertOrganization(ctx context.Context, pool *pgxpool.Pool, name, description string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, `
		INSERT INTO organizations (id, name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
		RETURNING id`,
		uuid.New().String(), name, description,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// upsertCategory inserta la categoría si no existe (única por nombre y organización).
func upsertCategory(ctx context.Context, pool *pgxpool.Pool, name, organizationID string) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, name, organization_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, organization_id) DO NOTHING`,
		uuid.New().String(), name, organizationID,
	)
	return err
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

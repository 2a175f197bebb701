package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sherlinsilvia14/MKV-co/internal/domain/product"
)

var ErrNotFound = errors.New("product not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, d product.Draft) (product.Product, error) {
	var p product.Product
	err := r.db.QueryRow(ctx, `
		INSERT INTO products (name, description, price, category, image_url)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, name, description, price, category, image_url, created_at
	`, d.Name, d.Description, d.Price, d.Category, d.ImageURL).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.CreatedAt,
	)
	return p, err
}

// ListAll returns every product newest-first. Filtering happens in memory
// (see Filter); the store only sorts.
func (r *Repo) ListAll(ctx context.Context) ([]product.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(description,''), price, category, image_url, created_at
		FROM products
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetByID(ctx context.Context, id int64) (product.Product, error) {
	var p product.Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, COALESCE(description,''), price, category, image_url, created_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return product.Product{}, ErrNotFound
	}
	return p, err
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stockpile-io/stockpile/internal/models"
)

const productColumns = `id, name, description, category, brand, sku, barcode, supplier, location,
	current_stock, min_stock_level, max_stock_level, cost_price, selling_price, created_at, updated_at`

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var barcode sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Brand, &p.SKU, &barcode,
		&p.Supplier, &p.Location, &p.CurrentStock, &p.MinStockLevel, &p.MaxStockLevel,
		&p.CostPrice, &p.SellingPrice, &p.CreatedAt, &p.UpdatedAt)
	p.Barcode = barcode.String
	return p, err
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (id, name, description, category, brand, sku, barcode, supplier, location,
		current_stock, min_stock_level, max_stock_level, cost_price, selling_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.Category, p.Brand, p.SKU,
		nullable(p.Barcode), p.Supplier, p.Location, p.CurrentStock, p.MinStockLevel, p.MaxStockLevel,
		p.CostPrice, p.SellingPrice, p.CreatedAt)
	return p, err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetBySKU(sku string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1 ORDER BY created_at LIMIT 1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, sku))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $2, description = $3, category = $4, brand = $5, sku = $6,
		barcode = $7, supplier = $8, location = $9, current_stock = $10, min_stock_level = $11,
		max_stock_level = $12, cost_price = $13, selling_price = $14, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query, p.ID, p.Name, p.Description, p.Category,
		p.Brand, p.SKU, nullable(p.Barcode), p.Supplier, p.Location, p.CurrentStock, p.MinStockLevel,
		p.MaxStockLevel, p.CostPrice, p.SellingPrice))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return updated, err
}

func (r *PostgresProductRepository) Delete(id string) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Restock applies the stock increment as a single UPDATE so concurrent
// restocks never lose each other's writes.
func (r *PostgresProductRepository) Restock(id string, quantity int) (models.Product, error) {
	if quantity < 0 {
		return models.Product{}, ErrInvalidQuantity
	}

	query := `UPDATE products SET current_stock = current_stock + $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id, quantity))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if pf.Name != "" {
		conds = append(conds, "name ILIKE "+arg("%"+pf.Name+"%"))
	}
	if pf.Category != "" {
		conds = append(conds, "category = "+arg(pf.Category))
	}
	if pf.Supplier != "" {
		conds = append(conds, "supplier = "+arg(pf.Supplier))
	}
	switch pf.Status {
	case "out_of_stock":
		conds = append(conds, "current_stock = 0")
	case "low_stock":
		conds = append(conds, "current_stock > 0 AND current_stock <= min_stock_level")
	case "in_stock":
		conds = append(conds, "current_stock > min_stock_level")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY created_at, id`
	if pf.Limit != nil && *pf.Limit > 0 {
		query += " LIMIT " + arg(*pf.Limit)
	}
	if pf.Offset != nil {
		query += " OFFSET " + arg(*pf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

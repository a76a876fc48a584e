package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"catalogapi/internal/domain"
	"catalogapi/internal/platform/logger"
	"catalogapi/internal/store"
)

// productColumns is the shared select list for product reads. Every read
// expands the owner to a {name, email} summary and the category in full.
const productColumns = `
	p.id, p.name, p.category_id, p.user_id, p.price, p.description, p.available,
	p.created_at, p.updated_at,
	u.name, u.email,
	c.name, c.created_at, c.updated_at
`

const productJoins = `
	FROM products p
	JOIN users u ON u.id = p.user_id
	JOIN categories c ON c.id = p.category_id
`

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the
// ProductStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProductStore(db store.DBTX, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

// ListPage implements store.ProductStore.ListPage
// It retrieves a page of products ordered by name ascending with the user
// and category references expanded.
func (s *PostgresProductStore) ListPage(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + productColumns + productJoins + `
		ORDER BY p.name ASC
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		log.Error("failed to list products",
			slog.String("error", err.Error()),
			slog.Int("offset", offset),
			slog.Int("limit", limit))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectProducts(rows)
}

// GetByID implements store.ProductStore.GetByID
// Returns store.ErrProductNotFound if the product does not exist.
func (s *PostgresProductStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + productColumns + productJoins + `
		WHERE p.id = $1
	`

	product, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", slog.String("product_id", id.String()))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product by ID",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return nil, MapError(err)
	}

	return product, nil
}

// FindByName implements store.ProductStore.FindByName
// The term is escaped before being embedded in the ILIKE pattern so that
// %, _ and \ in caller input match literally.
func (s *PostgresProductStore) FindByName(
	ctx context.Context,
	term string,
) ([]*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + productColumns + productJoins + `
		WHERE p.name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY p.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, escapeLikePattern(term))
	if err != nil {
		log.Error("failed to search products by name",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectProducts(rows)
}

// Create implements store.ProductStore.Create
// It validates the product, inserts it, and returns the persisted record
// with references expanded.
// Returns store.ErrInvalidEntity if the category or user does not exist.
func (s *PostgresProductStore) Create(
	ctx context.Context,
	product *domain.Product,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during create",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return nil, err
	}

	query := `
		INSERT INTO products (id, name, category_id, user_id, price, description, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.CategoryID,
		product.UserID,
		product.Price,
		nullableText(product.Description),
		product.Available,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create product",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()),
			slog.String("user_id", product.UserID.String()))
		return nil, MapError(err)
	}

	log.Info("product created",
		slog.String("product_id", product.ID.String()),
		slog.String("user_id", product.UserID.String()))

	return s.GetByID(ctx, product.ID)
}

// Update implements store.ProductStore.Update
// Full replacement of the mutable fields; the owner is never touched.
// Returns store.ErrProductNotFound if no product with that ID exists.
func (s *PostgresProductStore) Update(
	ctx context.Context,
	id uuid.UUID,
	product *domain.Product,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE products
		SET name = $1, category_id = $2, price = $3, description = $4, available = $5, updated_at = now()
		WHERE id = $6
		RETURNING id
	`

	var updatedID uuid.UUID
	err := s.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.CategoryID,
		product.Price,
		nullableText(product.Description),
		product.Available,
		id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found for update", slog.String("product_id", id.String()))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("product updated", slog.String("product_id", id.String()))

	return s.GetByID(ctx, id)
}

// Delete implements store.ProductStore.Delete
// It returns the removed record, expanded as for reads.
// Returns store.ErrProductNotFound if the product does not exist.
func (s *PostgresProductStore) Delete(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return nil, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, MapError(err)
	}
	if rowsAffected == 0 {
		// Deleted concurrently between the read and the delete.
		return nil, store.ErrProductNotFound
	}

	log.Info("product deleted", slog.String("product_id", id.String()))
	return product, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct reads one product row including its expanded references.
// The column order must match productColumns.
func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		product     domain.Product
		description sql.NullString
		user        domain.UserSummary
		category    domain.Category
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.CategoryID,
		&product.UserID,
		&product.Price,
		&description,
		&product.Available,
		&product.CreatedAt,
		&product.UpdatedAt,
		&user.Name,
		&user.Email,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Description = description.String
	user.ID = product.UserID
	category.ID = product.CategoryID
	product.User = &user
	product.Category = &category

	return &product, nil
}

// collectProducts drains rows into a slice, surfacing any iteration error.
func collectProducts(rows *sql.Rows) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, MapError(err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return products, nil
}

// escapeLikePattern escapes LIKE/ILIKE metacharacters so caller input is
// matched as a literal substring.
func escapeLikePattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// nullableText maps an empty string to NULL for optional text columns.
func nullableText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package cafe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new cafe
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, cafe *Cafe) error {
	rating, orders, beverages, foods, err := marshalDocs(cafe)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cafes (
			id,
			name,
			location,
			description,
			features,
			rating,
			orders,
			beverages,
			foods,
			created_by,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = r.db.Exec(
		ctx,
		query,
		cafe.ID,
		cafe.Name,
		cafe.Location,
		cafe.Description,
		cafe.Features,
		rating,
		orders,
		beverages,
		foods,
		cafe.CreatedBy,
		cafe.CreatedAt,
		cafe.UpdatedAt,
	)
	return err
}

// --------------------------------------------------
// List cafes, newest first
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Cafe, error) {
	query := `
		SELECT
			id,
			name,
			location,
			description,
			features,
			rating,
			orders,
			beverages,
			foods,
			created_by,
			created_at,
			updated_at
		FROM cafes
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cafes []*Cafe
	for rows.Next() {
		cafe, err := scanCafe(rows)
		if err != nil {
			return nil, err
		}
		cafes = append(cafes, cafe)
	}
	return cafes, rows.Err()
}

// --------------------------------------------------
// Get a single cafe by id
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Cafe, error) {
	query := `
		SELECT
			id,
			name,
			location,
			description,
			features,
			rating,
			orders,
			beverages,
			foods,
			created_by,
			created_at,
			updated_at
		FROM cafes
		WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	cafe, err := scanCafe(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return cafe, err
}

// --------------------------------------------------
// Replace a stored cafe
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, id string, cafe *Cafe) error {
	rating, orders, beverages, foods, err := marshalDocs(cafe)
	if err != nil {
		return err
	}

	query := `
		UPDATE cafes SET
			name = $2,
			location = $3,
			description = $4,
			features = $5,
			rating = $6,
			orders = $7,
			beverages = $8,
			foods = $9,
			updated_at = $10
		WHERE id = $1
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		id,
		cafe.Name,
		cafe.Location,
		cafe.Description,
		cafe.Features,
		rating,
		orders,
		beverages,
		foods,
		cafe.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Delete a cafe (irreversible, no soft delete)
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cafes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// JSONB helpers
// --------------------------------------------------

func marshalDocs(cafe *Cafe) (rating, orders, beverages, foods []byte, err error) {
	if rating, err = json.Marshal(cafe.Rating); err != nil {
		return
	}
	if orders, err = json.Marshal(cafe.Orders); err != nil {
		return
	}
	if beverages, err = json.Marshal(cafe.Beverages); err != nil {
		return
	}
	foods, err = json.Marshal(cafe.Foods)
	return
}

func scanCafe(row pgx.Row) (*Cafe, error) {
	var cafe Cafe
	var rating, orders, beverages, foods []byte

	if err := row.Scan(
		&cafe.ID,
		&cafe.Name,
		&cafe.Location,
		&cafe.Description,
		&cafe.Features,
		&rating,
		&orders,
		&beverages,
		&foods,
		&cafe.CreatedBy,
		&cafe.CreatedAt,
		&cafe.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rating, &cafe.Rating); err != nil {
		return nil, fmt.Errorf("decode rating: %w", err)
	}
	if err := json.Unmarshal(orders, &cafe.Orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	if err := json.Unmarshal(beverages, &cafe.Beverages); err != nil {
		return nil, fmt.Errorf("decode beverages: %w", err)
	}
	if err := json.Unmarshal(foods, &cafe.Foods); err != nil {
		return nil, fmt.Errorf("decode foods: %w", err)
	}
	return &cafe, nil
}

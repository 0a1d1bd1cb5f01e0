package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CountryRepository interface {
	List(ctx context.Context) ([]domain.Country, error)
	GetByCode(ctx context.Context, code string) (*domain.Country, error)
	Create(ctx context.Context, c *domain.Country) error
	Update(ctx context.Context, code string, c *domain.Country) (*domain.Country, error)
	Delete(ctx context.Context, code string) (*domain.Country, error)
}

type PGCountryRepository struct {
	db *pgxpool.Pool
}

func NewCountryRepository(db *pgxpool.Pool) CountryRepository {
	return &PGCountryRepository{db: db}
}

func (r *PGCountryRepository) List(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.Query(ctx, `SELECT codigo_iso, nombre FROM paises`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countries := make([]domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ISOCode, &c.Name); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

func (r *PGCountryRepository) GetByCode(ctx context.Context, code string) (*domain.Country, error) {
	row := r.db.QueryRow(ctx, `SELECT codigo_iso, nombre FROM paises WHERE codigo_iso=$1`, code)
	var c domain.Country
	if err := row.Scan(&c.ISOCode, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCountryRepository) Create(ctx context.Context, c *domain.Country) error {
	_, err := r.db.Exec(ctx, `INSERT INTO paises (codigo_iso, nombre) VALUES ($1, $2)`, c.ISOCode, c.Name)
	return err
}

func (r *PGCountryRepository) Update(ctx context.Context, code string, c *domain.Country) (*domain.Country, error) {
	row := r.db.QueryRow(ctx, `UPDATE paises SET codigo_iso=$1, nombre=$2 WHERE codigo_iso=$3 RETURNING codigo_iso, nombre`, c.ISOCode, c.Name, code)
	var updated domain.Country
	if err := row.Scan(&updated.ISOCode, &updated.Name); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGCountryRepository) Delete(ctx context.Context, code string) (*domain.Country, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM paises WHERE codigo_iso=$1 RETURNING codigo_iso, nombre`, code)
	var deleted domain.Country
	if err := row.Scan(&deleted.ISOCode, &deleted.Name); err != nil {
		return nil, err
	}
	return &deleted, nil
}

var _ CountryRepository = (*PGCountryRepository)(nil)

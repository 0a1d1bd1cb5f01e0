package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirlineRepository interface {
	List(ctx context.Context) ([]domain.Airline, error)
	GetByCode(ctx context.Context, code string) (*domain.Airline, error)
	Create(ctx context.Context, a *domain.Airline) error
	Update(ctx context.Context, code string, a *domain.Airline) (*domain.Airline, error)
	Delete(ctx context.Context, code string) (*domain.Airline, error)
}

type PGAirlineRepository struct {
	db *pgxpool.Pool
}

func NewAirlineRepository(db *pgxpool.Pool) AirlineRepository {
	return &PGAirlineRepository{db: db}
}

func (r *PGAirlineRepository) List(ctx context.Context) ([]domain.Airline, error) {
	rows, err := r.db.Query(ctx, `SELECT codigo_iata, nombre FROM aerolineas`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airlines := make([]domain.Airline, 0)
	for rows.Next() {
		var a domain.Airline
		if err := rows.Scan(&a.IATACode, &a.Name); err != nil {
			return nil, err
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

func (r *PGAirlineRepository) GetByCode(ctx context.Context, code string) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `SELECT codigo_iata, nombre FROM aerolineas WHERE codigo_iata=$1`, code)
	var a domain.Airline
	if err := row.Scan(&a.IATACode, &a.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirlineRepository) Create(ctx context.Context, a *domain.Airline) error {
	_, err := r.db.Exec(ctx, `INSERT INTO aerolineas (codigo_iata, nombre) VALUES ($1, $2)`, a.IATACode, a.Name)
	return err
}

func (r *PGAirlineRepository) Update(ctx context.Context, code string, a *domain.Airline) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `UPDATE aerolineas SET codigo_iata=$1, nombre=$2 WHERE codigo_iata=$3 RETURNING codigo_iata, nombre`, a.IATACode, a.Name, code)
	var updated domain.Airline
	if err := row.Scan(&updated.IATACode, &updated.Name); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGAirlineRepository) Delete(ctx context.Context, code string) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM aerolineas WHERE codigo_iata=$1 RETURNING codigo_iata, nombre`, code)
	var deleted domain.Airline
	if err := row.Scan(&deleted.IATACode, &deleted.Name); err != nil {
		return nil, err
	}
	return &deleted, nil
}

var _ AirlineRepository = (*PGAirlineRepository)(nil)

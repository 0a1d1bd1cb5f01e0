package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)
	Create(ctx context.Context, a *domain.Airport) error
	Update(ctx context.Context, code string, a *domain.Airport) (*domain.Airport, error)
	Delete(ctx context.Context, code string) (*domain.Airport, error)
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT codigo_iata, nombre, pais, ciudad, latitud, longitud FROM aeropuertos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.IATACode, &a.Name, &a.Country, &a.City, &a.Latitude, &a.Longitude); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT codigo_iata, nombre, pais, ciudad, latitud, longitud FROM aeropuertos WHERE codigo_iata=$1`, code)
	var a domain.Airport
	if err := row.Scan(&a.IATACode, &a.Name, &a.Country, &a.City, &a.Latitude, &a.Longitude); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	_, err := r.db.Exec(ctx, `INSERT INTO aeropuertos (codigo_iata, nombre, pais, ciudad, latitud, longitud) VALUES ($1, $2, $3, $4, $5, $6)`,
		a.IATACode, a.Name, a.Country, a.City, a.Latitude, a.Longitude)
	return err
}

func (r *PGAirportRepository) Update(ctx context.Context, code string, a *domain.Airport) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `UPDATE aeropuertos SET codigo_iata=$1, nombre=$2, pais=$3, ciudad=$4, latitud=$5, longitud=$6 WHERE codigo_iata=$7
		RETURNING codigo_iata, nombre, pais, ciudad, latitud, longitud`,
		a.IATACode, a.Name, a.Country, a.City, a.Latitude, a.Longitude, code)
	var updated domain.Airport
	if err := row.Scan(&updated.IATACode, &updated.Name, &updated.Country, &updated.City, &updated.Latitude, &updated.Longitude); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGAirportRepository) Delete(ctx context.Context, code string) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM aeropuertos WHERE codigo_iata=$1 RETURNING codigo_iata, nombre, pais, ciudad, latitud, longitud`, code)
	var deleted domain.Airport
	if err := row.Scan(&deleted.IATACode, &deleted.Name, &deleted.Country, &deleted.City, &deleted.Latitude, &deleted.Longitude); err != nil {
		return nil, err
	}
	return &deleted, nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)

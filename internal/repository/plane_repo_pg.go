package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlaneRepository interface {
	List(ctx context.Context) ([]domain.Plane, error)
	GetByID(ctx context.Context, id int64) (*domain.Plane, error)
	Create(ctx context.Context, p *domain.Plane) error
	Update(ctx context.Context, id int64, p *domain.Plane) (*domain.Plane, error)
	Delete(ctx context.Context, id int64) (*domain.Plane, error)
}

type PGPlaneRepository struct {
	db *pgxpool.Pool
}

func NewPlaneRepository(db *pgxpool.Pool) PlaneRepository {
	return &PGPlaneRepository{db: db}
}

func (r *PGPlaneRepository) List(ctx context.Context) ([]domain.Plane, error) {
	rows, err := r.db.Query(ctx, `SELECT id_avion, nombre, asientos_economica, asientos_negocios FROM aviones`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planes := make([]domain.Plane, 0)
	for rows.Next() {
		var p domain.Plane
		if err := rows.Scan(&p.ID, &p.Name, &p.EconomySeats, &p.BusinessSeats); err != nil {
			return nil, err
		}
		planes = append(planes, p)
	}
	return planes, rows.Err()
}

func (r *PGPlaneRepository) GetByID(ctx context.Context, id int64) (*domain.Plane, error) {
	row := r.db.QueryRow(ctx, `SELECT id_avion, nombre, asientos_economica, asientos_negocios FROM aviones WHERE id_avion=$1`, id)
	var p domain.Plane
	if err := row.Scan(&p.ID, &p.Name, &p.EconomySeats, &p.BusinessSeats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPlaneRepository) Create(ctx context.Context, p *domain.Plane) error {
	return r.db.QueryRow(ctx, `INSERT INTO aviones (nombre, asientos_economica, asientos_negocios) VALUES ($1, $2, $3) RETURNING id_avion`,
		p.Name, p.EconomySeats, p.BusinessSeats).Scan(&p.ID)
}

func (r *PGPlaneRepository) Update(ctx context.Context, id int64, p *domain.Plane) (*domain.Plane, error) {
	row := r.db.QueryRow(ctx, `UPDATE aviones SET nombre=$1, asientos_economica=$2, asientos_negocios=$3 WHERE id_avion=$4
		RETURNING id_avion, nombre, asientos_economica, asientos_negocios`,
		p.Name, p.EconomySeats, p.BusinessSeats, id)
	var updated domain.Plane
	if err := row.Scan(&updated.ID, &updated.Name, &updated.EconomySeats, &updated.BusinessSeats); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGPlaneRepository) Delete(ctx context.Context, id int64) (*domain.Plane, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM aviones WHERE id_avion=$1 RETURNING id_avion, nombre, asientos_economica, asientos_negocios`, id)
	var deleted domain.Plane
	if err := row.Scan(&deleted.ID, &deleted.Name, &deleted.EconomySeats, &deleted.BusinessSeats); err != nil {
		return nil, err
	}
	return &deleted, nil
}

var _ PlaneRepository = (*PGPlaneRepository)(nil)

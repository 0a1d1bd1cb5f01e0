package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PhoneRepository interface {
	List(ctx context.Context) ([]domain.Phone, error)
	GetByID(ctx context.Context, id int64) (*domain.Phone, error)
	Create(ctx context.Context, p *domain.Phone) error
	Update(ctx context.Context, id int64, p *domain.Phone) (*domain.Phone, error)
	Delete(ctx context.Context, id int64) (*domain.Phone, error)
}

type PGPhoneRepository struct {
	db *pgxpool.Pool
}

func NewPhoneRepository(db *pgxpool.Pool) PhoneRepository {
	return &PGPhoneRepository{db: db}
}

func (r *PGPhoneRepository) List(ctx context.Context) ([]domain.Phone, error) {
	rows, err := r.db.Query(ctx, `SELECT id_telefono, pasaporte_pasajero, telefono FROM telefonos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	phones := make([]domain.Phone, 0)
	for rows.Next() {
		var p domain.Phone
		if err := rows.Scan(&p.ID, &p.Passport, &p.Number); err != nil {
			return nil, err
		}
		phones = append(phones, p)
	}
	return phones, rows.Err()
}

func (r *PGPhoneRepository) GetByID(ctx context.Context, id int64) (*domain.Phone, error) {
	row := r.db.QueryRow(ctx, `SELECT id_telefono, pasaporte_pasajero, telefono FROM telefonos WHERE id_telefono=$1`, id)
	var p domain.Phone
	if err := row.Scan(&p.ID, &p.Passport, &p.Number); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPhoneRepository) Create(ctx context.Context, p *domain.Phone) error {
	return r.db.QueryRow(ctx, `INSERT INTO telefonos (pasaporte_pasajero, telefono) VALUES ($1, $2) RETURNING id_telefono`,
		p.Passport, p.Number).Scan(&p.ID)
}

func (r *PGPhoneRepository) Update(ctx context.Context, id int64, p *domain.Phone) (*domain.Phone, error) {
	row := r.db.QueryRow(ctx, `UPDATE telefonos SET pasaporte_pasajero=$1, telefono=$2 WHERE id_telefono=$3 RETURNING id_telefono, pasaporte_pasajero, telefono`,
		p.Passport, p.Number, id)
	var updated domain.Phone
	if err := row.Scan(&updated.ID, &updated.Passport, &updated.Number); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGPhoneRepository) Delete(ctx context.Context, id int64) (*domain.Phone, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM telefonos WHERE id_telefono=$1 RETURNING id_telefono, pasaporte_pasajero, telefono`, id)
	var deleted domain.Phone
	if err := row.Scan(&deleted.ID, &deleted.Passport, &deleted.Number); err != nil {
		return nil, err
	}
	return &deleted, nil
}

var _ PhoneRepository = (*PGPhoneRepository)(nil)

package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	GetByPassport(ctx context.Context, passport string) (*domain.Passenger, error)
	Create(ctx context.Context, p *domain.Passenger) error
	Update(ctx context.Context, passport string, p *domain.Passenger) (*domain.Passenger, error)
	Delete(ctx context.Context, passport string) (*domain.Passenger, error)
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

const passengerColumns = `n_pasaporte, nombres, apellidos, fecha_nacimiento, genero, pais`

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+passengerColumns+` FROM pasajeros`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.Passport, &p.Names, &p.Surnames, &p.BirthDate, &p.Gender, &p.Country); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) GetByPassport(ctx context.Context, passport string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM pasajeros WHERE n_pasaporte=$1`, passport)
	var p domain.Passenger
	if err := row.Scan(&p.Passport, &p.Names, &p.Surnames, &p.BirthDate, &p.Gender, &p.Country); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	_, err := r.db.Exec(ctx, `INSERT INTO pasajeros (n_pasaporte, nombres, apellidos, fecha_nacimiento, genero, pais) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.Passport, p.Names, p.Surnames, p.BirthDate, p.Gender, p.Country)
	return err
}

func (r *PGPassengerRepository) Update(ctx context.Context, passport string, p *domain.Passenger) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `UPDATE pasajeros SET n_pasaporte=$1, nombres=$2, apellidos=$3, fecha_nacimiento=$4, genero=$5, pais=$6 WHERE n_pasaporte=$7
		RETURNING `+passengerColumns,
		p.Passport, p.Names, p.Surnames, p.BirthDate, p.Gender, p.Country, passport)
	var updated domain.Passenger
	if err := row.Scan(&updated.Passport, &updated.Names, &updated.Surnames, &updated.BirthDate, &updated.Gender, &updated.Country); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGPassengerRepository) Delete(ctx context.Context, passport string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM pasajeros WHERE n_pasaporte=$1 RETURNING `+passengerColumns, passport)
	var deleted domain.Passenger
	if err := row.Scan(&deleted.Passport, &deleted.Names, &deleted.Surnames, &deleted.BirthDate, &deleted.Gender, &deleted.Country); err != nil {
		return nil, err
	}
	return &deleted, nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)

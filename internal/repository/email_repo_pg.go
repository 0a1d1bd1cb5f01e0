package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmailRepository interface {
	List(ctx context.Context) ([]domain.Email, error)
	GetByID(ctx context.Context, id int64) (*domain.Email, error)
	ListByPassport(ctx context.Context, passport string) ([]domain.Email, error)
	Create(ctx context.Context, e *domain.Email) error
	Update(ctx context.Context, id int64, e *domain.Email) (*domain.Email, error)
	Delete(ctx context.Context, id int64) (*domain.Email, error)
}

type PGEmailRepository struct {
	db *pgxpool.Pool
}

func NewEmailRepository(db *pgxpool.Pool) EmailRepository {
	return &PGEmailRepository{db: db}
}

func (r *PGEmailRepository) List(ctx context.Context) ([]domain.Email, error) {
	rows, err := r.db.Query(ctx, `SELECT id_correo, pasaporte_pasajero, correo FROM correos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmails(rows)
}

func (r *PGEmailRepository) GetByID(ctx context.Context, id int64) (*domain.Email, error) {
	row := r.db.QueryRow(ctx, `SELECT id_correo, pasaporte_pasajero, correo FROM correos WHERE id_correo=$1`, id)
	var e domain.Email
	if err := row.Scan(&e.ID, &e.Passport, &e.Address); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *PGEmailRepository) ListByPassport(ctx context.Context, passport string) ([]domain.Email, error) {
	rows, err := r.db.Query(ctx, `SELECT id_correo, pasaporte_pasajero, correo FROM correos WHERE pasaporte_pasajero=$1`, passport)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmails(rows)
}

func (r *PGEmailRepository) Create(ctx context.Context, e *domain.Email) error {
	return r.db.QueryRow(ctx, `INSERT INTO correos (pasaporte_pasajero, correo) VALUES ($1, $2) RETURNING id_correo`,
		e.Passport, e.Address).Scan(&e.ID)
}

func (r *PGEmailRepository) Update(ctx context.Context, id int64, e *domain.Email) (*domain.Email, error) {
	row := r.db.QueryRow(ctx, `UPDATE correos SET pasaporte_pasajero=$1, correo=$2 WHERE id_correo=$3 RETURNING id_correo, pasaporte_pasajero, correo`,
		e.Passport, e.Address, id)
	var updated domain.Email
	if err := row.Scan(&updated.ID, &updated.Passport, &updated.Address); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGEmailRepository) Delete(ctx context.Context, id int64) (*domain.Email, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM correos WHERE id_correo=$1 RETURNING id_correo, pasaporte_pasajero, correo`, id)
	var deleted domain.Email
	if err := row.Scan(&deleted.ID, &deleted.Passport, &deleted.Address); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func collectEmails(rows pgx.Rows) ([]domain.Email, error) {
	emails := make([]domain.Email, 0)
	for rows.Next() {
		var e domain.Email
		if err := rows.Scan(&e.ID, &e.Passport, &e.Address); err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

var _ EmailRepository = (*PGEmailRepository)(nil)

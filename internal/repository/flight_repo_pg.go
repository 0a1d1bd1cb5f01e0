package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	// List returns flights ordered ascending by date.
	List(ctx context.Context) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	// CreateMany inserts a batch of flights and reports how many rows
	// went in, mirroring the batch-shaped create the API exposes.
	CreateMany(ctx context.Context, flights []domain.Flight) (int64, error)
	Update(ctx context.Context, number string, f *domain.Flight) (*domain.Flight, error)
	Delete(ctx context.Context, number string) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `n_vuelo, codigo_aerolinea, id_avion, codigo_origen, codigo_destino, distancia, fecha, hora_salida, hora_llegada`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM vuelos ORDER BY fecha ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM vuelos WHERE n_vuelo=$1`, number)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) CreateMany(ctx context.Context, flights []domain.Flight) (int64, error) {
	batch := &pgx.Batch{}
	for _, f := range flights {
		batch.Queue(`INSERT INTO vuelos (n_vuelo, codigo_aerolinea, id_avion, codigo_origen, codigo_destino, distancia, fecha, hora_salida, hora_llegada)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			f.Number, f.AirlineCode, f.PlaneID, f.OriginCode, f.DestinationCode, f.Distance, f.Date, f.DepartureTime, f.ArrivalTime)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	var count int64
	for range flights {
		tag, err := results.Exec()
		if err != nil {
			return count, err
		}
		count += tag.RowsAffected()
	}
	return count, nil
}

func (r *PGFlightRepository) Update(ctx context.Context, number string, f *domain.Flight) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `UPDATE vuelos SET n_vuelo=$1, codigo_aerolinea=$2, id_avion=$3, codigo_origen=$4, codigo_destino=$5, distancia=$6, fecha=$7, hora_salida=$8, hora_llegada=$9
		WHERE n_vuelo=$10 RETURNING `+flightColumns,
		f.Number, f.AirlineCode, f.PlaneID, f.OriginCode, f.DestinationCode, f.Distance, f.Date, f.DepartureTime, f.ArrivalTime, number)
	var updated domain.Flight
	if err := scanFlight(row, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, number string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM vuelos WHERE n_vuelo=$1 RETURNING `+flightColumns, number)
	var deleted domain.Flight
	if err := scanFlight(row, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.Number, &f.AirlineCode, &f.PlaneID, &f.OriginCode, &f.DestinationCode, &f.Distance, &f.Date, &f.DepartureTime, &f.ArrivalTime)
}

var _ FlightRepository = (*PGFlightRepository)(nil)

package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/venuecraft/venuesim/internal/models"
)

type VenueRepository struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) *VenueRepository {
	return &VenueRepository{pool: pool}
}

func (r *VenueRepository) BulkCreate(ctx context.Context, venues []*models.Venue) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, venue := range venues {
		inventory, err := json.Marshal(venue.Inventory)
		if err != nil {
			return err
		}

		query := `
            INSERT INTO venues (
                id, name, type, capacity, opening_hour, closing_hour,
                music_volume, lighting_level, entrance_fee, cleanliness,
                atmosphere, service_quality, popularity, customer_satisfaction,
                daily_revenue, weekly_revenue, monthly_revenue,
                total_customers_served, inventory
            ) VALUES (
                $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
                $11, $12, $13, $14, $15, $16, $17, $18, $19
            )
        `

		_, err = tx.Exec(ctx, query,
			venue.ID,
			venue.Name,
			venue.Type,
			venue.Capacity,
			venue.OpeningHour,
			venue.ClosingHour,
			venue.MusicVolume,
			venue.LightingLevel,
			venue.EntranceFee,
			venue.Cleanliness,
			venue.Atmosphere,
			venue.ServiceQuality,
			venue.Popularity,
			venue.CustomerSatisfaction,
			venue.DailyRevenue,
			venue.WeeklyRevenue,
			venue.MonthlyRevenue,
			venue.TotalCustomersServed,
			inventory,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *VenueRepository) Create(ctx context.Context, venue *models.Venue) error {
	inventory, err := json.Marshal(venue.Inventory)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO venues (
            id, name, type, capacity, opening_hour, closing_hour,
            music_volume, lighting_level, entrance_fee, cleanliness,
            atmosphere, service_quality, popularity, customer_satisfaction,
            daily_revenue, weekly_revenue, monthly_revenue,
            total_customers_served, inventory
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
            $11, $12, $13, $14, $15, $16, $17, $18, $19
        )
    `

	_, err = r.pool.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Type,
		venue.Capacity,
		venue.OpeningHour,
		venue.ClosingHour,
		venue.MusicVolume,
		venue.LightingLevel,
		venue.EntranceFee,
		venue.Cleanliness,
		venue.Atmosphere,
		venue.ServiceQuality,
		venue.Popularity,
		venue.CustomerSatisfaction,
		venue.DailyRevenue,
		venue.WeeklyRevenue,
		venue.MonthlyRevenue,
		venue.TotalCustomersServed,
		inventory,
	)
	return err
}

func (r *VenueRepository) GetAll(ctx context.Context) (map[string]*models.Venue, error) {
	query := `
        SELECT
            id, name, type, capacity, opening_hour, closing_hour,
            music_volume, lighting_level, entrance_fee, cleanliness,
            atmosphere, service_quality, popularity, customer_satisfaction,
            daily_revenue, weekly_revenue, monthly_revenue,
            total_customers_served, inventory
        FROM venues
        ORDER BY id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make(map[string]*models.Venue)
	for rows.Next() {
		var inventory []byte
		venue := &models.Venue{}
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Type,
			&venue.Capacity,
			&venue.OpeningHour,
			&venue.ClosingHour,
			&venue.MusicVolume,
			&venue.LightingLevel,
			&venue.EntranceFee,
			&venue.Cleanliness,
			&venue.Atmosphere,
			&venue.ServiceQuality,
			&venue.Popularity,
			&venue.CustomerSatisfaction,
			&venue.DailyRevenue,
			&venue.WeeklyRevenue,
			&venue.MonthlyRevenue,
			&venue.TotalCustomersServed,
			&inventory,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(inventory, &venue.Inventory); err != nil {
			return nil, err
		}
		venues[venue.ID] = venue
	}
	return venues, rows.Err()
}

func (r *VenueRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM venues").Scan(&count)
	return count, err
}

func (r *VenueRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE venues CASCADE")
	return err
}

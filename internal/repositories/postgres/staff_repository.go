package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/venuecraft/venuesim/internal/models"
)

type StaffRepository struct {
	pool *pgxpool.Pool
}

func NewStaffRepository(pool *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{pool: pool}
}

func (r *StaffRepository) BulkCreate(ctx context.Context, staff []*models.Staff) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, member := range staff {
		skills, err := json.Marshal(member.Skills)
		if err != nil {
			return err
		}

		query := `
            INSERT INTO staff (
                id, venue_id, name, role, is_working, skills, friendliness
            ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        `
		_, err = tx.Exec(ctx, query,
			member.ID,
			member.VenueID,
			member.Name,
			member.Role,
			member.IsWorking,
			skills,
			member.Friendliness,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *StaffRepository) Create(ctx context.Context, member *models.Staff) error {
	skills, err := json.Marshal(member.Skills)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO staff (
            id, venue_id, name, role, is_working, skills, friendliness
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err = r.pool.Exec(ctx, query,
		member.ID,
		member.VenueID,
		member.Name,
		member.Role,
		member.IsWorking,
		skills,
		member.Friendliness,
	)
	return err
}

func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.Staff, error) {
	query := `
        SELECT id, venue_id, name, role, is_working, skills, friendliness
        FROM staff
        ORDER BY venue_id, id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaff(rows)
}

func (r *StaffRepository) GetByVenueID(ctx context.Context, venueID string) ([]*models.Staff, error) {
	query := `
        SELECT id, venue_id, name, role, is_working, skills, friendliness
        FROM staff
        WHERE venue_id = $1
        ORDER BY id
    `
	rows, err := r.pool.Query(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaff(rows)
}

func scanStaff(rows pgx.Rows) ([]*models.Staff, error) {
	var staff []*models.Staff
	for rows.Next() {
		var skills []byte
		member := &models.Staff{}
		err := rows.Scan(
			&member.ID,
			&member.VenueID,
			&member.Name,
			&member.Role,
			&member.IsWorking,
			&skills,
			&member.Friendliness,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &member.Skills); err != nil {
			return nil, err
		}
		staff = append(staff, member)
	}
	return staff, rows.Err()
}

func (r *StaffRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM staff").Scan(&count)
	return count, err
}

func (r *StaffRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE staff CASCADE")
	return err
}

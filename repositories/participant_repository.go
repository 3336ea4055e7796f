package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/copaamateur/copa-backend/models"
)

var (
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrParticipantTeamInvalid = errors.New("participant references an unknown team")
)

type ParticipantRepository interface {
	Create(ctx context.Context, p *models.Participant) error
	GetByID(ctx context.Context, id int) (*models.Participant, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Participant, error)
	Update(ctx context.Context, p *models.Participant) error
	Delete(ctx context.Context, id int) error
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

const participantColumns = `id, team_id, name, position, number, birth_date, photo_key, created_at`

func (r *postgresParticipantRepository) scanParticipant(row interface{ Scan(...interface{}) error }) (*models.Participant, error) {
	var p models.Participant
	err := row.Scan(&p.ID, &p.TeamID, &p.Name, &p.Position, &p.Number, &p.BirthDate, &p.PhotoKey, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO participants (team_id, name, position, number, birth_date, photo_key)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		p.TeamID, p.Name, p.Position, p.Number, p.BirthDate, p.PhotoKey,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil && isForeignKeyViolation(err) {
		return fmt.Errorf("%w: team %v", ErrParticipantTeamInvalid, p.TeamID)
	}
	return err
}

func (r *postgresParticipantRepository) GetByID(ctx context.Context, id int) (*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`
	return r.scanParticipant(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresParticipantRepository) ListByTeam(ctx context.Context, teamID int) ([]*models.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE team_id = $1 ORDER BY number ASC NULLS LAST, name ASC`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]*models.Participant, 0)
	for rows.Next() {
		p, scanErr := r.scanParticipant(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *postgresParticipantRepository) Update(ctx context.Context, p *models.Participant) error {
	query := `
		UPDATE participants
		SET team_id = $1, name = $2, position = $3, number = $4, birth_date = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query, p.TeamID, p.Name, p.Position, p.Number, p.BirthDate, p.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

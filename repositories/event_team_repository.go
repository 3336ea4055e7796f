package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/copaamateur/copa-backend/models"
)

var (
	ErrEventTeamNotFound = errors.New("event team not found")
	ErrEventTeamConflict = errors.New("team is already enrolled in this event")
	ErrEventTeamInvalid  = errors.New("event team references an unknown event or team")
)

// EventTeamRepository управляет участием команд в событии и их групповой
// статистикой. Методы принимают SQLExecutor, чтобы оркестратор мог
// объединять их в одну транзакцию.
type EventTeamRepository interface {
	BulkInsert(ctx context.Context, exec SQLExecutor, eventID int, teamIDs []int) error
	UpsertGroups(ctx context.Context, exec SQLExecutor, eventID int, groupByTeam map[int]string) error
	ListByEvent(ctx context.Context, exec SQLExecutor, eventID int) ([]*models.EventTeam, error)
	ListByGroup(ctx context.Context, exec SQLExecutor, eventID int, groupName string) ([]*models.EventTeam, error)
	UpdateStats(ctx context.Context, exec SQLExecutor, et *models.EventTeam) error
	Delete(ctx context.Context, id int) error
}

type postgresEventTeamRepository struct {
	db *sql.DB
}

func NewPostgresEventTeamRepository(db *sql.DB) EventTeamRepository {
	return &postgresEventTeamRepository{db: db}
}

func (r *postgresEventTeamRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const eventTeamColumns = `id, event_id, team_id, group_name, matches_played, wins, draws, losses,
	goals_for, goals_against, goal_difference, yellow_cards, red_cards, points, created_at`

func (r *postgresEventTeamRepository) scanEventTeam(row interface{ Scan(...interface{}) error }) (*models.EventTeam, error) {
	var et models.EventTeam
	err := row.Scan(
		&et.ID, &et.EventID, &et.TeamID, &et.GroupName,
		&et.MatchesPlayed, &et.Wins, &et.Draws, &et.Losses,
		&et.GoalsFor, &et.GoalsAgainst, &et.GoalDifference,
		&et.YellowCards, &et.RedCards, &et.Points, &et.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventTeamNotFound
		}
		return nil, err
	}
	return &et, nil
}

func (r *postgresEventTeamRepository) BulkInsert(ctx context.Context, exec SQLExecutor, eventID int, teamIDs []int) error {
	if len(teamIDs) == 0 {
		return nil
	}
	executor := r.getExecutor(exec)

	stmt, err := executor.PrepareContext(ctx, `
		INSERT INTO event_teams (event_id, team_id)
		VALUES ($1, $2)`)
	if err != nil {
		return fmt.Errorf("BulkInsert failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, teamID := range teamIDs {
		if _, err := stmt.ExecContext(ctx, eventID, teamID); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: team %d", ErrEventTeamConflict, teamID)
			}
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: team %d", ErrEventTeamInvalid, teamID)
			}
			return fmt.Errorf("BulkInsert failed for team %d: %w", teamID, err)
		}
	}
	return nil
}

// UpsertGroups записывает групповые метки жеребьёвки. Повторная жеребьёвка
// перезаписывает метку существующей записи, не создавая дубликата.
func (r *postgresEventTeamRepository) UpsertGroups(ctx context.Context, exec SQLExecutor, eventID int, groupByTeam map[int]string) error {
	executor := r.getExecutor(exec)

	stmt, err := executor.PrepareContext(ctx, `
		INSERT INTO event_teams (event_id, team_id, group_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, team_id) DO UPDATE SET group_name = EXCLUDED.group_name`)
	if err != nil {
		return fmt.Errorf("UpsertGroups failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for teamID, groupName := range groupByTeam {
		if _, err := stmt.ExecContext(ctx, eventID, teamID, groupName); err != nil {
			return fmt.Errorf("UpsertGroups failed for team %d: %w", teamID, err)
		}
	}
	return nil
}

func (r *postgresEventTeamRepository) ListByEvent(ctx context.Context, exec SQLExecutor, eventID int) ([]*models.EventTeam, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + eventTeamColumns + ` FROM event_teams WHERE event_id = $1 ORDER BY group_name ASC, points DESC`
	return r.list(ctx, executor, query, eventID)
}

func (r *postgresEventTeamRepository) ListByGroup(ctx context.Context, exec SQLExecutor, eventID int, groupName string) ([]*models.EventTeam, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + eventTeamColumns + ` FROM event_teams WHERE event_id = $1 AND group_name = $2`
	return r.list(ctx, executor, query, eventID, groupName)
}

func (r *postgresEventTeamRepository) list(ctx context.Context, executor SQLExecutor, query string, args ...interface{}) ([]*models.EventTeam, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	eventTeams := make([]*models.EventTeam, 0)
	for rows.Next() {
		et, scanErr := r.scanEventTeam(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		eventTeams = append(eventTeams, et)
	}
	return eventTeams, rows.Err()
}

func (r *postgresEventTeamRepository) UpdateStats(ctx context.Context, exec SQLExecutor, et *models.EventTeam) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE event_teams SET
			matches_played = $1, wins = $2, draws = $3, losses = $4,
			goals_for = $5, goals_against = $6, goal_difference = $7,
			yellow_cards = $8, red_cards = $9, points = $10
		WHERE id = $11`

	result, err := executor.ExecContext(ctx, query,
		et.MatchesPlayed, et.Wins, et.Draws, et.Losses,
		et.GoalsFor, et.GoalsAgainst, et.GoalDifference,
		et.YellowCards, et.RedCards, et.Points,
		et.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventTeamNotFound)
}

func (r *postgresEventTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM event_teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrEventTeamNotFound)
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/copaamateur/copa-backend/models"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrMatchInvalid  = errors.New("match references an unknown event, team or referee")
)

// MatchFilter ограничивает выборку ListByEvent.
type MatchFilter struct {
	Phase        *models.MatchPhase
	GroupName    *string
	FinishedOnly bool
}

type MatchRepository interface {
	CreateBatch(ctx context.Context, exec SQLExecutor, matches []*models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByEvent(ctx context.Context, exec SQLExecutor, eventID int, filter MatchFilter) ([]*models.Match, error)
	FindHeadToHead(ctx context.Context, eventID, teamA, teamB int) (*models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	UpdateResult(ctx context.Context, exec SQLExecutor, match *models.Match) error
	UpdateReferee(ctx context.Context, id int, refereeUserID *int) error
	DeleteByEvent(ctx context.Context, exec SQLExecutor, eventID int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `id, event_id, home_team_id, away_team_id, phase, group_name, match_number,
	home_score, away_score, home_yellow_cards, home_red_cards, away_yellow_cards, away_red_cards,
	referee_user_id, match_date, status, created_at`

func (r *postgresMatchRepository) scanMatch(row interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var m models.Match
	err := row.Scan(
		&m.ID, &m.EventID, &m.HomeTeamID, &m.AwayTeamID, &m.Phase, &m.GroupName, &m.MatchNumber,
		&m.HomeScore, &m.AwayScore, &m.HomeYellowCards, &m.HomeRedCards, &m.AwayYellowCards, &m.AwayRedCards,
		&m.RefereeUserID, &m.MatchDate, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresMatchRepository) CreateBatch(ctx context.Context, exec SQLExecutor, matches []*models.Match) error {
	if len(matches) == 0 {
		return nil
	}
	executor := r.getExecutor(exec)

	stmt, err := executor.PrepareContext(ctx, `
		INSERT INTO matches
			(event_id, home_team_id, away_team_id, phase, group_name, match_number, match_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`)
	if err != nil {
		return fmt.Errorf("CreateBatch failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, m := range matches {
		err := stmt.QueryRowContext(ctx,
			m.EventID, m.HomeTeamID, m.AwayTeamID, m.Phase, m.GroupName, m.MatchNumber, m.MatchDate, m.Status,
		).Scan(&m.ID, &m.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: match %d-%d", ErrMatchInvalid, m.HomeTeamID, m.AwayTeamID)
			}
			return fmt.Errorf("CreateBatch failed for match %d-%d: %w", m.HomeTeamID, m.AwayTeamID, err)
		}
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return r.scanMatch(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresMatchRepository) ListByEvent(ctx context.Context, exec SQLExecutor, eventID int, filter MatchFilter) ([]*models.Match, error) {
	executor := r.getExecutor(exec)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + matchColumns + ` FROM matches WHERE event_id = $1`)

	args := []interface{}{eventID}
	placeholderIndex := 2

	if filter.Phase != nil {
		queryBuilder.WriteString(" AND phase = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.Phase)
		placeholderIndex++
	}
	if filter.GroupName != nil {
		queryBuilder.WriteString(" AND group_name = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *filter.GroupName)
		placeholderIndex++
	}
	if filter.FinishedOnly {
		queryBuilder.WriteString(" AND home_score IS NOT NULL AND away_score IS NOT NULL")
	}

	// Фазы сортируются хронологически, а не по алфавиту ('final' в
	// алфавите стоит раньше 'group'). Порядок веток повторяет
	// models.MatchPhase.Rank.
	queryBuilder.WriteString(` ORDER BY CASE phase
		WHEN 'group' THEN 1
		WHEN 'round_of_16' THEN 2
		WHEN 'quarter_final' THEN 3
		WHEN 'semi_final' THEN 4
		WHEN 'final' THEN 5
		ELSE 6 END ASC, match_number ASC`)

	rows, err := executor.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		m, scanErr := r.scanMatch(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// FindHeadToHead возвращает сыгранный групповой матч между двумя командами,
// либо ErrMatchNotFound, если такого нет.
func (r *postgresMatchRepository) FindHeadToHead(ctx context.Context, eventID, teamA, teamB int) (*models.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE event_id = $1
		  AND phase = 'group'
		  AND home_score IS NOT NULL AND away_score IS NOT NULL
		  AND ((home_team_id = $2 AND away_team_id = $3) OR (home_team_id = $3 AND away_team_id = $2))
		LIMIT 1`

	return r.scanMatch(r.db.QueryRowContext(ctx, query, eventID, teamA, teamB))
}

// Update перезаписывает состав и расписание матча. Счёт и карточки
// правятся отдельно через UpdateResult.
func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches SET
			home_team_id = $1, away_team_id = $2,
			phase = $3, group_name = $4, match_number = $5, match_date = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		match.HomeTeamID, match.AwayTeamID,
		match.Phase, match.GroupName, match.MatchNumber, match.MatchDate,
		match.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: match %d-%d", ErrMatchInvalid, match.HomeTeamID, match.AwayTeamID)
		}
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE matches SET
			home_score = $1, away_score = $2,
			home_yellow_cards = $3, home_red_cards = $4,
			away_yellow_cards = $5, away_red_cards = $6,
			status = $7
		WHERE id = $8`

	result, err := executor.ExecContext(ctx, query,
		match.HomeScore, match.AwayScore,
		match.HomeYellowCards, match.HomeRedCards,
		match.AwayYellowCards, match.AwayRedCards,
		match.Status, match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateReferee(ctx context.Context, id int, refereeUserID *int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE matches SET referee_user_id = $1 WHERE id = $2`, refereeUserID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrMatchInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteByEvent(ctx context.Context, exec SQLExecutor, eventID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM matches WHERE event_id = $1`, eventID)
	return err
}

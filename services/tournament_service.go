package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/copaamateur/copa-backend/engine"
	"github.com/copaamateur/copa-backend/models"
	"github.com/copaamateur/copa-backend/repositories"
	"golang.org/x/sync/errgroup"
)

// MatchResultInput — счёт и карточки одного матча.
type MatchResultInput struct {
	HomeScore       int `json:"home_score"`
	AwayScore       int `json:"away_score"`
	HomeYellowCards int `json:"home_yellow_cards"`
	HomeRedCards    int `json:"home_red_cards"`
	AwayYellowCards int `json:"away_yellow_cards"`
	AwayRedCards    int `json:"away_red_cards"`
}

// CreateMatchInput — параметры матча, создаваемого администратором
// вручную. Так заводятся четвертьфиналы, полуфиналы и финал: победителей
// 1/8 определяет администратор по сыгранным результатам.
type CreateMatchInput struct {
	HomeTeamID  int               `json:"home_team_id"`
	AwayTeamID  int               `json:"away_team_id"`
	Phase       models.MatchPhase `json:"phase"`
	GroupName   *string           `json:"group_name,omitempty"`
	MatchNumber *int              `json:"match_number,omitempty"`
	MatchDate   *time.Time        `json:"match_date,omitempty"`
}

// UpdateMatchInput — частичная правка матча; nil-поля не трогаются.
type UpdateMatchInput struct {
	HomeTeamID  *int               `json:"home_team_id,omitempty"`
	AwayTeamID  *int               `json:"away_team_id,omitempty"`
	Phase       *models.MatchPhase `json:"phase,omitempty"`
	GroupName   *string            `json:"group_name,omitempty"`
	MatchNumber *int               `json:"match_number,omitempty"`
	MatchDate   *time.Time         `json:"match_date,omitempty"`
}

// GroupStanding — отсортированная таблица одной группы.
type GroupStanding struct {
	GroupName string              `json:"group_name"`
	Teams     []*models.EventTeam `json:"teams"`
}

// TournamentService — оркестратор турнирного движка: зачисление команд,
// жеребьёвка, запись результатов, пересчёт таблиц и генерация плей-офф.
type TournamentService interface {
	AddTeams(ctx context.Context, eventID int, teamIDs []int) error
	RemoveTeam(ctx context.Context, eventTeamID int) error
	ListEventTeams(ctx context.Context, eventID int) ([]*models.EventTeam, error)
	GenerateDraw(ctx context.Context, eventID int) error
	CreateMatch(ctx context.Context, eventID int, input CreateMatchInput) (*models.Match, error)
	UpdateMatch(ctx context.Context, matchID int, input UpdateMatchInput) (*models.Match, error)
	ListMatches(ctx context.Context, eventID int, phase *models.MatchPhase) ([]*models.Match, error)
	RecordResult(ctx context.Context, matchID int, recordedBy *models.User, input MatchResultInput) error
	RecomputeStandings(ctx context.Context, eventID int) error
	GroupStandings(ctx context.Context, eventID int) ([]GroupStanding, error)
	GenerateKnockout(ctx context.Context, eventID int) error
	AssignReferee(ctx context.Context, matchID int, refereeUserID int) error
	UnassignReferee(ctx context.Context, matchID int) error
	ExportStandingsCSV(ctx context.Context, eventID int, w io.Writer) error
}

type tournamentService struct {
	tx            repositories.Transactor
	eventRepo     repositories.EventRepository
	eventTeamRepo repositories.EventTeamRepository
	matchRepo     repositories.MatchRepository
	userRepo      repositories.UserRepository
	format        engine.Format
	logger        *slog.Logger

	// rng защищён мьютексом: *rand.Rand не потокобезопасен.
	rngMu sync.Mutex
	rng   *rand.Rand

	// drawMu сериализует жеребьёвку: две параллельные жеребьёвки одного
	// события могли бы обе удалить и заново вставить матчи.
	drawMu sync.Mutex
}

func NewTournamentService(
	tx repositories.Transactor,
	eventRepo repositories.EventRepository,
	eventTeamRepo repositories.EventTeamRepository,
	matchRepo repositories.MatchRepository,
	userRepo repositories.UserRepository,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tx:            tx,
		eventRepo:     eventRepo,
		eventTeamRepo: eventTeamRepo,
		matchRepo:     matchRepo,
		userRepo:      userRepo,
		format:        engine.Copa24,
		logger:        logger,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *tournamentService) AddTeams(ctx context.Context, eventID int, teamIDs []int) error {
	if len(teamIDs) == 0 {
		return fmt.Errorf("%w: no team ids", ErrValidationFailed)
	}
	seen := make(map[int]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: team %d", ErrDuplicateTeams, id)
		}
		seen[id] = struct{}{}
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to load event %d: %w", eventID, err)
	}

	if err := s.eventTeamRepo.BulkInsert(ctx, nil, eventID, teamIDs); err != nil {
		if errors.Is(err, repositories.ErrEventTeamConflict) {
			return fmt.Errorf("%w: %v", ErrTeamAlreadyInEvent, err)
		}
		return fmt.Errorf("failed to enroll teams into event %d: %w", eventID, err)
	}
	return nil
}

func (s *tournamentService) RemoveTeam(ctx context.Context, eventTeamID int) error {
	if err := s.eventTeamRepo.Delete(ctx, eventTeamID); err != nil {
		if errors.Is(err, repositories.ErrEventTeamNotFound) {
			return ErrEventTeamNotFound
		}
		return fmt.Errorf("failed to remove event team %d: %w", eventTeamID, err)
	}
	return nil
}

func (s *tournamentService) ListEventTeams(ctx context.Context, eventID int) ([]*models.EventTeam, error) {
	eventTeams, err := s.eventTeamRepo.ListByEvent(ctx, nil, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for event %d: %w", eventID, err)
	}
	return eventTeams, nil
}

// GenerateDraw жеребьёвка: перемешивает 24 зачисленные команды, назначает
// группы A–F и создаёт 36 матчей группового этапа. Старые матчи события
// удаляются; записи event_teams остаются, их статистика обнуляется
// пересчётом. Удаление и вставка выполняются в одной транзакции.
func (s *tournamentService) GenerateDraw(ctx context.Context, eventID int) error {
	s.drawMu.Lock()
	defer s.drawMu.Unlock()

	eventTeams, err := s.eventTeamRepo.ListByEvent(ctx, nil, eventID)
	if err != nil {
		return fmt.Errorf("failed to list teams for event %d: %w", eventID, err)
	}
	if len(eventTeams) != s.format.TeamCount {
		return fmt.Errorf("%w: event %d has %d teams, format %s requires %d",
			ErrWrongTeamCount, eventID, len(eventTeams), s.format.Name, s.format.TeamCount)
	}

	teamIDs := make([]int, 0, len(eventTeams))
	for _, et := range eventTeams {
		teamIDs = append(teamIDs, et.TeamID)
	}

	s.rngMu.Lock()
	draw, err := engine.GenerateDraw(s.format, teamIDs, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrWrongTeamCount):
			return fmt.Errorf("%w: %v", ErrWrongTeamCount, err)
		case errors.Is(err, engine.ErrDuplicateTeam):
			return fmt.Errorf("%w: %v", ErrDuplicateTeams, err)
		}
		return fmt.Errorf("draw generation for event %d: %w", eventID, err)
	}

	// Удаление старых матчей и вставка новых атомарны: оборвавшаяся
	// посередине жеребьёвка не должна оставить событие без матчей.
	matches := fixturesToMatches(eventID, draw.Fixtures)
	err = s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.DeleteByEvent(ctx, exec, eventID); err != nil {
			return fmt.Errorf("failed to delete old matches for event %d: %w", eventID, err)
		}
		if err := s.eventTeamRepo.UpsertGroups(ctx, exec, eventID, draw.GroupByTeam); err != nil {
			return fmt.Errorf("failed to persist group assignment for event %d: %w", eventID, err)
		}
		if err := s.matchRepo.CreateBatch(ctx, exec, matches); err != nil {
			return fmt.Errorf("failed to insert fixtures for event %d: %w", eventID, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("draw transaction for event %d: %w", eventID, err)
	}

	// Жеребьёвка стёрла все результаты — таблицы должны обнулиться.
	if err := s.RecomputeStandings(ctx, eventID); err != nil {
		return fmt.Errorf("draw saved, but standings reset failed for event %d: %w", eventID, err)
	}

	s.logger.Info("draw generated",
		slog.Int("event_id", eventID),
		slog.Int("fixtures", len(matches)))
	return nil
}

func fixturesToMatches(eventID int, fixtures []engine.Fixture) []*models.Match {
	matches := make([]*models.Match, 0, len(fixtures))
	for _, f := range fixtures {
		matchNumber := f.MatchNumber
		matches = append(matches, &models.Match{
			EventID:     eventID,
			HomeTeamID:  f.HomeTeamID,
			AwayTeamID:  f.AwayTeamID,
			Phase:       f.Phase,
			GroupName:   f.GroupName,
			MatchNumber: &matchNumber,
			Status:      models.StatusScheduled,
		})
	}
	return matches
}

// CreateMatch создаёт матч вручную. Жеребьёвка и генерация 1/8 покрывают
// групповой этап и round_of_16; последующие стадии сетки администратор
// заводит этим методом, сверяясь с результатами предыдущей.
func (s *tournamentService) CreateMatch(ctx context.Context, eventID int, input CreateMatchInput) (*models.Match, error) {
	if !input.Phase.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhase, input.Phase)
	}
	if input.HomeTeamID == input.AwayTeamID {
		return nil, fmt.Errorf("%w: team %d", ErrSameTeam, input.HomeTeamID)
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event %d: %w", eventID, err)
	}

	match := &models.Match{
		EventID:     eventID,
		HomeTeamID:  input.HomeTeamID,
		AwayTeamID:  input.AwayTeamID,
		Phase:       input.Phase,
		GroupName:   input.GroupName,
		MatchNumber: input.MatchNumber,
		MatchDate:   input.MatchDate,
		Status:      models.StatusScheduled,
	}
	if err := s.matchRepo.CreateBatch(ctx, nil, []*models.Match{match}); err != nil {
		if errors.Is(err, repositories.ErrMatchInvalid) {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("failed to create match for event %d: %w", eventID, err)
	}

	s.logger.Info("match created",
		slog.Int("match_id", match.ID),
		slog.Int("event_id", eventID),
		slog.String("phase", string(match.Phase)))
	return match, nil
}

// UpdateMatch правит состав и расписание матча. После правки таблицы
// пересчитываются: перенос сыгранного группового матча на другие команды
// меняет их.
func (s *tournamentService) UpdateMatch(ctx context.Context, matchID int, input UpdateMatchInput) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %d: %w", matchID, err)
	}

	if input.HomeTeamID != nil {
		match.HomeTeamID = *input.HomeTeamID
	}
	if input.AwayTeamID != nil {
		match.AwayTeamID = *input.AwayTeamID
	}
	if input.Phase != nil {
		match.Phase = *input.Phase
	}
	if input.GroupName != nil {
		match.GroupName = input.GroupName
	}
	if input.MatchNumber != nil {
		match.MatchNumber = input.MatchNumber
	}
	if input.MatchDate != nil {
		match.MatchDate = input.MatchDate
	}

	if !match.Phase.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhase, match.Phase)
	}
	if match.HomeTeamID == match.AwayTeamID {
		return nil, fmt.Errorf("%w: team %d", ErrSameTeam, match.HomeTeamID)
	}

	if err := s.matchRepo.Update(ctx, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchNotFound):
			return nil, ErrMatchNotFound
		case errors.Is(err, repositories.ErrMatchInvalid):
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("failed to update match %d: %w", matchID, err)
	}

	if err := s.RecomputeStandings(ctx, match.EventID); err != nil {
		return nil, fmt.Errorf("match saved, but standings recompute failed for event %d: %w", match.EventID, err)
	}
	return match, nil
}

func (s *tournamentService) ListMatches(ctx context.Context, eventID int, phase *models.MatchPhase) ([]*models.Match, error) {
	matches, err := s.matchRepo.ListByEvent(ctx, nil, eventID, repositories.MatchFilter{Phase: phase})
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for event %d: %w", eventID, err)
	}
	return matches, nil
}

// RecordResult записывает счёт и карточки матча, атомарно переводя его в
// статус finished (ненулевые счёта и статус не расходятся), после чего
// пересчитывает таблицы события. Судья может записывать результат только
// назначенного ему матча; администратор — любого.
func (s *tournamentService) RecordResult(ctx context.Context, matchID int, recordedBy *models.User, input MatchResultInput) error {
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return ErrInvalidScore
	}
	if input.HomeYellowCards < 0 || input.HomeRedCards < 0 || input.AwayYellowCards < 0 || input.AwayRedCards < 0 {
		return ErrInvalidCards
	}

	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to load match %d: %w", matchID, err)
	}

	if recordedBy != nil && recordedBy.Role == models.RoleReferee {
		if match.RefereeUserID == nil || *match.RefereeUserID != recordedBy.ID {
			return ErrMatchNotAssignedToYou
		}
	}

	homeScore, awayScore := input.HomeScore, input.AwayScore
	match.HomeScore = &homeScore
	match.AwayScore = &awayScore
	match.HomeYellowCards = input.HomeYellowCards
	match.HomeRedCards = input.HomeRedCards
	match.AwayYellowCards = input.AwayYellowCards
	match.AwayRedCards = input.AwayRedCards
	match.Status = models.StatusFinished

	if err := s.matchRepo.UpdateResult(ctx, nil, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to update match %d: %w", matchID, err)
	}

	// Полный пересчёт после каждого результата: правки задним числом
	// отражаются корректно, а сам пересчёт идемпотентен.
	if err := s.RecomputeStandings(ctx, match.EventID); err != nil {
		return fmt.Errorf("result saved, but standings recompute failed for event %d: %w", match.EventID, err)
	}

	s.logger.Info("match result recorded",
		slog.Int("match_id", matchID),
		slog.Int("event_id", match.EventID),
		slog.String("phase", string(match.Phase)))
	return nil
}

// RecomputeStandings пересчитывает статистику всех команд события с нуля
// из сыгранных групповых матчей и сохраняет её.
func (s *tournamentService) RecomputeStandings(ctx context.Context, eventID int) error {
	phase := models.PhaseGroup
	matches, err := s.matchRepo.ListByEvent(ctx, nil, eventID, repositories.MatchFilter{
		Phase:        &phase,
		FinishedOnly: true,
	})
	if err != nil {
		return fmt.Errorf("failed to list finished group matches for event %d: %w", eventID, err)
	}

	eventTeams, err := s.eventTeamRepo.ListByEvent(ctx, nil, eventID)
	if err != nil {
		return fmt.Errorf("failed to list teams for event %d: %w", eventID, err)
	}
	if len(eventTeams) == 0 {
		return nil
	}

	teamIDs := make([]int, 0, len(eventTeams))
	for _, et := range eventTeams {
		teamIDs = append(teamIDs, et.TeamID)
	}

	stats := engine.ComputeStandings(matches, teamIDs)

	// Обновления независимы по строкам, выполняем их параллельно.
	g, gCtx := errgroup.WithContext(ctx)
	for _, et := range eventTeams {
		et := et
		st := stats[et.TeamID]
		if st == nil {
			continue
		}
		g.Go(func() error {
			et.MatchesPlayed = st.MatchesPlayed
			et.Wins = st.Wins
			et.Draws = st.Draws
			et.Losses = st.Losses
			et.GoalsFor = st.GoalsFor
			et.GoalsAgainst = st.GoalsAgainst
			et.GoalDifference = st.GoalDifference
			et.YellowCards = st.YellowCards
			et.RedCards = st.RedCards
			et.Points = st.Points
			if err := s.eventTeamRepo.UpdateStats(gCtx, nil, et); err != nil {
				return fmt.Errorf("failed to persist stats for team %d: %w", et.TeamID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("standings recompute for event %d: %w", eventID, err)
	}
	return nil
}

// headToHead возвращает исход очного группового матча двух команд для
// тай-брейка: +1 победа teamA, -1 победа teamB, 0 — ничья или матча нет.
func (s *tournamentService) headToHead(eventID int) engine.HeadToHeadFunc {
	return func(ctx context.Context, teamA, teamB int) (int, error) {
		match, err := s.matchRepo.FindHeadToHead(ctx, eventID, teamA, teamB)
		if err != nil {
			if errors.Is(err, repositories.ErrMatchNotFound) {
				return 0, nil
			}
			return 0, err
		}

		aGoals, bGoals := *match.HomeScore, *match.AwayScore
		if match.HomeTeamID != teamA {
			aGoals, bGoals = bGoals, aGoals
		}
		switch {
		case aGoals > bGoals:
			return 1, nil
		case aGoals < bGoals:
			return -1, nil
		default:
			return 0, nil
		}
	}
}

func (s *tournamentService) rankedGroups(ctx context.Context, eventID int) (map[string][]*models.EventTeam, error) {
	eventTeams, err := s.eventTeamRepo.ListByEvent(ctx, nil, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for event %d: %w", eventID, err)
	}

	byGroup := make(map[string][]*models.EventTeam)
	for _, et := range eventTeams {
		if et.GroupName == nil {
			continue
		}
		byGroup[*et.GroupName] = append(byGroup[*et.GroupName], et)
	}

	h2h := s.headToHead(eventID)
	ranked := make(map[string][]*models.EventTeam, len(byGroup))
	for label, group := range byGroup {
		rows := make([]*engine.TeamStats, 0, len(group))
		byTeam := make(map[int]*models.EventTeam, len(group))
		for _, et := range group {
			byTeam[et.TeamID] = et
			rows = append(rows, statsFromEventTeam(et))
		}

		orderedRows, err := engine.RankTeams(ctx, rows, h2h)
		if err != nil {
			return nil, fmt.Errorf("ranking group %s of event %d: %w", label, eventID, err)
		}

		ordered := make([]*models.EventTeam, 0, len(orderedRows))
		for _, row := range orderedRows {
			ordered = append(ordered, byTeam[row.TeamID])
		}
		ranked[label] = ordered
	}
	return ranked, nil
}

func statsFromEventTeam(et *models.EventTeam) *engine.TeamStats {
	return &engine.TeamStats{
		TeamID:         et.TeamID,
		MatchesPlayed:  et.MatchesPlayed,
		Wins:           et.Wins,
		Draws:          et.Draws,
		Losses:         et.Losses,
		GoalsFor:       et.GoalsFor,
		GoalsAgainst:   et.GoalsAgainst,
		GoalDifference: et.GoalDifference,
		YellowCards:    et.YellowCards,
		RedCards:       et.RedCards,
		Points:         et.Points,
	}
}

// GroupStandings возвращает таблицы всех групп, отсортированные по
// правилам ранжирования, в порядке меток групп.
func (s *tournamentService) GroupStandings(ctx context.Context, eventID int) ([]GroupStanding, error) {
	ranked, err := s.rankedGroups(ctx, eventID)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(ranked))
	for label := range ranked {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	standings := make([]GroupStanding, 0, len(labels))
	for _, label := range labels {
		standings = append(standings, GroupStanding{GroupName: label, Teams: ranked[label]})
	}
	return standings, nil
}

// GenerateKnockout формирует 1/8 финала из первых двух команд каждой
// группы по фиксированной таблице пар формата.
func (s *tournamentService) GenerateKnockout(ctx context.Context, eventID int) error {
	ranked, err := s.rankedGroups(ctx, eventID)
	if err != nil {
		return err
	}

	standings := make(map[string][]*engine.TeamStats, len(ranked))
	for label, group := range ranked {
		rows := make([]*engine.TeamStats, 0, len(group))
		for _, et := range group {
			rows = append(rows, statsFromEventTeam(et))
		}
		standings[label] = rows
	}

	fixtures, err := engine.GenerateKnockout(s.format, standings)
	if err != nil {
		if errors.Is(err, engine.ErrIncompleteStandings) {
			return fmt.Errorf("%w: %v", ErrIncompleteStandings, err)
		}
		return fmt.Errorf("knockout generation for event %d: %w", eventID, err)
	}

	matches := fixturesToMatches(eventID, fixtures)
	if err := s.matchRepo.CreateBatch(ctx, nil, matches); err != nil {
		return fmt.Errorf("failed to insert knockout fixtures for event %d: %w", eventID, err)
	}

	s.logger.Info("knockout phase generated",
		slog.Int("event_id", eventID),
		slog.Int("fixtures", len(matches)))
	return nil
}

func (s *tournamentService) AssignReferee(ctx context.Context, matchID int, refereeUserID int) error {
	user, err := s.userRepo.GetByID(ctx, refereeUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user %d: %w", refereeUserID, err)
	}
	if user.Role != models.RoleReferee && user.Role != models.RoleAdmin {
		return fmt.Errorf("%w: user %d is not a referee", ErrInvalidRole, refereeUserID)
	}

	if err := s.matchRepo.UpdateReferee(ctx, matchID, &refereeUserID); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to assign referee to match %d: %w", matchID, err)
	}
	return nil
}

func (s *tournamentService) UnassignReferee(ctx context.Context, matchID int) error {
	if err := s.matchRepo.UpdateReferee(ctx, matchID, nil); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to unassign referee from match %d: %w", matchID, err)
	}
	return nil
}

// ExportStandingsCSV выгружает таблицы всех групп одним CSV-файлом.
func (s *tournamentService) ExportStandingsCSV(ctx context.Context, eventID int, w io.Writer) error {
	standings, err := s.GroupStandings(ctx, eventID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	header := []string{"group", "position", "team_id", "played", "wins", "draws", "losses",
		"goals_for", "goals_against", "goal_difference", "yellow_cards", "red_cards", "points"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, gs := range standings {
		for pos, et := range gs.Teams {
			record := []string{
				gs.GroupName,
				strconv.Itoa(pos + 1),
				strconv.Itoa(et.TeamID),
				strconv.Itoa(et.MatchesPlayed),
				strconv.Itoa(et.Wins),
				strconv.Itoa(et.Draws),
				strconv.Itoa(et.Losses),
				strconv.Itoa(et.GoalsFor),
				strconv.Itoa(et.GoalsAgainst),
				strconv.Itoa(et.GoalDifference),
				strconv.Itoa(et.YellowCards),
				strconv.Itoa(et.RedCards),
				strconv.Itoa(et.Points),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

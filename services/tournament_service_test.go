package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copaamateur/copa-backend/models"
	"github.com/copaamateur/copa-backend/repositories"
)

// --- in-memory fakes ---

type fakeTransactor struct {
	calls int
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	t.calls++
	return fn(nil)
}

type fakeEventRepo struct {
	events map[int]*models.Event
}

func newFakeEventRepo(ids ...int) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[int]*models.Event)}
	for _, id := range ids {
		r.events[id] = &models.Event{ID: id, Title: fmt.Sprintf("event %d", id)}
	}
	return r
}

func (r *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id int) (*models.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	return event, nil
}

func (r *fakeEventRepo) List(ctx context.Context) ([]*models.Event, error) { return nil, nil }
func (r *fakeEventRepo) Update(ctx context.Context, event *models.Event) error {
	return nil
}
func (r *fakeEventRepo) UpdatePosterKey(ctx context.Context, id int, posterKey *string) error {
	return nil
}
func (r *fakeEventRepo) Delete(ctx context.Context, id int) error { return nil }

type fakeEventTeamRepo struct {
	rows   []*models.EventTeam
	nextID int
}

func (r *fakeEventTeamRepo) BulkInsert(ctx context.Context, exec repositories.SQLExecutor, eventID int, teamIDs []int) error {
	for _, teamID := range teamIDs {
		for _, et := range r.rows {
			if et.EventID == eventID && et.TeamID == teamID {
				return repositories.ErrEventTeamConflict
			}
		}
	}
	for _, teamID := range teamIDs {
		r.nextID++
		r.rows = append(r.rows, &models.EventTeam{ID: r.nextID, EventID: eventID, TeamID: teamID})
	}
	return nil
}

func (r *fakeEventTeamRepo) UpsertGroups(ctx context.Context, exec repositories.SQLExecutor, eventID int, groupByTeam map[int]string) error {
	for _, et := range r.rows {
		if et.EventID != eventID {
			continue
		}
		if group, ok := groupByTeam[et.TeamID]; ok {
			g := group
			et.GroupName = &g
		}
	}
	return nil
}

func (r *fakeEventTeamRepo) ListByEvent(ctx context.Context, exec repositories.SQLExecutor, eventID int) ([]*models.EventTeam, error) {
	var out []*models.EventTeam
	for _, et := range r.rows {
		if et.EventID == eventID {
			out = append(out, et)
		}
	}
	return out, nil
}

func (r *fakeEventTeamRepo) ListByGroup(ctx context.Context, exec repositories.SQLExecutor, eventID int, groupName string) ([]*models.EventTeam, error) {
	var out []*models.EventTeam
	for _, et := range r.rows {
		if et.EventID == eventID && et.GroupName != nil && *et.GroupName == groupName {
			out = append(out, et)
		}
	}
	return out, nil
}

func (r *fakeEventTeamRepo) UpdateStats(ctx context.Context, exec repositories.SQLExecutor, updated *models.EventTeam) error {
	for i, et := range r.rows {
		if et.ID == updated.ID {
			r.rows[i] = updated
			return nil
		}
	}
	return repositories.ErrEventTeamNotFound
}

func (r *fakeEventTeamRepo) Delete(ctx context.Context, id int) error {
	for i, et := range r.rows {
		if et.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrEventTeamNotFound
}

type fakeMatchRepo struct {
	matches []*models.Match
	nextID  int
}

func (r *fakeMatchRepo) CreateBatch(ctx context.Context, exec repositories.SQLExecutor, matches []*models.Match) error {
	for _, m := range matches {
		r.nextID++
		m.ID = r.nextID
		r.matches = append(r.matches, m)
	}
	return nil
}

func (r *fakeMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	for _, m := range r.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) ListByEvent(ctx context.Context, exec repositories.SQLExecutor, eventID int, filter repositories.MatchFilter) ([]*models.Match, error) {
	var out []*models.Match
	for _, m := range r.matches {
		if m.EventID != eventID {
			continue
		}
		if filter.Phase != nil && m.Phase != *filter.Phase {
			continue
		}
		if filter.GroupName != nil && (m.GroupName == nil || *m.GroupName != *filter.GroupName) {
			continue
		}
		if filter.FinishedOnly && !m.Finished() {
			continue
		}
		out = append(out, m)
	}
	// Как и в SQL: фазы в хронологическом порядке, внутри — по номеру.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Phase != out[j].Phase {
			return out[i].Phase.Rank() < out[j].Phase.Rank()
		}
		ni, nj := 0, 0
		if out[i].MatchNumber != nil {
			ni = *out[i].MatchNumber
		}
		if out[j].MatchNumber != nil {
			nj = *out[j].MatchNumber
		}
		return ni < nj
	})
	return out, nil
}

func (r *fakeMatchRepo) FindHeadToHead(ctx context.Context, eventID, teamA, teamB int) (*models.Match, error) {
	for _, m := range r.matches {
		if m.EventID != eventID || m.Phase != models.PhaseGroup || !m.Finished() {
			continue
		}
		if (m.HomeTeamID == teamA && m.AwayTeamID == teamB) || (m.HomeTeamID == teamB && m.AwayTeamID == teamA) {
			return m, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) Update(ctx context.Context, match *models.Match) error {
	for i, m := range r.matches {
		if m.ID == match.ID {
			r.matches[i] = match
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) UpdateResult(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	for i, m := range r.matches {
		if m.ID == match.ID {
			r.matches[i] = match
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) UpdateReferee(ctx context.Context, id int, refereeUserID *int) error {
	for _, m := range r.matches {
		if m.ID == id {
			m.RefereeUserID = refereeUserID
			return nil
		}
	}
	return repositories.ErrMatchNotFound
}

func (r *fakeMatchRepo) DeleteByEvent(ctx context.Context, exec repositories.SQLExecutor, eventID int) error {
	kept := r.matches[:0]
	for _, m := range r.matches {
		if m.EventID != eventID {
			kept = append(kept, m)
		}
	}
	r.matches = kept
	return nil
}

type fakeUserRepo struct {
	users map[int]*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role models.UserRole) ([]*models.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id int, role models.UserRole) error {
	return nil
}

type fixture struct {
	tx         *fakeTransactor
	events     *fakeEventRepo
	eventTeams *fakeEventTeamRepo
	matches    *fakeMatchRepo
	users      *fakeUserRepo
	svc        TournamentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		tx:         &fakeTransactor{},
		events:     newFakeEventRepo(1),
		eventTeams: &fakeEventTeamRepo{},
		matches:    &fakeMatchRepo{},
		users:      &fakeUserRepo{users: make(map[int]*models.User)},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewTournamentService(f.tx, f.events, f.eventTeams, f.matches, f.users, logger)
	return f
}

func (f *fixture) enroll(t *testing.T, eventID int, teamIDs ...int) {
	t.Helper()
	require.NoError(t, f.eventTeams.BulkInsert(context.Background(), nil, eventID, teamIDs))
}

func seq(from, n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, from+i)
	}
	return out
}

// --- tests ---

func TestAddTeams(t *testing.T) {
	ctx := context.Background()

	t.Run("enrolls teams", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.AddTeams(ctx, 1, []int{10, 11, 12}))
		teams, err := f.svc.ListEventTeams(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, teams, 3)
	})

	t.Run("rejects empty list", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.AddTeams(ctx, 1, nil)
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("rejects duplicate ids in request", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.AddTeams(ctx, 1, []int{10, 11, 10})
		assert.ErrorIs(t, err, ErrDuplicateTeams)
	})

	t.Run("rejects already enrolled team", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.AddTeams(ctx, 1, []int{10}))
		err := f.svc.AddTeams(ctx, 1, []int{10})
		assert.ErrorIs(t, err, ErrTeamAlreadyInEvent)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.AddTeams(ctx, 99, []int{10})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestGenerateDraw(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong team count", func(t *testing.T) {
		f := newFixture(t)
		f.enroll(t, 1, seq(1, 10)...)
		err := f.svc.GenerateDraw(ctx, 1)
		assert.ErrorIs(t, err, ErrWrongTeamCount)
		assert.Empty(t, f.matches.matches)
	})

	t.Run("creates full group stage", func(t *testing.T) {
		f := newFixture(t)
		f.enroll(t, 1, seq(1, 24)...)
		require.NoError(t, f.svc.GenerateDraw(ctx, 1))

		assert.Equal(t, 1, f.tx.calls)
		require.Len(t, f.matches.matches, 36)

		perGroup := make(map[string]int)
		for _, m := range f.matches.matches {
			assert.Equal(t, models.PhaseGroup, m.Phase)
			assert.Equal(t, models.StatusScheduled, m.Status)
			require.NotNil(t, m.GroupName)
			perGroup[*m.GroupName]++
		}
		require.Len(t, perGroup, 6)
		for _, label := range []string{"A", "B", "C", "D", "E", "F"} {
			assert.Equal(t, 6, perGroup[label], "group %s", label)
		}

		teams, err := f.svc.ListEventTeams(ctx, 1)
		require.NoError(t, err)
		groupSize := make(map[string]int)
		for _, et := range teams {
			require.NotNil(t, et.GroupName)
			groupSize[*et.GroupName]++
			assert.Zero(t, et.Points)
			assert.Zero(t, et.MatchesPlayed)
		}
		for _, label := range []string{"A", "B", "C", "D", "E", "F"} {
			assert.Equal(t, 4, groupSize[label], "group %s", label)
		}
	})

	t.Run("redraw replaces matches and resets standings", func(t *testing.T) {
		f := newFixture(t)
		f.enroll(t, 1, seq(1, 24)...)
		require.NoError(t, f.svc.GenerateDraw(ctx, 1))

		first := f.matches.matches[0]
		require.NoError(t, f.svc.RecordResult(ctx, first.ID, nil, MatchResultInput{HomeScore: 2, AwayScore: 0}))

		require.NoError(t, f.svc.GenerateDraw(ctx, 1))
		require.Len(t, f.matches.matches, 36)
		for _, m := range f.matches.matches {
			assert.False(t, m.Finished())
		}
		teams, err := f.svc.ListEventTeams(ctx, 1)
		require.NoError(t, err)
		for _, et := range teams {
			assert.Zero(t, et.Points)
		}
	})
}

func TestRecordResult(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, *models.Match) {
		f := newFixture(t)
		f.enroll(t, 1, seq(1, 24)...)
		require.NoError(t, f.svc.GenerateDraw(ctx, 1))
		return f, f.matches.matches[0]
	}

	t.Run("saves score and finishes match", func(t *testing.T) {
		f, match := setup(t)
		input := MatchResultInput{HomeScore: 3, AwayScore: 1, HomeYellowCards: 2, AwayRedCards: 1}
		require.NoError(t, f.svc.RecordResult(ctx, match.ID, nil, input))

		saved, err := f.matches.GetByID(ctx, match.ID)
		require.NoError(t, err)
		require.True(t, saved.Finished())
		assert.Equal(t, 3, *saved.HomeScore)
		assert.Equal(t, 1, *saved.AwayScore)
		assert.Equal(t, models.StatusFinished, saved.Status)
		assert.Equal(t, 2, saved.HomeYellowCards)
		assert.Equal(t, 1, saved.AwayRedCards)
	})

	t.Run("recomputes standings", func(t *testing.T) {
		f, match := setup(t)
		require.NoError(t, f.svc.RecordResult(ctx, match.ID, nil, MatchResultInput{HomeScore: 2, AwayScore: 2}))

		teams, err := f.svc.ListEventTeams(ctx, 1)
		require.NoError(t, err)
		for _, et := range teams {
			if et.TeamID == match.HomeTeamID || et.TeamID == match.AwayTeamID {
				assert.Equal(t, 1, et.MatchesPlayed)
				assert.Equal(t, 1, et.Draws)
				assert.Equal(t, 1, et.Points)
			} else {
				assert.Zero(t, et.MatchesPlayed)
			}
		}
	})

	t.Run("correction overwrites previous result", func(t *testing.T) {
		f, match := setup(t)
		require.NoError(t, f.svc.RecordResult(ctx, match.ID, nil, MatchResultInput{HomeScore: 1, AwayScore: 0}))
		require.NoError(t, f.svc.RecordResult(ctx, match.ID, nil, MatchResultInput{HomeScore: 0, AwayScore: 4}))

		teams, err := f.svc.ListEventTeams(ctx, 1)
		require.NoError(t, err)
		for _, et := range teams {
			switch et.TeamID {
			case match.HomeTeamID:
				assert.Equal(t, 0, et.Points)
				assert.Equal(t, -4, et.GoalDifference)
			case match.AwayTeamID:
				assert.Equal(t, 3, et.Points)
				assert.Equal(t, 4, et.GoalDifference)
			}
		}
	})

	t.Run("rejects negative score", func(t *testing.T) {
		f, match := setup(t)
		err := f.svc.RecordResult(ctx, match.ID, nil, MatchResultInput{HomeScore: -1, AwayScore: 0})
		assert.ErrorIs(t, err, ErrInvalidScore)
	})

	t.Run("rejects negative cards", func(t *testing.T) {
		f, match := setup(t)
		err := f.svc.RecordResult(ctx, match.ID, nil, MatchResultInput{HomeYellowCards: -1})
		assert.ErrorIs(t, err, ErrInvalidCards)
	})

	t.Run("unknown match", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.RecordResult(ctx, 404, nil, MatchResultInput{})
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("referee must be assigned to the match", func(t *testing.T) {
		f, match := setup(t)
		referee := &models.User{ID: 7, Role: models.RoleReferee}
		f.users.users[referee.ID] = referee

		err := f.svc.RecordResult(ctx, match.ID, referee, MatchResultInput{HomeScore: 1, AwayScore: 1})
		assert.ErrorIs(t, err, ErrMatchNotAssignedToYou)

		require.NoError(t, f.svc.AssignReferee(ctx, match.ID, referee.ID))
		assert.NoError(t, f.svc.RecordResult(ctx, match.ID, referee, MatchResultInput{HomeScore: 1, AwayScore: 1}))
	})

	t.Run("admin records any match", func(t *testing.T) {
		f, match := setup(t)
		admin := &models.User{ID: 1, Role: models.RoleAdmin}
		assert.NoError(t, f.svc.RecordResult(ctx, match.ID, admin, MatchResultInput{HomeScore: 1, AwayScore: 0}))
	})
}

// fullGroups заполняет шесть групп по четыре команды с уже посчитанной
// статистикой; команда группы i на позиции p имеет ID (i+1)*100+p.
func fullGroups(f *fakeEventTeamRepo, eventID int) {
	labels := []string{"A", "B", "C", "D", "E", "F"}
	id := 0
	for i, label := range labels {
		for p := 1; p <= 4; p++ {
			id++
			g := label
			f.rows = append(f.rows, &models.EventTeam{
				ID:             id,
				EventID:        eventID,
				TeamID:         (i+1)*100 + p,
				GroupName:      &g,
				Points:         9 - (p-1)*3,
				GoalDifference: 5 - p,
			})
		}
	}
}

func TestGroupStandings(t *testing.T) {
	ctx := context.Background()

	t.Run("groups come back sorted and ranked", func(t *testing.T) {
		f := newFixture(t)
		fullGroups(f.eventTeams, 1)

		standings, err := f.svc.GroupStandings(ctx, 1)
		require.NoError(t, err)
		require.Len(t, standings, 6)

		assert.Equal(t, "A", standings[0].GroupName)
		assert.Equal(t, "F", standings[5].GroupName)
		for _, gs := range standings {
			require.Len(t, gs.Teams, 4)
			for i := 1; i < len(gs.Teams); i++ {
				assert.GreaterOrEqual(t, gs.Teams[i-1].Points, gs.Teams[i].Points)
			}
		}
	})

	t.Run("head to head breaks a full tie between neighbours", func(t *testing.T) {
		f := newFixture(t)
		group := "A"
		// Команды 11 и 12 равны по всем шести ключам.
		for i, teamID := range []int{11, 12, 13, 14} {
			pts := 6
			if teamID > 12 {
				pts = 1
			}
			f.eventTeams.rows = append(f.eventTeams.rows, &models.EventTeam{
				ID:        i + 1,
				EventID:   1,
				TeamID:    teamID,
				GroupName: &group,
				Points:    pts,
			})
		}
		// Очный матч: 12 обыграла 11 со счётом 2:1.
		winnerGoals, loserGoals := 2, 1
		f.matches.matches = append(f.matches.matches, &models.Match{
			ID: 1, EventID: 1, HomeTeamID: 12, AwayTeamID: 11,
			Phase: models.PhaseGroup, GroupName: &group,
			HomeScore: &winnerGoals, AwayScore: &loserGoals, Status: models.StatusFinished,
		})

		standings, err := f.svc.GroupStandings(ctx, 1)
		require.NoError(t, err)
		require.Len(t, standings, 1)
		assert.Equal(t, 12, standings[0].Teams[0].TeamID)
		assert.Equal(t, 11, standings[0].Teams[1].TeamID)
	})
}

func TestGenerateKnockout(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the fixed round of 16", func(t *testing.T) {
		f := newFixture(t)
		fullGroups(f.eventTeams, 1)

		require.NoError(t, f.svc.GenerateKnockout(ctx, 1))

		phase := models.PhaseRoundOf16
		r16, err := f.matches.ListByEvent(ctx, nil, 1, repositories.MatchFilter{Phase: &phase})
		require.NoError(t, err)
		require.Len(t, r16, 6)

		want := []struct{ home, away int }{
			{101, 402}, // A1–D2
			{401, 102}, // D1–A2
			{201, 502}, // B1–E2
			{501, 202}, // E1–B2
			{301, 602}, // C1–F2
			{601, 302}, // F1–C2
		}
		for i, m := range r16 {
			assert.Equal(t, want[i].home, m.HomeTeamID, "tie %d home", i+1)
			assert.Equal(t, want[i].away, m.AwayTeamID, "tie %d away", i+1)
			assert.Equal(t, models.StatusScheduled, m.Status)
			assert.Nil(t, m.GroupName)
			require.NotNil(t, m.MatchNumber)
			assert.Equal(t, i+1, *m.MatchNumber)
		}
	})

	t.Run("incomplete standings", func(t *testing.T) {
		f := newFixture(t)
		group := "A"
		f.eventTeams.rows = append(f.eventTeams.rows, &models.EventTeam{
			ID: 1, EventID: 1, TeamID: 10, GroupName: &group,
		})
		err := f.svc.GenerateKnockout(ctx, 1)
		assert.ErrorIs(t, err, ErrIncompleteStandings)
		assert.Empty(t, f.matches.matches)
	})
}

func TestCreateMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a knockout match with a date", func(t *testing.T) {
		f := newFixture(t)
		kickoff := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
		number := 1

		match, err := f.svc.CreateMatch(ctx, 1, CreateMatchInput{
			HomeTeamID:  101,
			AwayTeamID:  201,
			Phase:       models.PhaseSemiFinal,
			MatchNumber: &number,
			MatchDate:   &kickoff,
		})
		require.NoError(t, err)
		assert.NotZero(t, match.ID)
		assert.Equal(t, models.PhaseSemiFinal, match.Phase)
		assert.Equal(t, models.StatusScheduled, match.Status)
		require.NotNil(t, match.MatchDate)
		assert.True(t, match.MatchDate.Equal(kickoff))

		saved, err := f.matches.GetByID(ctx, match.ID)
		require.NoError(t, err)
		assert.Equal(t, 101, saved.HomeTeamID)
		assert.Equal(t, 201, saved.AwayTeamID)
	})

	t.Run("rejects unknown phase", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateMatch(ctx, 1, CreateMatchInput{
			HomeTeamID: 101, AwayTeamID: 201, Phase: "playoff",
		})
		assert.ErrorIs(t, err, ErrInvalidPhase)
		assert.Empty(t, f.matches.matches)
	})

	t.Run("rejects a team against itself", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateMatch(ctx, 1, CreateMatchInput{
			HomeTeamID: 101, AwayTeamID: 101, Phase: models.PhaseFinal,
		})
		assert.ErrorIs(t, err, ErrSameTeam)
	})

	t.Run("unknown event", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateMatch(ctx, 99, CreateMatchInput{
			HomeTeamID: 101, AwayTeamID: 201, Phase: models.PhaseFinal,
		})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestUpdateMatch(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, *models.Match) {
		f := newFixture(t)
		f.matches.matches = append(f.matches.matches, &models.Match{
			ID: 1, EventID: 1, HomeTeamID: 101, AwayTeamID: 402,
			Phase: models.PhaseRoundOf16, Status: models.StatusScheduled,
		})
		f.matches.nextID = 1
		return f, f.matches.matches[0]
	}

	t.Run("sets the match date", func(t *testing.T) {
		f, match := setup(t)
		kickoff := time.Date(2026, 9, 5, 16, 30, 0, 0, time.UTC)

		updated, err := f.svc.UpdateMatch(ctx, match.ID, UpdateMatchInput{MatchDate: &kickoff})
		require.NoError(t, err)
		require.NotNil(t, updated.MatchDate)
		assert.True(t, updated.MatchDate.Equal(kickoff))
		// Остальные поля не тронуты.
		assert.Equal(t, 101, updated.HomeTeamID)
		assert.Equal(t, models.PhaseRoundOf16, updated.Phase)
	})

	t.Run("replaces the teams", func(t *testing.T) {
		f, match := setup(t)
		home, away := 501, 202

		updated, err := f.svc.UpdateMatch(ctx, match.ID, UpdateMatchInput{
			HomeTeamID: &home, AwayTeamID: &away,
		})
		require.NoError(t, err)
		assert.Equal(t, 501, updated.HomeTeamID)
		assert.Equal(t, 202, updated.AwayTeamID)
	})

	t.Run("rejects a team against itself", func(t *testing.T) {
		f, match := setup(t)
		same := 402
		_, err := f.svc.UpdateMatch(ctx, match.ID, UpdateMatchInput{HomeTeamID: &same})
		assert.ErrorIs(t, err, ErrSameTeam)
	})

	t.Run("rejects unknown phase", func(t *testing.T) {
		f, match := setup(t)
		phase := models.MatchPhase("eighth_final")
		_, err := f.svc.UpdateMatch(ctx, match.ID, UpdateMatchInput{Phase: &phase})
		assert.ErrorIs(t, err, ErrInvalidPhase)
	})

	t.Run("unknown match", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.UpdateMatch(ctx, 404, UpdateMatchInput{})
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("moving a finished group match recomputes standings", func(t *testing.T) {
		f := newFixture(t)
		f.enroll(t, 1, seq(1, 24)...)
		require.NoError(t, f.svc.GenerateDraw(ctx, 1))

		match := f.matches.matches[0]
		require.NoError(t, f.svc.RecordResult(ctx, match.ID, nil, MatchResultInput{HomeScore: 2, AwayScore: 0}))

		oldWinner := match.HomeTeamID
		// Переносим победу на другую пару команд той же группы.
		newHome, newAway := match.AwayTeamID, oldWinner
		_, err := f.svc.UpdateMatch(ctx, match.ID, UpdateMatchInput{
			HomeTeamID: &newHome, AwayTeamID: &newAway,
		})
		require.NoError(t, err)

		teams, err := f.svc.ListEventTeams(ctx, 1)
		require.NoError(t, err)
		for _, et := range teams {
			switch et.TeamID {
			case newHome:
				assert.Equal(t, 3, et.Points)
			case oldWinner:
				assert.Equal(t, 0, et.Points)
			}
		}
	})
}

func TestListMatches(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	num := func(n int) *int { return &n }
	group := "A"
	f.matches.matches = append(f.matches.matches,
		&models.Match{ID: 1, EventID: 1, HomeTeamID: 1, AwayTeamID: 2,
			Phase: models.PhaseFinal, MatchNumber: num(1)},
		&models.Match{ID: 2, EventID: 1, HomeTeamID: 3, AwayTeamID: 4,
			Phase: models.PhaseGroup, GroupName: &group, MatchNumber: num(2)},
		&models.Match{ID: 3, EventID: 1, HomeTeamID: 5, AwayTeamID: 6,
			Phase: models.PhaseRoundOf16, MatchNumber: num(1)},
		&models.Match{ID: 4, EventID: 1, HomeTeamID: 7, AwayTeamID: 8,
			Phase: models.PhaseGroup, GroupName: &group, MatchNumber: num(1)},
	)
	f.matches.nextID = 4

	t.Run("orders phases chronologically", func(t *testing.T) {
		matches, err := f.svc.ListMatches(ctx, 1, nil)
		require.NoError(t, err)
		require.Len(t, matches, 4)

		// Финал в алфавите стоит раньше группового этапа, но турнир
		// начинается с групп.
		phases := make([]models.MatchPhase, 0, len(matches))
		for _, m := range matches {
			phases = append(phases, m.Phase)
		}
		assert.Equal(t, []models.MatchPhase{
			models.PhaseGroup, models.PhaseGroup, models.PhaseRoundOf16, models.PhaseFinal,
		}, phases)
		assert.Equal(t, 4, matches[0].ID, "group matches sorted by number")
		assert.Equal(t, 2, matches[1].ID)
	})

	t.Run("filters by phase", func(t *testing.T) {
		phase := models.PhaseFinal
		matches, err := f.svc.ListMatches(ctx, 1, &phase)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 1, matches[0].ID)
	})
}

func TestAssignReferee(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, *models.Match) {
		f := newFixture(t)
		f.matches.matches = append(f.matches.matches, &models.Match{
			ID: 1, EventID: 1, HomeTeamID: 10, AwayTeamID: 11,
			Phase: models.PhaseGroup, Status: models.StatusScheduled,
		})
		f.matches.nextID = 1
		return f, f.matches.matches[0]
	}

	t.Run("assigns and unassigns", func(t *testing.T) {
		f, match := setup(t)
		f.users.users[5] = &models.User{ID: 5, Role: models.RoleReferee}

		require.NoError(t, f.svc.AssignReferee(ctx, match.ID, 5))
		require.NotNil(t, match.RefereeUserID)
		assert.Equal(t, 5, *match.RefereeUserID)

		require.NoError(t, f.svc.UnassignReferee(ctx, match.ID))
		assert.Nil(t, match.RefereeUserID)
	})

	t.Run("rejects a non-referee", func(t *testing.T) {
		f, match := setup(t)
		f.users.users[6] = &models.User{ID: 6, Role: models.RoleUser}
		err := f.svc.AssignReferee(ctx, match.ID, 6)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("unknown user", func(t *testing.T) {
		f, match := setup(t)
		err := f.svc.AssignReferee(ctx, match.ID, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestExportStandingsCSV(t *testing.T) {
	f := newFixture(t)
	fullGroups(f.eventTeams, 1)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportStandingsCSV(context.Background(), 1, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1+24)
	assert.Equal(t,
		"group,position,team_id,played,wins,draws,losses,goals_for,goals_against,goal_difference,yellow_cards,red_cards,points",
		lines[0])
	assert.Equal(t, "A,1,101,0,0,0,0,0,0,4,0,0,9", lines[1])
	assert.True(t, strings.HasPrefix(lines[24], "F,4,604,"))
}

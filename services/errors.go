package services

import "errors"

// Общие ошибки сервисного слоя, маппятся на HTTP-статусы в handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Валидация и бизнес-правила
	ErrValidationFailed    = errors.New("validation failed")
	ErrTeamNameRequired    = errors.New("team name is required")
	ErrEventTitleRequired  = errors.New("event title is required")
	ErrPostTitleRequired   = errors.New("post title is required")
	ErrSponsorNameRequired = errors.New("sponsor name is required")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrInvalidScore        = errors.New("scores must be non-negative")
	ErrInvalidCards        = errors.New("card counts must be non-negative")
	ErrInvalidRole         = errors.New("invalid user role")
	ErrInvalidPhase        = errors.New("unknown match phase")
	ErrSameTeam            = errors.New("a team cannot play against itself")

	// Турнирный движок
	ErrWrongTeamCount        = errors.New("event must have exactly the number of teams the format requires")
	ErrDuplicateTeams        = errors.New("duplicate team ids in request")
	ErrTeamAlreadyInEvent    = errors.New("team is already enrolled in this event")
	ErrIncompleteStandings   = errors.New("group standings are not complete enough to generate the knockout phase")
	ErrMatchNotAssignedToYou = errors.New("match is not assigned to this referee")

	// Конфликты
	ErrTeamNameConflict = errors.New("team name is already in use")
	ErrEmailTaken       = errors.New("email address is already in use")

	// Аутентификация
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Сущности
	ErrTeamNotFound        = errors.New("team not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrPostNotFound        = errors.New("post not found")
	ErrSponsorNotFound     = errors.New("sponsor not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrEventTeamNotFound   = errors.New("event team not found")
)

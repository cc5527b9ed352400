package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound      MatchError = "match not found"
	ErrMatchAlreadyExists MatchError = "match already exists for this channel"
	ErrAutoPlayActive     MatchError = "auto-play is running for this match"
	ErrServiceClosed      MatchError = "match service is closed"
	ErrNilConfig          MatchError = "config cannot be nil"
	ErrNilMatchRepo       MatchError = "match repository cannot be nil"
	ErrNilGameLogRepo     MatchError = "game log repository cannot be nil"
	ErrNilSimulator       MatchError = "rally simulator cannot be nil"
	ErrNilTeamProvider    MatchError = "team provider cannot be nil"
	ErrNilClock           MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator   MatchError = "UUID generator cannot be nil"
	ErrInvalidInterval    MatchError = "auto-play interval must be positive"
)

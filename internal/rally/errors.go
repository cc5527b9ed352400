package rally

// RallyError is a custom error type for rally engine errors
type RallyError string

// Error implements the error interface
func (e RallyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         RallyError = "config cannot be nil"
	ErrNilRoller         RallyError = "dice roller cannot be nil"
	ErrNilTeam           RallyError = "team cannot be nil"
	ErrInvalidLineup     RallyError = "team must have exactly six players on court in distinct slots"
	ErrInvalidServeState RallyError = "exactly one team must hold serve"
	ErrInvalidTunables   RallyError = "invalid rally tunables"
)

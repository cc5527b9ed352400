package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/rallied/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock reads the system clock in UTC
type DefaultClock struct{}

// Now returns the current UTC time
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC()
}

package models

// RallyResult is the outcome of a single simulated point
type RallyResult struct {
	// Winner is the side that won the point
	Winner Side

	// Log holds the events of the rally in chronological order
	Log []string

	// Exchanges is the number of receive/set/attack cycles played after the serve
	Exchanges int

	// CapReached indicates the rally was decided by the exchange cap fallback
	CapReached bool
}

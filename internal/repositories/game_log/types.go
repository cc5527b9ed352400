package game_log

type AppendLinesInput struct {
	MatchID string
	Lines   []string
}

type GetLinesInput struct {
	MatchID string

	// Limit keeps only the newest lines; zero returns the whole log
	Limit int
}

type GetLinesOutput struct {
	Lines []string
}

type DeleteLogInput struct {
	MatchID string
}

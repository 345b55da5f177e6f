package types

// Highscore represents a single score submission for a level.
// Records are append-only; duplicate submissions for the same user
// and level are all retained.
type Highscore struct {
	// Level identifies the game level the score was achieved on.
	Level string `json:"level"`

	// UserHandle is the handle the score is attributed to. It is not
	// required to match the authenticated submitter.
	UserHandle string `json:"userHandle"`

	// Score is the submitted score. Zero is a valid score.
	Score float64 `json:"score"`

	// Timestamp is the client-supplied submission time. Clients send
	// either a string or a number; the value is echoed back verbatim.
	Timestamp any `json:"timestamp"`
}

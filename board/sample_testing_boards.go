package board

// This file contains some sample positions, used solely for testing.

// A TestPosition is a 64-character row-major board string.
type TestPosition string

const (
	// StartingPosition is the standard initial setup, with white on rows 0-1.
	StartingPosition TestPosition = "RNBQKBNR" +
		"PPPPPPPP" +
		"........" +
		"........" +
		"........" +
		"........" +
		"pppppppp" +
		"rnbqkbnr"

	// VsRookEndgame is a sparse late position with a white rook able to
	// grab a black pawn by sliding right.
	VsRookEndgame TestPosition = "........" +
		"........" +
		"..RP...." +
		"p.k....." +
		"........" +
		"........" +
		"........" +
		"K.r....."

	// VsBareKings has both kings and a single white rook a move away
	// from capturing the black king.
	VsBareKings TestPosition = "R..k...." +
		"........" +
		"........" +
		"........" +
		"........" +
		"........" +
		"........" +
		"....K..."

	// EmptyPosition has no pieces at all.
	EmptyPosition TestPosition = "........" +
		"........" +
		"........" +
		"........" +
		"........" +
		"........" +
		"........" +
		"........"
)

// MustParse parses a test position, panicking on failure. Testing only.
func MustParse(tp TestPosition) *Board {
	b, err := Parse(string(tp))
	if err != nil {
		panic(err)
	}
	return b
}

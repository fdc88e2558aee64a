package constants

// Layout
const (
	// CellGap is the default number of blank columns between adjacent balls
	CellGap = 1

	// ButtonRowOffset is the distance of the button row from the bottom edge
	ButtonRowOffset = 1

	// StatusRowOffset is the distance of the status row from the bottom edge
	StatusRowOffset = 2

	// ReservedRows are the bottom rows not available to the play area
	ReservedRows = 3

	// GuideRune draws the destination line
	GuideRune = '┄'
)

// Button labels
const (
	PickLabel = "[ Pick ]"
	SortLabel = "[ Sort ]"
)

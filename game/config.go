package game

// BoardSize selects one of the preset board dimensions
type BoardSize int

const (
	SizeSmall BoardSize = iota
	SizeMedium
	SizeLarge
)

// String returns a human-readable description of the board size
func (s BoardSize) String() string {
	switch s {
	case SizeSmall:
		return "Small (10 x 10)"
	case SizeMedium:
		return "Medium (15 x 15)"
	case SizeLarge:
		return "Large (20 x 20)"
	default:
		return "Unknown"
	}
}

// Dimensions returns the row and column counts for this board size
func (s BoardSize) Dimensions() (rows, cols int) {
	switch s {
	case SizeMedium:
		return 15, 15
	case SizeLarge:
		return 20, 20
	default:
		return 10, 10
	}
}

// Config holds game configuration constants
type Config struct {
	// CellSize is the size of each board cell in pixels
	CellSize int

	// StatusBarHeight is the height of the status bar above the board in pixels
	StatusBarHeight int

	// MineRatio is the fraction of cells that contain mines
	MineRatio float64

	// Size is the initial board size preset
	Size BoardSize
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		CellSize:        24,
		StatusBarHeight: 28,
		MineRatio:       0.10,
		Size:            SizeSmall,
	}
}

// MineCount returns the number of mines for a board of the given dimensions
func (c Config) MineCount(rows, cols int) int {
	mines := int(float64(rows*cols) * c.MineRatio)
	if mines < 1 {
		mines = 1
	}
	if mines > rows*cols-1 {
		mines = rows*cols - 1
	}
	return mines
}

// ScreenSize returns the window dimensions in pixels for the given board size
func (c Config) ScreenSize(size BoardSize) (width, height int) {
	rows, cols := size.Dimensions()
	return cols * c.CellSize, rows*c.CellSize + c.StatusBarHeight
}

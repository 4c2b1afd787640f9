package game

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowMines bool // Draw mine markers on unrevealed cells
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{
	ShowMines: false, // Default to off
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

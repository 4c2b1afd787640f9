package game

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	NewGameKey eb.Key = eb.KeyR
	SolveKey   eb.Key = eb.KeyS
	HintKey    eb.Key = eb.KeyH
	QuitKey    eb.Key = eb.KeyEscape

	SizeSmallKey  eb.Key = eb.KeyDigit1
	SizeMediumKey eb.Key = eb.KeyDigit2
	SizeLargeKey  eb.Key = eb.KeyDigit3

	ShowMinesKey eb.Key = eb.KeyF1
)

package draglist

// BorderSet defines various borders used when primitives are drawn.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	TopT        string
	BottomT     string
	LeftT       string
	RightT      string
}

// BorderSetHidden reserves border cells without drawing them.
func BorderSetHidden() BorderSet {
	return BorderSet{
		Top:         " ",
		Bottom:      " ",
		Left:        " ",
		Right:       " ",
		TopLeft:     " ",
		TopRight:    " ",
		BottomLeft:  " ",
		BottomRight: " ",
		TopT:        " ",
		BottomT:     " ",
		LeftT:       " ",
		RightT:      " ",
	}
}

// BorderSetPlain draws single light lines.
func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
		TopT:        BoxDrawingsLightDownAndHorizontal,
		BottomT:     BoxDrawingsLightUpAndHorizontal,
		LeftT:       BoxDrawingsLightVerticalAndRight,
		RightT:      BoxDrawingsLightVerticalAndLeft,
	}
}

// BorderSetRound draws single light lines with rounded corners.
func BorderSetRound() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightArcDownAndRight,
		TopRight:    BoxDrawingsLightArcDownAndLeft,
		BottomLeft:  BoxDrawingsLightArcUpAndRight,
		BottomRight: BoxDrawingsLightArcUpAndLeft,
		TopT:        BoxDrawingsLightDownAndHorizontal,
		BottomT:     BoxDrawingsLightUpAndHorizontal,
		LeftT:       BoxDrawingsLightVerticalAndRight,
		RightT:      BoxDrawingsLightVerticalAndLeft,
	}
}

// BorderSetThick draws heavy lines.
func BorderSetThick() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsHeavyHorizontal,
		Bottom:      BoxDrawingsHeavyHorizontal,
		Left:        BoxDrawingsHeavyVertical,
		Right:       BoxDrawingsHeavyVertical,
		TopLeft:     BoxDrawingsHeavyDownAndRight,
		TopRight:    BoxDrawingsHeavyDownAndLeft,
		BottomLeft:  BoxDrawingsHeavyUpAndRight,
		BottomRight: BoxDrawingsHeavyUpAndLeft,
		TopT:        BoxDrawingsHeavyDownAndHorizontal,
		BottomT:     BoxDrawingsHeavyUpAndHorizontal,
		LeftT:       BoxDrawingsHeavyVerticalAndRight,
		RightT:      BoxDrawingsHeavyVerticalAndLeft,
	}
}

// BorderSetDouble draws double lines.
func BorderSetDouble() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsDoubleHorizontal,
		Bottom:      BoxDrawingsDoubleHorizontal,
		Left:        BoxDrawingsDoubleVertical,
		Right:       BoxDrawingsDoubleVertical,
		TopLeft:     BoxDrawingsDoubleDownAndRight,
		TopRight:    BoxDrawingsDoubleDownAndLeft,
		BottomLeft:  BoxDrawingsDoubleUpAndRight,
		BottomRight: BoxDrawingsDoubleUpAndLeft,
		TopT:        BoxDrawingsDoubleDownAndHorizontal,
		BottomT:     BoxDrawingsDoubleUpAndHorizontal,
		LeftT:       BoxDrawingsDoubleVerticalAndRight,
		RightT:      BoxDrawingsDoubleVerticalAndLeft,
	}
}

// Borders is a bitmask selecting which of a box's four borders are drawn.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether any of the borders in flag are set.
func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}

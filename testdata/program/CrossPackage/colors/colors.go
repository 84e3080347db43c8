package colors

type Color int16

const (
	ColorRed Color = iota + 1
	ColorGreen
	ColorBlue
	ColorWhite
)

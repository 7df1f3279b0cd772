package constants

const (
	// NoStateOpacity is the alpha applied to the primary foreground for the "no" state.
	NoStateOpacity = 0.20

	// Layout, in terminal cells
	NameColumnWidth = 10
	DayCellGap      = 1
	CardPadding     = 1
)

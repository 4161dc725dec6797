package ui

const (
	// PanelWidth is the width of the parameter panel right of the board.
	PanelWidth = 220
	// PanelMinHeight keeps the panel readable on small boards.
	PanelMinHeight = 260

	panelPadding = 10
	lineHeight   = 16
)

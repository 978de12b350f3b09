package ui

import "time"

// Timing constants.
const (
	// FadeDuration is how long the landing screen fades before the roster
	// appears.
	FadeDuration = 500 * time.Millisecond
)

// Audio control steps.
const (
	// VolumeStep is the change applied by one volume key press.
	VolumeStep = 0.1

	// VolumeSliderWidth is the number of cells in the volume bar.
	VolumeSliderWidth = 10
)

// Card grid dimensions.
const (
	// MinCardWidth is the narrowest card; columns collapse below it.
	MinCardWidth = 24

	// CardGap is the horizontal space between cards in a row.
	CardGap = 1

	// SearchWidth is the width of the search input.
	SearchWidth = 40
)

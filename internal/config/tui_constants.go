package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of the countdown progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the narrowest progress bar rendered.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// MaxLabelWidth bounds preset labels in the list.
	MaxLabelWidth = 30
)

// Display limits.
const (
	// MaxVisiblePresets limits presets shown before scrolling.
	MaxVisiblePresets = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxSecondsDigits bounds the add form input. Nine digits is over 31 years.
	MaxSecondsDigits = 9
)

// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Command-Line Interface - these keys govern terminal presentation and startup behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Diagnostic Logging - these keys configure the persistent logging subsystem.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// Swatch Rendering - these keys manage the visual presentation of color swatches.
const (
	SwatchVariant = "swatch.variant"
	SwatchWidth   = "swatch.width"
)

// Palette Generation - these keys define the default parameters for palette derivation.
const (
	PaletteCount  = "palette.count"
	PaletteSpread = "palette.spread"
	PaletteSteps  = "palette.steps"
)

// Color Adjustment - these keys define the default step for perceptual manipulations.
const (
	AdjustAmount = "adjust.amount"
)

// History Tracking - these keys configure the persistence of recently used colors.
const (
	HistorySaveOnParse = "history.save_on_parse"
	HistoryLimit       = "history.limit"
)

// Custom Generators - these keys govern user-defined Lua palette scripts.
const (
	GeneratorsEnable = "generators.enable"
)

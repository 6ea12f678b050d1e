package globals

const VERSION = "v2.2.0"

// Defaults used when neither a flag, an environment variable nor the config
// file provides a value.
const (
	DEFAULT_TRACK_TRANSPARENCY = "80"
	DEFAULT_TRACK_WIDTH        = 14
	DEFAULT_TRACK_COLOR        = "3AE63A" // kelly green
	DEFAULT_ICON_COLOR         = "DB4436" // rusty red
	NO_SPLIT                   = "no_split"
)

// DEFAULT_IGNORE lists layer names that are never converted.
var DEFAULT_IGNORE = []string{"Untitled layer"}

// METERS_PER_MILE converts the split interval into OsmAnd's unit.
const METERS_PER_MILE = 1609.34

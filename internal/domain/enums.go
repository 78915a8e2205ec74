package domain

type ProcessType string

const (
	ProcessManual ProcessType = "manual"
	ProcessSystem ProcessType = "system"
)

// ValidProcessTypes is the canonical set of accepted process type strings.
var ValidProcessTypes = map[string]bool{
	"manual": true, "system": true,
}

// SwatchColors is the pastel palette offered for process nodes.
var SwatchColors = []string{
	"#cfe2f3", "#d9ead3", "#fff2cc", "#fce5cd", "#f4cccc", "#d0e0e3",
}

// DefaultColor is the swatch applied when a process carries no color.
const DefaultColor = "#cfe2f3"

type SyncStatus string

const (
	SyncIdle      SyncStatus = "idle"
	SyncLoading   SyncStatus = "loading"
	SyncSucceeded SyncStatus = "succeeded"
	SyncFailed    SyncStatus = "failed"
)

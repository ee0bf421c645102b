package entities

// Mode is the controller's top-level state.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeSearching
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeSearching:
		return "searching"
	default:
		return "unknown"
	}
}

// Status describes the outcome a renderer should show.
type Status int

const (
	StatusOK Status = iota
	// StatusEmpty is a browse page past the end of the catalog.
	StatusEmpty
	// StatusNoResults is a search that matched nothing.
	StatusNoResults
	StatusSearchFailed
	StatusNetworkError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusNoResults:
		return "no_results"
	case StatusSearchFailed:
		return "search_failed"
	case StatusNetworkError:
		return "network_error"
	default:
		return "unknown"
	}
}

// Message returns the user-facing text for statuses that replace the grid.
// StatusOK has no message.
func (s Status) Message() string {
	switch s {
	case StatusEmpty:
		return "End of catalog: no creatures on this page"
	case StatusNoResults:
		return "No creatures found"
	case StatusSearchFailed:
		return "Search failed"
	case StatusNetworkError:
		return "Network unavailable"
	default:
		return ""
	}
}

// IsFailure reports whether the status represents an error outcome.
func (s Status) IsFailure() bool {
	return s == StatusSearchFailed || s == StatusNetworkError
}

// View is one render cycle's worth of state handed to a Renderer.
type View struct {
	Generation uint64
	Mode       Mode
	Pagination Pagination
	Query      string
	Records    []Creature
	// Failed counts records that could not be resolved; Records holds the rest.
	Failed int
	Status Status
	Err    error
}

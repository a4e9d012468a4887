package domain

// Action is the outcome decided for a single installed entry.
type Action uint8

const (
	// ActionKeep retains the entry.
	ActionKeep Action = iota
	// ActionRemoveUnwanted removes an entry whose base name is not in the keep list.
	ActionRemoveUnwanted
	// ActionRemoveOldVersion removes a kept extension's superseded version.
	ActionRemoveOldVersion
)

// Reasons attached to decisions.
const (
	ReasonNotInKeepList = "not in keep list"
	ReasonOldVersion    = "old version"
	ReasonLatest        = "latest version"
	ReasonKeepAll       = "all versions kept"
)

// String returns a short, stable name for the action.
func (a Action) String() string {
	switch a {
	case ActionKeep:
		return "keep"
	case ActionRemoveUnwanted:
		return "remove-unwanted"
	case ActionRemoveOldVersion:
		return "remove-old-version"
	default:
		return "unknown"
	}
}

// IsRemoval reports whether the action deletes the entry.
func (a Action) IsRemoval() bool {
	return a == ActionRemoveUnwanted || a == ActionRemoveOldVersion
}

// Decision records what happens to one entry and why.
type Decision struct {
	Entry  Entry
	Action Action
	Reason string
}

// Decide applies the keep policy to one group of entries sharing a base name.
// It returns one decision per entry, in group order.
func Decide(group []Entry, inKeepSet, keepAllVersions bool) []Decision {
	decisions := make([]Decision, 0, len(group))

	switch {
	case !inKeepSet:
		for _, e := range group {
			decisions = append(decisions, Decision{Entry: e, Action: ActionRemoveUnwanted, Reason: ReasonNotInKeepList})
		}
	case keepAllVersions:
		for _, e := range group {
			decisions = append(decisions, Decision{Entry: e, Action: ActionKeep, Reason: ReasonKeepAll})
		}
	default:
		latest := Latest(group)
		for i, e := range group {
			if i == latest {
				decisions = append(decisions, Decision{Entry: e, Action: ActionKeep, Reason: ReasonLatest})
				continue
			}
			decisions = append(decisions, Decision{Entry: e, Action: ActionRemoveOldVersion, Reason: ReasonOldVersion})
		}
	}

	return decisions
}

// Latest returns the index of the newest entry in the group, or -1 for an
// empty group.
//
// A strictly greater version replaces the running best. Equal versions prefer
// the longer raw name, which is usually the architecture-qualified build.
func Latest(group []Entry) int {
	if len(group) == 0 {
		return -1
	}

	best := 0
	for i := 1; i < len(group); i++ {
		c := CompareVersions(group[i].Version, group[best].Version)
		if c > 0 || (c == 0 && len(group[i].RawName) > len(group[best].RawName)) {
			best = i
		}
	}

	return best
}

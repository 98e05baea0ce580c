package treediff

// Stats holds counts of the operations produced by a diff
type Stats struct {
	Adds     int `json:"adds,omitempty"`     // number of add operations
	Removes  int `json:"removes,omitempty"`  // number of remove operations
	Replaces int `json:"replaces,omitempty"` // number of replace operations
}

// Total returns the length of the patch these stats describe
func (s Stats) Total() int {
	return s.Adds + s.Removes + s.Replaces
}

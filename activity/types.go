package activity

// Result holds the outcome of Select.
type Result struct {
	// IDs lists the accepted windows in acceptance order, which is
	// increasing End time.
	IDs []string `json:"ids"`
}

// Len returns the number of selected windows.
func (r Result) Len() int {
	return len(r.IDs)
}

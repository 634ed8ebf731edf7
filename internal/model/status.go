package model

// StatusMachine describes the statuses an entity may hold and which of them are final.
type StatusMachine struct {
	names    map[int]string
	terminal map[int]bool
}

func newStatusMachine(names map[int]string, terminal ...int) StatusMachine {
	t := make(map[int]bool, len(terminal))
	for _, s := range terminal {
		t[s] = true
	}
	return StatusMachine{names: names, terminal: t}
}

// Valid reports whether status is known.
func (m StatusMachine) Valid(status int) bool {
	_, ok := m.names[status]
	return ok
}

// IsTerminal reports whether status can no longer change.
func (m StatusMachine) IsTerminal(status int) bool {
	return m.terminal[status]
}

// CanChange reports whether an entity in from may move to to.
func (m StatusMachine) CanChange(from, to int) bool {
	return m.Valid(to) && !m.terminal[from]
}

// Name returns the label of a status, or "" for an unknown one.
func (m StatusMachine) Name(status int) string {
	return m.names[status]
}

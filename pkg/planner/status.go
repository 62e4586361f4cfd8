package planner

import "fmt"

// StatusKind identifies the state transition a Status reports
type StatusKind int

const (
	StatusToolSelected StatusKind = iota
	StatusPlaced
	StatusSelected
	StatusRemoved
	StatusRebuilt
)

func (k StatusKind) String() string {
	switch k {
	case StatusToolSelected:
		return "tool-selected"
	case StatusPlaced:
		return "placed"
	case StatusSelected:
		return "selected"
	case StatusRemoved:
		return "removed"
	case StatusRebuilt:
		return "rebuilt"
	}
	return fmt.Sprintf("StatusKind(%d)", int(k))
}

// Status is a human readable description of the latest transition
type Status struct {
	Kind    StatusKind
	Message string
	TypeID  string // fixture type involved, if any
}

func (s Status) String() string {
	return s.Message
}

func toolSelected(name, id string) Status {
	return Status{Kind: StatusToolSelected, TypeID: id, Message: fmt.Sprintf("Selected tool: %s", name)}
}

func placed(name, id string) Status {
	return Status{Kind: StatusPlaced, TypeID: id, Message: fmt.Sprintf("%s placed. Drag to move, Delete to remove.", name)}
}

func selected(name, id string) Status {
	return Status{Kind: StatusSelected, TypeID: id, Message: fmt.Sprintf("Selected: %s. Drag to move, Delete to remove.", name)}
}

func removed(name, id string) Status {
	return Status{Kind: StatusRemoved, TypeID: id, Message: fmt.Sprintf("%s removed.", name)}
}

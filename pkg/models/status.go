package models

// Status represents the state of a record
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusNew      Status = "new"
)

// FallbackColor is returned for statuses outside the known set
const FallbackColor = "gray"

// ValidStatuses defines allowed statuses
var ValidStatuses = map[string]bool{
	string(StatusActive):   true,
	string(StatusInactive): true,
	string(StatusNew):      true,
}

// StatusColor maps a status to its display color
func StatusColor(status Status) string {
	switch status {
	case StatusActive:
		return "green"
	case StatusInactive:
		return "red"
	case StatusNew:
		return "blue"
	default:
		return FallbackColor
	}
}

// Color is shorthand for StatusColor(s)
func (s Status) Color() string {
	return StatusColor(s)
}

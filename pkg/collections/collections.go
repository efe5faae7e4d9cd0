// Package collections holds generic lookups over slices.
package collections

// Identifiable is implemented by values carrying an integer identifier
type Identifiable interface {
	GetID() int
}

// FirstElement returns the first element of items. The boolean is false, and
// the element the zero value, when items is empty.
func FirstElement[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// FindByID returns the first element of items whose ID equals id, scanning in
// order so the earliest duplicate wins. The boolean is false when nothing
// matches.
func FindByID[T Identifiable](items []T, id int) (T, bool) {
	for _, item := range items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

package compare

import "fmt"

// Direction selects whether a rule ranks values in ascending or
// descending order.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// ParseDirection converts the textual direction tokens "asc" and "desc"
// into a Direction. Any other token fails with ErrBadDirection.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, fmt.Errorf("%w: %q", ErrBadDirection, s)
	}
}

// IsDesc reports whether the direction is descending. Using this produces
// shorter code at rule-evaluation sites.
func (d Direction) IsDesc() bool {
	return d == Desc
}

func (d Direction) String() string {
	if d.IsDesc() {
		return "desc"
	}

	return "asc"
}

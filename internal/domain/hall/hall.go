package hall

import "errors"

var ErrUnknownHall = errors.New("unknown hall")

// Hall identifies a physical auditorium. The cinema runs two halls with
// fixed, distinct seat capacities; seat numbers are 1-based.
type Hall string

const (
	HallA Hall = "A"
	HallB Hall = "B"
)

const (
	hallACapacity = 100
	hallBCapacity = 80
)

func New(s string) (Hall, error) {
	h := Hall(s)
	if !h.IsValid() {
		return "", ErrUnknownHall
	}
	return h, nil
}

func (h Hall) IsValid() bool {
	switch h {
	case HallA, HallB:
		return true
	default:
		return false
	}
}

func (h Hall) String() string {
	return string(h)
}

func (h Hall) Capacity() int {
	switch h {
	case HallA:
		return hallACapacity
	case HallB:
		return hallBCapacity
	default:
		return 0
	}
}

// ContainsSeat reports whether seat is a valid seat number for the hall.
func (h Hall) ContainsSeat(seat int) bool {
	return seat >= 1 && seat <= h.Capacity()
}

func All() []Hall {
	return []Hall{HallA, HallB}
}

package daterange

import "time"

// Phase is the state of a Selection in the two-click protocol.
type Phase int

const (
	// Empty means neither date is set.
	Empty Phase = iota
	// PartialRange means only the check-in is set.
	PartialRange
	// CompleteRange means both dates are set and check-out is after check-in.
	CompleteRange
)

func (p Phase) String() string {
	switch p {
	case PartialRange:
		return "partial"
	case CompleteRange:
		return "complete"
	default:
		return "empty"
	}
}

// Selection is the check-in/check-out pair of one booking flow. A zero time
// means the bound is unset. Values are only produced by SelectDate, which
// keeps CheckOut strictly after CheckIn whenever both are set.
type Selection struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Phase classifies the selection.
func (s Selection) Phase() Phase {
	switch {
	case s.CheckIn.IsZero():
		return Empty
	case s.CheckOut.IsZero():
		return PartialRange
	default:
		return CompleteRange
	}
}

// Equal reports whether both selections hold the same dates.
func (s Selection) Equal(o Selection) bool {
	return s.CheckIn.Equal(o.CheckIn) && s.CheckOut.Equal(o.CheckOut)
}

// Complete reports whether both bounds are set.
func (s Selection) Complete() bool {
	return s.Phase() == CompleteRange
}

// SelectDate applies one pick to sel and returns the resulting selection.
//
// A pick before today leaves sel unchanged. Otherwise, when sel is empty or
// already complete the pick starts a new range. When only the check-in is
// set, a later pick becomes the check-out and an earlier or equal pick
// replaces the check-in.
func SelectDate(sel Selection, picked, today time.Time) Selection {
	day := Day(picked)
	if day.Before(Day(today)) {
		return sel
	}
	if sel.Phase() == PartialRange && day.After(Day(sel.CheckIn)) {
		return Selection{CheckIn: Day(sel.CheckIn), CheckOut: day}
	}
	return Selection{CheckIn: day}
}

// InSelectedRange reports whether day lies within [CheckIn, CheckOut],
// inclusive at both ends. It is false unless the selection is complete.
func InSelectedRange(sel Selection, day time.Time) bool {
	if !sel.Complete() {
		return false
	}
	d := Day(day)
	return !d.Before(Day(sel.CheckIn)) && !d.After(Day(sel.CheckOut))
}

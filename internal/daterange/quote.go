package daterange

import "time"

// Quote is the derived stay length and price of a selection.
type Quote struct {
	Nights     int   `json:"nights"`
	TotalPrice int64 `json:"total_price"`
}

// Nights returns the number of nights between check-in and check-out, or 0
// when the selection is incomplete.
func Nights(sel Selection) int {
	if !sel.Complete() {
		return 0
	}
	diff := Day(sel.CheckOut).Sub(Day(sel.CheckIn))
	if diff < 0 {
		diff = -diff
	}
	// both ends are UTC midnights, so the division is exact
	return int(diff / (24 * time.Hour))
}

// ComputeQuote prices the selection at nightlyRate per night. The rate is in
// whatever unit the caller uses; a negative rate is treated as zero. An
// incomplete selection yields the zero Quote.
func ComputeQuote(sel Selection, nightlyRate int64) Quote {
	if nightlyRate < 0 {
		nightlyRate = 0
	}
	n := Nights(sel)
	return Quote{Nights: n, TotalPrice: int64(n) * nightlyRate}
}

package model

// Ordering is the outcome of comparing two entries by modification time.
// Incomparable means at least one side's metadata was unavailable; the newer
// and older tests treat it as a failed test, never as a default ordering.
type Ordering uint8

const (
	Incomparable Ordering = iota
	Less
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "incomparable"
	}
}

// CompareModTime orders a relative to b by modification time alone.
func CompareModTime(a, b Entry) Ordering {
	at, ok := a.ModTime()
	if !ok {
		return Incomparable
	}

	bt, ok := b.ModTime()
	if !ok {
		return Incomparable
	}

	switch {
	case at.Before(bt):
		return Less
	case at.After(bt):
		return Greater
	default:
		return Equal
	}
}

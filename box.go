// box.go: the box relation model.
//
// A Box is a rectangular region of the source grid carrying a Genus (its
// control-flow kind). Boxes are immutable once constructed; every query
// below is a pure function of two boxes. Relationship classifies nesting,
// and Before/After/Simultaneous classify execution order for a scheduler:
// exactly one of the three holds for any ordered pair of well-formed
// boxes.
package boxscript

import "fmt"

// Genus is the control-flow kind of a box.
type Genus int

const (
	Loop Genus = iota
	Condition
	Execution
	NoOp // comment box, no executable semantics
)

func (g Genus) String() string {
	switch g {
	case Loop:
		return "Loop"
	case Condition:
		return "Condition"
	case Execution:
		return "Execution"
	case NoOp:
		return "NoOp"
	default:
		return fmt.Sprintf("Genus(%d)", int(g))
	}
}

// Loc is a pair of grid coordinates. X is the column, Y the row.
type Loc[T BoxInt] struct {
	X, Y T
}

// Relation classifies how one box nests relative to another.
type Relation int

const (
	Parent Relation = iota
	Child
	Other
)

func (r Relation) String() string {
	switch r {
	case Parent:
		return "Parent"
	case Child:
		return "Child"
	case Other:
		return "Other"
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Box is a rectangle over the source grid. Fields are unexported so a
// constructed box can never violate start <= end.
type Box[T BoxInt] struct {
	start, end Loc[T]
	genus      Genus
}

// BoundsError reports a rectangle whose start does not precede its end
// componentwise. It unwraps to ErrInvalidBounds.
type BoundsError[T BoxInt] struct {
	Start, End Loc[T]
}

func (e *BoundsError[T]) Error() string {
	return fmt.Sprintf("BOX ERROR: start (%d,%d) does not precede end (%d,%d)",
		e.Start.X, e.Start.Y, e.End.X, e.End.Y)
}

func (e *BoundsError[T]) Unwrap() error { return ErrInvalidBounds }

// NewBox validates start <= end on both axes and returns the box.
func NewBox[T BoxInt](start, end Loc[T], genus Genus) (Box[T], error) {
	if end.X < start.X || end.Y < start.Y {
		return Box[T]{}, &BoundsError[T]{Start: start, End: end}
	}
	return Box[T]{start: start, end: end, genus: genus}, nil
}

// Start returns the top-left corner.
func (a Box[T]) Start() Loc[T] { return a.start }

// End returns the bottom-right corner.
func (a Box[T]) End() Loc[T] { return a.end }

// Genus returns the control-flow kind.
func (a Box[T]) Genus() Genus { return a.genus }

// inside reports whether a's rectangle lies within-or-equal to b's on
// both axes.
func (a Box[T]) inside(b Box[T]) bool {
	return a.start.X >= b.start.X &&
		a.end.X <= b.end.X &&
		a.start.Y >= b.start.Y &&
		a.end.Y <= b.end.Y
}

// Relationship classifies a against b: Child when a lies inside b,
// Parent when b lies inside a, Other when neither contains the other.
// Identical rectangles contain each other; containment of a within b is
// tested first, so two equal boxes classify as Child.
func (a Box[T]) Relationship(b Box[T]) Relation {
	switch {
	case a.inside(b):
		return Child
	case b.inside(a):
		return Parent
	default:
		return Other
	}
}

// Before reports that a's rows end strictly above b's begin, so a
// executes strictly before b.
func (a Box[T]) Before(b Box[T]) bool {
	return a.end.Y < b.start.Y
}

// After reports that a's rows begin strictly below b's end.
func (a Box[T]) After(b Box[T]) bool {
	return a.start.Y > b.end.Y
}

// Simultaneous reports overlapping row ranges: geometry implies no
// ordering, and any shared-memory discipline between the two boxes is the
// caller's responsibility.
func (a Box[T]) Simultaneous(b Box[T]) bool {
	return a.end.Y >= b.start.Y && a.start.Y <= b.end.Y
}

package maze

import "math"

// Kind tags the state stored in a Cell.
type Kind uint8

const (
	// KindUncarved marks posts, walls that were never opened, and rooms that
	// have not yet received a region label.
	KindUncarved Kind = iota
	// KindRegion marks a room or opened wall belonging to a region.
	KindRegion
	// KindDistance marks a cell labelled with its hop count from the goal.
	KindDistance
	// KindOnPath marks a cell selected by the backtrace.
	KindOnPath
)

func (k Kind) String() string {
	switch k {
	case KindUncarved:
		return "uncarved"
	case KindRegion:
		return "region"
	case KindDistance:
		return "distance"
	case KindOnPath:
		return "path"
	default:
		return "unknown"
	}
}

const (
	// Unvisited is the distance of a cell the flood has not reached yet.
	Unvisited uint32 = math.MaxUint32
	// EntranceOpen is the distance held by the entrance until the flood
	// reaches it.
	EntranceOpen uint32 = math.MaxUint32 - 1
)

// Cell is the tagged state of one grid coordinate. Value holds the region id
// for KindRegion and the distance for KindDistance; it is zero otherwise.
type Cell struct {
	Kind  Kind
	Value uint32
}

// Uncarved returns the initial cell state.
func Uncarved() Cell { return Cell{} }

// Region returns a cell belonging to region id.
func Region(id uint32) Cell { return Cell{Kind: KindRegion, Value: id} }

// Distance returns a cell labelled with distance d.
func Distance(d uint32) Cell { return Cell{Kind: KindDistance, Value: d} }

// OnPath returns the backtrace marker.
func OnPath() Cell { return Cell{Kind: KindOnPath} }

// Open reports whether the cell is traversable.
func (c Cell) Open() bool { return c.Kind != KindUncarved }

// ViewKind is the coarse classification handed to renderers.
type ViewKind uint8

const (
	ViewWall ViewKind = iota
	ViewRoom
	ViewPath
)

// CellView is the read-only projection of a Cell used for drawing. Label is
// a region label while Measured is false and a distance once it is true.
type CellView struct {
	Kind     ViewKind
	Label    uint32
	Measured bool
}

// Reached reports whether a measured label holds a real distance.
func (v CellView) Reached() bool {
	return v.Measured && v.Label != Unvisited && v.Label != EntranceOpen
}

func (c Cell) view() CellView {
	switch c.Kind {
	case KindRegion:
		return CellView{Kind: ViewRoom, Label: c.Value}
	case KindDistance:
		return CellView{Kind: ViewRoom, Label: c.Value, Measured: true}
	case KindOnPath:
		return CellView{Kind: ViewPath}
	default:
		return CellView{Kind: ViewWall}
	}
}

package main

type Tool int

const (
	ToolNone Tool = iota
	ToolSelect
	ToolPencil
	ToolRectangle
	ToolEllipse
	ToolLine
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolPencil:
		return "pencil"
	case ToolRectangle:
		return "rectangle"
	case ToolEllipse:
		return "ellipse"
	case ToolLine:
		return "line"
	default:
		return "none"
	}
}

// Kind reports the shape kind a drawing tool creates. ok is false for
// ToolNone and ToolSelect.
func (t Tool) Kind() (kind Kind, ok bool) {
	switch t {
	case ToolPencil:
		return KindPencil, true
	case ToolRectangle:
		return KindRectangle, true
	case ToolEllipse:
		return KindEllipse, true
	case ToolLine:
		return KindLine, true
	}
	return 0, false
}

type Kind int

const (
	KindRectangle Kind = iota
	KindSquare
	KindEllipse
	KindCircle
	KindLine
	KindPencil
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindSquare:
		return "square"
	case KindEllipse:
		return "ellipse"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindPencil:
		return "pencil"
	default:
		return "unknown"
	}
}

func (k Kind) valid() bool {
	return k >= KindRectangle && k <= KindPencil
}

// constrained maps rectangle/square and ellipse/circle onto each other
// depending on whether the modifier is held. Other kinds are unchanged.
func (k Kind) constrained(modifier bool) Kind {
	switch {
	case modifier && k == KindRectangle:
		return KindSquare
	case modifier && k == KindEllipse:
		return KindCircle
	case !modifier && k == KindSquare:
		return KindRectangle
	case !modifier && k == KindCircle:
		return KindEllipse
	}
	return k
}

type Action int

const (
	ActionIdle Action = iota
	ActionDrawing
	ActionMoving
)

func (a Action) String() string {
	switch a {
	case ActionDrawing:
		return "drawing"
	case ActionMoving:
		return "moving"
	default:
		return "idle"
	}
}

type EntryType int

const (
	EntryCreated EntryType = iota
	EntryModified
)

const (
	numLayers = 25

	// Hit-test tolerances.
	ellipseSlack    = 1.1
	lineTolerance   = 0.1
	pencilTolerance = 3.0

	pencilSize = 4.0

	maxOpacity    = 100
	minFillWeight = 1
	maxFillWeight = 6

	hachureAngle    = -41.0
	ellipseSegments = 48

	defaultCellWidth  = 8
	defaultCellHeight = 16
)

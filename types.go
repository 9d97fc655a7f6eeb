package main

type Point struct {
	X, Y float64
}

// Style is the set of user-chosen drawing properties, as read from the
// toolbar at the time of an event. FillColor is a 6-digit hex color or empty
// when no fill is set; FillOpacity is already scaled to 0-255.
type Style struct {
	BorderColor string
	FillColor   string
	FillOpacity int
	FillWeight  int
}

// Shape is one drawn primitive. Pencil shapes carry Points and nothing else
// geometric; every other kind carries its two drag anchors (X1,Y1 is the
// drag start, X2,Y2 the current end, not normalized) and a descriptor built
// by the render backend from them.
type Shape struct {
	ID         string
	Kind       Kind
	X1, Y1     float64
	X2, Y2     float64
	Points     []Point
	Layer      int
	Style      Style
	Fill       string // composed #rrggbbaa, empty without fill
	Descriptor *Descriptor
}

// Input is the explicit per-event configuration handed to the board: which
// tool is active, the 1-based layer from the layer selector, the current
// style and whether the constrain modifier is held.
type Input struct {
	Tool     Tool
	Layer    int
	Style    Style
	Modifier bool
}

type Entry struct {
	Type    EntryType
	Inverse interface{}
}

type CreatedData struct {
	Layer int
}

type ModifiedData struct {
	Layer  int
	Index  int
	Kind   Kind
	X1, Y1 float64
	X2, Y2 float64
	Points []Point
}

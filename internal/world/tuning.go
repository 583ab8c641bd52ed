package world

// Board generation
const (
	GridRadius   = 7    // cells on each side of the spawn pad
	CellSpacing  = 2.5  // world units between cell centers
	PadChance    = 0.6  // probability a cell holds a pad
	UnsafeChance = 0.15 // probability a placed pad sinks when landed on
	PadJitter    = 0.4  // max offset from the cell center on x and z
	MinPadSize   = 0.8
	MaxPadSize   = 1.3
	SpawnPadSize = 1.2
	SpawnPadID   = 0
)

// Sinking pads
const (
	SinkRate      = 2.0 // sink progress per second
	SinkDepthRate = 2.0 // depth units per unit of sink progress
	SinkHideDepth = 2.0 // pads deeper than this are no longer drawn
)

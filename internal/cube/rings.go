package cube

// ringSlots names, for a given face, the four edge slots and four corner
// slots that ring around it in clockwise order as seen from outside that
// face. ApplyTwist walks these to cycle pieces and, for the side faces,
// correct orientation.
type ringSlots struct {
	edges   [4]EdgeSlot
	corners [4]CornerSlot
}

var faceRings = map[Face]ringSlots{
	U: {
		edges:   [4]EdgeSlot{EdgeSlotUB, EdgeSlotUR, EdgeSlotUF, EdgeSlotUL},
		corners: [4]CornerSlot{CornerSlotUBL, CornerSlotUBR, CornerSlotUFR, CornerSlotUFL},
	},
	D: {
		edges:   [4]EdgeSlot{EdgeSlotDF, EdgeSlotDR, EdgeSlotDB, EdgeSlotDL},
		corners: [4]CornerSlot{CornerSlotDFL, CornerSlotDFR, CornerSlotDBR, CornerSlotDBL},
	},
	F: {
		edges:   [4]EdgeSlot{EdgeSlotUF, EdgeSlotFR, EdgeSlotDF, EdgeSlotFL},
		corners: [4]CornerSlot{CornerSlotUFL, CornerSlotUFR, CornerSlotDFR, CornerSlotDFL},
	},
	B: {
		edges:   [4]EdgeSlot{EdgeSlotUB, EdgeSlotBL, EdgeSlotDB, EdgeSlotBR},
		corners: [4]CornerSlot{CornerSlotUBL, CornerSlotDBL, CornerSlotDBR, CornerSlotUBR},
	},
	L: {
		edges:   [4]EdgeSlot{EdgeSlotUL, EdgeSlotFL, EdgeSlotDL, EdgeSlotBL},
		corners: [4]CornerSlot{CornerSlotUBL, CornerSlotUFL, CornerSlotDFL, CornerSlotDBL},
	},
	R: {
		edges:   [4]EdgeSlot{EdgeSlotUR, EdgeSlotBR, EdgeSlotDR, EdgeSlotFR},
		corners: [4]CornerSlot{CornerSlotUFR, CornerSlotUBR, CornerSlotDBR, CornerSlotDFR},
	},
}

// orientationCorrection names, for the four faces whose quarter turns change
// orientation (F, B, L, R; only F and B flip edges), the slots that need
// correcting and how. When flipEdges is set, the edgeSlots are toggled
// whenever the turn is a quarter turn (in either direction). cornerCW/cornerCCW partition the four corner slots
// (after the cycle has been applied) into the two that twist clockwise and
// the two that twist counterclockwise.
type orientationCorrection struct {
	flipEdges bool
	edgeSlots [4]EdgeSlot
	cornerCW  [2]CornerSlot
	cornerCCW [2]CornerSlot
}

var faceCorrections = map[Face]orientationCorrection{
	F: {
		flipEdges: true,
		edgeSlots: [4]EdgeSlot{EdgeSlotUF, EdgeSlotFR, EdgeSlotDF, EdgeSlotFL},
		cornerCCW: [2]CornerSlot{CornerSlotUFL, CornerSlotDFR},
		cornerCW:  [2]CornerSlot{CornerSlotUFR, CornerSlotDFL},
	},
	B: {
		flipEdges: true,
		edgeSlots: [4]EdgeSlot{EdgeSlotUB, EdgeSlotBL, EdgeSlotDB, EdgeSlotBR},
		cornerCCW: [2]CornerSlot{CornerSlotUBR, CornerSlotDBL},
		cornerCW:  [2]CornerSlot{CornerSlotUBL, CornerSlotDBR},
	},
	L: {
		flipEdges: false,
		cornerCCW: [2]CornerSlot{CornerSlotUBL, CornerSlotDFL},
		cornerCW:  [2]CornerSlot{CornerSlotUFL, CornerSlotDBL},
	},
	R: {
		flipEdges: false,
		cornerCCW: [2]CornerSlot{CornerSlotUFR, CornerSlotDBR},
		cornerCW:  [2]CornerSlot{CornerSlotUBR, CornerSlotDFR},
	},
}

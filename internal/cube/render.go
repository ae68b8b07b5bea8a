package cube

import "strings"

// renderFace identifies one of the six faces for sticker rendering
// purposes. It intentionally mirrors Face rather than reusing it, because
// the sticker layout walks faces in cross-net order (U, L, F, R, B, D),
// distinct from the twist-vocabulary ordering.
type renderFace int

const (
	faceUp renderFace = iota
	faceLeft
	faceFront
	faceRight
	faceBack
	faceDown
)

func (f renderFace) centerColor() Color {
	switch f {
	case faceUp:
		return White
	case faceLeft:
		return Orange
	case faceFront:
		return Green
	case faceRight:
		return Red
	case faceBack:
		return Blue
	case faceDown:
		return Yellow
	default:
		return White
	}
}

// StickerColor returns the color painted at sticker index (0-8, row-major,
// center at 4) of face.
func (c Cube) StickerColor(face renderFace, sticker int) Color {
	if sticker == 4 {
		return face.centerColor()
	}

	switch face {
	case faceUp:
		switch sticker {
		case 0:
			return c.cornerSticker(CornerSlotUBL, 0)
		case 2:
			return c.cornerSticker(CornerSlotUBR, 0)
		case 6:
			return c.cornerSticker(CornerSlotUFL, 0)
		case 8:
			return c.cornerSticker(CornerSlotUFR, 0)
		case 1:
			return c.edgeSticker(EdgeSlotUB, false)
		case 3:
			return c.edgeSticker(EdgeSlotUL, false)
		case 5:
			return c.edgeSticker(EdgeSlotUR, false)
		case 7:
			return c.edgeSticker(EdgeSlotUF, false)
		}
	case faceLeft:
		switch sticker {
		case 0:
			return c.cornerSticker(CornerSlotUBL, 1)
		case 2:
			return c.cornerSticker(CornerSlotUFL, 2)
		case 6:
			return c.cornerSticker(CornerSlotDBL, 2)
		case 8:
			return c.cornerSticker(CornerSlotDFL, 1)
		case 1:
			return c.edgeSticker(EdgeSlotUL, true)
		case 3:
			return c.edgeSticker(EdgeSlotBL, true)
		case 5:
			return c.edgeSticker(EdgeSlotFL, true)
		case 7:
			return c.edgeSticker(EdgeSlotDL, true)
		}
	case faceFront:
		switch sticker {
		case 0:
			return c.cornerSticker(CornerSlotUFL, 1)
		case 2:
			return c.cornerSticker(CornerSlotUFR, 2)
		case 6:
			return c.cornerSticker(CornerSlotDFL, 2)
		case 8:
			return c.cornerSticker(CornerSlotDFR, 1)
		case 1:
			return c.edgeSticker(EdgeSlotUF, true)
		case 3:
			return c.edgeSticker(EdgeSlotFL, false)
		case 5:
			return c.edgeSticker(EdgeSlotFR, false)
		case 7:
			return c.edgeSticker(EdgeSlotDF, true)
		}
	case faceRight:
		switch sticker {
		case 0:
			return c.cornerSticker(CornerSlotUFR, 1)
		case 2:
			return c.cornerSticker(CornerSlotUBR, 2)
		case 6:
			return c.cornerSticker(CornerSlotDFR, 2)
		case 8:
			return c.cornerSticker(CornerSlotDBR, 1)
		case 1:
			return c.edgeSticker(EdgeSlotUR, true)
		case 3:
			return c.edgeSticker(EdgeSlotFR, true)
		case 5:
			return c.edgeSticker(EdgeSlotBR, true)
		case 7:
			return c.edgeSticker(EdgeSlotDR, true)
		}
	case faceBack:
		switch sticker {
		case 0:
			return c.cornerSticker(CornerSlotUBR, 1)
		case 2:
			return c.cornerSticker(CornerSlotUBL, 2)
		case 6:
			return c.cornerSticker(CornerSlotDBR, 2)
		case 8:
			return c.cornerSticker(CornerSlotDBL, 1)
		case 1:
			return c.edgeSticker(EdgeSlotUB, true)
		case 3:
			return c.edgeSticker(EdgeSlotBR, false)
		case 5:
			return c.edgeSticker(EdgeSlotBL, false)
		case 7:
			return c.edgeSticker(EdgeSlotDB, true)
		}
	case faceDown:
		switch sticker {
		case 0:
			return c.cornerSticker(CornerSlotDFL, 0)
		case 2:
			return c.cornerSticker(CornerSlotDFR, 0)
		case 6:
			return c.cornerSticker(CornerSlotDBL, 0)
		case 8:
			return c.cornerSticker(CornerSlotDBR, 0)
		case 1:
			return c.edgeSticker(EdgeSlotDF, false)
		case 3:
			return c.edgeSticker(EdgeSlotDL, false)
		case 5:
			return c.edgeSticker(EdgeSlotDR, false)
		case 7:
			return c.edgeSticker(EdgeSlotDB, false)
		}
	}
	panic("cube: invalid sticker index")
}

// edgeSticker returns the color shown on one of an edge piece's two
// stickers. stickerFlip selects which of the two physical orientations is
// being asked about (false is the "primary" sticker: top/bottom, or
// front/back for middle-layer edges); it reads color1 when the edge's
// actual flip state matches stickerFlip, color2 otherwise.
func (c Cube) edgeSticker(slot EdgeSlot, stickerFlip bool) Color {
	edge := c.Edges[slot]
	color1, color2 := edge.Identity.Colors()
	if edge.Flipped == stickerFlip {
		return color1
	}
	return color2
}

// cornerSticker returns the color shown at one of a corner piece's three
// stickers. stickerOrient is which sticker position is being asked about
// (0 is top/bottom, 1 is clockwise from that, 2 is counterclockwise), and
// is rotated by the corner's current twist to find which physical color is
// actually showing there.
func (c Cube) cornerSticker(slot CornerSlot, stickerOrient int) Color {
	corner := c.Corners[slot]
	color1, color2, color3 := corner.Identity.Colors()
	colors := [3]Color{color1, color2, color3}
	twistOffset := int(corner.Orientation)
	return colors[(stickerOrient+3-twistOffset)%3]
}

// UnfoldedString renders the cube as a cross-shaped ASCII net: U on top, D
// on the bottom, and L, F, R, B banded across the middle.
func (c Cube) UnfoldedString() string {
	var b strings.Builder

	writeFaceRows := func(face renderFace, indent string) {
		for row := 0; row < 3; row++ {
			b.WriteString(indent)
			for col := 0; col < 3; col++ {
				b.WriteString(c.StickerColor(face, row*3+col).String())
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
	}

	writeFaceRows(faceUp, "      ")

	sides := []renderFace{faceLeft, faceFront, faceRight, faceBack}
	for row := 0; row < 3; row++ {
		for _, face := range sides {
			for col := 0; col < 3; col++ {
				b.WriteString(c.StickerColor(face, row*3+col).String())
				b.WriteByte(' ')
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	writeFaceRows(faceDown, "      ")

	return b.String()
}

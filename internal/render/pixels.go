package render

import "image/color"

// Colors selects the fill used for live and dead cells.
type Colors struct {
	Alive color.Color
	Dead  color.Color
}

// DefaultColors draws live cells white on black.
func DefaultColors() Colors {
	return Colors{Alive: color.White, Dead: color.Black}
}

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf, one
// pixel per cell. buf must hold at least 4*len(cells) bytes.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

package oto

import (
	"encoding/binary"
	"math"
)

// FloatBufferTo16BitLE converts a float32 buffer to 16-bit little-endian
// signed integers, appending them to out. Values outside -1..1 are clipped.
// Reusing the capacity of out avoids allocating on every write.
func FloatBufferTo16BitLE(buff []float32, out []byte) []byte {
	for _, v := range buff {
		var uv int16
		switch {
		case v < -1:
			uv = -math.MaxInt16
		case v > 1:
			uv = math.MaxInt16
		default:
			uv = int16(v * math.MaxInt16)
		}
		out = binary.LittleEndian.AppendUint16(out, uint16(uv))
	}
	return out
}

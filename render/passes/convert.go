package passes

import "math"

// floatBits reinterprets a float32 as the uint32 push-constant word a
// shader reads back with asfloat().
func floatBits(v float32) uint32 {
	return math.Float32bits(v)
}

package visual

import "fmt"

// LerpChannel interpolates one channel from a toward b at t = num/den and
// truncates the result. The arithmetic is exact: floor(a + (b-a)*num/den).
func LerpChannel(a uint8, b uint8, num int, den int) uint8 {
	checkFraction("visual.LerpChannel", num, den)
	// The interpolated value lies between a and b, so the numerator is never
	// negative and integer division floors.
	return uint8((int(a)*den + (int(b)-int(a))*num) / den)
}

// LerpChannels interpolates every channel of a toward b at t = num/den.
// a and b must have the same channel count.
func LerpChannels(a []uint8, b []uint8, num int, den int) []uint8 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("visual.LerpChannels: channel count mismatch %d != %d", len(a), len(b)))
	}
	out := make([]uint8, len(a))
	for i := range a {
		out[i] = LerpChannel(a[i], b[i], num, den)
	}
	return out
}

func Lerp(a Color, b Color, num int, den int) Color {
	from, to := a.Channels(), b.Channels()
	var out [4]uint8
	copy(out[:], LerpChannels(from[:], to[:], num, den))
	return fromChannels(out)
}

func checkFraction(fn string, num int, den int) {
	if den <= 0 {
		panic(fmt.Sprintf("%s: denominator must be positive, got %d", fn, den))
	}
	if num < 0 || num > den {
		panic(fmt.Sprintf("%s: fraction %d/%d outside [0, 1]", fn, num, den))
	}
}

package export

import "fmt"

// Palette colours offered by the drawing tools, packed as ARGB.
const (
	Black  uint32 = 0xFF000000
	White  uint32 = 0xFFFFFFFF
	Red    uint32 = 0xFFFF0000
	Green  uint32 = 0xFF00FF00
	Blue   uint32 = 0xFF0000FF
	Yellow uint32 = 0xFFFFFF00
)

var colorNames = map[uint32]string{
	Black:  "black",
	White:  "white",
	Red:    "red",
	Green:  "green",
	Blue:   "blue",
	Yellow: "yellow",
}

// ColorName returns the palette name of argb, or its hex form for colours
// outside the palette.
func ColorName(argb uint32) string {
	if name, ok := colorNames[argb]; ok {
		return name
	}
	return fmt.Sprintf("#%08X", argb)
}

package screen

import (
	"fmt"

	"github.com/jrockway/wakeup-clock/control/board"
)

// icons maps each icon to its frames.  Icons with more than one frame loop.
var icons = map[board.Icon][]Frame{
	board.Asleep: {mustParse("00000:99099:00000:09990:00000")},
	board.Happy:  {mustParse("00000:09090:00000:90009:09990")},
	board.AllClocks: {
		mustParse("00900:00900:00900:00000:00000"),
		mustParse("00090:00090:00900:00000:00000"),
		mustParse("00000:00099:00900:00000:00000"),
		mustParse("00000:00000:00999:00000:00000"),
		mustParse("00000:00000:00900:00099:00000"),
		mustParse("00000:00000:00900:00090:00090"),
		mustParse("00000:00000:00900:00900:00900"),
		mustParse("00000:00000:00900:09000:09000"),
		mustParse("00000:00000:00900:99000:00000"),
		mustParse("00000:00000:99900:00000:00000"),
		mustParse("00000:99000:00900:00000:00000"),
		mustParse("09000:09000:00900:00000:00000"),
	},
}

// ParseFrame reads a frame written as five rows of five brightness digits separated by colons,
// top row first: "00000:09090:00000:90009:09990".
func ParseFrame(s string) (Frame, error) {
	var f Frame
	x, y := 0, 0
	for _, c := range s {
		switch {
		case c == ':':
			if x != board.Size {
				return Frame{}, fmt.Errorf("row %d: got %d columns, want %d", y, x, board.Size)
			}
			x = 0
			y++
		case c >= '0' && c <= '9':
			if x >= board.Size || y >= board.Size {
				return Frame{}, fmt.Errorf("pixel (%d, %d) is outside the display", x, y)
			}
			f[y][x] = uint8(c - '0')
			x++
		default:
			return Frame{}, fmt.Errorf("invalid character %q", c)
		}
	}
	if y != board.Size-1 || x != board.Size {
		return Frame{}, fmt.Errorf("got %d rows, want %d", y+1, board.Size)
	}
	return f, nil
}

func mustParse(s string) Frame {
	f, err := ParseFrame(s)
	if err != nil {
		panic(fmt.Sprintf("parse frame %q: %v", s, err))
	}
	return f
}

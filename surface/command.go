package surface

import (
	"fmt"

	"github.com/go-theft-auto/gridscroll"
)

// Command is a backend-independent navigation request. Input adapters map
// their key events to commands and hand them to Viewport.Apply.
type Command int

const (
	CmdNone Command = iota
	CmdLineUp
	CmdLineDown
	CmdPageUp
	CmdPageDown
	CmdHome
	CmdEnd
	CmdJumpFirst // smooth scroll to the first item
	CmdJumpLast  // smooth scroll to the last item
)

var commandNames = [...]string{
	CmdNone:      "none",
	CmdLineUp:    "line-up",
	CmdLineDown:  "line-down",
	CmdPageUp:    "page-up",
	CmdPageDown:  "page-down",
	CmdHome:      "home",
	CmdEnd:       "end",
	CmdJumpFirst: "jump-first",
	CmdJumpLast:  "jump-last",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// ParseCommand resolves a command name as printed by String.
func ParseCommand(name string) (Command, error) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return CmdNone, fmt.Errorf("unknown command %q", name)
}

// Apply performs c. Line moves scroll by one row of the bound layout.
func (v *Viewport) Apply(c Command) {
	switch c {
	case CmdLineUp:
		v.ScrollBy(-v.rowSize())
	case CmdLineDown:
		v.ScrollBy(v.rowSize())
	case CmdPageUp:
		v.PageUp()
	case CmdPageDown:
		v.PageDown()
	case CmdHome:
		v.Home()
	case CmdEnd:
		v.End()
	case CmdJumpFirst:
		if v.strategy != nil {
			v.strategy.ScrollToIndex(0, gridscroll.ScrollSmooth)
		}
	case CmdJumpLast:
		if v.strategy != nil && v.dataLength > 0 {
			v.strategy.ScrollToIndex(v.dataLength-1, gridscroll.ScrollSmooth)
		}
	}
}

func (v *Viewport) rowSize() float64 {
	if v.strategy == nil {
		return gridscroll.DefaultRowSize
	}
	return v.strategy.Layout().RowSize
}

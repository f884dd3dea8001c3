package fallsim

import (
	"fmt"
	"io"
	"os"
	"time"
)

// frameStats holds per-frame timing. Only populated when RunConfig.Debug is
// set.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	unitSize   float64
}

// debugOut is where per-frame stats are written.
var debugOut io.Writer = os.Stderr

// debugLog prints timing stats to debugOut.
func (g *game) debugLog() {
	if !g.cfg.Debug {
		return
	}
	st := g.stats
	_, _ = fmt.Fprintf(debugOut,
		"[fallsim] update: %v | draw: %v | total: %v | unit size: %v\n",
		st.updateTime, st.drawTime, st.updateTime+st.drawTime, st.unitSize)
}

package fallsim

import (
	"encoding/json"
	"fmt"
)

// TickKind identifies which handler a Tick is dispatched to.
type TickKind uint8

const (
	TickRender TickKind = iota // draw the current state
	TickUpdate                 // advance the simulation by Dt
	TickResize                 // rescale to Width x Height pixels
)

// String returns the script action name for the kind.
func (k TickKind) String() string {
	switch k {
	case TickRender:
		return "render"
	case TickUpdate:
		return "update"
	case TickResize:
		return "resize"
	default:
		return fmt.Sprintf("TickKind(%d)", k)
	}
}

// Tick is one event delivered by the event source. Only the fields relevant
// to Kind are read.
type Tick struct {
	Kind     TickKind
	Dt       float64  // TickUpdate, seconds
	Width    float64  // TickResize, pixels
	Height   float64  // TickResize, pixels
	Viewport Viewport // TickRender
}

// RenderTick returns a render tick for vp.
func RenderTick(vp Viewport) Tick { return Tick{Kind: TickRender, Viewport: vp} }

// UpdateTick returns an update tick advancing dt seconds.
func UpdateTick(dt float64) Tick { return Tick{Kind: TickUpdate, Dt: dt} }

// ResizeTick returns a resize tick for a w x h window.
func ResizeTick(w, h float64) Tick { return Tick{Kind: TickResize, Width: w, Height: h} }

// scriptStep represents a single action in a tick script.
type scriptStep struct {
	Action string  `json:"action"`
	Dt     float64 `json:"dt,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Repeat int     `json:"repeat,omitempty"`
}

// MaxScriptTicks bounds how many ticks a script may expand into, counting
// repeats.
const MaxScriptTicks = 1 << 20

// tickScript is the top-level JSON structure for a tick script.
type tickScript struct {
	Steps []scriptStep `json:"steps"`
}

// LoadTickScript parses a JSON tick script into the ticks it describes.
// A step with repeat > 1 expands into that many identical ticks, up to
// MaxScriptTicks in total. Render ticks use the most recent resize as their
// viewport.
func LoadTickScript(jsonData []byte) ([]Tick, error) {
	var script tickScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse tick script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse tick script: no steps")
	}

	var (
		ticks []Tick
		vp    Viewport
	)
	for i, st := range script.Steps {
		var t Tick
		switch st.Action {
		case "render":
			t = RenderTick(vp)
		case "update":
			if st.Dt < 0 {
				return nil, fmt.Errorf("parse tick script: step %d: negative dt %v", i, st.Dt)
			}
			t = UpdateTick(st.Dt)
		case "resize":
			if st.Width < 0 || st.Height < 0 {
				return nil, fmt.Errorf("parse tick script: step %d: negative size %vx%v", i, st.Width, st.Height)
			}
			t = ResizeTick(st.Width, st.Height)
			vp = Viewport{Width: st.Width, Height: st.Height}
		default:
			return nil, fmt.Errorf("parse tick script: step %d: unknown action %q", i, st.Action)
		}

		n := st.Repeat
		if n < 1 {
			n = 1
		}
		if n > MaxScriptTicks {
			return nil, fmt.Errorf("parse tick script: step %d: repeat %d exceeds %d", i, n, MaxScriptTicks)
		}
		if len(ticks)+n > MaxScriptTicks {
			return nil, fmt.Errorf("parse tick script: step %d: script expands past %d ticks", i, MaxScriptTicks)
		}
		for range n {
			ticks = append(ticks, t)
		}
	}
	return ticks, nil
}

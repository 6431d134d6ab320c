// Package countdown holds the lifecycle of the single active countdown and
// the formats used to display durations.
package countdown

// State enumerates the lifecycle of a countdown.
type State int

const (
	Idle State = iota
	Running
	Flashing
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Flashing:
		return "flashing"
	default:
		return "idle"
	}
}

// Input is something that happens to a countdown. The set is closed.
type Input interface {
	isInput()
}

// Start selects a preset of Seconds.
type Start struct{ Seconds int }

// Tick is one periodic decrement, tagged with the generation that armed it.
type Tick struct{ Gen int }

// Cancel is an explicit stop from the user.
type Cancel struct{}

// FlashDone fires once the flash window armed by generation Gen elapses.
type FlashDone struct{ Gen int }

func (Start) isInput() {}
func (Tick) isInput() {}
func (Cancel) isInput() {}
func (FlashDone) isInput() {}

// Effect tells the host loop which timer to arm after a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectScheduleTick
	EffectScheduleReset
)

// Countdown is the value state of the active countdown.
type Countdown struct {
	state     State
	remaining int
	total     int
	gen       int
}

func (c Countdown) State() State { return c.state }
func (c Countdown) Remaining() int { return c.remaining }
func (c Countdown) Total() int { return c.total }
func (c Countdown) Gen() int { return c.gen }
func (c Countdown) Active() bool { return c.state != Idle }
func (c Countdown) Finished() bool { return c.state == Flashing }

// Display returns the clock text for the countdown surface.
func (c Countdown) Display() string {
	if c.state == Running {
		return FormatClock(c.remaining)
	}
	return "0:00"
}

// Progress is the elapsed fraction in [0, 1].
func (c Countdown) Progress() float64 {
	if c.total <= 0 || c.state == Flashing {
		return 1
	}
	if c.state == Idle {
		return 0
	}
	return float64(c.total-c.remaining) / float64(c.total)
}

// Step applies in to c and returns the next countdown plus the timer the
// caller must arm. Inputs that do not apply to the current state, and
// timer inputs from an older generation, leave c unchanged.
func Step(c Countdown, in Input) (Countdown, Effect) {
	switch in := in.(type) {
	case Start:
		if c.state != Idle || in.Seconds <= 0 {
			return c, EffectNone
		}
		return Countdown{state: Running, remaining: in.Seconds, total: in.Seconds, gen: c.gen + 1}, EffectScheduleTick
	case Tick:
		if c.state != Running || in.Gen != c.gen {
			return c, EffectNone
		}
		c.remaining--
		if c.remaining <= 0 {
			c.remaining = 0
			c.state = Flashing
			return c, EffectScheduleReset
		}
		return c, EffectScheduleTick
	case Cancel:
		if c.state != Running {
			return c, EffectNone
		}
		// bumping gen invalidates the tick already in flight
		return Countdown{state: Idle, gen: c.gen + 1}, EffectNone
	case FlashDone:
		if c.state != Flashing || in.Gen != c.gen {
			return c, EffectNone
		}
		return Countdown{state: Idle, gen: c.gen}, EffectNone
	}
	return c, EffectNone
}

package crossing

// countdownDone is the counter value that ends a countdown.
const countdownDone = -1

// Countdown is the restart timer shown after a round ends. It is advanced
// once per second by the platform and shows start, start-1, ..., 0 before
// reporting completion on the following tick.
type Countdown struct {
	start   int
	counter int
	active  bool
}

// NewCountdown creates an inactive countdown that starts from start.
func NewCountdown(start int) Countdown {
	return Countdown{start: start, counter: start}
}

// Start arms the countdown from its first value.
func (c *Countdown) Start() {
	c.counter = c.start
	c.active = true
}

// Active reports whether the countdown is running.
func (c *Countdown) Active() bool {
	return c.active
}

// Tick advances the countdown by one interval. It returns the number to
// show, or done=true once the countdown has run out; the countdown is then
// inactive and rearmed for the next Start.
func (c *Countdown) Tick() (value int, done bool) {
	if !c.active {
		return 0, false
	}
	if c.counter == countdownDone {
		c.active = false
		c.counter = c.start
		return 0, true
	}

	value = c.counter
	c.counter--
	return value, false
}

package sim

import "math/rand"

// Harness drives a State headlessly with deterministic seeding. Tests and
// the headless report build games through it.
type Harness struct {
	State *State
	rng   *rand.Rand
}

// optionKind controls the pass in which an option is applied.
type optionKind int

const (
	optInfra  optionKind = iota // rules and seed, applied first
	optEntity                   // log and entities, applied once the state exists
)

// Option is a builder function applied to a Harness during construction.
type Option struct {
	kind optionKind
	rule func(*Rules)
	fn   func(*Harness)
}

// WithPlayfield sets the playfield dimensions.
func WithPlayfield(w, h int) Option {
	return Option{kind: optInfra, rule: func(r *Rules) {
		r.Width = w
		r.Height = h
	}}
}

// WithRules lets a caller tweak any rule.
func WithRules(fn func(*Rules)) Option {
	return Option{kind: optInfra, rule: fn}
}

// WithSeed sets the RNG seed for random zombies.
func WithSeed(seed int64) Option {
	return Option{kind: optInfra, fn: func(h *Harness) {
		h.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}}
}

// WithVerbose turns on per-frame position events.
func WithVerbose(v bool) Option {
	return Option{kind: optEntity, fn: func(h *Harness) {
		h.State.Log.verbose = v
	}}
}

// WithSurvivorAt moves the survivor's centre to (cx, cy).
func WithSurvivorAt(cx, cy int) Option {
	return Option{kind: optEntity, fn: func(h *Harness) {
		h.State.Survivor = NewSurvivor(cx, cy, h.State.Rules.SurvivorSpeed)
	}}
}

// WithZombie adds a zombie centred on (cx, cy).
func WithZombie(cx, cy, vx, vy int) Option {
	return Option{kind: optEntity, fn: func(h *Harness) {
		h.State.AddZombie(cx, cy, vx, vy)
	}}
}

// WithRandomZombies adds n zombies placed by the seeded RNG.
func WithRandomZombies(n int) Option {
	return Option{kind: optEntity, fn: func(h *Harness) {
		for i := 0; i < n; i++ {
			h.State.spawnZombie(h.rng)
		}
	}}
}

// NewHarness builds an empty game (no zombies unless asked for) from the
// default rules and the given options, infra options first.
func NewHarness(opts ...Option) *Harness {
	h := &Harness{
		rng: rand.New(rand.NewSource(1)), // #nosec G404 -- harness default
	}
	rules := DefaultRules()
	for _, o := range opts {
		if o.kind != optInfra {
			continue
		}
		if o.rule != nil {
			o.rule(&rules)
		}
		if o.fn != nil {
			o.fn(h)
		}
	}
	h.State = newEmpty(rules)
	for _, o := range opts {
		if o.kind == optEntity {
			o.fn(h)
		}
	}
	return h
}

// Step runs one frame with the given input.
func (h *Harness) Step(in Input) error {
	return Step(h.State, in)
}

// RunFrames steps n frames with the same input.
func (h *Harness) RunFrames(n int, in Input) {
	for i := 0; i < n; i++ {
		_ = Step(h.State, in)
	}
}

// RunUntilOver steps with inputs from pilot until the phase turns terminal
// or maxFrames pass, and returns the frames stepped.
func (h *Harness) RunUntilOver(maxFrames int, pilot func(*State) Input) int {
	n := 0
	for n < maxFrames && !h.State.Phase.Terminal() {
		_ = Step(h.State, pilot(h.State))
		n++
	}
	return n
}

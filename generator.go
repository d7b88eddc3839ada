package idtheory

import (
	"sync"
)

// Generator mints IDs with strictly non-decreasing (timestamp, counter)
// ordering for calls against the same instance, assuming the wall clock never
// moves backward. It is safe for concurrent use.
//
// The intended deployment shape is one generator per process (the package
// functions Next and NextWithTag use a shared default). Independent instances
// in the same process each track their own millisecond/counter state, so IDs
// from different instances can collide within a millisecond; that contract is
// documented here rather than enforced.
//
// Known limitations, deliberate in both cases:
//
//   - Counter wraparound. The counter contributes only its low 8 bits to the
//     packed value, for bit-compatibility with identifiers already stored in
//     the original format. More than 256 IDs minted in one millisecond wrap
//     the counter silently back to 0 and can collide, favoring availability
//     over rejection.
//   - Clock regression. A wall clock stepped backward (for example by an NTP
//     correction) is treated as an ordinary new millisecond: the counter
//     resets and the minted ID can order before one issued earlier. No
//     monotonic time source or stall compensates for this.
type Generator struct {
	mu      sync.Mutex
	clock   Clock
	lastMS  int64
	counter uint16
}

type Option func(*Generator)

// WithClock injects a time source, letting tests drive deterministic
// timestamps. A nil clock restores the real clock.
func WithClock(clock Clock) Option {
	return func(g *Generator) {
		if clock == nil {
			g.clock = RealClock{}
			return
		}
		g.clock = clock
	}
}

// New creates a Generator backed by the real clock unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{clock: RealClock{}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Next mints an ID with tag 0.
func (g *Generator) Next() ID {
	return g.NextWithTag(0)
}

// NextWithTag mints an ID carrying the given tag byte.
//
// The clock sample, counter update, and field packing form one critical
// section: concurrent callers block until the holder finishes, and no partial
// state is ever observable. The section is a clock read plus integer
// arithmetic, so contention cost is negligible at realistic call rates.
func (g *Generator) NextWithTag(tag uint8) ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now().UnixMilli() - EpochMillis
	if now != g.lastMS {
		g.lastMS = now
		g.counter = 0
	} else {
		g.counter++
	}
	return pack(g.lastMS, g.counter, tag)
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

func defaultGenerator() *Generator {
	defaultOnce.Do(func() {
		defaultGen = New()
	})
	return defaultGen
}

// Next mints an ID from the process-wide default generator.
func Next() ID {
	return defaultGenerator().Next()
}

// NextWithTag mints an ID with the given tag from the process-wide default
// generator.
func NextWithTag(tag uint8) ID {
	return defaultGenerator().NextWithTag(tag)
}

package gamecode

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/friendships-game/partyserver/internal/common/gamecode Generator

// Prefix is the fixed lead-in on every game code.
const Prefix = "FRND"

// Alphabet excludes visually confusable characters (0/O, 1/I/L... keeps L).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// randomLength is the number of random characters after the prefix.
const randomLength = 6

// Generator produces shareable game codes. Callers are responsible for
// collision checks against live games; Generate alone does not guarantee
// uniqueness.
type Generator interface {
	Generate() string
}

// DefaultGenerator implements Generator with a seeded PRNG.
type DefaultGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a DefaultGenerator seeded from the current time.
func New() *DefaultGenerator {
	return &DefaultGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate returns a new code: the fixed prefix plus 6 characters drawn
// independently and uniformly from Alphabet.
func (g *DefaultGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(len(Prefix) + randomLength)
	b.WriteString(Prefix)
	for i := 0; i < randomLength; i++ {
		b.WriteByte(Alphabet[g.rng.Intn(len(Alphabet))])
	}
	return b.String()
}

// Canonical normalizes a caller-supplied code for lookup. Codes are matched
// case-insensitively; upper case is the canonical form.
func Canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Package simulate fabricates classroom answer batches so a session can be
// driven without real students in the room.
package simulate

import (
	"math/rand/v2"

	"github.com/classpulse/classpulse/internal/agent"
)

// Preset names a canned answer pattern.
type Preset string

const (
	PresetPass   Preset = "pass"   // about 80% of the class answers correctly
	PresetFail   Preset = "fail"   // about 40% of the class answers correctly
	PresetRandom Preset = "random" // each student flips a coin biased 50-80%
	PresetCustom Preset = "custom" // caller supplies the pass rate
)

// defaultWrongOptions stands in when a question carries no usable options.
var defaultWrongOptions = []string{"Option A", "Option B", "Option C"}

// Generator builds response batches from a deterministic random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator wraps the given source. A nil source gets a fresh one seeded
// from the global generator.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate produces one response per student for the given preset. The
// customRate argument is consulted only for PresetCustom.
func (g *Generator) Generate(preset Preset, students []Student, correct string, wrong []string, customRate float64) []agent.StudentResponse {
	switch preset {
	case PresetPass:
		return g.fixedRate(students, correct, wrong, 0.8)
	case PresetFail:
		return g.fixedRate(students, correct, wrong, 0.4)
	case PresetRandom:
		return g.coinFlips(students, correct, wrong)
	case PresetCustom:
		return g.shuffledRate(students, correct, wrong, customRate)
	default:
		return g.coinFlips(students, correct, wrong)
	}
}

// fixedRate marks the first floor(rate*N) students correct, in roster order.
func (g *Generator) fixedRate(students []Student, correct string, wrong []string, rate float64) []agent.StudentResponse {
	passCount := int(float64(len(students)) * rate)

	responses := make([]agent.StudentResponse, 0, len(students))
	for i, st := range students {
		responses = append(responses, g.response(st, i < passCount, correct, wrong))
	}
	return responses
}

// coinFlips draws one class-wide pass rate in [0.5, 0.8) and then lets each
// student pass independently with that probability.
func (g *Generator) coinFlips(students []Student, correct string, wrong []string) []agent.StudentResponse {
	passRate := 0.5 + g.rng.Float64()*0.3

	responses := make([]agent.StudentResponse, 0, len(students))
	for _, st := range students {
		responses = append(responses, g.response(st, g.rng.Float64() < passRate, correct, wrong))
	}
	return responses
}

// shuffledRate marks exactly floor(rate*N) students correct, with the
// passing subset chosen at random.
func (g *Generator) shuffledRate(students []Student, correct string, wrong []string, rate float64) []agent.StudentResponse {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	passCount := int(float64(len(students)) * rate)

	position := g.rng.Perm(len(students))

	responses := make([]agent.StudentResponse, 0, len(students))
	for i, st := range students {
		responses = append(responses, g.response(st, position[i] < passCount, correct, wrong))
	}
	return responses
}

func (g *Generator) response(st Student, isCorrect bool, correct string, wrong []string) agent.StudentResponse {
	selected := correct
	if !isCorrect {
		selected = g.wrongAnswer(wrong)
	}
	return agent.StudentResponse{
		StudentID:      st.ID,
		IsCorrect:      isCorrect,
		ResponseTimeMs: g.responseTime(),
		SelectedAnswer: selected,
	}
}

// responseTime draws a think time between 10 and 30 seconds, in milliseconds.
func (g *Generator) responseTime() int {
	return g.rng.IntN(20000) + 10000
}

func (g *Generator) wrongAnswer(wrong []string) string {
	if len(wrong) == 0 {
		wrong = defaultWrongOptions
	}
	return wrong[g.rng.IntN(len(wrong))]
}

// WrongOptions filters the correct answer out of a question's option list,
// for feeding back into Generate.
func WrongOptions(options []string, correct string) []string {
	wrong := make([]string, 0, len(options))
	for _, opt := range options {
		if opt != correct {
			wrong = append(wrong, opt)
		}
	}
	return wrong
}

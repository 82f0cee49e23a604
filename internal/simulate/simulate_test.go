package simulate

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

func testGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed)))
}

func correctCount(g *Generator, preset Preset, n int, rate float64) int {
	students := DemoRoster()[:n]
	responses := g.Generate(preset, students, "4", []string{"2", "6", "8"}, rate)

	count := 0
	for _, r := range responses {
		if r.IsCorrect {
			count++
		}
	}
	return count
}

func TestPassPreset_ExactCount(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		if got := correctCount(testGenerator(seed), PresetPass, 10, 0); got != 8 {
			t.Fatalf("seed %d: pass preset correct = %d, want 8", seed, got)
		}
	}
}

func TestFailPreset_ExactCount(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		if got := correctCount(testGenerator(seed), PresetFail, 10, 0); got != 4 {
			t.Fatalf("seed %d: fail preset correct = %d, want 4", seed, got)
		}
	}
}

func TestCustomPreset_FloorOfRate(t *testing.T) {
	cases := []struct {
		n    int
		rate float64
		want int
	}{
		{10, 0.75, 7},
		{10, 0.0, 0},
		{10, 1.0, 10},
		{7, 0.5, 3},
		{3, 0.99, 2},
	}
	for _, tc := range cases {
		for seed := uint64(1); seed <= 10; seed++ {
			got := correctCount(testGenerator(seed), PresetCustom, tc.n, tc.rate)
			if got != tc.want {
				t.Fatalf("seed %d: custom(%d students, rate %.2f) correct = %d, want %d",
					seed, tc.n, tc.rate, got, tc.want)
			}
		}
	}
}

func TestCustomPreset_RateClamped(t *testing.T) {
	if got := correctCount(testGenerator(1), PresetCustom, 10, 1.5); got != 10 {
		t.Errorf("rate above 1: correct = %d, want 10", got)
	}
	if got := correctCount(testGenerator(1), PresetCustom, 10, -0.5); got != 0 {
		t.Errorf("rate below 0: correct = %d, want 0", got)
	}
}

func TestRandomPreset_Bounds(t *testing.T) {
	// The per-student coin flip means counts vary, but every response must
	// still be well-formed.
	g := testGenerator(7)
	responses := g.Generate(PresetRandom, DemoRoster(), "4", []string{"2", "6", "8"}, 0)

	if len(responses) != 10 {
		t.Fatalf("responses = %d, want 10", len(responses))
	}
	for _, r := range responses {
		if r.StudentID == "" {
			t.Error("response missing student id")
		}
	}
}

func TestResponses_AnswersAndTimes(t *testing.T) {
	wrong := []string{"2", "6", "8"}
	wrongSet := map[string]bool{"2": true, "6": true, "8": true}

	g := testGenerator(3)
	responses := g.Generate(PresetPass, DemoRoster(), "4", wrong, 0)

	for _, r := range responses {
		if r.IsCorrect && r.SelectedAnswer != "4" {
			t.Errorf("correct response selected %q", r.SelectedAnswer)
		}
		if !r.IsCorrect && !wrongSet[r.SelectedAnswer] {
			t.Errorf("wrong response selected %q, not in wrong set", r.SelectedAnswer)
		}
		if r.ResponseTimeMs < 10000 || r.ResponseTimeMs >= 30000 {
			t.Errorf("response time %d out of [10000, 30000)", r.ResponseTimeMs)
		}
	}
}

func TestResponses_EmptyWrongOptionsFallBack(t *testing.T) {
	g := testGenerator(3)
	responses := g.Generate(PresetFail, DemoRoster(), "4", nil, 0)

	for _, r := range responses {
		if !r.IsCorrect && r.SelectedAnswer == "" {
			t.Error("wrong response with empty answer")
		}
	}
}

func TestWrongOptions(t *testing.T) {
	got := WrongOptions([]string{"2", "4", "6", "8"}, "4")
	if len(got) != 3 {
		t.Fatalf("wrong options = %v", got)
	}
	for _, opt := range got {
		if opt == "4" {
			t.Error("correct answer left in wrong set")
		}
	}
}

func TestDemoRoster(t *testing.T) {
	roster := DemoRoster()
	if len(roster) != 10 {
		t.Fatalf("roster size = %d, want 10", len(roster))
	}
	seen := map[string]bool{}
	for _, st := range roster {
		if st.ID == "" || st.Name == "" {
			t.Errorf("incomplete entry %+v", st)
		}
		if seen[st.ID] {
			t.Errorf("duplicate id %s", st.ID)
		}
		seen[st.ID] = true
	}
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	content := `[{"id":"a1","name":"Asha"},{"id":"b2","name":"Bharat"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	students, err := LoadRoster(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(students) != 2 || students[0].Name != "Asha" {
		t.Errorf("students = %+v", students)
	}
}

func TestLoadRoster_Invalid(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRoster(empty); err == nil {
		t.Error("empty roster accepted")
	}

	noID := filepath.Join(dir, "noid.json")
	if err := os.WriteFile(noID, []byte(`[{"name":"x"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRoster(noID); err == nil {
		t.Error("roster entry without id accepted")
	}

	if _, err := LoadRoster(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
}

package resolver

import (
	"testing"

	"trainingcopilot/models"
)

// fakeOption records selection state without any backing document.
type fakeOption struct {
	selected bool
}

func (o *fakeOption) Selected() bool     { return o.selected }
func (o *fakeOption) SetSelected(v bool) { o.selected = v }

func questionWith(n int) models.Question {
	opts := make([]models.Option, n)
	for i := range opts {
		opts[i] = &fakeOption{}
	}
	return models.Question{Text: "Q", Options: opts}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		options   int
		wantKind  models.OutcomeKind
		wantIndex int
	}{
		{"bare letter", "B", 4, models.OutcomeApplied, 1},
		{"letter in sentence", "The answer is B.", 4, models.OutcomeApplied, 1},
		{"lowercase", "i think c", 4, models.OutcomeApplied, 2},
		{"first letter wins", "A or D", 4, models.OutcomeApplied, 0},
		{"letter inside word ignored", "Drink water. B", 4, models.OutcomeApplied, 1},
		{"no letter", "I am not sure", 4, models.OutcomeNoMatch, 0},
		{"empty answer", "", 4, models.OutcomeNoMatch, 0},
		{"out of range", "The answer is B.", 1, models.OutcomeOutOfRange, 1},
		{"d on last option", "d", 4, models.OutcomeApplied, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := questionWith(tt.options)
			got := Resolve(tt.answer, q)
			if got.Kind != tt.wantKind {
				t.Fatalf("Resolve(%q).Kind = %v, want %v", tt.answer, got.Kind, tt.wantKind)
			}
			if got.Kind != models.OutcomeNoMatch && got.Index != tt.wantIndex {
				t.Errorf("Resolve(%q).Index = %d, want %d", tt.answer, got.Index, tt.wantIndex)
			}
		})
	}
}

func TestResolveSelectsOnlyOneOption(t *testing.T) {
	q := questionWith(4)
	out := Resolve("C", q)
	if out.Kind != models.OutcomeApplied {
		t.Fatalf("Resolve() kind = %v, want Applied", out.Kind)
	}
	for i, opt := range q.Options {
		want := i == 2
		if opt.Selected() != want {
			t.Errorf("option %d selected = %v, want %v", i, opt.Selected(), want)
		}
	}
}

func TestResolveNeverClears(t *testing.T) {
	q := questionWith(4)
	q.Options[0].(*fakeOption).selected = true

	Resolve("B", q)
	if !q.Options[0].Selected() {
		t.Error("resolver cleared a previously selected option")
	}
	if !q.Options[1].Selected() {
		t.Error("resolver did not select the answered option")
	}
}

func TestResolveNoMatchTouchesNothing(t *testing.T) {
	q := questionWith(2)
	Resolve("no idea", q)
	for i, opt := range q.Options {
		if opt.Selected() {
			t.Errorf("option %d selected after NoMatch, want untouched", i)
		}
	}
}

package bots

import (
	"testing"

	"github.com/James202017/real-estate-bots/core/form"
)

func all() map[string]*form.Definition {
	return map[string]*form.Definition{
		"invest":    Invest(),
		"property":  Property(),
		"appraisal": Appraisal(),
		"insurance": Insurance(),
	}
}

func TestDefinitionsAreValid(t *testing.T) {
	for name, def := range all() {
		if err := def.Check(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestEveryDefinitionHasBackNavigation(t *testing.T) {
	for name, def := range all() {
		if def.BackLabel != "🔙 Назад" {
			t.Errorf("%s: back label = %q", name, def.BackLabel)
		}
		if def.BackNotice == "" {
			t.Errorf("%s: empty back notice", name)
		}
		// Every step keyboard must offer the back button.
		for _, st := range def.Steps {
			found := false
			for _, row := range st.Keyboard {
				for _, btn := range row {
					if btn == def.BackLabel {
						found = true
					}
				}
			}
			if !found {
				t.Errorf("%s: step %q keyboard has no back button", name, st.ID)
			}
		}
	}
}

func TestChoiceKeyboardsMatchValidators(t *testing.T) {
	cases := []struct {
		def    *form.Definition
		stepID string
	}{
		{Invest(), "direction"},
		{Insurance(), "direction"},
	}
	for _, tc := range cases {
		var step *form.Step
		for i := range tc.def.Steps {
			if tc.def.Steps[i].ID == tc.stepID {
				step = &tc.def.Steps[i]
			}
		}
		if step == nil {
			t.Fatalf("%s: step %q missing", tc.def.ID, tc.stepID)
		}
		for _, row := range step.Keyboard {
			for _, btn := range row {
				if btn == tc.def.BackLabel {
					continue
				}
				if _, err := step.Validate(btn); err != nil {
					t.Errorf("%s: keyboard option %q rejected by validator", tc.def.ID, btn)
				}
			}
		}
		// And something off the keyboard must be rejected.
		if _, err := step.Validate("свой вариант"); err == nil {
			t.Errorf("%s: free text accepted by choice step", tc.def.ID)
		}
	}
}

func TestOptionalCommentSteps(t *testing.T) {
	for _, def := range []*form.Definition{Invest(), Appraisal(), Insurance()} {
		for _, st := range def.Steps {
			if st.ID != "comment" {
				continue
			}
			if _, err := st.Validate(""); err != nil {
				t.Errorf("%s: comment step rejects empty input", def.ID)
			}
		}
	}
}

func TestContactIsAlwaysLast(t *testing.T) {
	for name, def := range all() {
		last := def.Steps[len(def.Steps)-1]
		if last.ID != "contact" {
			t.Errorf("%s: last step = %q, want contact", name, last.ID)
		}
		if _, err := last.Validate("   "); err == nil {
			t.Errorf("%s: blank contact accepted", name)
		}
	}
}

package nutrition

import "fmt"

// Step is a screen of the profile wizard.
type Step int

const (
	Step1 Step = iota + 1
	Step2
	Step3
	Step4
)

func (s Step) String() string {
	switch s {
	case Step1:
		return "basics"
	case Step2:
		return "activity"
	case Step3:
		return "health"
	case Step4:
		return "diet"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

type transition struct {
	next      Step
	back      Step
	completes bool
}

// transitions is the whole wizard flow. A step whose back equals itself
// has no previous screen; completes marks the step where next finishes the
// wizard instead of moving.
var transitions = map[Step]transition{
	Step1: {next: Step2, back: Step1},
	Step2: {next: Step3, back: Step1},
	Step3: {next: Step4, back: Step2},
	Step4: {next: Step4, back: Step3, completes: true},
}

// ProfileEdit carries the fields a client wants to set. Nil fields are
// left untouched.
type ProfileEdit struct {
	Age               *int
	Gender            *Gender
	HeightCM          *float64
	WeightKG          *float64
	ActivityLevel     *ActivityLevel
	WeightGoal        *WeightGoal
	DietaryPreference *DietaryPreference
}

// fieldSteps reports, for each field set in the edit, the step that owns it.
func (e ProfileEdit) fieldSteps() map[string]Step {
	owned := map[string]Step{}
	if e.Age != nil {
		owned["age"] = Step1
	}
	if e.Gender != nil {
		owned["gender"] = Step1
	}
	if e.HeightCM != nil {
		owned["height_cm"] = Step1
	}
	if e.WeightKG != nil {
		owned["weight_kg"] = Step1
	}
	if e.ActivityLevel != nil {
		owned["activity_level"] = Step2
	}
	if e.WeightGoal != nil {
		owned["weight_goal"] = Step2
	}
	if e.DietaryPreference != nil {
		owned["dietary_preference"] = Step4
	}
	return owned
}

// CompletionFunc receives the finished profile when the wizard completes.
type CompletionFunc func(Profile) error

// Wizard is the four step health profile questionnaire. It is not safe
// for concurrent use.
type Wizard struct {
	step        Step
	profile     Profile
	onComplete  CompletionFunc
	completions int
}

func NewWizard(onComplete CompletionFunc) *Wizard {
	return &Wizard{
		step:       Step1,
		profile:    DefaultProfile(),
		onComplete: onComplete,
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Profile() Profile {
	return w.profile.Clone()
}

// Completed reports whether the wizard has finished at least once.
func (w *Wizard) Completed() bool {
	return w.completions > 0
}

func (w *Wizard) CanGoBack() bool {
	return transitions[w.step].back != w.step
}

// Next moves to the following step. On the last step it validates the
// profile and hands it to the completion callback instead, staying put.
func (w *Wizard) Next() (bool, error) {
	t := transitions[w.step]
	if !t.completes {
		w.step = t.next
		return false, nil
	}

	if err := w.profile.Validate(); err != nil {
		return false, err
	}
	final := w.profile.Normalized()
	if w.onComplete != nil {
		if err := w.onComplete(final.Clone()); err != nil {
			return false, fmt.Errorf("complete profile: %w", err)
		}
	}
	w.profile = final
	w.completions++
	return true, nil
}

// Back returns to the previous step. It does nothing on the first step.
func (w *Wizard) Back() {
	w.step = transitions[w.step].back
}

// Apply sets every non-nil field of edit. Either all fields are applied or
// none are.
func (w *Wizard) Apply(edit ProfileEdit) error {
	for field, owner := range edit.fieldSteps() {
		if owner != w.step {
			return fmt.Errorf("%s on step %s: %w", field, w.step, ErrFieldNotInStep)
		}
	}

	next := w.profile.Clone()
	if edit.Age != nil {
		next.Age = *edit.Age
	}
	if edit.Gender != nil {
		next.Gender = *edit.Gender
	}
	if edit.HeightCM != nil {
		next.HeightCM = *edit.HeightCM
	}
	if edit.WeightKG != nil {
		next.WeightKG = *edit.WeightKG
	}
	if edit.ActivityLevel != nil {
		next.ActivityLevel = *edit.ActivityLevel
	}
	if edit.WeightGoal != nil {
		next.WeightGoal = *edit.WeightGoal
	}
	if edit.DietaryPreference != nil {
		next.DietaryPreference = *edit.DietaryPreference
	}
	if err := next.Validate(); err != nil {
		return err
	}

	w.profile = next
	return nil
}

// Toggle flips value in one of the multi-select lists and reports whether
// it is selected afterwards.
func (w *Wizard) Toggle(field MultiSelectField, value string) (bool, error) {
	options, ok := field.options()
	if !ok {
		return false, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	if w.step != Step3 {
		return false, fmt.Errorf("%s on step %s: %w", field, w.step, ErrFieldNotInStep)
	}
	if !isOption(options, value) {
		return false, fmt.Errorf("%s %q: %w", field, value, ErrUnknownOption)
	}
	return w.profile.selection(field).Toggle(canonicalOption(options, value)), nil
}

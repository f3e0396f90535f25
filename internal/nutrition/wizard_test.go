package nutrition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewWizardDefaults(t *testing.T) {
	w := NewWizard(nil)

	assert.Equal(t, Step1, w.Step())
	assert.False(t, w.CanGoBack())
	assert.False(t, w.Completed())

	p := w.Profile()
	assert.Equal(t, 30, p.Age)
	assert.Equal(t, GenderMale, p.Gender)
	assert.Equal(t, 170.0, p.HeightCM)
	assert.Equal(t, 70.0, p.WeightKG)
	assert.Equal(t, ActivityModerate, p.ActivityLevel)
	assert.Equal(t, DietOmnivore, p.DietaryPreference)
	assert.Equal(t, GoalMaintain, p.WeightGoal)
	assert.Zero(t, p.HealthConditions.Len())
	assert.Zero(t, p.Allergies.Len())
}

func TestWizardBackAtFirstStepIsNoop(t *testing.T) {
	w := NewWizard(nil)

	w.Back()
	w.Back()

	assert.Equal(t, Step1, w.Step())
}

func TestWizardLinearTransitions(t *testing.T) {
	w := NewWizard(nil)

	for _, want := range []Step{Step2, Step3, Step4} {
		done, err := w.Next()
		require.NoError(t, err)
		assert.False(t, done)
		assert.Equal(t, want, w.Step())
	}

	for _, want := range []Step{Step3, Step2, Step1} {
		w.Back()
		assert.Equal(t, want, w.Step())
	}
}

func TestWizardNextAtLastStepCompletesOncePerCall(t *testing.T) {
	calls := 0
	var got Profile
	w := NewWizard(func(p Profile) error {
		calls++
		got = p
		return nil
	})
	for i := 0; i < 3; i++ {
		_, err := w.Next()
		require.NoError(t, err)
	}
	require.Equal(t, Step4, w.Step())

	done, err := w.Next()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 1, calls)
	assert.Equal(t, Step4, w.Step())
	assert.True(t, w.Completed())
	assert.Equal(t, 30, got.Age)

	done, err = w.Next()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 2, calls)
	assert.Equal(t, Step4, w.Step())
}

func TestWizardCompletionErrorIsReturned(t *testing.T) {
	w := NewWizard(func(Profile) error { return errors.New("store down") })
	for i := 0; i < 3; i++ {
		_, _ = w.Next()
	}

	done, err := w.Next()

	assert.False(t, done)
	assert.Error(t, err)
	assert.False(t, w.Completed())
}

func TestWizardApply(t *testing.T) {
	tests := []struct {
		name    string
		advance int
		edit    ProfileEdit
		wantErr error
		check   func(*testing.T, Profile)
	}{
		{
			name: "step one fields",
			edit: ProfileEdit{Age: ptr(41), Gender: ptr(GenderFemale), HeightCM: ptr(162.5), WeightKG: ptr(58.0)},
			check: func(t *testing.T, p Profile) {
				assert.Equal(t, 41, p.Age)
				assert.Equal(t, GenderFemale, p.Gender)
				assert.Equal(t, 162.5, p.HeightCM)
				assert.Equal(t, 58.0, p.WeightKG)
			},
		},
		{
			name:    "step two fields",
			advance: 1,
			edit:    ProfileEdit{ActivityLevel: ptr(ActivityVeryActive), WeightGoal: ptr(GoalLose)},
			check: func(t *testing.T, p Profile) {
				assert.Equal(t, ActivityVeryActive, p.ActivityLevel)
				assert.Equal(t, GoalLose, p.WeightGoal)
			},
		},
		{
			name:    "step four field",
			advance: 3,
			edit:    ProfileEdit{DietaryPreference: ptr(DietVegan)},
			check: func(t *testing.T, p Profile) {
				assert.Equal(t, DietVegan, p.DietaryPreference)
			},
		},
		{
			name:    "field owned by another step",
			edit:    ProfileEdit{DietaryPreference: ptr(DietKeto)},
			wantErr: ErrFieldNotInStep,
		},
		{
			name:    "negative age",
			edit:    ProfileEdit{Age: ptr(-3)},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "zero height",
			edit:    ProfileEdit{HeightCM: ptr(0.0)},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown gender",
			edit:    ProfileEdit{Gender: ptr(Gender("robot"))},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown weight goal",
			advance: 1,
			edit:    ProfileEdit{WeightGoal: ptr(WeightGoal("bulk"))},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWizard(nil)
			for i := 0; i < tt.advance; i++ {
				_, err := w.Next()
				require.NoError(t, err)
			}
			before := w.Profile()

			err := w.Apply(tt.edit)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, w.Profile())
				return
			}
			require.NoError(t, err)
			tt.check(t, w.Profile())
		})
	}
}

func TestWizardApplyIsAllOrNothing(t *testing.T) {
	w := NewWizard(nil)

	err := w.Apply(ProfileEdit{Age: ptr(25), WeightKG: ptr(-1.0)})

	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, 30, w.Profile().Age)
}

func TestWizardToggle(t *testing.T) {
	w := NewWizard(nil)
	_, err := w.Toggle(FieldHealthConditions, "Diabetes")
	assert.ErrorIs(t, err, ErrFieldNotInStep)

	w.Next()
	w.Next()
	require.Equal(t, Step3, w.Step())

	selected, err := w.Toggle(FieldHealthConditions, "Diabetes")
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = w.Toggle(FieldAllergies, "tree nuts")
	require.NoError(t, err)
	assert.True(t, selected)
	assert.Equal(t, []string{"Tree Nuts"}, w.Profile().Allergies.Values())

	_, err = w.Toggle(FieldAllergies, "Gluten")
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = w.Toggle(MultiSelectField("hobbies"), "Chess")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestWizardToggleTwiceRestoresSelection(t *testing.T) {
	w := NewWizard(nil)
	w.Next()
	w.Next()
	_, err := w.Toggle(FieldHealthConditions, "IBS")
	require.NoError(t, err)
	before := w.Profile().HealthConditions.Values()

	for _, v := range []string{"Hypertension", "Hypertension", "None", "None"} {
		_, err := w.Toggle(FieldHealthConditions, v)
		require.NoError(t, err)
	}

	assert.Equal(t, before, w.Profile().HealthConditions.Values())
}

func TestWizardCompletionDropsNoneBesideRealChoices(t *testing.T) {
	var got Profile
	w := NewWizard(func(p Profile) error {
		got = p
		return nil
	})
	w.Next()
	w.Next()
	w.Toggle(FieldHealthConditions, "None")
	w.Toggle(FieldHealthConditions, "Diabetes")
	w.Toggle(FieldAllergies, "None")
	w.Next()

	done, err := w.Next()

	require.NoError(t, err)
	require.True(t, done)
	assert.Equal(t, []string{"Diabetes"}, got.HealthConditions.Values())
	assert.Equal(t, []string{"None"}, got.Allergies.Values())
}

func TestProfileBMI(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, 24.2, p.BMI())

	p.HeightCM = 0
	assert.Zero(t, p.BMI())
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "basics", Step1.String())
	assert.Equal(t, "diet", Step4.String())
	assert.Equal(t, "step(9)", Step(9).String())
}

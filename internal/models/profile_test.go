package models

import (
	"errors"
	"testing"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		in      ProfileInput
		want    UserProfile
		wantErr bool
	}{
		{
			name: "full input",
			in:   ProfileInput{Weight: "70", Height: "1.75", Age: "25", Gender: "male", ActivityLevel: "2", Goal: "maintain"},
			want: UserProfile{Weight: 70, Height: 1.75, Age: 25, Gender: GenderMale, ActivityLevel: ActivityLight, Goal: GoalMaintain},
		},
		{
			name: "defaults for selects",
			in:   ProfileInput{Weight: "60.5", Height: "1.62", Age: "41"},
			want: UserProfile{Weight: 60.5, Height: 1.62, Age: 41, Gender: GenderMale, ActivityLevel: ActivitySedentary, Goal: GoalMaintain},
		},
		{
			name: "female loss",
			in:   ProfileInput{Weight: " 55 ", Height: "1.6", Age: "30", Gender: "Female", ActivityLevel: "5", Goal: "loss"},
			want: UserProfile{Weight: 55, Height: 1.6, Age: 30, Gender: GenderFemale, ActivityLevel: ActivitySuper, Goal: GoalLoss},
		},
		{name: "missing weight", in: ProfileInput{Height: "1.75", Age: "25"}, wantErr: true},
		{name: "missing height", in: ProfileInput{Weight: "70", Age: "25"}, wantErr: true},
		{name: "missing age", in: ProfileInput{Weight: "70", Height: "1.75"}, wantErr: true},
		{name: "non-numeric weight", in: ProfileInput{Weight: "heavy", Height: "1.75", Age: "25"}, wantErr: true},
		{name: "zero height", in: ProfileInput{Weight: "70", Height: "0", Age: "25"}, wantErr: true},
		{name: "fractional age", in: ProfileInput{Weight: "70", Height: "1.75", Age: "25.5"}, wantErr: true},
		{name: "activity out of range", in: ProfileInput{Weight: "70", Height: "1.75", Age: "25", ActivityLevel: "6"}, wantErr: true},
		{name: "unknown gender", in: ProfileInput{Weight: "70", Height: "1.75", Age: "25", Gender: "robot"}, wantErr: true},
		{name: "unknown goal", in: ProfileInput{Weight: "70", Height: "1.75", Age: "25", Goal: "bulk"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestActivityLevelString(t *testing.T) {
	if ActivityModerate.String() != "Moderately Active" {
		t.Fatalf("unexpected label %q", ActivityModerate.String())
	}
	if ActivityLevel(9).Valid() {
		t.Fatal("level 9 should be invalid")
	}
}

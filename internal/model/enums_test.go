package model

import (
	"bytes"
	"testing"
)

func TestGenderUnmarshalGQL(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var g Gender
		if err := g.UnmarshalGQL("FEMALE"); err != nil {
			t.Fatalf("UnmarshalGQL() error = %v", err)
		}
		if g != GenderFemale {
			t.Errorf("g = %v, want FEMALE", g)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		var g Gender
		if err := g.UnmarshalGQL("UNKNOWN"); err == nil {
			t.Error("UnmarshalGQL() error = nil, want invalid enum error")
		}
	})

	t.Run("non-string", func(t *testing.T) {
		var g Gender
		if err := g.UnmarshalGQL(42); err == nil {
			t.Error("UnmarshalGQL() error = nil, want type error")
		}
	})
}

func TestEnrollmentStatusMarshalGQL(t *testing.T) {
	var buf bytes.Buffer
	EnrollmentStatusActive.MarshalGQL(&buf)
	if got := buf.String(); got != `"ACTIVE"` {
		t.Errorf("MarshalGQL() = %s, want %q", got, `"ACTIVE"`)
	}
}

func TestCourseLevelIsValid(t *testing.T) {
	for _, level := range AllCourseLevel {
		if !level.IsValid() {
			t.Errorf("IsValid(%v) = false, want true", level)
		}
	}
	if CourseLevel("EXPERT").IsValid() {
		t.Error("IsValid(EXPERT) = true, want false")
	}
}

package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/campusbase/registrar/internal/config"
	"github.com/campusbase/registrar/internal/model"
	"github.com/campusbase/registrar/internal/registry"
)

const testFixture = `
professors:
  - key: chen
    name: Dr. Mei Chen
    email: m.chen@example.edu
    gender: FEMALE
    specialization: Distributed Systems

students:
  - key: priya
    name: Priya Nair
    email: p.nair@example.edu
    gender: FEMALE
    rollNumber: CS-2024-001
    cgpa: 3.7

courses:
  - key: cs440
    title: Distributed Systems
    description: Consensus and replication.
    level: ADVANCED
    credits: 4
    professor: chen

enrollments:
  - student: priya
    course: cs440
    status: COMPLETED
    grade: A

departments:
  - name: Computer Science
    head: chen
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndApply(t *testing.T) {
	reg := registry.New(config.Default())

	if err := LoadAndApply(writeFixture(t, testFixture), reg); err != nil {
		t.Fatalf("LoadAndApply() error = %v", err)
	}

	stats := reg.Stats()
	if stats.Students != 1 || stats.Professors != 1 || stats.Courses != 1 || stats.Enrollments != 1 {
		t.Errorf("Stats() = %+v, want one of each", *stats)
	}
	if got := len(reg.Departments()); got != 1 {
		t.Errorf("Departments() count = %d, want 1", got)
	}

	t.Run("fixture keys resolve to generated IDs", func(t *testing.T) {
		students := reg.Students()
		courses := reg.Courses(nil)
		enrollments := reg.Enrollments()

		if enrollments[0].StudentID != students[0].ID {
			t.Errorf("enrollment StudentID = %q, want %q", enrollments[0].StudentID, students[0].ID)
		}
		if enrollments[0].CourseID != courses[0].ID {
			t.Errorf("enrollment CourseID = %q, want %q", enrollments[0].CourseID, courses[0].ID)
		}
		if courses[0].ProfessorID != reg.Professors()[0].ID {
			t.Errorf("course ProfessorID = %q, want %q", courses[0].ProfessorID, reg.Professors()[0].ID)
		}
	})

	t.Run("optional fields applied", func(t *testing.T) {
		s := reg.Students()[0]
		if s.CGPA != 3.7 {
			t.Errorf("student CGPA = %v, want 3.7", s.CGPA)
		}
		e := reg.Enrollments()[0]
		if e.Status != model.EnrollmentStatusCompleted {
			t.Errorf("enrollment Status = %v, want COMPLETED", e.Status)
		}
		if e.Grade == nil || *e.Grade != "A" {
			t.Errorf("enrollment Grade = %v, want A", e.Grade)
		}
	})
}

func TestApplyRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
	}{
		{
			name: "unknown professor on course",
			fixture: `
courses:
  - title: Orphan Course
    level: BEGINNER
    credits: 3
    professor: nobody
`,
		},
		{
			name: "unknown student on enrollment",
			fixture: `
enrollments:
  - student: nobody
    course: nothing
`,
		},
		{
			name: "unknown head on department",
			fixture: `
departments:
  - name: Orphan Department
    head: nobody
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New(config.Default())
			if err := LoadAndApply(writeFixture(t, tt.fixture), reg); err == nil {
				t.Error("LoadAndApply() error = nil, want unknown-key error")
			}
		})
	}
}

func TestApplyRejectsInvalidEnums(t *testing.T) {
	fixture := `
students:
  - name: Bad Gender
    email: x@example.edu
    gender: UNKNOWN
    rollNumber: R1
`
	reg := registry.New(config.Default())
	if err := LoadAndApply(writeFixture(t, fixture), reg); err == nil {
		t.Error("LoadAndApply() error = nil, want invalid enum error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() error = nil, want not-exist error")
	}
}

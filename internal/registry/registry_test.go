package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/campusbase/registrar/internal/config"
	"github.com/campusbase/registrar/internal/model"
)

func newTestRegistry() *Registry {
	return New(config.Default())
}

func addTestProfessor(t *testing.T, reg *Registry, name string) *model.Professor {
	t.Helper()
	return reg.AddProfessor(model.ProfessorInput{
		Name:           name,
		Email:          name + "@example.edu",
		Gender:         model.GenderOther,
		Specialization: "Testing",
	})
}

func addTestStudent(t *testing.T, reg *Registry, name, roll string) *model.Student {
	t.Helper()
	return reg.AddStudent(model.StudentInput{
		Name:       name,
		Email:      name + "@example.edu",
		Gender:     model.GenderFemale,
		RollNumber: roll,
	})
}

func TestAddStudent(t *testing.T) {
	reg := newTestRegistry()

	before := time.Now().UTC()
	s := reg.AddStudent(model.StudentInput{
		Name:       "Priya Nair",
		Email:      "p.nair@example.edu",
		Gender:     model.GenderFemale,
		RollNumber: "CS-2024-001",
	})

	if s.ID == "" {
		t.Fatal("AddStudent() generated empty ID")
	}
	if s.CGPA != 0 {
		t.Errorf("AddStudent() CGPA = %v, want 0", s.CGPA)
	}
	if s.Name != "Priya Nair" || s.Email != "p.nair@example.edu" || s.RollNumber != "CS-2024-001" {
		t.Errorf("AddStudent() did not preserve input fields: %+v", s)
	}
	if s.CreatedAt.Before(before) {
		t.Errorf("AddStudent() CreatedAt = %v, want >= %v", s.CreatedAt, before)
	}

	got, err := reg.StudentByID(s.ID)
	if err != nil {
		t.Fatalf("StudentByID() error = %v", err)
	}
	if got.ID != s.ID {
		t.Errorf("StudentByID() = %q, want %q", got.ID, s.ID)
	}
}

func TestStudentIDsAreUnique(t *testing.T) {
	reg := newTestRegistry()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := addTestStudent(t, reg, "Student", "R")
		if seen[s.ID] {
			t.Fatalf("duplicate ID generated: %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestStudentsInsertionOrder(t *testing.T) {
	reg := newTestRegistry()

	a := addTestStudent(t, reg, "A", "1")
	b := addTestStudent(t, reg, "B", "2")
	c := addTestStudent(t, reg, "C", "3")

	got := reg.Students()
	if len(got) != 3 {
		t.Fatalf("Students() count = %d, want 3", len(got))
	}
	for i, want := range []string{a.ID, b.ID, c.ID} {
		if got[i].ID != want {
			t.Errorf("Students()[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestUpdateStudentCGPA(t *testing.T) {
	reg := newTestRegistry()
	s := addTestStudent(t, reg, "Jonas", "CS-2024-002")

	t.Run("known id", func(t *testing.T) {
		updated, err := reg.UpdateStudentCGPA(s.ID, 3.5)
		if err != nil {
			t.Fatalf("UpdateStudentCGPA() error = %v", err)
		}
		if updated.CGPA != 3.5 {
			t.Errorf("CGPA = %v, want 3.5", updated.CGPA)
		}
		// No other field changes
		if updated.Name != "Jonas" || updated.RollNumber != "CS-2024-002" {
			t.Errorf("UpdateStudentCGPA() modified other fields: %+v", updated)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := reg.UpdateStudentCGPA("nonexistent", 2.0)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdateStudentCGPA() error = %v, want ErrNotFound", err)
		}
	})
}

func TestRemoveStudent(t *testing.T) {
	reg := newTestRegistry()
	s1 := addTestStudent(t, reg, "A", "1")
	s2 := addTestStudent(t, reg, "B", "2")

	t.Run("unknown id", func(t *testing.T) {
		if reg.RemoveStudent("nonexistent") {
			t.Error("RemoveStudent() = true, want false")
		}
		if len(reg.Students()) != 2 {
			t.Errorf("Students() count = %d, want 2 (collection unchanged)", len(reg.Students()))
		}
	})

	t.Run("known id", func(t *testing.T) {
		if !reg.RemoveStudent(s1.ID) {
			t.Fatal("RemoveStudent() = false, want true")
		}
		if _, err := reg.StudentByID(s1.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("StudentByID() error = %v, want ErrNotFound", err)
		}
		got := reg.Students()
		if len(got) != 1 || got[0].ID != s2.ID {
			t.Errorf("Students() = %v, want only %q", got, s2.ID)
		}
	})
}

func TestAddCourse(t *testing.T) {
	reg := newTestRegistry()
	p := addTestProfessor(t, reg, "Dr. A")

	t.Run("existing professor", func(t *testing.T) {
		c, err := reg.AddCourse(model.CourseInput{
			Title:       "CS101",
			Description: "Intro",
			Level:       model.CourseLevelBeginner,
			Credits:     3,
			ProfessorID: p.ID,
		})
		if err != nil {
			t.Fatalf("AddCourse() error = %v", err)
		}
		if c.ProfessorID != p.ID {
			t.Errorf("ProfessorID = %q, want %q", c.ProfessorID, p.ID)
		}
	})

	t.Run("unknown professor", func(t *testing.T) {
		_, err := reg.AddCourse(model.CourseInput{
			Title:       "CS102",
			Level:       model.CourseLevelBeginner,
			Credits:     3,
			ProfessorID: "nonexistent",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("AddCourse() error = %v, want ErrNotFound", err)
		}
	})
}

func TestCoursesLevelFilter(t *testing.T) {
	reg := newTestRegistry()
	p := addTestProfessor(t, reg, "Dr. B")

	mustCourse := func(title string, level model.CourseLevel) *model.Course {
		c, err := reg.AddCourse(model.CourseInput{Title: title, Level: level, Credits: 3, ProfessorID: p.ID})
		if err != nil {
			t.Fatalf("AddCourse(%q) error = %v", title, err)
		}
		return c
	}

	mustCourse("Intro", model.CourseLevelBeginner)
	i1 := mustCourse("Databases", model.CourseLevelIntermediate)
	mustCourse("Distributed", model.CourseLevelAdvanced)
	i2 := mustCourse("Networks", model.CourseLevelIntermediate)

	t.Run("no filter", func(t *testing.T) {
		if got := reg.Courses(nil); len(got) != 4 {
			t.Errorf("Courses(nil) count = %d, want 4", len(got))
		}
	})

	t.Run("intermediate only, in creation order", func(t *testing.T) {
		level := model.CourseLevelIntermediate
		got := reg.Courses(&level)
		if len(got) != 2 {
			t.Fatalf("Courses(INTERMEDIATE) count = %d, want 2", len(got))
		}
		if got[0].ID != i1.ID || got[1].ID != i2.ID {
			t.Errorf("Courses(INTERMEDIATE) order = [%q %q], want [%q %q]",
				got[0].ID, got[1].ID, i1.ID, i2.ID)
		}
	})
}

func TestAddEnrollmentDoesNotValidateReferences(t *testing.T) {
	reg := newTestRegistry()

	before := time.Now().UTC()
	e := reg.AddEnrollment(model.EnrollmentInput{StudentID: "ghost", CourseID: "phantom"})

	if e.Status != model.EnrollmentStatusActive {
		t.Errorf("Status = %v, want ACTIVE", e.Status)
	}
	if e.EnrolledAt.Before(before) {
		t.Errorf("EnrolledAt = %v, want >= %v", e.EnrolledAt, before)
	}
	if e.StudentID != "ghost" || e.CourseID != "phantom" {
		t.Errorf("dangling references not recorded as given: %+v", e)
	}
	if len(reg.Enrollments()) != 1 {
		t.Errorf("Enrollments() count = %d, want 1", len(reg.Enrollments()))
	}
}

func TestBackReferences(t *testing.T) {
	reg := newTestRegistry()
	p := addTestProfessor(t, reg, "Dr. C")
	s := addTestStudent(t, reg, "Ale", "CS-2023-017")

	c1, _ := reg.AddCourse(model.CourseInput{Title: "One", Level: model.CourseLevelBeginner, Credits: 3, ProfessorID: p.ID})
	c2, _ := reg.AddCourse(model.CourseInput{Title: "Two", Level: model.CourseLevelBeginner, Credits: 3, ProfessorID: p.ID})

	e1 := reg.AddEnrollment(model.EnrollmentInput{StudentID: s.ID, CourseID: c1.ID})
	e2 := reg.AddEnrollment(model.EnrollmentInput{StudentID: s.ID, CourseID: c2.ID})
	reg.AddEnrollment(model.EnrollmentInput{StudentID: "other", CourseID: c1.ID})

	t.Run("enrollments for student", func(t *testing.T) {
		got := reg.EnrollmentsForStudent(s.ID)
		if len(got) != 2 || got[0].ID != e1.ID || got[1].ID != e2.ID {
			t.Errorf("EnrollmentsForStudent() = %v, want [%q %q] in order", got, e1.ID, e2.ID)
		}
	})

	t.Run("enrollments for course", func(t *testing.T) {
		got := reg.EnrollmentsForCourse(c1.ID)
		if len(got) != 2 {
			t.Errorf("EnrollmentsForCourse() count = %d, want 2", len(got))
		}
	})

	t.Run("courses for professor", func(t *testing.T) {
		got := reg.CoursesForProfessor(p.ID)
		if len(got) != 2 || got[0].ID != c1.ID || got[1].ID != c2.ID {
			t.Errorf("CoursesForProfessor() = %v, want [%q %q] in order", got, c1.ID, c2.ID)
		}
	})
}

func TestUpdateEnrollmentStatus(t *testing.T) {
	reg := newTestRegistry()
	e := reg.AddEnrollment(model.EnrollmentInput{StudentID: "s", CourseID: "c"})

	updated, err := reg.UpdateEnrollmentStatus(e.ID, model.EnrollmentStatusCompleted)
	if err != nil {
		t.Fatalf("UpdateEnrollmentStatus() error = %v", err)
	}
	if updated.Status != model.EnrollmentStatusCompleted {
		t.Errorf("Status = %v, want COMPLETED", updated.Status)
	}

	if _, err := reg.UpdateEnrollmentStatus("nonexistent", model.EnrollmentStatusDropped); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEnrollmentStatus() error = %v, want ErrNotFound", err)
	}
}

func TestAssignGrade(t *testing.T) {
	reg := newTestRegistry()
	e := reg.AddEnrollment(model.EnrollmentInput{StudentID: "s", CourseID: "c"})

	if e.Grade != nil {
		t.Errorf("new enrollment Grade = %v, want nil", *e.Grade)
	}

	updated, err := reg.AssignGrade(e.ID, "A")
	if err != nil {
		t.Fatalf("AssignGrade() error = %v", err)
	}
	if updated.Grade == nil || *updated.Grade != "A" {
		t.Errorf("Grade = %v, want A", updated.Grade)
	}

	if _, err := reg.AssignGrade("nonexistent", "B"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AssignGrade() error = %v, want ErrNotFound", err)
	}
}

func TestAddDepartment(t *testing.T) {
	reg := newTestRegistry()
	p := addTestProfessor(t, reg, "Dr. Head")

	t.Run("existing head", func(t *testing.T) {
		d, err := reg.AddDepartment(model.DepartmentInput{Name: "CS", HeadID: p.ID})
		if err != nil {
			t.Fatalf("AddDepartment() error = %v", err)
		}
		if d.HeadID != p.ID {
			t.Errorf("HeadID = %q, want %q", d.HeadID, p.ID)
		}
		if len(reg.Departments()) != 1 {
			t.Errorf("Departments() count = %d, want 1", len(reg.Departments()))
		}
	})

	t.Run("unknown head", func(t *testing.T) {
		_, err := reg.AddDepartment(model.DepartmentInput{Name: "Math", HeadID: "nonexistent"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("AddDepartment() error = %v, want ErrNotFound", err)
		}
	})
}

func TestStats(t *testing.T) {
	reg := newTestRegistry()

	p := addTestProfessor(t, reg, "Dr. D")
	addTestStudent(t, reg, "S1", "1")
	addTestStudent(t, reg, "S2", "2")
	reg.AddCourse(model.CourseInput{Title: "T", Level: model.CourseLevelBeginner, Credits: 1, ProfessorID: p.ID})
	reg.AddEnrollment(model.EnrollmentInput{StudentID: "x", CourseID: "y"})

	got := reg.Stats()
	want := model.DashboardStats{Students: 2, Professors: 1, Courses: 1, Enrollments: 1}
	if *got != want {
		t.Errorf("Stats() = %+v, want %+v", *got, want)
	}
}

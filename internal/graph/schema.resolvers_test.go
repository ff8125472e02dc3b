package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campusbase/registrar/internal/config"
	"github.com/campusbase/registrar/internal/model"
	"github.com/campusbase/registrar/internal/pubsub"
	"github.com/campusbase/registrar/internal/registry"
)

func setupTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return &Resolver{
		Registry: registry.New(config.Default()),
		Events:   pubsub.New(),
	}
}

func createTestProfessor(t *testing.T, r *Resolver, name string) *model.Professor {
	t.Helper()
	p, err := r.Mutation().CreateProfessor(context.Background(), model.ProfessorInput{
		Name:           name,
		Email:          name + "@example.edu",
		Gender:         model.GenderOther,
		Specialization: "Testing",
	})
	if err != nil {
		t.Fatalf("CreateProfessor() error = %v", err)
	}
	return p
}

func createTestStudent(t *testing.T, r *Resolver, name, roll string) *model.Student {
	t.Helper()
	s, err := r.Mutation().CreateStudent(context.Background(), model.StudentInput{
		Name:       name,
		Email:      name + "@example.edu",
		Gender:     model.GenderMale,
		RollNumber: roll,
	})
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	return s
}

func TestCreateStudent(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	input := model.StudentInput{
		Name:       "Priya Nair",
		Email:      "p.nair@example.edu",
		Gender:     model.GenderFemale,
		RollNumber: "CS-2024-001",
	}
	created, err := resolver.Mutation().CreateStudent(ctx, input)
	if err != nil {
		t.Fatalf("CreateStudent() error = %v", err)
	}
	if created.CGPA != 0 {
		t.Errorf("CreateStudent() CGPA = %v, want 0", created.CGPA)
	}

	// createStudent followed by student(id) returns the submitted fields unchanged
	got, err := resolver.Query().Student(ctx, created.ID)
	if err != nil {
		t.Fatalf("Student() error = %v", err)
	}
	if got == nil {
		t.Fatal("Student() returned nil")
	}
	if got.Name != input.Name || got.Email != input.Email || got.Gender != input.Gender || got.RollNumber != input.RollNumber {
		t.Errorf("Student() = %+v, want submitted fields unchanged", got)
	}
}

func TestQueryStudent(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	s := createTestStudent(t, resolver, "Jonas", "CS-2024-002")

	t.Run("found", func(t *testing.T) {
		got, err := resolver.Query().Student(ctx, s.ID)
		if err != nil {
			t.Fatalf("Student() error = %v", err)
		}
		if got == nil || got.ID != s.ID {
			t.Errorf("Student() = %v, want ID %q", got, s.ID)
		}
	})

	t.Run("absence is null, not an error", func(t *testing.T) {
		got, err := resolver.Query().Student(ctx, "nonexistent")
		if err != nil {
			t.Fatalf("Student() error = %v", err)
		}
		if got != nil {
			t.Errorf("Student() = %v, want nil", got)
		}
	})
}

func TestQueryStudentsInsertionOrder(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	a := createTestStudent(t, resolver, "A", "1")
	b := createTestStudent(t, resolver, "B", "2")

	got, err := resolver.Query().Students(ctx)
	if err != nil {
		t.Fatalf("Students() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Errorf("Students() order = %v, want [%q %q]", got, a.ID, b.ID)
	}
}

func TestUpdateStudentCGPA(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	s := createTestStudent(t, resolver, "Ale", "CS-2023-017")
	other := createTestStudent(t, resolver, "Other", "CS-2023-018")

	t.Run("known id", func(t *testing.T) {
		got, err := resolver.Mutation().UpdateStudentCgpa(ctx, s.ID, 3.9)
		if err != nil {
			t.Fatalf("UpdateStudentCgpa() error = %v", err)
		}
		if got.CGPA != 3.9 {
			t.Errorf("CGPA = %v, want 3.9", got.CGPA)
		}
		if got.Name != "Ale" {
			t.Errorf("Name changed to %q", got.Name)
		}

		// No other student is touched
		unchanged, _ := resolver.Query().Student(ctx, other.ID)
		if unchanged.CGPA != 0 {
			t.Errorf("other student CGPA = %v, want 0", unchanged.CGPA)
		}
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		_, err := resolver.Mutation().UpdateStudentCgpa(ctx, "nonexistent", 2.5)
		if !errors.Is(err, registry.ErrNotFound) {
			t.Errorf("UpdateStudentCgpa() error = %v, want ErrNotFound", err)
		}
	})
}

func TestDeleteStudent(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	s := createTestStudent(t, resolver, "Gone", "CS-0000-001")

	t.Run("unknown id returns false", func(t *testing.T) {
		ok, err := resolver.Mutation().DeleteStudent(ctx, "nonexistent")
		if err != nil {
			t.Fatalf("DeleteStudent() error = %v", err)
		}
		if ok {
			t.Error("DeleteStudent() = true, want false")
		}
		students, _ := resolver.Query().Students(ctx)
		if len(students) != 1 {
			t.Errorf("Students() count = %d, want 1 (unchanged)", len(students))
		}
	})

	t.Run("known id returns true and removes", func(t *testing.T) {
		ok, err := resolver.Mutation().DeleteStudent(ctx, s.ID)
		if err != nil {
			t.Fatalf("DeleteStudent() error = %v", err)
		}
		if !ok {
			t.Fatal("DeleteStudent() = false, want true")
		}
		got, _ := resolver.Query().Student(ctx, s.ID)
		if got != nil {
			t.Errorf("Student() = %v after delete, want nil", got)
		}
		students, _ := resolver.Query().Students(ctx)
		if len(students) != 0 {
			t.Errorf("Students() count = %d, want 0", len(students))
		}
	})
}

func TestCreateCourse(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	drA := createTestProfessor(t, resolver, "Dr. A")

	t.Run("existing professor", func(t *testing.T) {
		course, err := resolver.Mutation().CreateCourse(ctx, model.CourseInput{
			Title:       "CS101",
			Description: "Intro",
			Level:       model.CourseLevelBeginner,
			Credits:     3,
			ProfessorID: drA.ID,
		})
		if err != nil {
			t.Fatalf("CreateCourse() error = %v", err)
		}

		prof, err := resolver.Course().Professor(ctx, course)
		if err != nil {
			t.Fatalf("Course.professor resolver error = %v", err)
		}
		if prof.ID != drA.ID {
			t.Errorf("course.professor.id = %q, want %q", prof.ID, drA.ID)
		}
	})

	t.Run("unknown professor fails with not found", func(t *testing.T) {
		_, err := resolver.Mutation().CreateCourse(ctx, model.CourseInput{
			Title:       "CS102",
			Level:       model.CourseLevelBeginner,
			Credits:     3,
			ProfessorID: "no-such-professor",
		})
		if !errors.Is(err, registry.ErrNotFound) {
			t.Errorf("CreateCourse() error = %v, want ErrNotFound", err)
		}
	})
}

func TestQueryCoursesLevelFilter(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	p := createTestProfessor(t, resolver, "Dr. B")
	mustCourse := func(title string, level model.CourseLevel) *model.Course {
		c, err := resolver.Mutation().CreateCourse(ctx, model.CourseInput{
			Title: title, Level: level, Credits: 3, ProfessorID: p.ID,
		})
		if err != nil {
			t.Fatalf("CreateCourse(%q) error = %v", title, err)
		}
		return c
	}

	mustCourse("Intro", model.CourseLevelBeginner)
	i1 := mustCourse("Databases", model.CourseLevelIntermediate)
	mustCourse("Distributed", model.CourseLevelAdvanced)
	i2 := mustCourse("Networks", model.CourseLevelIntermediate)

	t.Run("no filter returns all", func(t *testing.T) {
		got, err := resolver.Query().Courses(ctx, nil)
		if err != nil {
			t.Fatalf("Courses() error = %v", err)
		}
		if len(got) != 4 {
			t.Errorf("Courses() count = %d, want 4", len(got))
		}
	})

	t.Run("intermediate subset in creation order", func(t *testing.T) {
		level := model.CourseLevelIntermediate
		got, err := resolver.Query().Courses(ctx, &level)
		if err != nil {
			t.Fatalf("Courses() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != i1.ID || got[1].ID != i2.ID {
			t.Errorf("Courses(INTERMEDIATE) = %v, want [%q %q] in order", got, i1.ID, i2.ID)
		}
	})
}

func TestEnrollStudent(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	s := createTestStudent(t, resolver, "Priya", "CS-2024-001")
	p := createTestProfessor(t, resolver, "Dr. C")
	course, err := resolver.Mutation().CreateCourse(ctx, model.CourseInput{
		Title: "CS440", Level: model.CourseLevelAdvanced, Credits: 4, ProfessorID: p.ID,
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}

	before := time.Now().UTC()
	e, err := resolver.Mutation().EnrollStudent(ctx, model.EnrollmentInput{
		StudentID: s.ID,
		CourseID:  course.ID,
	})
	if err != nil {
		t.Fatalf("EnrollStudent() error = %v", err)
	}

	if e.Status != model.EnrollmentStatusActive {
		t.Errorf("Status = %v, want ACTIVE", e.Status)
	}
	if e.EnrolledAt.Before(before) {
		t.Errorf("EnrolledAt = %v, want >= %v", e.EnrolledAt, before)
	}

	t.Run("references resolve", func(t *testing.T) {
		gotStudent, err := resolver.Enrollment().Student(ctx, e)
		if err != nil {
			t.Fatalf("Enrollment.student resolver error = %v", err)
		}
		if gotStudent == nil || gotStudent.ID != s.ID {
			t.Errorf("enrollment.student = %v, want ID %q", gotStudent, s.ID)
		}
		gotCourse, err := resolver.Enrollment().Course(ctx, e)
		if err != nil {
			t.Fatalf("Enrollment.course resolver error = %v", err)
		}
		if gotCourse == nil || gotCourse.ID != course.ID {
			t.Errorf("enrollment.course = %v, want ID %q", gotCourse, course.ID)
		}
	})
}

func TestEnrollStudentDoesNotValidateReferences(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	e, err := resolver.Mutation().EnrollStudent(ctx, model.EnrollmentInput{
		StudentID: "ghost",
		CourseID:  "phantom",
	})
	if err != nil {
		t.Fatalf("EnrollStudent() error = %v, want success despite dangling references", err)
	}

	// Dangling references resolve to null rather than erroring
	gotStudent, err := resolver.Enrollment().Student(ctx, e)
	if err != nil {
		t.Fatalf("Enrollment.student resolver error = %v", err)
	}
	if gotStudent != nil {
		t.Errorf("enrollment.student = %v, want nil", gotStudent)
	}
	gotCourse, err := resolver.Enrollment().Course(ctx, e)
	if err != nil {
		t.Fatalf("Enrollment.course resolver error = %v", err)
	}
	if gotCourse != nil {
		t.Errorf("enrollment.course = %v, want nil", gotCourse)
	}
}

func TestStudentEnrolledSubscription(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Subscriber connected before the call receives exactly one matching event
	ch, err := resolver.Subscription().StudentEnrolled(ctx)
	if err != nil {
		t.Fatalf("StudentEnrolled() error = %v", err)
	}

	e, err := resolver.Mutation().EnrollStudent(ctx, model.EnrollmentInput{
		StudentID: "s1",
		CourseID:  "c1",
	})
	if err != nil {
		t.Fatalf("EnrollStudent() error = %v", err)
	}

	select {
	case got := <-ch:
		if got.ID != e.ID {
			t.Errorf("received enrollment ID = %q, want %q", got.ID, e.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for studentEnrolled event")
	}

	select {
	case got := <-ch:
		t.Errorf("unexpected second event %q", got.ID)
	default:
	}
}

func TestUpdateEnrollmentStatus(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	e, err := resolver.Mutation().EnrollStudent(ctx, model.EnrollmentInput{StudentID: "s", CourseID: "c"})
	if err != nil {
		t.Fatalf("EnrollStudent() error = %v", err)
	}

	t.Run("known id", func(t *testing.T) {
		got, err := resolver.Mutation().UpdateEnrollmentStatus(ctx, e.ID, model.EnrollmentStatusDropped)
		if err != nil {
			t.Fatalf("UpdateEnrollmentStatus() error = %v", err)
		}
		if got.Status != model.EnrollmentStatusDropped {
			t.Errorf("Status = %v, want DROPPED", got.Status)
		}
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		_, err := resolver.Mutation().UpdateEnrollmentStatus(ctx, "nonexistent", model.EnrollmentStatusCompleted)
		if !errors.Is(err, registry.ErrNotFound) {
			t.Errorf("UpdateEnrollmentStatus() error = %v, want ErrNotFound", err)
		}
	})
}

func TestAssignGrade(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	e, err := resolver.Mutation().EnrollStudent(ctx, model.EnrollmentInput{StudentID: "s", CourseID: "c"})
	if err != nil {
		t.Fatalf("EnrollStudent() error = %v", err)
	}

	got, err := resolver.Mutation().AssignGrade(ctx, e.ID, "A")
	if err != nil {
		t.Fatalf("AssignGrade() error = %v", err)
	}
	if got.Grade == nil || *got.Grade != "A" {
		t.Errorf("Grade = %v, want A", got.Grade)
	}

	if _, err := resolver.Mutation().AssignGrade(ctx, "nonexistent", "B"); !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("AssignGrade() error = %v, want ErrNotFound", err)
	}
}

func TestDashboardStats(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	// 2 students, 1 professor, 2 courses, 3 enrollments
	createTestStudent(t, resolver, "S1", "1")
	createTestStudent(t, resolver, "S2", "2")
	p := createTestProfessor(t, resolver, "Dr. D")
	for _, title := range []string{"One", "Two"} {
		if _, err := resolver.Mutation().CreateCourse(ctx, model.CourseInput{
			Title: title, Level: model.CourseLevelBeginner, Credits: 3, ProfessorID: p.ID,
		}); err != nil {
			t.Fatalf("CreateCourse() error = %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if _, err := resolver.Mutation().EnrollStudent(ctx, model.EnrollmentInput{StudentID: "s", CourseID: "c"}); err != nil {
			t.Fatalf("EnrollStudent() error = %v", err)
		}
	}

	got, err := resolver.Query().DashboardStats(ctx)
	if err != nil {
		t.Fatalf("DashboardStats() error = %v", err)
	}
	want := model.DashboardStats{Students: 2, Professors: 1, Courses: 2, Enrollments: 3}
	if *got != want {
		t.Errorf("DashboardStats() = %+v, want %+v", *got, want)
	}
}

func TestBackReferenceResolvers(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	s := createTestStudent(t, resolver, "Priya", "CS-2024-001")
	p := createTestProfessor(t, resolver, "Dr. E")
	c1, _ := resolver.Mutation().CreateCourse(ctx, model.CourseInput{Title: "One", Level: model.CourseLevelBeginner, Credits: 3, ProfessorID: p.ID})
	c2, _ := resolver.Mutation().CreateCourse(ctx, model.CourseInput{Title: "Two", Level: model.CourseLevelBeginner, Credits: 3, ProfessorID: p.ID})

	e1, _ := resolver.Mutation().EnrollStudent(ctx, model.EnrollmentInput{StudentID: s.ID, CourseID: c1.ID})
	e2, _ := resolver.Mutation().EnrollStudent(ctx, model.EnrollmentInput{StudentID: s.ID, CourseID: c2.ID})

	t.Run("student enrollments", func(t *testing.T) {
		got, err := resolver.Student().Enrollments(ctx, s)
		if err != nil {
			t.Fatalf("Student.enrollments resolver error = %v", err)
		}
		if len(got) != 2 || got[0].ID != e1.ID || got[1].ID != e2.ID {
			t.Errorf("student.enrollments = %v, want [%q %q] in order", got, e1.ID, e2.ID)
		}
	})

	t.Run("course enrollments", func(t *testing.T) {
		got, err := resolver.Course().Enrollments(ctx, c1)
		if err != nil {
			t.Fatalf("Course.enrollments resolver error = %v", err)
		}
		if len(got) != 1 || got[0].ID != e1.ID {
			t.Errorf("course.enrollments = %v, want [%q]", got, e1.ID)
		}
	})

	t.Run("professor courses", func(t *testing.T) {
		got, err := resolver.Professor().Courses(ctx, p)
		if err != nil {
			t.Fatalf("Professor.courses resolver error = %v", err)
		}
		if len(got) != 2 || got[0].ID != c1.ID || got[1].ID != c2.ID {
			t.Errorf("professor.courses = %v, want [%q %q] in order", got, c1.ID, c2.ID)
		}
	})
}

func TestCreateDepartment(t *testing.T) {
	resolver := setupTestResolver(t)
	ctx := context.Background()

	p := createTestProfessor(t, resolver, "Dr. Head")

	t.Run("existing head", func(t *testing.T) {
		d, err := resolver.Mutation().CreateDepartment(ctx, model.DepartmentInput{Name: "CS", HeadID: p.ID})
		if err != nil {
			t.Fatalf("CreateDepartment() error = %v", err)
		}

		head, err := resolver.Department().Head(ctx, d)
		if err != nil {
			t.Fatalf("Department.head resolver error = %v", err)
		}
		if head == nil || head.ID != p.ID {
			t.Errorf("department.head = %v, want ID %q", head, p.ID)
		}

		// Nothing links courses to departments
		courses, err := resolver.Department().Courses(ctx, d)
		if err != nil {
			t.Fatalf("Department.courses resolver error = %v", err)
		}
		if len(courses) != 0 {
			t.Errorf("department.courses = %v, want empty", courses)
		}

		departments, err := resolver.Query().Departments(ctx)
		if err != nil {
			t.Fatalf("Departments() error = %v", err)
		}
		if len(departments) != 1 {
			t.Errorf("Departments() count = %d, want 1", len(departments))
		}
	})

	t.Run("unknown head fails with not found", func(t *testing.T) {
		_, err := resolver.Mutation().CreateDepartment(ctx, model.DepartmentInput{Name: "Math", HeadID: "nonexistent"})
		if !errors.Is(err, registry.ErrNotFound) {
			t.Errorf("CreateDepartment() error = %v, want ErrNotFound", err)
		}
	})
}

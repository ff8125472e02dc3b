// Package registry provides a thread-safe in-memory store for the academic
// records collections: students, professors, courses, enrollments, and
// departments. Nothing is persisted; the registry lives and dies with the
// process.
package registry

import (
	"errors"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/campusbase/registrar/internal/config"
	"github.com/campusbase/registrar/internal/model"
)

var ErrNotFound = errors.New("record not found")

// idAlphabet keeps generated IDs lowercase and URL-safe.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Registry holds the in-memory collections. Each collection is an
// insertion-ordered slice; lookups are linear scans by ID or foreign key.
// A single RWMutex makes each operation independently atomic under the
// concurrent request handling of the GraphQL server.
type Registry struct {
	config *config.Config

	mu          sync.RWMutex
	students    []*model.Student
	professors  []*model.Professor
	courses     []*model.Course
	enrollments []*model.Enrollment
	departments []*model.Department
}

// New creates an empty Registry with the given configuration.
func New(cfg *config.Config) *Registry {
	return &Registry{config: cfg}
}

// Config returns the configuration.
func (r *Registry) Config() *config.Config {
	return r.config
}

// newID generates a unique record identifier.
func (r *Registry) newID() string {
	length := 10
	if r.config != nil && r.config.Registry.IDLength > 0 {
		length = r.config.Registry.IDLength
	}
	return gonanoid.MustGenerate(idAlphabet, length)
}

// AddStudent appends a new student with a generated ID, zero CGPA, and the
// current time as creation timestamp.
func (r *Registry) AddStudent(input model.StudentInput) *model.Student {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &model.Student{
		ID:         r.newID(),
		Name:       input.Name,
		Email:      input.Email,
		Gender:     input.Gender,
		RollNumber: input.RollNumber,
		CGPA:       0,
		CreatedAt:  time.Now().UTC(),
	}
	r.students = append(r.students, s)
	return s
}

// Students returns all students in insertion order.
func (r *Registry) Students() []*model.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Student, len(r.students))
	copy(result, r.students)
	return result
}

// StudentByID finds a student by ID.
func (r *Registry) StudentByID(id string) (*model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateStudentCGPA sets a student's CGPA. No other field changes.
func (r *Registry) UpdateStudentCGPA(id string, cgpa float64) (*model.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.students {
		if s.ID == id {
			s.CGPA = cgpa
			return s, nil
		}
	}
	return nil, ErrNotFound
}

// RemoveStudent deletes a student by ID. Returns whether a record was found
// and removed. Enrollments referencing the student are left in place.
func (r *Registry) RemoveStudent(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return true
		}
	}
	return false
}

// AddProfessor appends a new professor with a generated ID.
func (r *Registry) AddProfessor(input model.ProfessorInput) *model.Professor {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &model.Professor{
		ID:             r.newID(),
		Name:           input.Name,
		Email:          input.Email,
		Gender:         input.Gender,
		Specialization: input.Specialization,
		CreatedAt:      time.Now().UTC(),
	}
	r.professors = append(r.professors, p)
	return p
}

// Professors returns all professors in insertion order.
func (r *Registry) Professors() []*model.Professor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Professor, len(r.professors))
	copy(result, r.professors)
	return result
}

// ProfessorByID finds a professor by ID.
func (r *Registry) ProfessorByID(id string) (*model.Professor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.professors {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// AddCourse appends a new course bound to an existing professor.
// Returns ErrNotFound if the professor does not exist.
func (r *Registry) AddCourse(input model.CourseInput) (*model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, p := range r.professors {
		if p.ID == input.ProfessorID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	c := &model.Course{
		ID:          r.newID(),
		Title:       input.Title,
		Description: input.Description,
		Level:       input.Level,
		Credits:     input.Credits,
		ProfessorID: input.ProfessorID,
	}
	r.courses = append(r.courses, c)
	return c, nil
}

// Courses returns all courses in insertion order, optionally filtered by level.
func (r *Registry) Courses(level *model.CourseLevel) []*model.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if level == nil {
		result := make([]*model.Course, len(r.courses))
		copy(result, r.courses)
		return result
	}

	var result []*model.Course
	for _, c := range r.courses {
		if c.Level == *level {
			result = append(result, c)
		}
	}
	return result
}

// CourseByID finds a course by ID.
func (r *Registry) CourseByID(id string) (*model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// CoursesForProfessor returns the courses owned by a professor, in insertion
// order.
func (r *Registry) CoursesForProfessor(professorID string) []*model.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.Course
	for _, c := range r.courses {
		if c.ProfessorID == professorID {
			result = append(result, c)
		}
	}
	return result
}

// AddEnrollment appends a new enrollment with status ACTIVE and the current
// time as enrollment timestamp. The student and course references are
// recorded as given, without an existence check.
func (r *Registry) AddEnrollment(input model.EnrollmentInput) *model.Enrollment {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := &model.Enrollment{
		ID:         r.newID(),
		StudentID:  input.StudentID,
		CourseID:   input.CourseID,
		Status:     model.EnrollmentStatusActive,
		EnrolledAt: time.Now().UTC(),
	}
	r.enrollments = append(r.enrollments, e)
	return e
}

// Enrollments returns all enrollments in insertion order.
func (r *Registry) Enrollments() []*model.Enrollment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Enrollment, len(r.enrollments))
	copy(result, r.enrollments)
	return result
}

// EnrollmentByID finds an enrollment by ID.
func (r *Registry) EnrollmentByID(id string) (*model.Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.enrollments {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

// EnrollmentsForStudent returns the enrollments referencing a student, in
// insertion order.
func (r *Registry) EnrollmentsForStudent(studentID string) []*model.Enrollment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.Enrollment
	for _, e := range r.enrollments {
		if e.StudentID == studentID {
			result = append(result, e)
		}
	}
	return result
}

// EnrollmentsForCourse returns the enrollments referencing a course, in
// insertion order.
func (r *Registry) EnrollmentsForCourse(courseID string) []*model.Enrollment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.Enrollment
	for _, e := range r.enrollments {
		if e.CourseID == courseID {
			result = append(result, e)
		}
	}
	return result
}

// UpdateEnrollmentStatus sets an enrollment's status.
func (r *Registry) UpdateEnrollmentStatus(id string, status model.EnrollmentStatus) (*model.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.enrollments {
		if e.ID == id {
			e.Status = status
			return e, nil
		}
	}
	return nil, ErrNotFound
}

// AssignGrade sets an enrollment's grade.
func (r *Registry) AssignGrade(id string, grade string) (*model.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.enrollments {
		if e.ID == id {
			e.Grade = &grade
			return e, nil
		}
	}
	return nil, ErrNotFound
}

// AddDepartment appends a new department headed by an existing professor.
// Returns ErrNotFound if the professor does not exist.
func (r *Registry) AddDepartment(input model.DepartmentInput) (*model.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, p := range r.professors {
		if p.ID == input.HeadID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	d := &model.Department{
		ID:     r.newID(),
		Name:   input.Name,
		HeadID: input.HeadID,
	}
	r.departments = append(r.departments, d)
	return d, nil
}

// Departments returns all departments in insertion order.
func (r *Registry) Departments() []*model.Department {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Department, len(r.departments))
	copy(result, r.departments)
	return result
}

// Stats returns live counts of the four primary collections.
func (r *Registry) Stats() *model.DashboardStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &model.DashboardStats{
		Students:    len(r.students),
		Professors:  len(r.professors),
		Courses:     len(r.courses),
		Enrollments: len(r.enrollments),
	}
}

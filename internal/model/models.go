// Package model defines the entities served by the GraphQL schema.
// All types are bound to their schema counterparts via gqlgen autobind;
// relationship fields (Student.enrollments, Course.professor, ...) are
// intentionally absent here and resolved from the registry at read time.
package model

import "time"

// Student is a person enrolled at the institution.
type Student struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Gender     Gender    `json:"gender"`
	RollNumber string    `json:"rollNumber"`
	CGPA       float64   `json:"cgpa"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Professor is a person teaching courses.
type Professor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Gender         Gender    `json:"gender"`
	Specialization string    `json:"specialization"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Course is a unit of teaching owned by a professor. ProfessorID is set at
// creation and never changes.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Level       CourseLevel `json:"level"`
	Credits     int         `json:"credits"`
	ProfessorID string      `json:"professorId"`
}

// Enrollment links a student to a course. The student and course references
// are not validated at creation time, so either may dangle.
type Enrollment struct {
	ID         string           `json:"id"`
	StudentID  string           `json:"studentId"`
	CourseID   string           `json:"courseId"`
	Status     EnrollmentStatus `json:"status"`
	EnrolledAt time.Time        `json:"enrolledAt"`
	Grade      *string          `json:"grade,omitempty"`
}

// Department groups courses under a head professor. Nothing links courses to
// departments yet, so its course list always resolves empty.
type Department struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	HeadID string `json:"headId"`
}

// DashboardStats holds live collection counts, recomputed on every query.
type DashboardStats struct {
	Students    int `json:"students"`
	Professors  int `json:"professors"`
	Courses     int `json:"courses"`
	Enrollments int `json:"enrollments"`
}

// StudentInput is the payload for createStudent.
type StudentInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Gender     Gender `json:"gender"`
	RollNumber string `json:"rollNumber"`
}

// ProfessorInput is the payload for createProfessor.
type ProfessorInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Gender         Gender `json:"gender"`
	Specialization string `json:"specialization"`
}

// CourseInput is the payload for createCourse.
type CourseInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Level       CourseLevel `json:"level"`
	Credits     int         `json:"credits"`
	ProfessorID string      `json:"professorId"`
}

// EnrollmentInput is the payload for enrollStudent.
type EnrollmentInput struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}

// DepartmentInput is the payload for createDepartment.
type DepartmentInput struct {
	Name   string `json:"name"`
	HeadID string `json:"headId"`
}

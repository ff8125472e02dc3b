// Package seed loads YAML fixture files into a registry. Because the registry
// is purely in-memory, seeding is how the one-shot CLI commands and freshly
// started servers get data to work with.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/campusbase/registrar/internal/model"
	"github.com/campusbase/registrar/internal/registry"
)

// File is the root of a fixture document. Records reference each other by
// fixture key, not by ID: IDs are generated at apply time.
type File struct {
	Professors  []Professor  `yaml:"professors"`
	Students    []Student    `yaml:"students"`
	Courses     []Course     `yaml:"courses"`
	Enrollments []Enrollment `yaml:"enrollments"`
	Departments []Department `yaml:"departments"`
}

// Professor is a professor fixture.
type Professor struct {
	Key            string `yaml:"key"`
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Gender         string `yaml:"gender"`
	Specialization string `yaml:"specialization"`
}

// Student is a student fixture.
type Student struct {
	Key        string  `yaml:"key"`
	Name       string  `yaml:"name"`
	Email      string  `yaml:"email"`
	Gender     string  `yaml:"gender"`
	RollNumber string  `yaml:"rollNumber"`
	CGPA       float64 `yaml:"cgpa"`
}

// Course is a course fixture. Professor refers to a professor fixture key.
type Course struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Level       string `yaml:"level"`
	Credits     int    `yaml:"credits"`
	Professor   string `yaml:"professor"`
}

// Enrollment is an enrollment fixture. Student and Course refer to fixture keys.
type Enrollment struct {
	Student string `yaml:"student"`
	Course  string `yaml:"course"`
	Status  string `yaml:"status"`
	Grade   string `yaml:"grade"`
}

// Department is a department fixture. Head refers to a professor fixture key.
type Department struct {
	Name string `yaml:"name"`
	Head string `yaml:"head"`
}

// Load reads and parses a fixture file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}

// Apply creates all fixture records in the registry, in document order.
// Fixture keys are resolved to the IDs generated during this apply.
func (f *File) Apply(reg *registry.Registry) error {
	professorIDs := make(map[string]string)
	studentIDs := make(map[string]string)
	courseIDs := make(map[string]string)

	for _, p := range f.Professors {
		gender := model.Gender(p.Gender)
		if !gender.IsValid() {
			return fmt.Errorf("professor %q: invalid gender %q", p.Name, p.Gender)
		}
		created := reg.AddProfessor(model.ProfessorInput{
			Name:           p.Name,
			Email:          p.Email,
			Gender:         gender,
			Specialization: p.Specialization,
		})
		if p.Key != "" {
			professorIDs[p.Key] = created.ID
		}
	}

	for _, s := range f.Students {
		gender := model.Gender(s.Gender)
		if !gender.IsValid() {
			return fmt.Errorf("student %q: invalid gender %q", s.Name, s.Gender)
		}
		created := reg.AddStudent(model.StudentInput{
			Name:       s.Name,
			Email:      s.Email,
			Gender:     gender,
			RollNumber: s.RollNumber,
		})
		if s.CGPA != 0 {
			if _, err := reg.UpdateStudentCGPA(created.ID, s.CGPA); err != nil {
				return err
			}
		}
		if s.Key != "" {
			studentIDs[s.Key] = created.ID
		}
	}

	for _, c := range f.Courses {
		level := model.CourseLevel(c.Level)
		if !level.IsValid() {
			return fmt.Errorf("course %q: invalid level %q", c.Title, c.Level)
		}
		professorID, ok := professorIDs[c.Professor]
		if !ok {
			return fmt.Errorf("course %q: unknown professor key %q", c.Title, c.Professor)
		}
		created, err := reg.AddCourse(model.CourseInput{
			Title:       c.Title,
			Description: c.Description,
			Level:       level,
			Credits:     c.Credits,
			ProfessorID: professorID,
		})
		if err != nil {
			return fmt.Errorf("course %q: %w", c.Title, err)
		}
		if c.Key != "" {
			courseIDs[c.Key] = created.ID
		}
	}

	for _, e := range f.Enrollments {
		studentID, ok := studentIDs[e.Student]
		if !ok {
			return fmt.Errorf("enrollment: unknown student key %q", e.Student)
		}
		courseID, ok := courseIDs[e.Course]
		if !ok {
			return fmt.Errorf("enrollment: unknown course key %q", e.Course)
		}
		created := reg.AddEnrollment(model.EnrollmentInput{
			StudentID: studentID,
			CourseID:  courseID,
		})
		if e.Status != "" {
			status := model.EnrollmentStatus(e.Status)
			if !status.IsValid() {
				return fmt.Errorf("enrollment: invalid status %q", e.Status)
			}
			if _, err := reg.UpdateEnrollmentStatus(created.ID, status); err != nil {
				return err
			}
		}
		if e.Grade != "" {
			if _, err := reg.AssignGrade(created.ID, e.Grade); err != nil {
				return err
			}
		}
	}

	for _, d := range f.Departments {
		headID, ok := professorIDs[d.Head]
		if !ok {
			return fmt.Errorf("department %q: unknown professor key %q", d.Name, d.Head)
		}
		if _, err := reg.AddDepartment(model.DepartmentInput{Name: d.Name, HeadID: headID}); err != nil {
			return fmt.Errorf("department %q: %w", d.Name, err)
		}
	}

	return nil
}

// LoadAndApply loads a fixture file and applies it to the registry.
func LoadAndApply(path string, reg *registry.Registry) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	return f.Apply(reg)
}

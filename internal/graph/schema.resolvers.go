package graph

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.84

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusbase/registrar/internal/model"
	"github.com/campusbase/registrar/internal/registry"
)

// Professor is the resolver for the professor field.
func (r *courseResolver) Professor(ctx context.Context, obj *model.Course) (*model.Professor, error) {
	p, err := r.Registry.ProfessorByID(obj.ProfessorID)
	if err != nil {
		return nil, fmt.Errorf("course %s: professor %s: %w", obj.ID, obj.ProfessorID, err)
	}
	return p, nil
}

// Enrollments is the resolver for the enrollments field.
func (r *courseResolver) Enrollments(ctx context.Context, obj *model.Course) ([]*model.Enrollment, error) {
	return r.Registry.EnrollmentsForCourse(obj.ID), nil
}

// Head is the resolver for the head field.
func (r *departmentResolver) Head(ctx context.Context, obj *model.Department) (*model.Professor, error) {
	p, err := r.Registry.ProfessorByID(obj.HeadID)
	if errors.Is(err, registry.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// Courses is the resolver for the courses field.
func (r *departmentResolver) Courses(ctx context.Context, obj *model.Department) ([]*model.Course, error) {
	// Courses carry no department reference, so this list is always empty.
	return []*model.Course{}, nil
}

// Student is the resolver for the student field.
func (r *enrollmentResolver) Student(ctx context.Context, obj *model.Enrollment) (*model.Student, error) {
	s, err := r.Registry.StudentByID(obj.StudentID)
	if errors.Is(err, registry.ErrNotFound) {
		// Dangling reference: enrollStudent does not validate its input.
		return nil, nil
	}
	return s, err
}

// Course is the resolver for the course field.
func (r *enrollmentResolver) Course(ctx context.Context, obj *model.Enrollment) (*model.Course, error) {
	c, err := r.Registry.CourseByID(obj.CourseID)
	if errors.Is(err, registry.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

// CreateStudent is the resolver for the createStudent field.
func (r *mutationResolver) CreateStudent(ctx context.Context, input model.StudentInput) (*model.Student, error) {
	return r.Registry.AddStudent(input), nil
}

// UpdateStudentCgpa is the resolver for the updateStudentCGPA field.
func (r *mutationResolver) UpdateStudentCgpa(ctx context.Context, id string, cgpa float64) (*model.Student, error) {
	s, err := r.Registry.UpdateStudentCGPA(id, cgpa)
	if err != nil {
		return nil, fmt.Errorf("student %s: %w", id, err)
	}
	return s, nil
}

// DeleteStudent is the resolver for the deleteStudent field.
func (r *mutationResolver) DeleteStudent(ctx context.Context, id string) (bool, error) {
	return r.Registry.RemoveStudent(id), nil
}

// CreateProfessor is the resolver for the createProfessor field.
func (r *mutationResolver) CreateProfessor(ctx context.Context, input model.ProfessorInput) (*model.Professor, error) {
	return r.Registry.AddProfessor(input), nil
}

// CreateCourse is the resolver for the createCourse field.
func (r *mutationResolver) CreateCourse(ctx context.Context, input model.CourseInput) (*model.Course, error) {
	c, err := r.Registry.AddCourse(input)
	if err != nil {
		return nil, fmt.Errorf("professor %s: %w", input.ProfessorID, err)
	}
	return c, nil
}

// EnrollStudent is the resolver for the enrollStudent field.
func (r *mutationResolver) EnrollStudent(ctx context.Context, input model.EnrollmentInput) (*model.Enrollment, error) {
	// References are recorded as given, without an existence check.
	e := r.Registry.AddEnrollment(input)
	r.Events.Publish(e)
	return e, nil
}

// UpdateEnrollmentStatus is the resolver for the updateEnrollmentStatus field.
func (r *mutationResolver) UpdateEnrollmentStatus(ctx context.Context, id string, status model.EnrollmentStatus) (*model.Enrollment, error) {
	e, err := r.Registry.UpdateEnrollmentStatus(id, status)
	if err != nil {
		return nil, fmt.Errorf("enrollment %s: %w", id, err)
	}
	return e, nil
}

// AssignGrade is the resolver for the assignGrade field.
func (r *mutationResolver) AssignGrade(ctx context.Context, id string, grade string) (*model.Enrollment, error) {
	e, err := r.Registry.AssignGrade(id, grade)
	if err != nil {
		return nil, fmt.Errorf("enrollment %s: %w", id, err)
	}
	return e, nil
}

// CreateDepartment is the resolver for the createDepartment field.
func (r *mutationResolver) CreateDepartment(ctx context.Context, input model.DepartmentInput) (*model.Department, error) {
	d, err := r.Registry.AddDepartment(input)
	if err != nil {
		return nil, fmt.Errorf("professor %s: %w", input.HeadID, err)
	}
	return d, nil
}

// Courses is the resolver for the courses field.
func (r *professorResolver) Courses(ctx context.Context, obj *model.Professor) ([]*model.Course, error) {
	return r.Registry.CoursesForProfessor(obj.ID), nil
}

// Students is the resolver for the students field.
func (r *queryResolver) Students(ctx context.Context) ([]*model.Student, error) {
	return r.Registry.Students(), nil
}

// Student is the resolver for the student field.
func (r *queryResolver) Student(ctx context.Context, id string) (*model.Student, error) {
	s, err := r.Registry.StudentByID(id)
	if errors.Is(err, registry.ErrNotFound) {
		// Absence is a null result, not an error.
		return nil, nil
	}
	return s, err
}

// Professors is the resolver for the professors field.
func (r *queryResolver) Professors(ctx context.Context) ([]*model.Professor, error) {
	return r.Registry.Professors(), nil
}

// Courses is the resolver for the courses field.
func (r *queryResolver) Courses(ctx context.Context, level *model.CourseLevel) ([]*model.Course, error) {
	return r.Registry.Courses(level), nil
}

// Course is the resolver for the course field.
func (r *queryResolver) Course(ctx context.Context, id string) (*model.Course, error) {
	c, err := r.Registry.CourseByID(id)
	if errors.Is(err, registry.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

// Departments is the resolver for the departments field.
func (r *queryResolver) Departments(ctx context.Context) ([]*model.Department, error) {
	return r.Registry.Departments(), nil
}

// DashboardStats is the resolver for the dashboardStats field.
func (r *queryResolver) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	return r.Registry.Stats(), nil
}

// Enrollments is the resolver for the enrollments field.
func (r *studentResolver) Enrollments(ctx context.Context, obj *model.Student) ([]*model.Enrollment, error) {
	return r.Registry.EnrollmentsForStudent(obj.ID), nil
}

// StudentEnrolled is the resolver for the studentEnrolled field.
func (r *subscriptionResolver) StudentEnrolled(ctx context.Context) (<-chan *model.Enrollment, error) {
	return r.Events.Subscribe(ctx), nil
}

// Course returns CourseResolver implementation.
func (r *Resolver) Course() CourseResolver { return &courseResolver{r} }

// Department returns DepartmentResolver implementation.
func (r *Resolver) Department() DepartmentResolver { return &departmentResolver{r} }

// Enrollment returns EnrollmentResolver implementation.
func (r *Resolver) Enrollment() EnrollmentResolver { return &enrollmentResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Professor returns ProfessorResolver implementation.
func (r *Resolver) Professor() ProfessorResolver { return &professorResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

// Student returns StudentResolver implementation.
func (r *Resolver) Student() StudentResolver { return &studentResolver{r} }

// Subscription returns SubscriptionResolver implementation.
func (r *Resolver) Subscription() SubscriptionResolver { return &subscriptionResolver{r} }

type courseResolver struct{ *Resolver }
type departmentResolver struct{ *Resolver }
type enrollmentResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type professorResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type studentResolver struct{ *Resolver }
type subscriptionResolver struct{ *Resolver }

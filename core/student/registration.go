package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/chayanin/tcasport/core"
)

// Registration drives one record-in-progress: fields mutate freely while
// editing, the faculty selection narrows the department options, and a
// successful submission inserts the record and resets the draft.
type Registration struct {
	svc      *Service
	validate *validator.Validate
	draft    NewStudent
}

func NewRegistration(svc *Service, validate *validator.Validate) *Registration {
	return &Registration{svc: svc, validate: validate}
}

// Draft exposes the record-in-progress for field edits.
func (reg *Registration) Draft() *NewStudent {
	return &reg.draft
}

// DepartmentOptions lists the departments selectable under the current
// faculty; none are selectable until a faculty is chosen.
func (reg *Registration) DepartmentOptions() []string {
	depts, _ := Departments(reg.draft.Faculty)
	return depts
}

// SelectFaculty narrows the department options to the chosen faculty's
// catalog entry. Changing the faculty always clears the chosen department.
func (reg *Registration) SelectFaculty(name string) error {
	if !ValidFaculty(name) {
		return core.NewValidationError(nil, core.FieldError{Field: "faculty", Error: facultyText})
	}
	reg.draft.Faculty = name
	reg.draft.Department = ""
	return nil
}

// SelectDepartment requires a faculty to have been chosen first and the
// department to belong to it.
func (reg *Registration) SelectDepartment(name string) error {
	if reg.draft.Faculty == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "department", Error: "select a faculty first"})
	}
	if !ValidDepartment(reg.draft.Faculty, name) {
		return core.NewValidationError(nil, core.FieldError{Field: "department", Error: deptFacultyText})
	}
	reg.draft.Department = name
	return nil
}

// Submit validates the draft against the registration schema. On failure the
// draft stays editable and nothing is stored; on success the record is
// inserted and a fresh draft replaces the submitted one.
func (reg *Registration) Submit() (Student, error) {
	if err := reg.draft.Validate(reg.validate); err != nil {
		return Student{}, err
	}
	std, err := reg.svc.Create(reg.draft)
	if err != nil {
		return Student{}, err
	}
	reg.draft = NewStudent{}
	return std, nil
}

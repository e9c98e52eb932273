package student

import (
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/chayanin/tcasport/core"
)

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("student not found")
)

type (
	// Repository is the process-wide record store. It holds no durable
	// state: the collection lives and dies with the process.
	Repository interface {
		// CreateStudent assigns a fresh unique id and appends the record.
		CreateStudent(std Student) (Student, error)
		// QueryAllStudents returns a snapshot in insertion order.
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// UpdateStudent replaces only the provided fields on the matching
		// record. Missing ids are a no-op, never an error.
		UpdateStudent(id string, up UpdateStudent) (Student, error)
		// ReplaceStudents swaps the entire collection wholesale.
		ReplaceStudents(students []Student) error
		// DeleteStudentByID removes one record; missing ids are a no-op.
		DeleteStudentByID(id string) error
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{
		repo:    repo,
		mailSvc: mailSvc,
		conf:    conf,
	}
}

// Create inserts a validated registration. Numerics left null by the form
// default to 0 and the store assigns the id.
func (svc *Service) Create(ns NewStudent) (Student, error) {
	std, err := svc.repo.CreateStudent(ns.student())
	if err != nil {
		return Student{}, errors.Wrap(err, "creating student")
	}
	svc.sendConfirmationMail(std)
	return std, nil
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id string) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

// Filter applies the live search and the chosen ordering over a fresh
// snapshot. No sort key leaves the matches in insertion order.
func (svc *Service) Filter(filter QueryFilter) ([]Student, error) {
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	students = searchStudents(students, filter.Search)
	sortStudents(students, filter.Sort, filter.Ascending)
	return students, nil
}

func (svc *Service) Update(id string, us UpdateStudent) (Student, error) {
	return svc.repo.UpdateStudent(id, us)
}

func (svc *Service) Replace(students []Student) error {
	return svc.repo.ReplaceStudents(students)
}

func (svc *Service) Delete(id string) error {
	return svc.repo.DeleteStudentByID(id)
}

func (svc *Service) sendConfirmationMail(std Student) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: std.FnameEN + " " + std.LnameEN, Address: std.Email}},
		Subject: "Registration received",
		Body: fmt.Sprintf(
			"Dear %s %s,\n\nYour portfolio for %s, %s (%s) has been received.\n",
			std.FnameTH, std.LnameTH, std.Faculty, std.Department, std.University,
		),
	})
}

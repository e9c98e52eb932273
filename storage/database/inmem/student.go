package inmemdb

import (
	"github.com/google/uuid"

	"github.com/chayanin/tcasport/core/student"
)

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []student.Student {
	students := make([]student.Student, len(repo.db.rows))
	copy(students, repo.db.rows)
	return students
}

func (repo *studentRepository) CreateStudent(std student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	std.ID = uuid.New().String()
	repo.db.rows = append(repo.db.rows, std)
	return std, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, std := range repo.db.rows {
		if std.ID == id {
			return std, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(id string, up student.UpdateStudent) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, std := range repo.db.rows {
		if std.ID == id {
			repo.db.rows[i] = up.Apply(std)
			return repo.db.rows[i], nil
		}
	}
	// missing ids are a no-op
	return student.Student{}, nil
}

func (repo *studentRepository) ReplaceStudents(students []student.Student) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	rows := make([]student.Student, len(students))
	copy(rows, students)
	repo.db.rows = rows
	return nil
}

func (repo *studentRepository) DeleteStudentByID(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, std := range repo.db.rows {
		if std.ID == id {
			repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

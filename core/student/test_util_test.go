package student

import (
	"encoding/json"
	"strconv"
	"sync"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/chayanin/tcasport/core"
	emailsvc "github.com/chayanin/tcasport/services/email"
)

// memRepo is a minimal slice-backed Repository for tests.
type memRepo struct {
	rows  []Student
	seq   int
	mutex sync.RWMutex
}

var _ Repository = (*memRepo)(nil)

func (repo *memRepo) CreateStudent(std Student) (Student, error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()
	repo.seq++
	std.ID = "id-" + strconv.Itoa(repo.seq)
	repo.rows = append(repo.rows, std)
	return std, nil
}

func (repo *memRepo) QueryAllStudents() ([]Student, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()
	rows := make([]Student, len(repo.rows))
	copy(rows, repo.rows)
	return rows, nil
}

func (repo *memRepo) GetStudentByID(id string) (Student, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()
	for _, std := range repo.rows {
		if std.ID == id {
			return std, nil
		}
	}
	return Student{}, ErrNotFound
}

func (repo *memRepo) UpdateStudent(id string, up UpdateStudent) (Student, error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()
	for i, std := range repo.rows {
		if std.ID == id {
			repo.rows[i] = up.Apply(std)
			return repo.rows[i], nil
		}
	}
	return Student{}, nil
}

func (repo *memRepo) ReplaceStudents(students []Student) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()
	rows := make([]Student, len(students))
	copy(rows, students)
	repo.rows = rows
	return nil
}

func (repo *memRepo) DeleteStudentByID(id string) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()
	for i, std := range repo.rows {
		if std.ID == id {
			repo.rows = append(repo.rows[:i], repo.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestConfig() *core.Config {
	return &core.Config{AppName: "TCAS Portfolio", Env: "TEST", TestMode: true}
}

func newTestService() (*Service, *memRepo) {
	conf := newTestConfig()
	repo := &memRepo{}
	return NewService(repo, emailsvc.NewConsoleServiceMock(conf), conf), repo
}

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	enLocale := en.New()
	translator, found := ut.New(enLocale, enLocale).GetTranslator(enLocale.Locale())
	if !found {
		t.Fatal("newTestValidator() failed: en translator not found")
	}
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

// validNewStudent is a draft that passes the whole registration schema.
func validNewStudent() NewStudent {
	return NewStudent{
		FnameTH:    "สมชาย",
		LnameTH:    "ใจดี",
		FnameEN:    "Somchai",
		LnameEN:    "Jaidee",
		IDCard:     "1103700012345",
		BirthDate:  "2007-05-12",
		Email:      "somchai@example.com",
		Tel:        "0812345678",
		Weight:     core.NewNumber(60),
		Height:     core.NewNumber(170),
		GPA:        core.NewNumber(3.25),
		Gender:     "ชาย",
		Address:    "99/1 ถ.ห้วยแก้ว ต.สุเทพ อ.เมือง จ.เชียงใหม่",
		OldSchool:  "โรงเรียนยุพราชวิทยาลัย",
		Skill:      "เขียนโปรแกรม",
		Reason:     "อยากเป็นวิศวกรซอฟต์แวร์",
		Faculty:    "วิศวกรรมศาสตร์",
		Department: "วิศวกรรมคอมพิวเตอร์",
		University: "มหาวิทยาลัยเชียงใหม่",
		ImgSrc:     []string{"data:image/png;base64,iVBORw0KGgo="},
	}
}

// numberFromJSON decodes a core.Number the way the wire does.
func numberFromJSON(t *testing.T, data string) core.Number {
	t.Helper()
	var n core.Number
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		t.Fatalf("numberFromJSON(%s) failed: %v", data, err)
	}
	return n
}

// fieldErrs extracts the failing field names from a validation error.
func fieldErrs(t *testing.T, err error) map[string]bool {
	t.Helper()
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("fieldErrs(): unexpected error type %T: %v", err, err)
	}
	fields := make(map[string]bool, len(vErrs))
	for _, fErr := range vErrs {
		fields[fErr.Field()] = true
	}
	return fields
}

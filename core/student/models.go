package student

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chayanin/tcasport/core"
)

// Student is one applicant's submitted portfolio record.
type Student struct {
	ID          string   `json:"id"`
	FnameTH     string   `json:"fnameTH"`
	LnameTH     string   `json:"lnameTH"`
	FnameEN     string   `json:"fnameEN"`
	LnameEN     string   `json:"lnameEN"`
	IDCard      string   `json:"idCard"`
	BirthDate   string   `json:"birthDate"`
	Email       string   `json:"email"`
	Tel         string   `json:"tel"`
	Weight      float64  `json:"weight"`
	Height      float64  `json:"height"`
	GPA         float64  `json:"gpa"`
	Gender      string   `json:"gender"`
	Address     string   `json:"address"`
	OldSchool   string   `json:"oldSchool"`
	Skill       string   `json:"skill"`
	Reason      string   `json:"reason"`
	Faculty     string   `json:"faculty"`
	Department  string   `json:"department"`
	University  string   `json:"university"`
	ImgSrc      []string `json:"imgSrc"`
	ImgActivity []string `json:"imgActivity,omitempty"`
	ImgAward    []string `json:"imgAward,omitempty"`
}

// NativeName returns the concatenated native-script first+last name used for
// searching and name ordering.
func (s Student) NativeName() string {
	return s.FnameTH + s.LnameTH
}

// NewStudent contains information needed to register a new Student.
// Weight, Height and GPA accept numbers or numeric strings and may stay null
// while the form is being edited; they are defaulted on submission.
type NewStudent struct {
	FnameTH     string      `json:"fnameTH" validate:"required"`
	LnameTH     string      `json:"lnameTH" validate:"required"`
	FnameEN     string      `json:"fnameEN" validate:"required"`
	LnameEN     string      `json:"lnameEN" validate:"required"`
	IDCard      string      `json:"idCard" validate:"required,len=13,digits"`
	BirthDate   string      `json:"birthDate" validate:"required"`
	Email       string      `json:"email" validate:"required,email"`
	Tel         string      `json:"tel" validate:"required,len=10,digits"`
	Weight      core.Number `json:"weight"`
	Height      core.Number `json:"height"`
	GPA         core.Number `json:"gpa"`
	Gender      string      `json:"gender" validate:"required,gender"`
	Address     string      `json:"address" validate:"required"`
	OldSchool   string      `json:"oldSchool" validate:"required"`
	Skill       string      `json:"skill" validate:"required"`
	Reason      string      `json:"reason" validate:"required"`
	Faculty     string      `json:"faculty" validate:"required,faculty"`
	Department  string      `json:"department" validate:"required"`
	University  string      `json:"university" validate:"required,university"`
	ImgSrc      []string    `json:"imgSrc" validate:"required,min=1,dive,imgref"`
	ImgActivity []string    `json:"imgActivity" validate:"omitempty,dive,imgref"`
	ImgAward    []string    `json:"imgAward" validate:"omitempty,dive,imgref"`
}

func (ns *NewStudent) clean() {
	ns.FnameTH = core.CleanString(ns.FnameTH)
	ns.LnameTH = core.CleanString(ns.LnameTH)
	ns.FnameEN = core.CleanString(ns.FnameEN)
	ns.LnameEN = core.CleanString(ns.LnameEN)
	ns.IDCard = core.CleanString(ns.IDCard)
	ns.BirthDate = core.CleanString(ns.BirthDate)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Tel = core.CleanString(ns.Tel)
	ns.Gender = core.CleanString(ns.Gender)
	ns.Address = core.CleanString(ns.Address)
	ns.OldSchool = core.CleanString(ns.OldSchool)
	ns.Skill = core.CleanString(ns.Skill)
	ns.Reason = core.CleanString(ns.Reason)
	ns.Faculty = core.CleanString(ns.Faculty)
	ns.Department = core.CleanString(ns.Department)
	ns.University = core.CleanString(ns.University)
}

// Validate normalizes the draft and runs the whole registration schema over
// it. It never panics on malformed input; every problem comes back as a
// field error.
func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.clean()
	return validate.Struct(ns)
}

// student builds the Student to be inserted: absent numerics default to 0.
func (ns NewStudent) student() Student {
	return Student{
		FnameTH:     ns.FnameTH,
		LnameTH:     ns.LnameTH,
		FnameEN:     ns.FnameEN,
		LnameEN:     ns.LnameEN,
		IDCard:      ns.IDCard,
		BirthDate:   ns.BirthDate,
		Email:       ns.Email,
		Tel:         ns.Tel,
		Weight:      ns.Weight.Float64(),
		Height:      ns.Height.Float64(),
		GPA:         ns.GPA.Float64(),
		Gender:      ns.Gender,
		Address:     ns.Address,
		OldSchool:   ns.OldSchool,
		Skill:       ns.Skill,
		Reason:      ns.Reason,
		Faculty:     ns.Faculty,
		Department:  ns.Department,
		University:  ns.University,
		ImgSrc:      ns.ImgSrc,
		ImgActivity: ns.ImgActivity,
		ImgAward:    ns.ImgAward,
	}
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. Empty fields keep the stored value.
type UpdateStudent struct {
	FnameTH     string      `json:"fnameTH"`
	LnameTH     string      `json:"lnameTH"`
	FnameEN     string      `json:"fnameEN"`
	LnameEN     string      `json:"lnameEN"`
	IDCard      string      `json:"idCard" validate:"omitempty,len=13,digits"`
	BirthDate   string      `json:"birthDate"`
	Email       string      `json:"email" validate:"omitempty,email"`
	Tel         string      `json:"tel" validate:"omitempty,len=10,digits"`
	Weight      core.Number `json:"weight"`
	Height      core.Number `json:"height"`
	GPA         core.Number `json:"gpa"`
	Gender      string      `json:"gender" validate:"omitempty,gender"`
	Address     string      `json:"address"`
	OldSchool   string      `json:"oldSchool"`
	Skill       string      `json:"skill"`
	Reason      string      `json:"reason"`
	Faculty     string      `json:"faculty" validate:"omitempty,faculty"`
	Department  string      `json:"department"`
	University  string      `json:"university" validate:"omitempty,university"`
	ImgSrc      []string    `json:"imgSrc" validate:"omitempty,min=1,dive,imgref"`
	ImgActivity []string    `json:"imgActivity" validate:"omitempty,dive,imgref"`
	ImgAward    []string    `json:"imgAward" validate:"omitempty,dive,imgref"`
}

// Validate fills unset selector fields from the original record so the
// faculty/department pair is always checked as a whole.
func (us *UpdateStudent) Validate(orig Student, validate *validator.Validate) error {
	us.Faculty = core.CleanString(us.Faculty)
	us.Department = core.CleanString(us.Department)
	if us.Faculty == "" && us.Department != "" {
		us.Faculty = orig.Faculty
	}
	if us.Faculty != "" && us.Department == "" {
		us.Department = orig.Department
	}
	if email := core.CleanString(us.Email, true /* lower */); email != "" {
		us.Email = email
	}
	return validate.Struct(us)
}

// Apply merges the provided fields onto orig and returns the result.
func (us UpdateStudent) Apply(orig Student) Student {
	set := func(dst *string, val string) {
		if val != "" {
			*dst = val
		}
	}
	set(&orig.FnameTH, us.FnameTH)
	set(&orig.LnameTH, us.LnameTH)
	set(&orig.FnameEN, us.FnameEN)
	set(&orig.LnameEN, us.LnameEN)
	set(&orig.IDCard, us.IDCard)
	set(&orig.BirthDate, us.BirthDate)
	set(&orig.Email, us.Email)
	set(&orig.Tel, us.Tel)
	set(&orig.Gender, us.Gender)
	set(&orig.Address, us.Address)
	set(&orig.OldSchool, us.OldSchool)
	set(&orig.Skill, us.Skill)
	set(&orig.Reason, us.Reason)
	set(&orig.Faculty, us.Faculty)
	set(&orig.Department, us.Department)
	set(&orig.University, us.University)
	if us.Weight.Valid {
		orig.Weight = us.Weight.Value
	}
	if us.Height.Valid {
		orig.Height = us.Height.Value
	}
	if us.GPA.Valid {
		orig.GPA = us.GPA.Value
	}
	if us.ImgSrc != nil {
		orig.ImgSrc = us.ImgSrc
	}
	if us.ImgActivity != nil {
		orig.ImgActivity = us.ImgActivity
	}
	if us.ImgAward != nil {
		orig.ImgAward = us.ImgAward
	}
	return orig
}

// SortKey selects the review ordering.
type SortKey string

const (
	SortByName SortKey = "name"
	SortByGPA  SortKey = "gpa"
)

// QueryFilter narrows and orders a record listing.
type QueryFilter struct {
	Search    string `query:"search"`
	Sort      SortKey
	Ascending bool
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Sort == ""
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// searchStudents keeps the records whose native-script full name contains
// text, case-insensitively. Empty text keeps everything.
func searchStudents(students []Student, text string) []Student {
	if text == "" {
		return students
	}
	text = strings.ToLower(text)
	matched := make([]Student, 0, len(students))
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.NativeName()), text) {
			matched = append(matched, s)
		}
	}
	return matched
}

// sortStudents orders records in place by the given key. Name ordering is
// locale-aware (Thai collation); a missing GPA counts as 0.
func sortStudents(students []Student, key SortKey, asc bool) {
	switch key {
	case SortByName:
		coll := collate.New(language.Thai)
		sort.SliceStable(students, func(i, j int) bool {
			cmp := coll.CompareString(students[i].NativeName(), students[j].NativeName())
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	case SortByGPA:
		sort.SliceStable(students, func(i, j int) bool {
			if asc {
				return students[i].GPA < students[j].GPA
			}
			return students[i].GPA > students[j].GPA
		})
	}
}

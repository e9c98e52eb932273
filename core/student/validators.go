package student

import (
	"net/url"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/chayanin/tcasport/core"
)

var (
	facultyTag  = "faculty"
	facultyText = "unknown faculty"

	universityTag  = "university"
	universityText = "unknown university"

	genderTag  = "gender"
	genderText = "invalid gender"

	imgRefTag  = "imgref"
	imgRefText = "invalid image reference"

	deptFacultyTag  = "deptfaculty"
	deptFacultyText = "department does not belong to the selected faculty"

	notNumericTag  = "numeric_"
	notNumericText = "must be a number"

	weightRangeTag  = "weightrange"
	weightRangeText = "weight must be between 1 and 300"

	heightRangeTag  = "heightrange"
	heightRangeText = "height must be between 1 and 250"

	gpaRangeTag  = "gparange"
	gpaRangeText = "gpa must be between 1.00 and 4.00"
)

// InitValidators registers this package's custom validators and translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(facultyTag, facultyValidation)
	core.RegisterCustomTranslation(validate, translator, facultyTag, facultyText)

	_ = validate.RegisterValidation(universityTag, universityValidation)
	core.RegisterCustomTranslation(validate, translator, universityTag, universityText)

	_ = validate.RegisterValidation(genderTag, genderValidation)
	core.RegisterCustomTranslation(validate, translator, genderTag, genderText)

	_ = validate.RegisterValidation(imgRefTag, imgRefValidation)
	core.RegisterCustomTranslation(validate, translator, imgRefTag, imgRefText)

	validate.RegisterStructValidation(studentStructValidation, NewStudent{}, UpdateStudent{})
	core.RegisterCustomTranslation(validate, translator, deptFacultyTag, deptFacultyText)
	core.RegisterCustomTranslation(validate, translator, notNumericTag, notNumericText)
	core.RegisterCustomTranslation(validate, translator, weightRangeTag, weightRangeText)
	core.RegisterCustomTranslation(validate, translator, heightRangeTag, heightRangeText)
	core.RegisterCustomTranslation(validate, translator, gpaRangeTag, gpaRangeText)
}

// Custom Validators

func facultyValidation(fl validator.FieldLevel) bool {
	return ValidFaculty(fl.Field().String())
}

func universityValidation(fl validator.FieldLevel) bool {
	return validUniversity(fl.Field().String())
}

func genderValidation(fl validator.FieldLevel) bool {
	return validGender(fl.Field().String())
}

// imgRefValidation accepts any absolute URI, data URLs included.
func imgRefValidation(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	return err == nil && u.Scheme != ""
}

// studentStructValidation does struct level validation on NewStudent and
// UpdateStudent: numeric coercion/ranges and the faculty/department pairing.
func studentStructValidation(sl validator.StructLevel) {
	switch s := sl.Current().Interface().(type) {
	case NewStudent:
		// absent numerics count as 0 and fail their range, matching the
		// pre-submission nullability of the form
		validateNumber(sl, s.Weight, false, "weight", "Weight", weightRangeTag, 1, 300)
		validateNumber(sl, s.Height, false, "height", "Height", heightRangeTag, 1, 250)
		validateNumber(sl, s.GPA, false, "gpa", "GPA", gpaRangeTag, 1, 4)
		validateDepartment(sl, s.Faculty, s.Department)
	case UpdateStudent:
		validateNumber(sl, s.Weight, true, "weight", "Weight", weightRangeTag, 1, 300)
		validateNumber(sl, s.Height, true, "height", "Height", heightRangeTag, 1, 250)
		validateNumber(sl, s.GPA, true, "gpa", "GPA", gpaRangeTag, 1, 4)
		if s.Faculty != "" || s.Department != "" {
			validateDepartment(sl, s.Faculty, s.Department)
		}
	}
}

func validateNumber(sl validator.StructLevel, n core.Number, optional bool, name, structName, rangeTag string, min, max float64) {
	if optional && !n.Set {
		return
	}
	if n.Malformed {
		sl.ReportError(n, name, structName, notNumericTag, "")
		return
	}
	if val := n.Float64(); val < min || val > max {
		sl.ReportError(n, name, structName, rangeTag, "")
	}
}

func validateDepartment(sl validator.StructLevel, faculty, department string) {
	if department == "" || !ValidFaculty(faculty) {
		// emptiness and unknown faculties are reported by field tags
		return
	}
	if !ValidDepartment(faculty, department) {
		sl.ReportError(department, "department", "Department", deptFacultyTag, "")
	}
}

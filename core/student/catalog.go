package student

// Static application catalogs. The department options of a given applicant
// depend on the chosen faculty; all three lists keep their display order.

var (
	Faculties = []string{
		"วิศวกรรมศาสตร์",
		"วิทยาศาสตร์",
		"สถาปัตยกรรมศาสตร์",
		"เกษตรศาสตร์",
		"แพทยศาสตร์",
		"ทันตแพทยศาสตร์",
		"เภสัชศาสตร์",
		"พยาบาลศาสตร์",
		"สหเวชศาสตร์",
		"สัตวแพทยศาสตร์",
		"อักษรศาสตร์/ศิลปศาสตร์/มนุษยศาสตร์",
		"นิติศาสตร์",
		"รัฐศาสตร์",
		"เศรษฐศาสตร์",
		"บริหารธุรกิจ/พาณิชยศาสตร์และการบัญชี",
		"นิเทศศาสตร์",
		"ครุศาสตร์/ศึกษาศาสตร์",
		"ศิลปกรรมศาสตร์",
	}

	facultyDepartments = map[string][]string{
		"วิศวกรรมศาสตร์": {
			"วิศวกรรมคอมพิวเตอร์",
			"วิศวกรรมโยธา",
			"วิศวกรรมเครื่องกล",
			"วิศวกรรมไฟฟ้า",
			"วิศวกรรมเคมี",
			"วิศวกรรมสิ่งแวดล้อม",
		},
		"วิทยาศาสตร์": {
			"วิทยาการคอมพิวเตอร์",
			"ฟิสิกส์",
			"เคมี",
			"ชีววิทยา",
			"คณิตศาสตร์",
			"สถิติ",
			"เทคโนโลยีชีวภาพ",
		},
		"สถาปัตยกรรมศาสตร์": {
			"สถาปัตยกรรม",
			"สถาปัตยกรรมภายใน",
			"ภูมิสถาปัตยกรรม",
			"การออกแบบอุตสาหกรรม",
		},
		"เกษตรศาสตร์":    {"พืชสวน", "สัตวบาล", "ส่งเสริมและนิเทศศาสตร์เกษตร"},
		"แพทยศาสตร์":     {"แพทยศาสตร์"},
		"ทันตแพทยศาสตร์": {"ทันตแพทยศาสตร์"},
		"เภสัชศาสตร์":    {"เภสัชศาสตร์"},
		"พยาบาลศาสตร์":   {"พยาบาลศาสตร์"},
		"สหเวชศาสตร์":    {"กายภาพบำบัด", "เทคนิคการแพทย์"},
		"สัตวแพทยศาสตร์": {"สัตวแพทยศาสตร์"},
		"อักษรศาสตร์/ศิลปศาสตร์/มนุษยศาสตร์": {
			"ภาษาอังกฤษ",
			"ภาษาจีน",
			"ภาษาญี่ปุ่น",
			"ประวัติศาสตร์",
			"ปรัชญา",
		},
		"นิติศาสตร์":  {"นิติศาสตร์"},
		"รัฐศาสตร์":   {"รัฐประศาสนศาสตร์", "การระหว่างประเทศ"},
		"เศรษฐศาสตร์": {"เศรษฐศาสตร์"},
		"บริหารธุรกิจ/พาณิชยศาสตร์และการบัญชี": {
			"การบัญชี",
			"การเงิน",
			"การตลาด",
			"การจัดการ",
		},
		"นิเทศศาสตร์":           {"การโฆษณา", "ภาพยนตร์และวิดีโอ", "วารสารศาสตร์"},
		"ครุศาสตร์/ศึกษาศาสตร์": {"การศึกษาปฐมวัย", "มัธยมศึกษา"},
		"ศิลปกรรมศาสตร์":        {"ทัศนศิลป์", "ดนตรี", "นาฏศิลป์"},
	}

	Universities = []string{
		"มหาวิทยาลัยเชียงใหม่",
		"มหาวิทยาลัยแม่โจ้",
		"มหาวิทยาลัยนเรศวร",
		"มหาวิทยาลัยพะเยา",
		"มหาวิทยาลัยราชภัฏเชียงใหม่",
		"มหาวิทยาลัยราชภัฏลำปาง",
		"มหาวิทยาลัยเทคโนโลยีราชมงคลล้านนา",
	}

	Genders = []string{"ชาย", "หญิง"}
)

// Departments returns the department options of the given faculty, in
// display order. ok is false when the faculty is not in the catalog.
func Departments(faculty string) (depts []string, ok bool) {
	d, ok := facultyDepartments[faculty]
	if !ok {
		return nil, false
	}
	depts = make([]string, len(d))
	copy(depts, d)
	return depts, true
}

func ValidFaculty(name string) bool {
	_, ok := facultyDepartments[name]
	return ok
}

// ValidDepartment reports whether department belongs to faculty's catalog entry.
func ValidDepartment(faculty, department string) bool {
	for _, d := range facultyDepartments[faculty] {
		if d == department {
			return true
		}
	}
	return false
}

func validUniversity(name string) bool {
	for _, u := range Universities {
		if u == name {
			return true
		}
	}
	return false
}

func validGender(name string) bool {
	for _, g := range Genders {
		if g == name {
			return true
		}
	}
	return false
}

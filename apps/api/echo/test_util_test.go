package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/chayanin/tcasport/core"
	"github.com/chayanin/tcasport/core/student"
	emailsvc "github.com/chayanin/tcasport/services/email"
	inmemdb "github.com/chayanin/tcasport/storage/database/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type httpErr struct {
	Error string `json:"error"`
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func newTestConfig() *core.Config {
	return &core.Config{
		AppName:            "TCAS Portfolio",
		Env:                "TEST",
		TestMode:           true,
		SecretKey:          "secret",
		JWTExpirationDelta: 10 * time.Minute,
		LoginDelay:         0,
	}
}

func setup(t *testing.T) (Server, student.Repository, *core.Config) {
	t.Helper()
	conf := newTestConfig()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewStudentRepository(db)

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	svc := student.NewService(repo, mailSvc, conf)

	validate := validator.New()
	enLocale := en.New()
	translator, found := ut.New(enLocale, enLocale).GetTranslator(enLocale.Locale())
	if !found {
		t.Fatal("setup() failed: en translator not found")
	}
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)

	app := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         nopLogger{},
		StudentSvc:     svc,
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})
	return app, repo, conf
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config) string {
	t.Helper()
	token, err := GenerateToken("reviewer@example.com", conf)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func createStudent(t *testing.T, repo student.Repository, fnameTH, lnameTH string, gpa float64) student.Student {
	t.Helper()
	std, err := repo.CreateStudent(student.Student{
		FnameTH: fnameTH,
		LnameTH: lnameTH,
		GPA:     gpa,
		Email:   "someone@example.com",
	})
	if err != nil {
		t.Fatalf("createStudent() failed: %v", err)
	}
	return std
}

// validStudentBody is a registration payload that passes the whole schema.
func validStudentBody(t *testing.T) []byte {
	t.Helper()
	return marchallObj(t, map[string]interface{}{
		"fnameTH":    "สมชาย",
		"lnameTH":    "ใจดี",
		"fnameEN":    "Somchai",
		"lnameEN":    "Jaidee",
		"idCard":     "1103700012345",
		"birthDate":  "2007-05-12",
		"email":      "somchai@example.com",
		"tel":        "0812345678",
		"weight":     60,
		"height":     170,
		"gpa":        "3.25", // numeric strings coerce
		"gender":     "ชาย",
		"address":    "99/1 ถ.ห้วยแก้ว ต.สุเทพ อ.เมือง จ.เชียงใหม่",
		"oldSchool":  "โรงเรียนยุพราชวิทยาลัย",
		"skill":      "เขียนโปรแกรม",
		"reason":     "อยากเป็นวิศวกรซอฟต์แวร์",
		"faculty":    "วิศวกรรมศาสตร์",
		"department": "วิศวกรรมคอมพิวเตอร์",
		"university": "มหาวิทยาลัยเชียงใหม่",
		"imgSrc":     []string{"data:image/png;base64,iVBORw0KGgo="},
	})
}

func checkCode(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("code = %v; want %v; body = %s", rec.Code, want, rec.Body.String())
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response failed: %v; body = %s", err, rec.Body.String())
	}
}

package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/hmpssainta/sainta/apps/api/echo"
	"github.com/hmpssainta/sainta/core"
	"github.com/hmpssainta/sainta/core/achievement"
	"github.com/hmpssainta/sainta/core/agenda"
	"github.com/hmpssainta/sainta/core/document"
	"github.com/hmpssainta/sainta/core/gallery"
	"github.com/hmpssainta/sainta/core/member"
	"github.com/hmpssainta/sainta/core/org"
	"github.com/hmpssainta/sainta/core/outcome"
	"github.com/hmpssainta/sainta/core/video"
	uploadsvc "github.com/hmpssainta/sainta/services/upload"
	"github.com/hmpssainta/sainta/storage/memory"
)

var errForbidden = httpErr{Error: "permission denied"}

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func testConfig() *core.Config {
	return &core.Config{
		TestMode:    true,
		Env:         "TEST",
		AppName:     "HMPS Sains Data",
		DefaultRole: core.RoleAdmin,
		// zero delays; tests exercise the flows, not the latencies
	}
}

// setup builds a Server on a freshly seeded in-memory DB so tests never leak
// state into each other.
func setup(t *testing.T) Server {
	t.Helper()

	conf := testConfig()

	db, err := memory.Open()
	if err != nil {
		t.Fatalf("memory.Open(): %v", err)
	}

	uploadSvc := uploadsvc.NewServiceMock()

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	document.InitValidators(validate, translator)

	return NewServer(
		ServerDeps{
			Conf:           conf,
			Logger:         nopLogger{},
			Validate:       validate,
			Translator:     translator,
			DisableReqLogs: true,
			MemberSvc:      member.NewService(memory.NewMemberRepository(db), conf),
			AgendaSvc:      agenda.NewService(memory.NewAgendaRepository(db), conf),
			GallerySvc:     gallery.NewService(memory.NewGalleryRepository(db), uploadSvc),
			VideoSvc:       video.NewService(memory.NewVideoRepository(db), uploadSvc),
			OutcomeSvc:     outcome.NewService(memory.NewOutcomeRepository(db), conf),
			DocumentSvc:    document.NewService(memory.NewDocumentRepository(db), uploadSvc),
			AchievementSvc: achievement.NewService(memory.NewAchievementRepository(db), conf),
			OrgSvc:         org.NewService(memory.NewOrgRepository(db)),
		},
	)
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	role     string
	wantCode int
	wantData []byte
}

func newRoleRequest(method, path, role string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Role", role)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newRoleRequest(method, path, "", data...)
}

type formFile struct {
	field       string
	name        string
	contentType string
	size        int
}

func newMultipartRequest(t *testing.T, method, path, role string, fields map[string]string, files ...formFile) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for key, val := range fields {
		if err := w.WriteField(key, val); err != nil {
			t.Fatalf("WriteField(%s): %v", key, err)
		}
	}
	for _, f := range files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		hdr.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("CreatePart(%s): %v", f.field, err)
		}
		if _, err = io.Copy(part, strings.NewReader(strings.Repeat("x", f.size))); err != nil {
			t.Fatalf("writing part %s: %v", f.field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if role != "" {
		req.Header.Set("X-Role", role)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func unmarchallObj(t *testing.T, data []byte, obj interface{}) {
	if err := json.Unmarshal(data, obj); err != nil {
		t.Fatalf("unmarchallObj(): %v", err)
	}
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func listLen(t *testing.T, app Server, path string) int {
	req, rec := newRequest(http.MethodGet, path)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var list []interface{}
	unmarchallObj(t, rec.Body.Bytes(), &list)
	return len(list)
}

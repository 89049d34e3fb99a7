package outcome

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hmpssainta/sainta/core"
)

// Outcome statuses
const (
	StatusBelum   = "belum"
	StatusRevisi  = "revisi"
	StatusSelesai = "selesai"
)

type Outcome struct {
	ID        int64  `json:"id"`
	Nama      string `json:"nama"`
	Matkul    string `json:"matkul"`
	Mahasiswa string `json:"mahasiswa"`
	NIM       string `json:"nim"`
	Status    string `json:"status"`
	Deadline  string `json:"deadline"` // YYYY-MM-DD
}

// Course is a read-only catalog entry tracking how many outcomes a class has
// completed. Courses are seeded; there is no create flow for them.
type Course struct {
	ID           string `json:"id"`
	Nama         string `json:"nama"`
	Dosen        string `json:"dosen"`
	Semester     string `json:"semester"`
	TotalOutcome int    `json:"totalOutcome"`
	Selesai      int    `json:"selesai"`
}

// NewOutcome contains information needed to record a new student Outcome.
type NewOutcome struct {
	Nama      string `json:"nama" validate:"required"`
	Matkul    string `json:"matkul" validate:"required"`
	Mahasiswa string `json:"mahasiswa" validate:"required"`
	NIM       string `json:"nim" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=belum revisi selesai"`
	Deadline  string `json:"deadline" validate:"required"`
}

func (no *NewOutcome) Validate(validate *validator.Validate) error {
	no.Nama = core.CleanString(no.Nama)
	no.Matkul = core.CleanString(no.Matkul)
	no.Mahasiswa = core.CleanString(no.Mahasiswa)
	no.NIM = core.CleanString(no.NIM)
	no.Deadline = core.CleanString(no.Deadline)
	if no.Status == "" {
		no.Status = StatusBelum
	}
	return validate.Struct(no)
}

type QueryFilter struct {
	Search string `query:"search"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == ""
}

// Match does a case-insensitive substring match on the task name, student
// name or course name, and a plain substring match on NIM (OR across fields).
func (qf *QueryFilter) Match(o Outcome) bool {
	if qf.IsEmpty() {
		return true
	}
	q := strings.ToLower(qf.Search)
	return strings.Contains(strings.ToLower(o.Nama), q) ||
		strings.Contains(strings.ToLower(o.Mahasiswa), q) ||
		strings.Contains(strings.ToLower(o.Matkul), q) ||
		strings.Contains(o.NIM, qf.Search)
}

package outcome

import (
	"context"

	"github.com/hmpssainta/sainta/core"
)

type (
	Repository interface {
		CreateOutcome(o Outcome) (Outcome, error)
		QueryAllOutcomes() ([]Outcome, error)
		FilterOutcomes(filter QueryFilter) ([]Outcome, error)
		QueryAllCourses() ([]Course, error)
	}

	Service interface {
		Create(ctx context.Context, no NewOutcome) (Outcome, error)
		QueryAll() ([]Outcome, error)
		Filter(filter QueryFilter) ([]Outcome, error)
		Courses() ([]Course, error)
	}

	service struct {
		repo Repository
		conf *core.Config
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, conf *core.Config) Service {
	return &service{repo: repo, conf: conf}
}

func (svc *service) Create(ctx context.Context, no NewOutcome) (Outcome, error) {
	if err := core.Sleep(ctx, svc.conf.Upload.CreateDelay); err != nil {
		return Outcome{}, err
	}
	o := Outcome{
		Nama:      no.Nama,
		Matkul:    no.Matkul,
		Mahasiswa: no.Mahasiswa,
		NIM:       no.NIM,
		Status:    no.Status,
		Deadline:  no.Deadline,
	}
	return svc.repo.CreateOutcome(o)
}

func (svc *service) QueryAll() ([]Outcome, error) {
	return svc.repo.QueryAllOutcomes()
}

func (svc *service) Filter(filter QueryFilter) ([]Outcome, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllOutcomes()
	}
	return svc.repo.FilterOutcomes(filter)
}

func (svc *service) Courses() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

package member

import (
	"context"

	"github.com/hmpssainta/sainta/core"
)

type (
	Repository interface {
		CreateMember(m Member) (Member, error)
		QueryAllMembers() ([]Member, error)
		// FilterMembers applies AND operation on available QueryFilter fields,
		// preserving insertion order.
		FilterMembers(filter QueryFilter) ([]Member, error)
	}

	Service interface {
		Create(ctx context.Context, nm NewMember) (Member, error)
		QueryAll() ([]Member, error)
		Filter(filter QueryFilter) ([]Member, error)
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

func (svc *service) Create(ctx context.Context, nm NewMember) (Member, error) {
	if err := core.Sleep(ctx, svc.conf.Upload.CreateDelay); err != nil {
		return Member{}, err
	}
	m := Member{
		Nama:     nm.Nama,
		NIM:      nm.NIM,
		Angkatan: nm.Angkatan,
		Email:    nm.Email,
		Phone:    nm.Phone,
		Divisi:   nm.Divisi,
		Jabatan:  nm.Jabatan,
	}
	return svc.repo.CreateMember(m)
}

func (svc *service) QueryAll() ([]Member, error) {
	return svc.repo.QueryAllMembers()
}

func (svc *service) Filter(filter QueryFilter) ([]Member, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllMembers()
	}
	return svc.repo.FilterMembers(filter)
}

package org

import "context"

type (
	Repository interface {
		GetProfile() (Profile, error)
		UpdateProfile(p Profile) (Profile, error)
		QueryStructure() ([]Position, error)
		GetContact() (Contact, error)
	}

	Service interface {
		Profile() (Profile, error)
		Update(ctx context.Context, up UpdateProfile) (Profile, error)
		Structure() ([]Position, error)
		Contact() (Contact, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Profile() (Profile, error) {
	return svc.repo.GetProfile()
}

func (svc *service) Update(_ context.Context, up UpdateProfile) (Profile, error) {
	p := Profile{
		NamaOrganisasi: up.NamaOrganisasi,
		TahunBerdiri:   up.TahunBerdiri,
		Visi:           up.Visi,
		Misi:           up.Misi,
		Deskripsi:      up.Deskripsi,
	}
	return svc.repo.UpdateProfile(p)
}

func (svc *service) Structure() ([]Position, error) {
	return svc.repo.QueryStructure()
}

func (svc *service) Contact() (Contact, error) {
	return svc.repo.GetContact()
}

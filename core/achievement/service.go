package achievement

import (
	"context"

	"github.com/hmpssainta/sainta/core"
)

type (
	Repository interface {
		CreateAchievement(a Achievement) (Achievement, error)
		QueryAllAchievements() ([]Achievement, error)
	}

	Service interface {
		Create(ctx context.Context, na NewAchievement) (Achievement, error)
		QueryAll() ([]Achievement, error)
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

func (svc *service) Create(ctx context.Context, na NewAchievement) (Achievement, error) {
	if err := core.Sleep(ctx, svc.conf.Upload.CreateDelay); err != nil {
		return Achievement{}, err
	}
	a := Achievement{
		Judul:     na.Judul,
		Tahun:     na.Tahun,
		Deskripsi: na.Deskripsi,
	}
	return svc.repo.CreateAchievement(a)
}

func (svc *service) QueryAll() ([]Achievement, error) {
	return svc.repo.QueryAllAchievements()
}

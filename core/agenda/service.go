package agenda

import (
	"context"

	"github.com/hmpssainta/sainta/core"
)

type (
	Repository interface {
		CreateItem(it Item) (Item, error)
		QueryAllItems() ([]Item, error)
		FilterItems(filter QueryFilter) ([]Item, error)
	}

	Service interface {
		Create(ctx context.Context, ni NewItem) (Item, error)
		QueryAll() ([]Item, error)
		Filter(filter QueryFilter) ([]Item, error)
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

func (svc *service) Create(ctx context.Context, ni NewItem) (Item, error) {
	if err := core.Sleep(ctx, svc.conf.Upload.CreateDelay); err != nil {
		return Item{}, err
	}
	it := Item{
		Judul:     ni.Judul,
		Tanggal:   ni.Tanggal,
		Waktu:     ni.Waktu,
		Lokasi:    ni.Lokasi,
		Deskripsi: ni.Deskripsi,
		Peserta:   ni.Peserta,
		Status:    ni.Status,
	}
	return svc.repo.CreateItem(it)
}

func (svc *service) QueryAll() ([]Item, error) {
	return svc.repo.QueryAllItems()
}

func (svc *service) Filter(filter QueryFilter) ([]Item, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllItems()
	}
	return svc.repo.FilterItems(filter)
}

package gallery

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core"
)

type (
	Repository interface {
		CreatePhoto(p Photo) (Photo, error)
		QueryAllPhotos() ([]Photo, error)
		FilterPhotos(filter QueryFilter) ([]Photo, error)
	}

	Service interface {
		Create(ctx context.Context, np NewPhoto, f core.File) (Photo, error)
		QueryAll() ([]Photo, error)
		Filter(filter QueryFilter) ([]Photo, error)
		// Categories lists the distinct kategori values present, in first-seen order.
		Categories() ([]string, error)
	}

	service struct {
		repo    Repository
		uploads core.UploadService
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, uploads core.UploadService) Service {
	return &service{repo: repo, uploads: uploads}
}

// Create uploads the image before any record exists; an upload error aborts
// with the gallery untouched.
func (svc *service) Create(ctx context.Context, np NewPhoto, f core.File) (Photo, error) {
	if err := core.CheckFile(f, core.ImageTypes, core.MaxImageMB); err != nil {
		return Photo{}, err
	}

	ref, err := svc.uploads.Upload(ctx, core.Upload{
		Kind: core.UploadKindPhoto,
		File: f,
		Meta: map[string]string{"judul": np.Judul, "kategori": np.Kategori},
	})
	if err != nil {
		return Photo{}, core.NewUploadError(errors.Wrap(err, "uploading photo"))
	}

	if np.Tanggal == "" {
		np.Tanggal = time.Now().Format("2006-01-02")
	}
	p := Photo{
		Judul:      np.Judul,
		Deskripsi:  np.Deskripsi,
		Kategori:   np.Kategori,
		Tanggal:    np.Tanggal,
		Fotografer: np.Fotografer,
		ImageURL:   ref.URL,
	}
	return svc.repo.CreatePhoto(p)
}

func (svc *service) QueryAll() ([]Photo, error) {
	return svc.repo.QueryAllPhotos()
}

func (svc *service) Filter(filter QueryFilter) ([]Photo, error) {
	if filter.IsEmpty() {
		return svc.repo.QueryAllPhotos()
	}
	return svc.repo.FilterPhotos(filter)
}

func (svc *service) Categories() ([]string, error) {
	photos, err := svc.repo.QueryAllPhotos()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(photos))
	cats := make([]string, 0, len(photos))
	for _, p := range photos {
		if !seen[p.Kategori] {
			seen[p.Kategori] = true
			cats = append(cats, p.Kategori)
		}
	}
	return cats, nil
}

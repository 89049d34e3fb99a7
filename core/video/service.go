package video

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core"
)

type (
	Repository interface {
		CreateVideo(v Video) (Video, error)
		QueryAllVideos() ([]Video, error)
	}

	Service interface {
		Create(ctx context.Context, nv NewVideo, f, thumb core.File) (Video, error)
		QueryAll() ([]Video, error)
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

// Create uploads the video before any record exists; a video upload error
// aborts with the listing untouched. The thumbnail is best-effort: it is
// uploaded after the video and falls back to the placeholder on failure.
func (svc *service) Create(ctx context.Context, nv NewVideo, f, thumb core.File) (Video, error) {
	if err := core.CheckFile(f, core.VideoTypes, core.MaxVideoMB); err != nil {
		return Video{}, err
	}
	if !thumb.IsZero() {
		if err := core.CheckFile(thumb, core.ImageTypes, core.MaxThumbnailMB); err != nil {
			return Video{}, err
		}
	}

	ref, err := svc.uploads.Upload(ctx, core.Upload{
		Kind: core.UploadKindVideo,
		File: f,
		Meta: map[string]string{"judul": nv.Judul, "pembicara": nv.Pembicara},
	})
	if err != nil {
		return Video{}, core.NewUploadError(errors.Wrap(err, "uploading video"))
	}

	thumbURL := DefaultThumbnailURL
	if !thumb.IsZero() {
		if tref, terr := svc.uploads.Upload(ctx, core.Upload{Kind: core.UploadKindPhoto, File: thumb}); terr == nil {
			thumbURL = tref.URL
		}
	}

	if nv.Tanggal == "" {
		nv.Tanggal = time.Now().Format("2006-01-02")
	}
	v := Video{
		Judul:     nv.Judul,
		Deskripsi: nv.Deskripsi,
		Pembicara: nv.Pembicara,
		Tanggal:   nv.Tanggal,
		Durasi:    nv.Durasi,
		VideoURL:  ref.URL,
		Thumbnail: thumbURL,
		Views:     0,
	}
	return svc.repo.CreateVideo(v)
}

func (svc *service) QueryAll() ([]Video, error) {
	return svc.repo.QueryAllVideos()
}

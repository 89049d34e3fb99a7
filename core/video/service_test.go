package video_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/hmpssainta/sainta/core"
	"github.com/hmpssainta/sainta/core/video"
	uploadsvc "github.com/hmpssainta/sainta/services/upload"
	"github.com/hmpssainta/sainta/storage/memory"
)

// kindFailingUploader fails uploads of the given kinds and delegates the rest
// to the zero-delay mock.
type kindFailingUploader struct {
	fail map[string]bool
	mock core.UploadService
}

func newKindFailingUploader(kinds ...string) *kindFailingUploader {
	fail := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		fail[k] = true
	}
	return &kindFailingUploader{fail: fail, mock: uploadsvc.NewServiceMock()}
}

func (u *kindFailingUploader) Upload(ctx context.Context, up core.Upload) (core.Reference, error) {
	if u.fail[up.Kind] {
		return core.Reference{}, errors.New("backend unavailable")
	}
	return u.mock.Upload(ctx, up)
}

func Test_service_Create_videoUploadFailureAborts(t *testing.T) {
	db, _ := memory.Open()
	repo := memory.NewVideoRepository(db)
	svc := video.NewService(repo, newKindFailingUploader(core.UploadKindVideo))

	_, err := svc.Create(context.Background(),
		video.NewVideo{Judul: "Gagal", Pembicara: "X"},
		core.File{Name: "gagal.mp4", ContentType: "video/mp4", Size: 1024},
		core.File{},
	)

	assert.Error(t, err)
	_, ok := errors.Cause(err).(*core.UploadError)
	assert.True(t, ok, "want UploadError, got %T", errors.Cause(err))

	videos, _ := repo.QueryAllVideos()
	assert.Len(t, videos, 1)
}

func Test_service_Create_thumbnailFailureFallsBack(t *testing.T) {
	db, _ := memory.Open()
	repo := memory.NewVideoRepository(db)
	svc := video.NewService(repo, newKindFailingUploader(core.UploadKindPhoto))

	v, err := svc.Create(context.Background(),
		video.NewVideo{Judul: "Webinar", Pembicara: "Y"},
		core.File{Name: "webinar.mp4", ContentType: "video/mp4", Size: 1024},
		core.File{Name: "thumb.jpg", ContentType: "image/jpeg", Size: 128},
	)

	// the record still lands, with the placeholder thumbnail
	assert.NoError(t, err)
	assert.Equal(t, video.DefaultThumbnailURL, v.Thumbnail)
	assert.NotEmpty(t, v.VideoURL)

	videos, _ := repo.QueryAllVideos()
	assert.Len(t, videos, 2)
}

func Test_service_Create_invalidThumbnailRejected(t *testing.T) {
	db, _ := memory.Open()
	repo := memory.NewVideoRepository(db)
	svc := video.NewService(repo, uploadsvc.NewServiceMock())

	_, err := svc.Create(context.Background(),
		video.NewVideo{Judul: "Thumb Aneh", Pembicara: "Z"},
		core.File{Name: "ok.mp4", ContentType: "video/mp4", Size: 1024},
		core.File{Name: "thumb.exe", ContentType: "application/octet-stream", Size: 128},
	)

	assert.Error(t, err)
	vErr, ok := errors.Cause(err).(*core.ValidationError)
	assert.True(t, ok, "want ValidationError, got %T", errors.Cause(err))
	if ok {
		assert.Equal(t, "file", vErr.Fields[0].Field)
	}

	videos, _ := repo.QueryAllVideos()
	assert.Len(t, videos, 1)
}

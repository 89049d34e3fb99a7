package uploadsvc

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hmpssainta/sainta/core"
)

// service fakes the submission backend. It sleeps for a per-kind artificial
// latency, then resolves to a synthetic object reference. Nothing is stored;
// clients keep the returned reference in their own collections.
type service struct {
	conf   *core.Config
	logger core.Logger
}

var _ core.UploadService = (*service)(nil)

func NewService(conf *core.Config, logger core.Logger) core.UploadService {
	return &service{conf: conf, logger: logger}
}

func (svc service) Upload(ctx context.Context, up core.Upload) (core.Reference, error) {
	if err := core.Sleep(ctx, svc.delay(up.Kind)); err != nil {
		return core.Reference{}, err
	}
	ref := newReference(up)
	svc.logger.Debug("upload resolved", up.Kind, up.File.Name, ref.URL)
	return ref, nil
}

func (svc service) delay(kind string) time.Duration {
	switch kind {
	case core.UploadKindPhoto:
		return svc.conf.Upload.PhotoDelay
	case core.UploadKindVideo:
		return svc.conf.Upload.VideoDelay
	case core.UploadKindFile:
		return svc.conf.Upload.FileDelay
	}
	return svc.conf.Upload.CreateDelay
}

func newReference(up core.Upload) core.Reference {
	id := uuid.New().String()
	ref := core.Reference{
		URL: "mem://" + up.Kind + "/" + id + filepath.Ext(up.File.Name),
	}
	if up.Kind == core.UploadKindPhoto || up.Kind == core.UploadKindVideo {
		ref.ID = up.Kind + "_" + id
	}
	return ref
}

type serviceMock struct {
	service
}

// NewServiceMock resolves uploads immediately. Tests use it to exercise the
// create flows without the artificial latency.
func NewServiceMock() core.UploadService {
	return &serviceMock{}
}

func (svc *serviceMock) Upload(_ context.Context, up core.Upload) (core.Reference, error) {
	return newReference(up), nil
}

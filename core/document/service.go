package document

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hmpssainta/sainta/core"
)

type (
	Repository interface {
		CreateDocument(d Document) (Document, error)
		QueryAllDocuments() ([]Document, error)
	}

	Service interface {
		Create(ctx context.Context, nd NewDocument, f core.File) (Document, error)
		QueryAll() ([]Document, error)
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

// Create uploads the file before any record exists; an upload error aborts
// with the listing untouched.
func (svc *service) Create(ctx context.Context, nd NewDocument, f core.File) (Document, error) {
	if err := core.CheckFile(f, core.DocumentTypes, core.MaxDocumentMB); err != nil {
		return Document{}, err
	}

	ref, err := svc.uploads.Upload(ctx, core.Upload{Kind: core.UploadKindFile, File: f})
	if err != nil {
		return Document{}, core.NewUploadError(errors.Wrap(err, "uploading document"))
	}

	d := Document{
		Nama:          nd.Nama,
		Kategori:      nd.Kategori,
		TanggalUpload: time.Now().Format("2006-01-02"),
		URL:           ref.URL,
	}
	return svc.repo.CreateDocument(d)
}

func (svc *service) QueryAll() ([]Document, error) {
	return svc.repo.QueryAllDocuments()
}

package media

import (
	"context"
	"io"

	"hotel-backoffice/internal/pkg/config"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Asset is what the blob-storage collaborator hands back after an upload.
// Pages is only populated for PDF uploads.
type Asset struct {
	URL      string
	PublicID string
	Pages    int
}

// Uploader is the blob-storage collaborator contract. Usecases accept this
// interface; tests substitute a stub.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*Asset, error)
	Delete(ctx context.Context, publicID string) error
}

type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cfg config.MediaConfig) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize cloudinary client")
	}

	return &CloudinaryUploader{
		client: client,
		folder: cfg.UploadFolder,
	}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (*Asset, error) {
	useFilename := true
	unique := true

	resp, err := u.client.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:           u.folder,
		FilenameOverride: filename,
		UseFilename:      &useFilename,
		UniqueFilename:   &unique,
	})
	if err != nil {
		return nil, errs.Wrap(err, "cloudinary upload failed")
	}

	return &Asset{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Pages:    resp.Pages,
	}, nil
}

func (u *CloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := u.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return errs.Wrap(err, "cloudinary destroy failed")
	}
	return nil
}

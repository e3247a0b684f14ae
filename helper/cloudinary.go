package helper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"restaurant_backend/config"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() (*cloudinary.Cloudinary, error) {
	if config.Config("CLOUDINARY_CLOUD_NAME") == "" {
		return nil, errors.New("CLOUDINARY_CLOUD_NAME is not set")
	}
	return cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
}

type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// ImageStore uploads menu and home page images to Cloudinary.
type ImageStore struct {
	cld *cloudinary.Cloudinary
}

func NewImageStore(cld *cloudinary.Cloudinary) *ImageStore {
	return &ImageStore{cld: cld}
}

func (s *ImageStore) Upload(ctx context.Context, file io.Reader, folder string) (*UploadedImage, error) {
	publicID := fmt.Sprintf("%s_%d", folder, time.Now().UnixNano())
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "restaurant/" + folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return nil, err
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary: %s", res.Error.Message)
	}
	return &UploadedImage{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (s *ImageStore) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// ExtractPublicID turns a delivery URL such as
// https://res.cloudinary.com/<cloud>/image/upload/v123/restaurant/products/burger.jpg
// into "restaurant/products/burger".
func ExtractPublicID(url string) string {
	_, rest, ok := strings.Cut(url, "/upload/")
	if !ok {
		return ""
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 1 && len(parts[0]) > 1 && parts[0][0] == 'v' && isDigits(parts[0][1:]) {
		parts = parts[1:]
	}
	publicID := strings.Join(parts, "/")
	return strings.TrimSuffix(publicID, path.Ext(publicID))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

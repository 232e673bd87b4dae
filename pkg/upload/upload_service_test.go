package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"regexp"
	"testing"

	"restaurant-directory/domain"
	"restaurant-directory/internal/utils/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type fakeS3 struct {
	key         string
	contentType string
	body        []byte
	err         error
}

func (f *fakeS3) UploadFile(_ context.Context, objectKey string, body io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.key, f.contentType, f.body = objectKey, contentType, data
	return objectKey, nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return storage.PublicLink("menu-images", "ap-south-1", objectKey)
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "the-spice-route-", SanitizeName("The Spice Route!"))
	assert.Equal(t, "caf--1", SanitizeName("Café 1"))
	assert.Equal(t, "abc123", SanitizeName("abc123"))
}

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("Spice Hub", "Masala Dosa", "photo.JPG")
	assert.Regexp(t, regexp.MustCompile(`^spice-hub/masala-dosa-[0-9a-f-]{36}\.JPG$`), key)

	noExt := BuildObjectKey("A", "B", "upload")
	assert.Regexp(t, regexp.MustCompile(`^a/b-[0-9a-f-]{36}$`), noExt)

	assert.NotEqual(t, BuildObjectKey("A", "B", "x.png"), BuildObjectKey("A", "B", "x.png"))
}

func TestUploadMenuImage(t *testing.T) {
	s3 := &fakeS3{}
	svc := NewUploadService(s3, zap.NewNop().Sugar())

	res, err := svc.UploadMenuImage(context.Background(), domain.UploadImageRequest{
		RestaurantName: "Spice Hub",
		ItemName:       "Paneer Tikka",
		File:           fileHeader(t, "tikka.png", pngHeader),
	})
	require.NoError(t, err)

	assert.Regexp(t, `^spice-hub/paneer-tikka-[0-9a-f-]{36}\.png$`, res.Key)
	assert.Equal(t, "https://menu-images.s3.ap-south-1.amazonaws.com/"+res.Key, res.FileURL)
	assert.Equal(t, res.Key, s3.key)
	assert.Equal(t, "image/png", s3.contentType)
	assert.Equal(t, pngHeader, s3.body)
}

func TestUploadMenuImage_RejectsNonImage(t *testing.T) {
	s3 := &fakeS3{}
	svc := NewUploadService(s3, zap.NewNop().Sugar())

	_, err := svc.UploadMenuImage(context.Background(), domain.UploadImageRequest{
		RestaurantName: "Spice Hub",
		ItemName:       "Menu",
		File:           fileHeader(t, "menu.png", []byte("just some text")),
	})
	require.ErrorIs(t, err, domain.ErrInvalidImageFormat)
	assert.Empty(t, s3.key)
}

func TestUploadMenuImage_MissingFields(t *testing.T) {
	svc := NewUploadService(&fakeS3{}, zap.NewNop().Sugar())

	_, err := svc.UploadMenuImage(context.Background(), domain.UploadImageRequest{
		RestaurantName: "Spice Hub",
		ItemName:       " ",
		File:           fileHeader(t, "a.png", pngHeader),
	})
	require.ErrorIs(t, err, domain.ErrMissingUploadFields)

	_, err = svc.UploadMenuImage(context.Background(), domain.UploadImageRequest{
		RestaurantName: "Spice Hub",
		ItemName:       "Dosa",
	})
	require.ErrorIs(t, err, domain.ErrMissingUploadFields)
}

func TestUploadMenuImage_StorageFailure(t *testing.T) {
	storageErr := errors.New("bucket unavailable")
	svc := NewUploadService(&fakeS3{err: storageErr}, zap.NewNop().Sugar())

	_, err := svc.UploadMenuImage(context.Background(), domain.UploadImageRequest{
		RestaurantName: "Spice Hub",
		ItemName:       "Dosa",
		File:           fileHeader(t, "a.png", pngHeader),
	})
	require.ErrorIs(t, err, storageErr)
}

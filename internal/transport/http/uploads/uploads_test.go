package uploads

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teraskopi54/pos/internal/service/services/productsvc"
)

type mockService struct {
	stored string
	err    error
	got    string
	body   []byte
}

func (m *mockService) StoreImage(img productsvc.Upload) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.got = img.Filename
	m.body, _ = io.ReadAll(img.Reader)
	return m.stored, nil
}

func TestUploadImage(t *testing.T) {
	svc := &mockService{stored: "generated.png"}

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("image", "latte.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-images", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	UploadImage(rec, req, svc)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "generated.png")
	assert.Equal(t, "latte.png", svc.got)
	assert.Equal(t, "image-bytes", string(svc.body))
}

func TestUploadImage_MissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("note", "no file here"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-images", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	UploadImage(rec, req, &mockService{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "image field is required")
}

package uploads

import (
	"log/slog"
	"net/http"

	"github.com/teraskopi54/pos/internal/service/services/productsvc"
	"github.com/teraskopi54/pos/internal/transport/http/respond"
)

const maxUploadSize = 32 << 20

// service is an interface for the service layer.
type service interface {
	StoreImage(img productsvc.Upload) (string, error)
}

// uploadResponse carries the stored file name back to the caller.
type uploadResponse struct {
	Filename string `json:"filename"`
}

// UploadImage handles a standalone multipart image upload.
func UploadImage(w http.ResponseWriter, r *http.Request, service service) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Message(w, http.StatusBadRequest, err.Error())

		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "image field is required")

		return
	}
	defer file.Close()

	name, err := service.StoreImage(productsvc.Upload{Filename: header.Filename, Reader: file})
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error storing uploaded image", "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, uploadResponse{Filename: name})
}

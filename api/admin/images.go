package admin

import (
	"io"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// UploadProductImage handles POST /admin/products/images. The file lands under
// a random name in the products namespace; the response carries the public URL
// to attach to a product image row.
func (arm *AdminRoutesManager) UploadProductImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(arm.cfg.Storage.MaxUploadSize); err != nil {
		arm.logger.Warn("Failed to parse multipart form", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please attach an image file and try again"), gecho.Send())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please attach an image file and try again"), gecho.Send())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		arm.logger.Error("Failed to read uploaded file", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to upload image. Please try again"), gecho.Send())
		return
	}

	publicURL, err := arm.storageService.UploadProductImage(header.Filename, data)
	if err != nil {
		arm.logger.Error("Failed to store uploaded file", gecho.Field("error", err), gecho.Field("filename", header.Filename))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to upload image. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"url": publicURL,
		}),
		gecho.WithMessage("Image uploaded successfully"),
		gecho.Send(),
	)
}

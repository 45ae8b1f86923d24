package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayloop/booking-api/internal/api/metrics"
	"github.com/stayloop/booking-api/internal/core/ports"
)

// maxUploadFiles caps how many files a single multipart upload may carry.
const maxUploadFiles = 100

// MediaHandler handles photo ingestion.
type MediaHandler struct {
	service ports.MediaService
}

func NewMediaHandler(service ports.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

type uploadByLinkRequest struct {
	Link string `json:"link" validate:"required,url"`
}

// UploadByLink handles POST /upload-by-link — fetches a remote image and
// stores it locally, returning the filename handle.
//
// @Summary      Ingest a photo from a remote URL
// @Tags         media
// @Accept       json
// @Produce      json
// @Param        body  body      uploadByLinkRequest  true  "Remote image URL"
// @Success      200   {string}  string  "stored filename"
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /upload-by-link [post]
func (h *MediaHandler) UploadByLink(c echo.Context) error {
	var req uploadByLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	name, err := h.service.UploadByLink(c.Request().Context(), req.Link)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to download image"})
	}

	metrics.UploadsTotal.WithLabelValues("link").Inc()
	return c.JSON(http.StatusOK, name)
}

// UploadFiles handles POST /upload — multipart upload under the "photos"
// field, up to maxUploadFiles files.
//
// @Summary      Upload photos
// @Tags         media
// @Accept       multipart/form-data
// @Produce      json
// @Param        photos  formData  file  true  "Photo files"
// @Success      200     {array}   string
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /upload [post]
func (h *MediaHandler) UploadFiles(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	headers := form.File["photos"]
	if len(headers) > maxUploadFiles {
		headers = headers[:maxUploadFiles]
	}

	files := make([]ports.UploadedFile, 0, len(headers))
	opened := make([]interface{ Close() error }, 0, len(headers))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	for _, hdr := range headers {
		src, err := hdr.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to read upload"})
		}
		opened = append(opened, src)
		files = append(files, ports.UploadedFile{OriginalName: hdr.Filename, Content: src})
	}

	names, err := h.service.UploadFiles(c.Request().Context(), files)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to store upload"})
	}

	metrics.UploadsTotal.WithLabelValues("file").Add(float64(len(names)))
	return c.JSON(http.StatusOK, names)
}

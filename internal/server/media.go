package server

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gulfbridge/portal/internal/providers/storage"
)

const maxUploadBytes = 64 << 20

// UploadMedia proxies one file to the storage endpoint. The preset form
// field selects the processing profile (image, video, logo, cv).
func (s *Server) UploadMedia(c *gin.Context) {
	preset := storage.Preset(c.PostForm("preset"))
	if !preset.Valid() {
		AbortWithError(c, newValidationError("preset", "invalid_preset", "invalid value"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		AbortWithError(c, newValidationError("file", "file_required", "invalid value"))
		return
	}

	file, err := readUpload(fileHeader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	url, err := s.uploader.Upload(c.Request.Context(), preset, file)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// UploadMediaBatch uploads every file in the multipart "files" field
// concurrently. URLs come back in input order; one failure fails the batch.
func (s *Server) UploadMediaBatch(c *gin.Context) {
	preset := storage.Preset(c.PostForm("preset"))
	if !preset.Valid() {
		AbortWithError(c, newValidationError("preset", "invalid_preset", "invalid value"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		AbortWithError(c, newValidationError("files", "files_required", "invalid value"))
		return
	}

	files := make([]storage.File, 0, len(headers))
	for _, header := range headers {
		file, err := readUpload(header)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		files = append(files, file)
	}

	urls, err := s.uploader.UploadMany(c.Request.Context(), preset, files)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"urls": urls})
}

// UploadCV is the anonymous upload used by job applicants: the applicant
// uploads a CV here first, then submits the returned URL with the
// application. The preset is fixed so the public route cannot reach the
// other processing profiles.
func (s *Server) UploadCV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		AbortWithError(c, newValidationError("file", "file_required", "invalid value"))
		return
	}

	file, err := readUpload(fileHeader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	url, err := s.uploader.Upload(c.Request.Context(), storage.PresetCV, file)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func readUpload(header *multipart.FileHeader) (storage.File, error) {
	if header.Size > maxUploadBytes {
		return storage.File{}, newValidationError("file", "file_too_large", "invalid value")
	}
	src, err := header.Open()
	if err != nil {
		return storage.File{}, err
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, maxUploadBytes))
	if err != nil {
		return storage.File{}, err
	}
	return storage.File{Name: header.Filename, Content: content}, nil
}

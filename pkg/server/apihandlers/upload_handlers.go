package apihandlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/getzep/animalfacts/pkg/models"
	"github.com/getzep/animalfacts/pkg/server/handlertools"
)

const uploadFormField = "file"

// UploadHandler reads the multipart "file" part once, discarding its content, and reports its
// name, size and content type.
func UploadHandler(_ *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reader, err := r.MultipartReader()
		if err != nil {
			handlertools.RenderError(
				w,
				models.NewBadRequestError(fmt.Sprintf("invalid multipart request: %v", err)),
				http.StatusBadRequest,
			)
			return
		}

		for {
			part, err := reader.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				handlertools.RenderError(
					w,
					models.NewBadRequestError(fmt.Sprintf("invalid multipart request: %v", err)),
					http.StatusBadRequest,
				)
				return
			}

			if part.FormName() != uploadFormField {
				_ = part.Close()
				continue
			}

			size, err := io.Copy(io.Discard, part)
			_ = part.Close()
			if err != nil {
				handlertools.RenderError(
					w,
					fmt.Errorf("failed to read upload: %w", err),
					http.StatusInternalServerError,
				)
				return
			}

			info := models.UploadInfo{
				Filename: part.FileName(),
				Size:     FormatSize(size),
				Type:     part.Header.Get("Content-Type"),
			}
			if err := handlertools.ValidateStruct(info); err != nil {
				handlertools.RenderError(w, err, http.StatusBadRequest)
				return
			}
			log.Debugf("received upload %q (%s)", info.Filename, humanize.IBytes(uint64(size)))

			handlertools.JSONOK(w, info, http.StatusOK)
			return
		}

		handlertools.RenderError(
			w,
			models.NewBadRequestError("file is required"),
			http.StatusBadRequest,
		)
	}
}

// FormatSize renders a byte count as "<n> B", "<x.xx> KB" or "<x.xx> MB" using 1024 multiples.
func FormatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(size)/(1024*1024))
	}
}

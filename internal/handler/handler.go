package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"gocart/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// maxUploadSize bounds the in-memory portion of multipart parsing.
const maxUploadSize = 32 << 20

var validate = validator.New()

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a service error to a status code and writes it.
// Non-domain errors become an opaque 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var derr *model.DomainError
	if !errors.As(err, &derr) {
		writeError(w, http.StatusInternalServerError, "internal server error", logger)
		return
	}

	status := http.StatusBadRequest
	switch derr.Code {
	case model.ErrCodeUserNotFound,
		model.ErrCodeCategoryNotFound,
		model.ErrCodeProductNotFound,
		model.ErrCodeResetTokenInvalid,
		model.ErrCodeNoProducts:
		status = http.StatusNotFound
	case model.ErrCodeWrongPassword:
		status = http.StatusUnauthorized
	}

	writeError(w, status, derr.Message, logger)
}

// decodeJSON decodes a JSON body into dst and runs struct validation.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// formFile extracts one optional upload from a multipart form. A missing
// file is not an error; the caller gets nil.
func formFile(r *http.Request, field string) (*model.Upload, multipart.File, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	upload := &model.Upload{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}

	return upload, file, nil
}

// formFiles extracts all uploads under a multipart field. The returned
// closer releases the opened files.
func formFiles(r *http.Request, field string) ([]model.Upload, func(), error) {
	if r.MultipartForm == nil {
		return nil, func() {}, nil
	}

	headers := r.MultipartForm.File[field]
	uploads := make([]model.Upload, 0, len(headers))
	files := make([]multipart.File, 0, len(headers))

	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, file)
		uploads = append(uploads, model.Upload{
			Reader:      file,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		})
	}

	return uploads, closeAll, nil
}

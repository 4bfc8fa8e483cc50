package media

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/mediagate/service/internal/response"
)

// maxMultipartMemory bounds how much of a multipart body is held in memory;
// larger file parts spill to temporary files.
const maxMultipartMemory = 32 << 20

// dataURLRe matches the prefix of a data-URL-wrapped payload:
// "data:<mime>;base64,<payload>".
var dataURLRe = regexp.MustCompile(`^data:[^;,]*;base64,`)

// Handler holds HTTP handlers for the storage gateway endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new media Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the gateway endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/upload", h.Upload)
	r.Post("/upload/base64", h.UploadBase64)
	r.Get("/{folder}/{fileName}", h.Retrieve)
	r.Delete("/{folder}/{fileName}", h.Delete)
}

type base64UploadRequest struct {
	File        string `json:"file"        example:"data:text/plain;base64,aGVsbG8="`
	FileName    string `json:"fileName"    example:"note.txt"`
	Environment string `json:"environment,omitempty" example:"production"`
}

type uploadResult struct {
	Success     bool   `json:"success"     example:"true"`
	FileName    string `json:"fileName"    example:"3f8e2a1c-6b7d-4c21-9f0a-b54f3e8d2c11.txt"`
	Environment string `json:"environment" example:"production"`
	Folder      string `json:"folder"      example:"media"`
	URL         string `json:"url"         example:"https://cdn.example.com/media/3f8e2a1c-6b7d-4c21-9f0a-b54f3e8d2c11.txt"`
}

type deleteResult struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"file deleted"`
}

// Upload godoc
//
//	@Summary		Upload a file (multipart)
//	@Description	Streams the uploaded file into the folder of the given environment under a server-generated unique name. The environment field defaults to "development".
//	@Tags			files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file		formData	file	true	"File content"
//	@Param			environment	formData	string	false	"production or development"
//	@Success		201	{object}	uploadResult
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.BadRequest(w, "invalid_form", "request body is not valid multipart form data")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no_file", "no file provided")
		return
	}
	defer file.Close()

	stored, err := h.svc.Upload(r.Context(), UploadRequest{
		Source:       file,
		OriginalName: header.Filename,
		Environment:  r.FormValue("environment"),
	})
	if err != nil {
		writeError(w, err, "file not found", "failed to upload file")
		return
	}

	response.JSON(w, http.StatusCreated, newUploadResult(stored))
}

// UploadBase64 godoc
//
//	@Summary		Upload a file (base64 JSON)
//	@Description	Decodes a base64 or data-URL payload and stores it under a server-generated unique name. Only the extension of fileName is kept. The environment field defaults to "development".
//	@Tags			files
//	@Accept			json
//	@Produce		json
//	@Param			request	body		base64UploadRequest	true	"Encoded file"
//	@Success		201		{object}	uploadResult
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/upload/base64 [post]
func (h *Handler) UploadBase64(w http.ResponseWriter, r *http.Request) {
	var req base64UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid_body", "invalid request body")
		return
	}
	if req.File == "" {
		response.BadRequest(w, "missing_file", "file is required")
		return
	}
	if req.FileName == "" {
		response.BadRequest(w, "missing_file_name", "fileName is required")
		return
	}

	payload := req.File
	if m := dataURLRe.FindString(payload); m != "" {
		payload = payload[len(m):]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		response.BadRequest(w, "invalid_base64", "file is not valid base64 data")
		return
	}

	stored, err := h.svc.Upload(r.Context(), UploadRequest{
		Source:       bytes.NewReader(data),
		OriginalName: req.FileName,
		Environment:  req.Environment,
	})
	if err != nil {
		writeError(w, err, "file not found", "failed to upload file")
		return
	}

	response.JSON(w, http.StatusCreated, newUploadResult(stored))
}

// Retrieve godoc
//
//	@Summary		Download a stored file
//	@Description	Streams the stored file back as a binary body.
//	@Tags			files
//	@Produce		octet-stream
//	@Param			folder		path	string	true	"media or media-dev"
//	@Param			fileName	path	string	true	"Server-generated file name"
//	@Success		200	{file}		file
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/{folder}/{fileName} [get]
func (h *Handler) Retrieve(w http.ResponseWriter, r *http.Request) {
	folder := chi.URLParam(r, "folder")
	name := chi.URLParam(r, "fileName")

	rc, err := h.svc.Retrieve(r.Context(), folder, name)
	if err != nil {
		writeError(w, err, "file not found", "failed to retrieve file")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, rc); err != nil {
		// Headers are already written; the copy failure aborts the body.
		log.Printf("media: stream %s/%s: %v", folder, name, err)
	}
}

// Delete godoc
//
//	@Summary		Delete a stored file
//	@Description	Removes the stored file. Deleting a file that is already gone returns 404, never an error escalation.
//	@Tags			files
//	@Produce		json
//	@Param			folder		path	string	true	"media or media-dev"
//	@Param			fileName	path	string	true	"Server-generated file name"
//	@Success		200	{object}	deleteResult
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/{folder}/{fileName} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), chi.URLParam(r, "folder"), chi.URLParam(r, "fileName"))
	if err != nil {
		writeError(w, err, "file does not exist or already deleted", "failed to delete file")
		return
	}
	response.JSON(w, http.StatusOK, deleteResult{Success: true, Message: "file deleted"})
}

func newUploadResult(f *StoredFile) uploadResult {
	return uploadResult{
		Success:     true,
		FileName:    string(f.Name),
		Environment: string(f.Environment),
		Folder:      string(f.Folder),
		URL:         f.URL,
	}
}

// writeError maps a service failure to exactly one HTTP error response.
// Validation failures carry their own code and message; anything unexpected
// is logged with full detail and answered with the generic message only.
func writeError(w http.ResponseWriter, err error, notFoundMsg, internalMsg string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(w, ve.Code, ve.Message)
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, notFoundMsg)
	default:
		log.Printf("media: %s: %v", internalMsg, err)
		response.Internal(w, internalMsg)
	}
}

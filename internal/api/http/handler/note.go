package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httpctx "github.com/noteshare/noteshare-server/internal/api/http/context"
	"github.com/noteshare/noteshare-server/internal/logger"
	"github.com/noteshare/noteshare-server/internal/model"
	"github.com/noteshare/noteshare-server/internal/service"
)

// NoteService defines note metadata queries.
type NoteService interface {
	ListByClass(ctx context.Context, classNumber int) ([]model.Note, error)
}

// UploadService runs the upload pipeline.
type UploadService interface {
	Process(ctx context.Context, params service.UploadParams) (model.Note, error)
}

// Note handles HTTP endpoints for listing and uploading notes.
type Note struct {
	noteService   NoteService
	uploadService UploadService
	logger        *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(noteService NoteService, uploadService UploadService, logger *logger.Logger) *Note {
	return &Note{
		noteService:   noteService,
		uploadService: uploadService,
		logger:        logger,
	}
}

type noteResponse struct {
	ID            int64  `json:"id"`
	ClassNumber   int    `json:"class_number"`
	FileName      string `json:"file_name"`
	FileReference string `json:"file_reference"`
}

func toNoteResponse(n model.Note) noteResponse {
	return noteResponse{
		ID:            n.ID,
		ClassNumber:   n.ClassNumber,
		FileName:      n.FileName,
		FileReference: n.FileReference,
	}
}

// List returns all notes of one class, oldest first. Requires an
// authenticated session.
func (h *Note) List(c *gin.Context) {
	identity := httpctx.GetIdentity(c.Request.Context())
	if err := service.Authorize(identity, service.ActionViewNotes); err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}

	classNumber, err := strconv.Atoi(c.Param("classNumber"))
	if err != nil || classNumber <= 0 {
		status, body := mapError(model.ErrMissingClassNumber)
		c.JSON(status, body)
		return
	}

	notes, err := h.noteService.ListByClass(c.Request.Context(), classNumber)
	if err != nil {
		h.logger.Error("Note handler: failed to list notes",
			"class_number", classNumber,
			"error", err.Error())
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}

	responses := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, toNoteResponse(n))
	}

	c.JSON(http.StatusOK, responses)
}

// Upload accepts a multipart PDF upload for a class. Admin only.
func (h *Note) Upload(c *gin.Context) {
	identity := httpctx.GetIdentity(c.Request.Context())
	if err := service.Authorize(identity, service.ActionManageUploads); err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}

	// An unparsable class number is rejected by the pipeline the same way
	// as a missing one.
	classNumber, _ := strconv.Atoi(c.PostForm("class_number"))

	params := service.UploadParams{ClassNumber: classNumber}

	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			h.logger.Error("Note handler: failed to open uploaded file",
				"file_name", fileHeader.Filename,
				"error", openErr.Error())
			status, body := mapError(openErr)
			c.JSON(status, body)
			return
		}
		defer file.Close()

		params.FileName = fileHeader.Filename
		params.Size = fileHeader.Size
		params.Reader = file
	}

	note, err := h.uploadService.Process(c.Request.Context(), params)
	if err != nil {
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, toNoteResponse(note))
}

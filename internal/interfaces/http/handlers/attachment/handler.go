// Package attachment serves staged uploads and the files attached to records.
package attachment

import (
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/shjfcs/foodwatch/internal/shared/errors"
	"github.com/shjfcs/foodwatch/internal/shared/logger"
	"github.com/shjfcs/foodwatch/internal/shared/utils"
)

const (
	fileField = "file"
	// formOverhead leaves room for multipart headers around the file itself.
	formOverhead = 1 << 20
)

type Handler struct {
	stager Stager
	owners map[string]Owner
	logger logger.Interface
}

func NewHandler(stager Stager, owners []Owner, log logger.Interface) *Handler {
	byName := make(map[string]Owner, len(owners))
	for _, o := range owners {
		byName[o.Kind().Name] = o
	}
	return &Handler{
		stager: stager,
		owners: byName,
		logger: log,
	}
}

// StageUpload handles POST /uploads/staged
func (h *Handler) StageUpload(c *gin.Context) {
	file, name, err := h.openUpload(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer file.Close()

	staged, err := h.stager.StageUpload(c.Request.Context(), file, name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, StagedUploadResponse{Filename: staged}, "File staged successfully")
}

// DiscardStaged handles DELETE /uploads/staged/:filename
func (h *Handler) DiscardStaged(c *gin.Context) {
	if err := h.stager.Discard(c.Request.Context(), c.Param("filename")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Staged file discarded", nil)
}

// Upload returns the direct upload handler of one owner kind:
// POST /complaints/:id/attachment and POST /poison-reports/:id/attachments.
func (h *Handler) Upload(ownerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, id, err := h.resolve(c, ownerName)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		file, name, err := h.openUpload(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		defer file.Close()

		committed, err := owner.AttachUpload(c.Request.Context(), id, file, name)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.CreatedResponse(c, AttachmentResponse{Filename: committed, Promoted: true}, "File attached successfully")
	}
}

// Promote returns the handler attaching a staged upload to a record:
// POST /poison-reports/:id/attachments/promote.
func (h *Handler) Promote(ownerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, id, err := h.resolve(c, ownerName)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		var req PromoteAttachmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for promote attachment", "owner", ownerName, "owner_id", id, "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("filename is required"))
			return
		}

		committed, err := owner.Promote(c.Request.Context(), id, path.Base(req.Filename))
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "", AttachmentResponse{Filename: committed, Promoted: committed != ""})
	}
}

// Detach returns the handler removing one committed file:
// DELETE /complaints/:id/attachment/:filename and
// DELETE /poison-reports/:id/attachments/:filename.
func (h *Handler) Detach(ownerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, id, err := h.resolve(c, ownerName)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		if err := owner.Detach(c.Request.Context(), id, c.Param("filename")); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Attachment removed successfully", nil)
	}
}

// Download handles GET /attachments/:owner/:id/:filename
func (h *Handler) Download(c *gin.Context) {
	owner, id, err := h.resolve(c, c.Param("owner"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := path.Base(c.Param("filename"))
	rc, err := owner.Open(c.Request.Context(), id, filename)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, -1, contentType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", filename),
	})
}

func (h *Handler) resolve(c *gin.Context, ownerName string) (Owner, int64, error) {
	owner, ok := h.owners[ownerName]
	if !ok {
		return nil, 0, errors.NewNotFoundError("unknown attachment owner")
	}
	id, err := utils.ParseIDParam(c, "id", owner.Kind().Record.Label())
	if err != nil {
		return nil, 0, err
	}
	return owner, id, nil
}

// openUpload caps the request body just above the upload limit so an
// oversize file is refused without buffering it.
func (h *Handler) openUpload(c *gin.Context) (io.ReadCloser, string, error) {
	maxBytes := h.stager.Policy().MaxBytes
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+formOverhead)

	header, err := c.FormFile(fileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, "", errors.NewUploadTooLargeError(fmt.Sprintf("file exceeds %d bytes", maxBytes))
		}
		return nil, "", errors.NewUploadError("no file uploaded")
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		return nil, "", errors.NewUploadError("failed to read uploaded file")
	}
	return file, header.Filename, nil
}

package attachment

// PromoteAttachmentRequest names a staged upload to attach to a record.
type PromoteAttachmentRequest struct {
	Filename string `json:"filename" binding:"required,max=255"`
}

// AttachmentResponse reports the committed name of an attached file. Promoted
// is false when the staged file was already gone.
type AttachmentResponse struct {
	Filename string `json:"filename,omitempty"`
	Promoted bool   `json:"promoted"`
}

// StagedUploadResponse carries the name to send back as a pending attachment.
type StagedUploadResponse struct {
	Filename string `json:"filename"`
}

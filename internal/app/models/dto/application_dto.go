package dto

// ApplyRequest represents a student applying to an internship
type ApplyRequest struct {
	CoverLetter *string `json:"cover_letter,omitempty"`
}

// UpdateApplicationStatusRequest changes an application's status
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed accepted rejected"`
}

package models

// OptimizeResponse is the success body of POST /optimize. Both fields are
// always present; a field the model gave nothing for is an empty string.
type OptimizeResponse struct {
	ResumeContent      string `json:"resume_content"`
	CoverLetterContent string `json:"cover_letter_content"`
}

package dto

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/plazasales/storefront/internal/domain"
)

// Multipart field names of the career application form.
const (
	FieldResume      = "resume"
	FieldCoverLetter = "coverLetter"
)

// ContactRequest is the contact page form. Field rules are enforced by the
// submission service; tags here only bound the payload.
type ContactRequest struct {
	Fullname    string `json:"fullname" validate:"max=200"`
	Email       string `json:"email" validate:"max=320"`
	CountryCode string `json:"countryCode" validate:"max=3"`
	PhoneNo     string `json:"phoneNo" validate:"max=30"`
	Address     string `json:"address" validate:"max=500"`
	Message     string `json:"message" validate:"max=5000"`
	Purpose     string `json:"purpose" validate:"max=50"`
}

// Form converts the request to the domain form.
func (r *ContactRequest) Form() *domain.ContactForm {
	return &domain.ContactForm{
		Fullname:    r.Fullname,
		Email:       r.Email,
		CountryCode: r.CountryCode,
		PhoneNo:     r.PhoneNo,
		Address:     r.Address,
		Message:     r.Message,
		Purpose:     r.Purpose,
	}
}

// InquiryRequest is a product inquiry.
type InquiryRequest struct {
	ProductID string `json:"productId" validate:"max=100"`
	BrandID   string `json:"brandId" validate:"max=100"`
	Name      string `json:"name" validate:"max=200"`
	Email     string `json:"email" validate:"max=320"`
	Phone     string `json:"phone" validate:"max=30"`
	Address   string `json:"address" validate:"max=500"`
	Message   string `json:"message" validate:"max=5000"`
}

// Inquiry converts the request to the domain inquiry.
func (r *InquiryRequest) Inquiry() *domain.Inquiry {
	return &domain.Inquiry{
		ProductID: r.ProductID,
		BrandID:   r.BrandID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Message:   r.Message,
	}
}

// NewsletterRequest is a newsletter signup.
type NewsletterRequest struct {
	Name  string `json:"name" validate:"max=200"`
	Email string `json:"email" validate:"max=320"`
}

// Signup converts the request to the domain signup.
func (r *NewsletterRequest) Signup() *domain.NewsletterSignup {
	return &domain.NewsletterSignup{Name: r.Name, Email: r.Email}
}

// ApplicationRequest holds the text fields of a multipart career application.
type ApplicationRequest struct {
	Name  string `form:"name" json:"name" validate:"max=200"`
	Email string `form:"email" json:"email" validate:"max=320"`
	Phone string `form:"phone" json:"phone" validate:"max=30"`
}

// Form builds the domain form; either file header may be nil.
func (r *ApplicationRequest) Form(resume, coverLetter *multipart.FileHeader) *domain.ApplicationForm {
	return &domain.ApplicationForm{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Resume:      NewAttachment(resume),
		CoverLetter: NewAttachment(coverLetter),
	}
}

// NewAttachment wraps an uploaded file. A nil header yields nil.
func NewAttachment(fh *multipart.FileHeader) *domain.Attachment {
	if fh == nil {
		return nil
	}

	return &domain.Attachment{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadSeekCloser, error) {
			return fh.Open()
		},
	}
}

// AcceptedResponse acknowledges a forwarded submission or event.
type AcceptedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Accepted builds an acknowledgement.
func Accepted(message string) *AcceptedResponse {
	return &AcceptedResponse{Status: "accepted", Message: message}
}

// CareerResponse is an opening as listed and detailed.
type CareerResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Location     string    `json:"location,omitempty"`
	JobType      string    `json:"jobType"`
	JobTypeLabel string    `json:"jobTypeLabel"`
	SalaryRange  string    `json:"salaryRange,omitempty"`
	Description  string    `json:"description,omitempty"`
	Requirements string    `json:"requirements,omitempty"`
	Deadline     time.Time `json:"deadline,omitzero"`
	Open         bool      `json:"open"`
	Saved        bool      `json:"saved"`
	ShareURL     string    `json:"shareUrl"`
}

// NewCareerResponse converts a career view.
func NewCareerResponse(v domain.CareerView) CareerResponse {
	return CareerResponse{
		ID:           v.Career.ID,
		Title:        v.Career.Title,
		Slug:         v.Career.Slug,
		Location:     v.Career.Location,
		JobType:      string(v.Career.JobType),
		JobTypeLabel: v.JobTypeLabel,
		SalaryRange:  v.Career.SalaryRange,
		Description:  v.Career.Description,
		Requirements: v.Career.Requirements,
		Deadline:     v.Career.Deadline,
		Open:         v.Open,
		Saved:        v.Saved,
		ShareURL:     v.ShareURL,
	}
}

// SavedJobResponse is a bookmarked opening.
type SavedJobResponse struct {
	CareerID    string    `json:"careerId"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Location    string    `json:"location,omitempty"`
	JobType     string    `json:"jobType"`
	SalaryRange string    `json:"salaryRange,omitempty"`
	SavedAt     time.Time `json:"savedAt"`
}

// NewSavedJobResponse converts a saved job.
func NewSavedJobResponse(j domain.SavedJob) SavedJobResponse {
	return SavedJobResponse{
		CareerID:    j.CareerID,
		Slug:        j.Slug,
		Title:       j.Title,
		Location:    j.Location,
		JobType:     string(j.JobType),
		SalaryRange: j.SalaryRange,
		SavedAt:     j.SavedAt,
	}
}

// SavedJobsResponse is the visitor's saved list, with whether the toggled job
// ended up saved.
type SavedJobsResponse struct {
	Saved     *bool              `json:"saved,omitempty"`
	SavedJobs []SavedJobResponse `json:"savedJobs"`
}

// NewToggleResponse converts the result of a save toggle.
func NewToggleResponse(v *domain.SavedJobsView) *SavedJobsResponse {
	saved := v.Saved

	return &SavedJobsResponse{
		Saved:     &saved,
		SavedJobs: mapSlice(v.SavedJobs, NewSavedJobResponse),
	}
}

// NewSavedJobsResponse converts a saved list.
func NewSavedJobsResponse(jobs []domain.SavedJob) *SavedJobsResponse {
	return &SavedJobsResponse{SavedJobs: mapSlice(jobs, NewSavedJobResponse)}
}

// NewsletterStatusResponse tells the storefront whether to show the signup dialog.
type NewsletterStatusResponse struct {
	ShouldPrompt  bool  `json:"shouldPrompt"`
	PromptDelayMS int64 `json:"promptDelayMs"`
	Subscribed    bool  `json:"subscribed"`
	Dismissed     bool  `json:"dismissed"`
}

// NewNewsletterStatusResponse converts a newsletter status.
func NewNewsletterStatusResponse(s *domain.NewsletterStatus) *NewsletterStatusResponse {
	return &NewsletterStatusResponse{
		ShouldPrompt:  s.ShouldPrompt,
		PromptDelayMS: s.PromptDelay.Milliseconds(),
		Subscribed:    s.Subscribed,
		Dismissed:     s.Dismissed,
	}
}

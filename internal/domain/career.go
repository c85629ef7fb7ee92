package domain

import (
	"io"
	"strings"
	"time"
)

// JobType is the employment type of an opening.
type JobType string

// Job types published by the careers backend.
const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

var jobTypeLabels = map[JobType]string{
	JobTypeFullTime:   "Full-time",
	JobTypePartTime:   "Part-time",
	JobTypeContract:   "Contract",
	JobTypeInternship: "Internship",
}

// Label is the display text for the job type; unknown types are shown as-is.
func (t JobType) Label() string {
	if l, ok := jobTypeLabels[t]; ok {
		return l
	}

	return string(t)
}

// Career is a job opening.
type Career struct {
	ID           string
	Title        string
	Slug         string
	Location     string
	JobType      JobType
	SalaryRange  string
	Description  string
	Requirements string
	Deadline     time.Time
	Status       string
}

// IsOpen reports whether the opening still accepts applications at now.
// A missing deadline or status means open.
func (c *Career) IsOpen(now time.Time) bool {
	if s := strings.ToUpper(c.Status); s == "CLOSED" || s == "INACTIVE" {
		return false
	}

	if c.Deadline.IsZero() {
		return true
	}

	return !now.After(c.Deadline)
}

// Attachment is an uploaded file that accompanies an application.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadSeekCloser, error)
}

// Extension returns the lowercased file extension including the dot.
func (a *Attachment) Extension() string {
	i := strings.LastIndexByte(a.Filename, '.')
	if i < 0 {
		return ""
	}

	return strings.ToLower(a.Filename[i:])
}

// JobApplication is the candidate's submission for an opening.
type JobApplication struct {
	CareerID       string
	Position       string
	Name           string
	Email          string
	Phone          string
	Resume         *Attachment
	CoverLetter    *Attachment
	ResumeURL      string
	CoverLetterURL string
}

package domain

import "time"

// SavedJob is a career a visitor bookmarked.
type SavedJob struct {
	CareerID    string
	Slug        string
	Title       string
	Location    string
	JobType     JobType
	SalaryRange string
	SavedAt     time.Time
}

// SavedJobFromCareer snapshots the career fields shown in the saved list.
func SavedJobFromCareer(c *Career, at time.Time) SavedJob {
	return SavedJob{
		CareerID:    c.ID,
		Slug:        c.Slug,
		Title:       c.Title,
		Location:    c.Location,
		JobType:     c.JobType,
		SalaryRange: c.SalaryRange,
		SavedAt:     at,
	}
}

// VisitorState is everything the storefront remembers about an anonymous visitor.
type VisitorState struct {
	VisitorID              string
	SavedJobs              []SavedJob
	NewsletterDismissedAt  *time.Time
	NewsletterSubscribedAt *time.Time
}

// IsSaved reports whether the career is in the visitor's saved list.
func (v *VisitorState) IsSaved(careerID string) bool {
	for _, j := range v.SavedJobs {
		if j.CareerID == careerID {
			return true
		}
	}

	return false
}

// ToggleSavedJob removes the job when already saved, otherwise appends it.
// It returns true when the job ends up saved.
func (v *VisitorState) ToggleSavedJob(job SavedJob) bool {
	for i, j := range v.SavedJobs {
		if j.CareerID == job.CareerID {
			v.SavedJobs = append(v.SavedJobs[:i], v.SavedJobs[i+1:]...)
			return false
		}
	}

	v.SavedJobs = append(v.SavedJobs, job)

	return true
}

// ShouldPromptNewsletter reports whether the newsletter dialog may be shown.
func (v *VisitorState) ShouldPromptNewsletter() bool {
	return v.NewsletterDismissedAt == nil && v.NewsletterSubscribedAt == nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	appctx "github.com/plazasales/storefront/internal/app/context"
	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/ports"
)

// Submission form names, as counted by the submissions metric.
const (
	formApplication = "application"
	formContact     = "contact"
	formInquiry     = "inquiry"
	formNewsletter  = "newsletter"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var _ ports.CareerService = (*CareerService)(nil)

// UploadPolicy bounds application attachments.
type UploadPolicy struct {
	MaxSizeMB         int
	AllowedExtensions []string
	PresignTTL        time.Duration
}

func (p UploadPolicy) maxBytes() int64 {
	return int64(p.MaxSizeMB) << 20
}

// CareerDeps are the ports CareerService uses.
type CareerDeps struct {
	Careers  ports.CareerClient
	Visitors ports.VisitorStore
	Captcha  ports.CaptchaVerifier
	Files    ports.FileStore

	// ObjectKey names a new attachment object for a career and file extension.
	ObjectKey func(careerID, ext string) string
}

// CareerService serves the careers pages, the saved jobs list and
// applications.
type CareerService struct {
	base

	careers   ports.CareerClient
	visitors  ports.VisitorStore
	captcha   ports.CaptchaVerifier
	files     ports.FileStore
	objectKey func(careerID, ext string) string
	uploads   UploadPolicy
	exec      *Executor
}

// NewCareerService creates a CareerService.
func NewCareerService(deps CareerDeps, uploads UploadPolicy, cfg *ServiceConfig) *CareerService {
	b := newBase(cfg, "app.CareerService")

	return &CareerService{
		base:      b,
		careers:   deps.Careers,
		visitors:  deps.Visitors,
		captcha:   deps.Captcha,
		files:     deps.Files,
		objectKey: deps.ObjectKey,
		uploads:   uploads,
		exec:      NewExecutor(b.logger),
	}
}

// CareersPage lists openings with the visitor's saved flags.
func (s *CareerService) CareersPage(ctx context.Context) ([]domain.CareerView, error) {
	careers, err := s.careers.ListCareers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing careers: %w", err)
	}

	state := s.loadVisitor(ctx, s.visitors)
	now := s.now()

	views := make([]domain.CareerView, 0, len(careers))
	for i := range careers {
		views = append(views, s.view(&careers[i], state, now))
	}

	return views, nil
}

// CareerDetail returns one opening as seen by the visitor.
func (s *CareerService) CareerDetail(ctx context.Context, slug string) (*domain.CareerView, error) {
	career, err := s.careers.GetCareer(ctx, slug)
	if err != nil {
		return nil, err
	}

	v := s.view(career, s.loadVisitor(ctx, s.visitors), s.now())

	return &v, nil
}

func (s *CareerService) view(c *domain.Career, state *domain.VisitorState, now time.Time) domain.CareerView {
	return domain.CareerView{
		Career:       *c,
		JobTypeLabel: c.JobType.Label(),
		Open:         c.IsOpen(now),
		Saved:        state.IsSaved(c.ID),
		ShareURL:     s.url(pathCareer, c.Slug),
	}
}

// ToggleSavedJob saves the opening, or removes it when already saved.
func (s *CareerService) ToggleSavedJob(ctx context.Context, slug string) (*domain.SavedJobsView, error) {
	id, err := visitorID(ctx)
	if err != nil {
		return nil, err
	}

	career, err := s.careers.GetCareer(ctx, slug)
	if err != nil {
		return nil, err
	}

	state, err := s.visitors.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading visitor: %w", err)
	}

	job := domain.SavedJobFromCareer(career, s.now())

	saved := state.ToggleSavedJob(job)
	if saved {
		err = s.visitors.SaveJob(ctx, id, job)
	} else {
		err = s.visitors.RemoveJob(ctx, id, career.ID)
	}

	if err != nil {
		return nil, fmt.Errorf("updating saved jobs: %w", err)
	}

	return &domain.SavedJobsView{
		Saved:     saved,
		SavedJobs: nonNil(state.SavedJobs),
	}, nil
}

// SavedJobs returns the visitor's saved openings, newest last.
func (s *CareerService) SavedJobs(ctx context.Context) ([]domain.SavedJob, error) {
	id, err := visitorID(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.visitors.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading visitor: %w", err)
	}

	return nonNil(state.SavedJobs), nil
}

type application struct {
	rc    *appctx.RequestContext
	slug  string
	form  *domain.ApplicationForm
	proof domain.CaptchaProof
}

func (a *application) career(s *CareerService) (*domain.Career, error) {
	return appctx.Fetch(a.rc, "career:"+a.slug, func(ctx context.Context) (*domain.Career, error) {
		return s.careers.GetCareer(ctx, a.slug)
	})
}

// Apply submits an application. Attachments are uploaded before the backend
// call and deleted again when the backend rejects it.
func (s *CareerService) Apply(ctx context.Context, slug string, form *domain.ApplicationForm, proof domain.CaptchaProof) error {
	rc := appctx.New(ctx)
	in := &application{rc: rc, slug: slug, form: form, proof: proof}

	_, err := Execute(appctx.WithContext(ctx, rc), s.exec, Operation[*application, *domain.JobApplication]{
		Name:     "career.apply",
		Validate: s.validateApplication,
		Perform:  s.performApplication,
		Respond: func(ctx context.Context, in *application, out *domain.JobApplication) error {
			s.log(ctx).InfoContext(ctx, "application submitted",
				slog.String("career_id", out.CareerID),
				slog.Bool("cover_letter", out.CoverLetterURL != ""),
			)

			return nil
		},
	}, in)

	s.metrics.Submission(formApplication, outcome(err))

	return err
}

func (s *CareerService) validateApplication(_ context.Context, in *application) error {
	if in.form == nil {
		return domain.NewValidationError("form", "application is required")
	}

	f := in.form
	verr := &domain.ValidationError{}

	if strings.TrimSpace(f.Name) == "" {
		verr.Add("name", "name is required")
	}

	if validate.Var(f.Email, "required,email") != nil {
		verr.Add("email", "a valid email is required")
	}

	if strings.TrimSpace(f.Phone) == "" {
		verr.Add("phone", "phone is required")
	}

	if f.Resume == nil {
		verr.Add("resume", "resume is required")
	} else {
		s.checkAttachment(verr, "resume", f.Resume)
	}

	if f.CoverLetter != nil {
		s.checkAttachment(verr, "coverLetter", f.CoverLetter)
	}

	if err := verr.OrNil(); err != nil {
		return err
	}

	career, err := in.career(s)
	if err != nil {
		return err
	}

	if !career.IsOpen(s.now()) {
		return domain.NewConflictError("career", "no longer accepting applications")
	}

	return nil
}

func (s *CareerService) checkAttachment(verr *domain.ValidationError, field string, a *domain.Attachment) {
	if !slices.Contains(s.uploads.AllowedExtensions, a.Extension()) {
		verr.Add(field, "file type must be one of "+strings.Join(s.uploads.AllowedExtensions, ", "))
		return
	}

	if a.Size <= 0 {
		verr.Add(field, "file is empty")
		return
	}

	if a.Size > s.uploads.maxBytes() {
		verr.Add(field, fmt.Sprintf("file exceeds %d MB", s.uploads.MaxSizeMB))
	}
}

func (s *CareerService) performApplication(ctx context.Context, in *application) (*domain.JobApplication, error) {
	if err := s.captcha.Verify(ctx, in.proof.Token, domain.CaptchaActionApplication, in.proof.RemoteIP); err != nil {
		return nil, err
	}

	career, err := in.career(s)
	if err != nil {
		return nil, err
	}

	app := &domain.JobApplication{
		CareerID:    career.ID,
		Position:    career.Title,
		Name:        strings.TrimSpace(in.form.Name),
		Email:       strings.TrimSpace(in.form.Email),
		Phone:       strings.TrimSpace(in.form.Phone),
		Resume:      in.form.Resume,
		CoverLetter: in.form.CoverLetter,
	}

	if err := s.stageUpload(in.rc, career.ID, "resume", app.Resume, &app.ResumeURL); err != nil {
		return nil, err
	}

	if app.CoverLetter != nil {
		if err := s.stageUpload(in.rc, career.ID, "cover-letter", app.CoverLetter, &app.CoverLetterURL); err != nil {
			return nil, err
		}
	}

	err = in.rc.Stage(appctx.Func{
		Label: "submit-application",
		DoFn: func(ctx context.Context) error {
			return s.careers.SubmitApplication(ctx, app)
		},
	})
	if err != nil {
		return nil, err
	}

	if err := in.rc.Commit(ctx); err != nil {
		return nil, err
	}

	return app, nil
}

// stageUpload stages storing one attachment and presigning its URL into dst.
func (s *CareerService) stageUpload(rc *appctx.RequestContext, careerID, label string, a *domain.Attachment, dst *string) error {
	key := s.objectKey(careerID, a.Extension())

	return rc.Stage(appctx.Func{
		Label: "upload-" + label,
		DoFn: func(ctx context.Context) error {
			r, err := a.Open()
			if err != nil {
				return fmt.Errorf("opening %s: %w", label, err)
			}
			defer r.Close()

			if _, err := s.files.Put(ctx, key, r, a.Size, a.ContentType); err != nil {
				return fmt.Errorf("storing %s: %w", label, err)
			}

			url, err := s.files.PresignGet(ctx, key, s.uploads.PresignTTL)
			if err != nil {
				_ = s.files.Delete(context.WithoutCancel(ctx), key)
				return fmt.Errorf("presigning %s: %w", label, err)
			}

			*dst = url

			return nil
		},
		UndoFn: func(ctx context.Context) error {
			return s.files.Delete(ctx, key)
		},
	})
}

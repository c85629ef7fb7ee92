package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/plazasales/storefront/internal/domain"
	"github.com/plazasales/storefront/internal/ports"
)

// DefaultNewsletterPromptDelay is how long the page waits before showing the
// newsletter dialog.
const DefaultNewsletterPromptDelay = 2 * time.Second

var _ ports.SubmissionService = (*SubmissionService)(nil)

// SubmissionDeps are the ports SubmissionService uses.
type SubmissionDeps struct {
	Submissions ports.SubmissionClient
	Captcha     ports.CaptchaVerifier
	Visitors    ports.VisitorStore
	Flags       ports.FeatureFlags
}

// SubmissionService forwards the contact, inquiry and newsletter forms and
// tracks the visitor's newsletter prompt.
type SubmissionService struct {
	base

	submissions ports.SubmissionClient
	captcha     ports.CaptchaVerifier
	visitors    ports.VisitorStore
	flags       ports.FeatureFlags
	promptDelay time.Duration
}

// NewSubmissionService creates a SubmissionService. A zero promptDelay uses
// DefaultNewsletterPromptDelay.
func NewSubmissionService(deps SubmissionDeps, promptDelay time.Duration, cfg *ServiceConfig) *SubmissionService {
	if promptDelay <= 0 {
		promptDelay = DefaultNewsletterPromptDelay
	}

	return &SubmissionService{
		base:        newBase(cfg, "app.SubmissionService"),
		submissions: deps.Submissions,
		captcha:     deps.Captcha,
		visitors:    deps.Visitors,
		flags:       deps.Flags,
		promptDelay: promptDelay,
	}
}

// SubmitContact validates the contact form, verifies the captcha and forwards
// the message with the phone number prefixed by the country's dial code.
func (s *SubmissionService) SubmitContact(ctx context.Context, form *domain.ContactForm, proof domain.CaptchaProof) (err error) {
	defer func() { s.metrics.Submission(formContact, outcome(err)) }()

	if err := validateContact(form); err != nil {
		return err
	}

	if err := s.captcha.Verify(ctx, proof.Token, domain.CaptchaActionContact, proof.RemoteIP); err != nil {
		return err
	}

	msg := &domain.ContactMessage{
		Fullname: strings.TrimSpace(form.Fullname),
		Email:    strings.TrimSpace(form.Email),
		PhoneNo:  domain.FullPhoneNumber(form.CountryCode, form.PhoneNo),
		Address:  strings.TrimSpace(form.Address),
		Message:  strings.TrimSpace(form.Message),
		Purpose:  strings.ToUpper(strings.TrimSpace(form.Purpose)),
	}

	if err := s.submissions.SubmitContact(ctx, msg, proof.Token); err != nil {
		return fmt.Errorf("forwarding contact message: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "contact message forwarded", slog.String("purpose", msg.Purpose))

	return nil
}

func validateContact(form *domain.ContactForm) error {
	if form == nil {
		return domain.NewValidationError("form", "contact form is required")
	}

	verr := &domain.ValidationError{}

	if strings.TrimSpace(form.Fullname) == "" {
		verr.Add("fullname", "full name is required")
	}

	if validate.Var(form.Email, "required,email") != nil {
		verr.Add("email", "a valid email is required")
	}

	if validate.Var(strings.TrimSpace(form.PhoneNo), "required,min=6,max=20") != nil {
		verr.Add("phoneNo", "a valid phone number is required")
	}

	if strings.TrimSpace(form.Message) == "" {
		verr.Add("message", "message is required")
	}

	if p := strings.ToUpper(strings.TrimSpace(form.Purpose)); p != "" && !slices.Contains(domain.ContactPurposes, p) {
		verr.Add("purpose", "purpose must be one of "+strings.Join(domain.ContactPurposes, ", "))
	}

	return verr.OrNil()
}

// SubmitInquiry forwards a product inquiry.
func (s *SubmissionService) SubmitInquiry(ctx context.Context, inq *domain.Inquiry, proof domain.CaptchaProof) (err error) {
	defer func() { s.metrics.Submission(formInquiry, outcome(err)) }()

	if err := validateInquiry(inq); err != nil {
		return err
	}

	if err := s.captcha.Verify(ctx, proof.Token, domain.CaptchaActionContact, proof.RemoteIP); err != nil {
		return err
	}

	if err := s.submissions.SubmitInquiry(ctx, inq, proof.Token); err != nil {
		return fmt.Errorf("forwarding inquiry: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "inquiry forwarded", slog.String("product_id", inq.ProductID))

	return nil
}

func validateInquiry(inq *domain.Inquiry) error {
	if inq == nil {
		return domain.NewValidationError("inquiry", "inquiry is required")
	}

	verr := &domain.ValidationError{}

	if strings.TrimSpace(inq.ProductID) == "" {
		verr.Add("productId", "product is required")
	}

	if strings.TrimSpace(inq.Name) == "" {
		verr.Add("name", "name is required")
	}

	if validate.Var(inq.Email, "required,email") != nil {
		verr.Add("email", "a valid email is required")
	}

	if strings.TrimSpace(inq.Phone) == "" {
		verr.Add("phone", "phone is required")
	}

	if strings.TrimSpace(inq.Message) == "" {
		verr.Add("message", "message is required")
	}

	return verr.OrNil()
}

// SubscribeNewsletter forwards the sign-up and stops prompting the visitor.
// An address the backend already knows still counts as subscribed.
func (s *SubmissionService) SubscribeNewsletter(ctx context.Context, signup *domain.NewsletterSignup) (err error) {
	defer func() { s.metrics.Submission(formNewsletter, outcome(err)) }()

	if signup == nil || validate.Var(signup.Email, "required,email") != nil {
		return domain.NewValidationError("email", "a valid email is required")
	}

	err = s.submissions.SubscribeNewsletter(ctx, signup)

	switch {
	case err == nil:
	case domain.IsConflict(err):
		s.log(ctx).InfoContext(ctx, "newsletter address already subscribed")
	default:
		return fmt.Errorf("subscribing to newsletter: %w", err)
	}

	s.markVisitor(ctx, "subscribed", s.visitors.MarkNewsletterSubscribed)

	return nil
}

// DismissNewsletter stops prompting the visitor.
func (s *SubmissionService) DismissNewsletter(ctx context.Context) error {
	id, err := visitorID(ctx)
	if err != nil {
		return err
	}

	if err := s.visitors.MarkNewsletterDismissed(ctx, id, s.now()); err != nil {
		return fmt.Errorf("dismissing newsletter: %w", err)
	}

	return nil
}

// NewsletterStatus tells the page whether to show the newsletter dialog.
func (s *SubmissionService) NewsletterStatus(ctx context.Context) (*domain.NewsletterStatus, error) {
	state := s.loadVisitor(ctx, s.visitors)

	enabled := s.flags == nil || s.flags.IsEnabled(ctx, ports.FlagNewsletterPrompt, true)

	return &domain.NewsletterStatus{
		ShouldPrompt: enabled && state.ShouldPromptNewsletter(),
		PromptDelay:  s.promptDelay,
		Subscribed:   state.NewsletterSubscribedAt != nil,
		Dismissed:    state.NewsletterDismissedAt != nil,
	}, nil
}

// markVisitor records a newsletter flag for an identified visitor. Store
// failures are logged only.
func (s *SubmissionService) markVisitor(ctx context.Context, flag string, mark func(context.Context, string, time.Time) error) {
	id, err := visitorID(ctx)
	if err != nil {
		return
	}

	if err := mark(ctx, id, s.now()); err != nil {
		s.log(ctx).WarnContext(ctx, "recording newsletter flag failed",
			slog.String("flag", flag),
			slog.Any("error", err),
		)
	}
}

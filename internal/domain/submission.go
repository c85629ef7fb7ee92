package domain

import "strings"

// Contact purposes offered by the contact form.
var ContactPurposes = []string{"GENERAL", "SALES", "SUPPORT", "PARTNERSHIP", "CAREER"}

// ContactMessage is the contact page submission.
type ContactMessage struct {
	Fullname string
	Email    string
	PhoneNo  string
	Address  string
	Message  string
	Purpose  string
}

// Inquiry is a product inquiry raised from a product page.
type Inquiry struct {
	ProductID string
	BrandID   string
	Name      string
	Email     string
	Phone     string
	Address   string
	Message   string
}

// NewsletterSignup is a newsletter subscription request.
type NewsletterSignup struct {
	Name  string
	Email string
}

// DefaultCountryCode is the contact form's preselected country.
const DefaultCountryCode = "NP"

var dialCodes = map[string]string{
	"NP": "+977",
	"IN": "+91",
	"BD": "+880",
	"BT": "+975",
	"CN": "+86",
	"LK": "+94",
	"PK": "+92",
	"AE": "+971",
	"QA": "+974",
	"SA": "+966",
	"SG": "+65",
	"MY": "+60",
	"JP": "+81",
	"KR": "+82",
	"AU": "+61",
	"GB": "+44",
	"DE": "+49",
	"US": "+1",
	"CA": "+1",
}

// DialCode returns the dial code for an ISO country code, falling back to Nepal's.
func DialCode(countryCode string) string {
	if c, ok := dialCodes[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return c
	}

	return dialCodes[DefaultCountryCode]
}

// FullPhoneNumber prefixes the local number with the country's dial code.
func FullPhoneNumber(countryCode, number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "+") {
		return number
	}

	return DialCode(countryCode) + number
}

package domain

// ReviewKind is the platform a review is posted on.
type ReviewKind string

const (
	ReviewGoogle     ReviewKind = "google"
	ReviewTrustpilot ReviewKind = "trustpilot"
)

// ParseReviewKind parses a review kind case-insensitively.
func ParseReviewKind(s string) (ReviewKind, error) {
	switch normalizeEnum(s) {
	case "google", "g":
		return ReviewGoogle, nil
	case "trustpilot", "tp":
		return ReviewTrustpilot, nil
	}
	return "", ErrInvalidReviewKind
}

// ReviewStatus is where a review stands with the client.
type ReviewStatus string

const (
	ReviewLive            ReviewStatus = "Live"
	ReviewDrop            ReviewStatus = "Drop"
	ReviewInvoiceApproved ReviewStatus = "Invoice Approved"
	ReviewPending         ReviewStatus = "Pending"
)

// ParseReviewStatus parses a review status case-insensitively.
// "invoice-approved", "invoice_approved" and "Invoice Approved" are equivalent.
func ParseReviewStatus(s string) (ReviewStatus, error) {
	switch normalizeEnum(s) {
	case "live":
		return ReviewLive, nil
	case "drop", "dropped":
		return ReviewDrop, nil
	case "invoiceapproved", "approved":
		return ReviewInvoiceApproved, nil
	case "pending":
		return ReviewPending, nil
	}
	return "", ErrInvalidStatus
}

// Review is a review written for a client on an external platform.
// Link is the company page for Google reviews and the review page for
// Trustpilot ones. GmailUsed names the account it was posted from.
// Fields are ordered to minimize memory padding.
type Review struct {
	Date          Date         `json:"date" yaml:"date"`
	ID            string       `json:"id" yaml:"id"`
	ClientID      string       `json:"clientId" yaml:"clientId"`
	Kind          ReviewKind   `json:"kind" yaml:"kind"`
	Status        ReviewStatus `json:"status" yaml:"status"`
	Link          string       `json:"link,omitempty" yaml:"link,omitempty"`
	Title         string       `json:"title,omitempty" yaml:"title,omitempty"`
	Content       string       `json:"content" yaml:"content"`
	Reviewer      string       `json:"reviewer,omitempty" yaml:"reviewer,omitempty"`
	Location      string       `json:"location,omitempty" yaml:"location,omitempty"`
	LiveLink      string       `json:"liveLink,omitempty" yaml:"liveLink,omitempty"`
	Note          string       `json:"note,omitempty" yaml:"note,omitempty"`
	GmailUsed     string       `json:"gmailUsed,omitempty" yaml:"gmailUsed,omitempty"`
	InvoiceNumber string       `json:"invoiceNumber,omitempty" yaml:"invoiceNumber,omitempty"`
	Stars         int          `json:"stars,omitempty" yaml:"stars,omitempty"`
}

// Review defaults.
const (
	DefaultReviewStars      = 5
	DefaultTrustpilotRegion = "US"
)

// ValidateStars rejects star counts outside 1..5.
func ValidateStars(stars int) error {
	if stars < MinRating || stars > MaxRating {
		return ErrInvalidStars
	}
	return nil
}

// Address is a mailing address kept for a client, optionally tied to an invoice.
type Address struct {
	ID            string `json:"id" yaml:"id"`
	ClientID      string `json:"clientId" yaml:"clientId"`
	FullAddress   string `json:"fullAddress" yaml:"fullAddress"`
	Phone         string `json:"phone,omitempty" yaml:"phone,omitempty"`
	InvoiceNumber string `json:"invoiceNumber,omitempty" yaml:"invoiceNumber,omitempty"`
}

package domain

import "math"

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPending PaymentStatus = "Pending"
)

// ParsePaymentStatus parses a payment status case-insensitively.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch normalizeEnum(s) {
	case "paid":
		return PaymentPaid, nil
	case "unpaid":
		return PaymentUnpaid, nil
	case "pending":
		return PaymentPending, nil
	}
	return "", ErrInvalidStatus
}

// Payment is money billed to a client.
// Fields are ordered to minimize memory padding.
type Payment struct {
	Date     Date          `json:"date" yaml:"date"`
	ID       string        `json:"id" yaml:"id"`
	ClientID string        `json:"clientId" yaml:"clientId"`
	Status   PaymentStatus `json:"status" yaml:"status"`
	Note     string        `json:"note,omitempty" yaml:"note,omitempty"`
	Amount   float64       `json:"amount" yaml:"amount"`
}

// AdvanceType tells whether money was taken from or returned to a client.
type AdvanceType string

const (
	AdvanceReceived AdvanceType = "Received"
	AdvanceRepaid   AdvanceType = "Repaid"
)

// ParseAdvanceType parses an advance type case-insensitively.
func ParseAdvanceType(s string) (AdvanceType, error) {
	switch normalizeEnum(s) {
	case "received", "in":
		return AdvanceReceived, nil
	case "repaid", "out":
		return AdvanceRepaid, nil
	}
	return "", ErrInvalidAdvanceType
}

// Advance is a prepayment received from, or repaid to, a client.
// Fields are ordered to minimize memory padding.
type Advance struct {
	Date     Date        `json:"date" yaml:"date"`
	ID       string      `json:"id" yaml:"id"`
	ClientID string      `json:"clientId" yaml:"clientId"`
	Type     AdvanceType `json:"type" yaml:"type"`
	Note     string      `json:"note,omitempty" yaml:"note,omitempty"`
	Amount   float64     `json:"amount" yaml:"amount"`
}

// Feedback is a client's rating of the work.
// Fields are ordered to minimize memory padding.
type Feedback struct {
	Date     Date   `json:"date" yaml:"date"`
	ID       string `json:"id" yaml:"id"`
	ClientID string `json:"clientId" yaml:"clientId"`
	Comment  string `json:"comment,omitempty" yaml:"comment,omitempty"`
	Rating   int    `json:"rating" yaml:"rating"`
}

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidateAmount rejects non-positive and non-finite amounts.
func ValidateAmount(amount float64) error {
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateRating rejects ratings outside MinRating..MaxRating.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// Health is the coarse state of a client account on the dashboard.
type Health string

const (
	HealthGood      Health = "good"
	HealthAttention Health = "attention"
	HealthAtRisk    Health = "at-risk"
)

// Summary holds the derived dashboard figures for one client.
// Fields are ordered to minimize memory padding.
type Summary struct {
	Satisfaction   *float64 `json:"satisfaction,omitempty" yaml:"satisfaction,omitempty"`
	ClientID       string   `json:"clientId" yaml:"clientId"`
	ClientName     string   `json:"clientName" yaml:"clientName"`
	Health         Health   `json:"health" yaml:"health"`
	TotalPaid      float64  `json:"totalPaid" yaml:"totalPaid"`
	Outstanding    float64  `json:"outstanding" yaml:"outstanding"`
	AdvanceBalance float64  `json:"advanceBalance" yaml:"advanceBalance"`
	TotalTasks     int      `json:"totalTasks" yaml:"totalTasks"`
	OpenTasks      int      `json:"openTasks" yaml:"openTasks"`
	BlockedTasks   int      `json:"blockedTasks" yaml:"blockedTasks"`
	OverdueTasks   int      `json:"overdueTasks" yaml:"overdueTasks"`
	FeedbackCount  int      `json:"feedbackCount" yaml:"feedbackCount"`
	TotalReviews   int      `json:"totalReviews" yaml:"totalReviews"`
	LiveReviews    int      `json:"liveReviews" yaml:"liveReviews"`
}

// LedgerInput groups one client's records for Summarize.
type LedgerInput struct {
	Client   *Client
	Tasks    []*Task // All tasks; filtered by client inside
	Payments []*Payment
	Advances []*Advance
	Feedback []*Feedback
	Reviews  []*Review
	Today    Date
}

// Summarize computes the dashboard figures for in.Client.
func Summarize(in LedgerInput) Summary {
	clientID := in.Client.ID
	s := Summary{ClientID: clientID, ClientName: in.Client.Name}

	for _, p := range in.Payments {
		if p.ClientID != clientID {
			continue
		}
		if p.Status == PaymentPaid {
			s.TotalPaid += p.Amount
		} else {
			s.Outstanding += p.Amount
		}
	}

	for _, a := range in.Advances {
		if a.ClientID != clientID {
			continue
		}
		if a.Type == AdvanceReceived {
			s.AdvanceBalance += a.Amount
		} else {
			s.AdvanceBalance -= a.Amount
		}
	}

	graph := NewTaskGraph(in.Tasks)
	for _, t := range TasksForClient(in.Tasks, clientID) {
		s.TotalTasks++
		if t.IsOpen() {
			s.OpenTasks++
		}
		if t.Status != StatusCompleted && graph.IsBlocked(t) {
			s.BlockedTasks++
		}
		if t.IsOverdue(in.Today) {
			s.OverdueTasks++
		}
	}

	total := 0
	for _, f := range in.Feedback {
		if f.ClientID != clientID {
			continue
		}
		s.FeedbackCount++
		total += f.Rating
	}
	if s.FeedbackCount > 0 {
		avg := math.Round(float64(total)/float64(s.FeedbackCount)*10) / 10
		s.Satisfaction = &avg
	}

	for _, r := range in.Reviews {
		if r.ClientID != clientID {
			continue
		}
		s.TotalReviews++
		if r.Status == ReviewLive {
			s.LiveReviews++
		}
	}

	s.Health = assessHealth(s)
	return s
}

func assessHealth(s Summary) Health {
	if s.OverdueTasks > 0 && s.Outstanding > 0 {
		return HealthAtRisk
	}
	if s.OverdueTasks > 0 || s.Outstanding > 0 || s.AdvanceBalance > 0 {
		return HealthAttention
	}
	return HealthGood
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReviewKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ReviewKind
		wantErr bool
	}{
		{"google", ReviewGoogle, false},
		{"Google", ReviewGoogle, false},
		{"tp", ReviewTrustpilot, false},
		{"Trustpilot", ReviewTrustpilot, false},
		{"yelp", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReviewKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidReviewKind)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReviewStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    ReviewStatus
		wantErr bool
	}{
		{"live", ReviewLive, false},
		{"Drop", ReviewDrop, false},
		{"Invoice Approved", ReviewInvoiceApproved, false},
		{"invoice-approved", ReviewInvoiceApproved, false},
		{"pending", ReviewPending, false},
		{"posted", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReviewStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateStars(t *testing.T) {
	assert.NoError(t, ValidateStars(1))
	assert.NoError(t, ValidateStars(5))
	assert.ErrorIs(t, ValidateStars(0), ErrInvalidStars)
	assert.ErrorIs(t, ValidateStars(6), ErrInvalidStars)
}

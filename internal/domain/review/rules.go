package review

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/service-booking/internal/httperr"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MinCommentLength = 10
)

var (
	ErrNotFound        = httperr.ErrNotFound("review_not_found", "Review not found")
	ErrAlreadyReviewed = httperr.ErrValidation("review_already_exists", "Review already exists for this booking")
	ErrBookingNotDone  = httperr.ErrValidation("booking_not_completed", "Can only review completed bookings")
	ErrNotBookingOwner = httperr.ErrForbidden("not_booking_owner", "Not authorized to review this booking")
	ErrNotReviewAuthor = httperr.ErrForbidden("not_review_author", "Not authorized to delete this review")
	ErrInvalidRating   = httperr.ErrValidation("invalid_rating", "Rating must be between 1 and 5")
	ErrCommentTooShort = httperr.ErrValidation("comment_too_short", "Comment must be at least 10 characters")
	ErrBookingNotFound = httperr.ErrNotFound("booking_not_found", "Booking not found")
)

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// NormalizeComment trims the comment and enforces the minimum length in runes.
func NormalizeComment(comment string) (string, error) {
	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) < MinCommentLength {
		return "", ErrCommentTooShort
	}
	return comment, nil
}

package models

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Review represents a single account's review of a catalog item.
// At most one review per (item, account) pair; enforced by a pre-insert
// existence check rather than a store-level uniqueness constraint.
type Review struct {
	ID        string    `json:"id" dynamodbav:"id"`
	ItemID    string    `json:"itemId" dynamodbav:"itemId"`
	AccountID string    `json:"accountId" dynamodbav:"accountId"`
	Rating    int       `json:"rating" dynamodbav:"rating"`
	Comment   string    `json:"comment" dynamodbav:"comment"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
}

// NewReview creates a review of an item by an account
func NewReview(itemID, accountID string, rating int, comment string) *Review {
	return &Review{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		AccountID: accountID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
}

// AverageRating returns the arithmetic mean of the ratings rounded to one
// decimal place. An empty slice yields exactly 0.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

// SortReviewsNewestFirst orders reviews by creation timestamp descending.
// Ties keep their existing relative order.
func SortReviewsNewestFirst(reviews []Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

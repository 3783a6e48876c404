package dto

// VoteDTO for casting a vote on an article. Value is +1 or -1.
type VoteDTO struct {
	Value int `json:"value" form:"value" binding:"required,oneof=1 -1"`
}

// Vote statuses returned to the client.
const (
	RatingStatusCreated = "created"
	RatingStatusUpdated = "updated"
	RatingStatusDeleted = "deleted"
)

// RatingResult reports what the vote did and the fresh aggregate score.
type RatingResult struct {
	Status    string `json:"status"`
	RatingSum int    `json:"rating_sum"`
}

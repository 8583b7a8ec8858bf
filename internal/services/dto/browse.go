package dto

import (
	"skillswap_backend/internal/models"
)

// BrowseQuery is bound from query parameters. All filters are optional and
// conjunctive with each other.
type BrowseQuery struct {
	Text       string `form:"q" json:"q"`
	CategoryID string `form:"category" json:"category"`
	SkillName  string `form:"skill" json:"skill"`
}

// BrowseUser is the public card shown in browse results. No email, no ban
// flag.
type BrowseUser struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location,omitempty"`
	ProfilePhoto  string   `json:"profile_photo,omitempty"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
	Availability  []string `json:"availability"`
	Rating        float64  `json:"rating"`
	TotalSwaps    int      `json:"total_swaps"`
}

func NewBrowseUser(user *models.User) *BrowseUser {
	return &BrowseUser{
		ID:            user.ID,
		Name:          user.Name,
		Location:      user.Location,
		ProfilePhoto:  user.ProfilePhoto,
		SkillsOffered: user.SkillsOffered,
		SkillsWanted:  user.SkillsWanted,
		Availability:  user.Availability,
		Rating:        user.Rating,
		TotalSwaps:    user.TotalSwaps,
	}
}

// BrowseStats are aggregates over one result set.
type BrowseStats struct {
	Count              int     `json:"count"`
	DistinctSkillCount int     `json:"distinct_skill_count"`
	AverageRating      float64 `json:"average_rating"`
}

type BrowseResponse struct {
	Users []*BrowseUser `json:"users"`
	Stats BrowseStats   `json:"stats"`
}

package dto

import "time"

// PlatformStats is the admin dashboard overview. totalUsers excludes admin
// accounts; averageRating covers non-banned users only.
type PlatformStats struct {
	TotalUsers     int64   `json:"total_users"`
	ActiveUsers    int64   `json:"active_users"`
	BannedUsers    int64   `json:"banned_users"`
	TotalSwaps     int64   `json:"total_swaps"`
	PendingSwaps   int64   `json:"pending_swaps"`
	ActiveSwaps    int64   `json:"active_swaps"`
	CompletedSwaps int64   `json:"completed_swaps"`
	AverageRating  float64 `json:"average_rating"`
}

// SkillCount is one entry of the top-skills ranking.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// AdminSwapsQuery optionally narrows the admin swap listing to one status.
type AdminSwapsQuery struct {
	Status string `form:"status" json:"status" validate:"omitempty,swap_status"`
}

type CreateAdminMessageRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
	Type    string `json:"type" validate:"required,admin_message_type"`
}

// UserExportRecord is a flat snapshot of one user for the users report.
type UserExportRecord struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Location      string    `json:"location"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
	Rating        float64   `json:"rating"`
	TotalSwaps    int       `json:"total_swaps"`
	IsPublic      bool      `json:"is_public"`
	IsBanned      bool      `json:"is_banned"`
	JoinedAt      time.Time `json:"joined_at"`
}

// SwapExportRecord is a flat snapshot of one swap request for the swaps
// report.
type SwapExportRecord struct {
	ID           string    `json:"id"`
	FromUser     string    `json:"from_user"`
	ToUser       string    `json:"to_user"`
	SkillOffered string    `json:"skill_offered"`
	SkillWanted  string    `json:"skill_wanted"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ActivityReport is the aggregated platform activity export.
type ActivityReport struct {
	PlatformStats
	TopSkills   []SkillCount `json:"top_skills"`
	GeneratedAt time.Time    `json:"generated_at"`
}

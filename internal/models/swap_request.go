package models

// MaxSwapMessageLength caps the free-text message on a swap request.
const MaxSwapMessageLength = 500

// SwapRequest references users by id only; display-time joins are the
// caller's concern. Skill names are copied at creation time after being
// validated against the owners' current skill sets.
type SwapRequest struct {
	BaseModel
	FromUserID   string            `gorm:"not null;index" json:"from_user_id"`
	ToUserID     string            `gorm:"not null;index" json:"to_user_id"`
	SkillOffered string            `gorm:"not null" json:"skill_offered"`
	SkillWanted  string            `gorm:"not null" json:"skill_wanted"`
	Message      string            `gorm:"not null;size:500" json:"message"`
	Status       SwapRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	FromUser *User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
}

// Participant reports whether userID is one of the two sides of the request.
func (r *SwapRequest) Participant(userID string) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

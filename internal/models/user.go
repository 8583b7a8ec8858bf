package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	Name         string   `gorm:"not null" json:"name"`
	Location     string   `json:"location,omitempty"`
	ProfilePhoto string   `json:"profile_photo,omitempty"`

	// Skill names are kept exactly as the user typed them. "javascript" and
	// "JavaScript" are distinct skills.
	SkillsOffered datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills_offered"`
	SkillsWanted  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills_wanted"`
	Availability  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"availability"`

	IsPublic bool `gorm:"default:true" json:"is_public"`
	IsBanned bool `gorm:"default:false" json:"is_banned"`

	// Rating is maintained by the review subsystem; the swap engine only
	// reads it. TotalSwaps is bumped on swap completion.
	Rating     float64 `gorm:"default:0" json:"rating"`
	TotalSwaps int     `gorm:"default:0" json:"total_swaps"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

// IsAdmin reports whether the user may access admin operations.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// OffersSkill reports exact-name membership in the offered set.
func (u *User) OffersSkill(name string) bool {
	return containsSkill(u.SkillsOffered, name)
}

// WantsSkill reports exact-name membership in the wanted set.
func (u *User) WantsSkill(name string) bool {
	return containsSkill(u.SkillsWanted, name)
}

// AllSkills returns offered followed by wanted skills, in insertion order.
func (u *User) AllSkills() []string {
	all := make([]string, 0, len(u.SkillsOffered)+len(u.SkillsWanted))
	all = append(all, u.SkillsOffered...)
	all = append(all, u.SkillsWanted...)
	return all
}

func containsSkill(skills []string, name string) bool {
	for _, s := range skills {
		if s == name {
			return true
		}
	}
	return false
}

// AppendSkill adds name to the list preserving insertion order. Returns false
// when name is already present; skill lists are sets.
func AppendSkill(skills datatypes.JSONSlice[string], name string) (datatypes.JSONSlice[string], bool) {
	if containsSkill(skills, name) {
		return skills, false
	}
	return append(skills, name), true
}

// RemoveSkill deletes name from the list. Returns false when it was absent.
func RemoveSkill(skills datatypes.JSONSlice[string], name string) (datatypes.JSONSlice[string], bool) {
	for i, s := range skills {
		if s == name {
			return append(skills[:i:i], skills[i+1:]...), true
		}
	}
	return skills, false
}

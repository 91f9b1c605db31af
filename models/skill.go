package models

import "time"

// Skill is an entry in the global subject catalog.
type Skill struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Category string `bson:"category" json:"category"`
}

// TutorSkill binds a tutor to a catalog skill at a declared hourly rate.
// A tutor may not offer the same skill twice.
type TutorSkill struct {
	ID          string    `bson:"id" json:"id"`
	TutorID     string    `bson:"tutor_id" json:"tutor_id"`
	SkillID     string    `bson:"skill_id" json:"skill_id"`
	HourlyRate  float64   `bson:"hourly_rate" json:"hourly_rate"` // 1 to 10000
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

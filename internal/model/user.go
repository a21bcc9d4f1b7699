package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleSeeker   = "SEEKER"
	RoleEmployer = "EMPLOYER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	Name      string             `bson:"name" json:"name"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	IsDeleted bool               `bson:"is_deleted" json:"-"`

	// Seeker profile, feeds the matcher rollups and the personalizer.
	Headline   string       `bson:"headline,omitempty" json:"headline,omitempty"`
	Skills     []string     `bson:"skills,omitempty" json:"skills,omitempty"`
	Experience []Experience `bson:"experience,omitempty" json:"experience,omitempty"`
	Education  []Education  `bson:"education,omitempty" json:"education,omitempty"`

	// Employer profile.
	CompanyName        string `bson:"company_name,omitempty" json:"companyName,omitempty"`
	CompanyWebsite     string `bson:"company_website,omitempty" json:"companyWebsite,omitempty"`
	CompanyDescription string `bson:"company_description,omitempty" json:"companyDescription,omitempty"`

	Settings  UserSettings `bson:"settings" json:"settings"`
	CreatedAt time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updatedAt"`
}

// UserSettings carries account-level toggles. AlertsEnabled gates the whole
// alert pipeline for this user regardless of per-alert active flags.
type UserSettings struct {
	AlertsEnabled bool `bson:"alerts_enabled" json:"alertsEnabled"`
}

type Experience struct {
	Title       string `bson:"title" json:"title"`
	Company     string `bson:"company" json:"company"`
	StartYear   int    `bson:"start_year,omitempty" json:"startYear,omitempty"`
	EndYear     int    `bson:"end_year,omitempty" json:"endYear,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type Education struct {
	Degree      string `bson:"degree" json:"degree"`
	Institution string `bson:"institution" json:"institution"`
	Year        int    `bson:"year,omitempty" json:"year,omitempty"`
}

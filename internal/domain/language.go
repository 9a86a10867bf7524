package domain

import "time"

// Language represents a language submissions can be written in
type Language struct {
	Name          string    `db:"name" json:"name"`                    // e.g. "python", "rust"
	DisplayName   string    `db:"display_name" json:"displayName"`     // Human-readable name
	LatestVersion string    `db:"latest_version" json:"latestVersion"` // Version new submissions are judged with
	Active        bool      `db:"active" json:"active"`                // Whether new submissions are accepted
	CreatedAt     time.Time `db:"created_at" json:"-"`                 // When the language was added
	UpdatedAt     time.Time `db:"updated_at" json:"-"`                 // When the language was last updated
}

type LanguageTable struct {
	Name          string
	DisplayName   string
	LatestVersion string
	Active        string
	CreatedAt     string
	UpdatedAt     string
}

func GetLanguageTable() LanguageTable {
	return LanguageTable{
		Name:          "name",
		DisplayName:   "display_name",
		LatestVersion: "latest_version",
		Active:        "active",
		CreatedAt:     "created_at",
		UpdatedAt:     "updated_at",
	}
}

func (LanguageTable) TableName() string {
	return "languages"
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripleKey identifies the single solution slot of an account for a challenge in a language
type TripleKey struct {
	Author    int64
	Challenge int64
	Language  string
}

// Solution is the stored best solution of an account for one challenge and language
type Solution struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Author          int64     `db:"author" json:"author"`
	Challenge       int64     `db:"challenge" json:"challenge"`
	Language        string    `db:"language" json:"language"`
	LanguageVersion string    `db:"language_version" json:"languageVersion"`
	Code            string    `db:"code" json:"code"`
	Score           int       `db:"score" json:"score"`
	Valid           bool      `db:"valid" json:"valid"`
	ValidatedAt     time.Time `db:"validated_at" json:"validatedAt"`
	LastImprovedAt  time.Time `db:"last_improved_date" json:"lastImprovedAt"`
	// Revision is bumped by every update and guards concurrent writers
	Revision int64 `db:"revision" json:"-"`
}

// Key returns the natural key of the solution
func (s *Solution) Key() TripleKey {
	return TripleKey{
		Author:    s.Author,
		Challenge: s.Challenge,
		Language:  s.Language,
	}
}

type SolutionTable struct {
	ID              string
	Author          string
	Challenge       string
	Language        string
	LanguageVersion string
	Code            string
	Score           string
	Valid           string
	ValidatedAt     string
	LastImprovedAt  string
	Revision        string
	// RevalidateAfter holds back a solution the revalidator could not judge
	RevalidateAfter string
}

func GetSolutionTable() SolutionTable {
	return SolutionTable{
		ID:              "id",
		Author:          "author",
		Challenge:       "challenge",
		Language:        "language",
		LanguageVersion: "language_version",
		Code:            "code",
		Score:           "score",
		Valid:           "valid",
		ValidatedAt:     "validated_at",
		LastImprovedAt:  "last_improved_date",
		Revision:        "revision",
		RevalidateAfter: "revalidate_after",
	}
}

func (SolutionTable) TableName() string {
	return "solutions"
}

// Columns lists every column of Solution in scan order
func (t SolutionTable) Columns() []string {
	return []string{
		t.ID, t.Author, t.Challenge, t.Language, t.LanguageVersion, t.Code,
		t.Score, t.Valid, t.ValidatedAt, t.LastImprovedAt, t.Revision,
	}
}

// BestSolution is what an account sees of its own stored solution
type BestSolution struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

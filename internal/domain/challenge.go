package domain

// Challenge is a golf challenge; Judge is handed to the judge as is
type Challenge struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Judge  string `db:"judge" json:"-"`
	Author int64  `db:"author" json:"author"`
}

type ChallengeTable struct {
	ID     string
	Name   string
	Judge  string
	Author string
}

func GetChallengeTable() ChallengeTable {
	return ChallengeTable{
		ID:     "id",
		Name:   "name",
		Judge:  "judge",
		Author: "author",
	}
}

func (ChallengeTable) TableName() string {
	return "challenges"
}

package models

// Review represents one user's scores for one country in one round.
//
// The (UserID, CountryID, RoundNum) triple is the review's identity: at
// most one review exists per triple, and a later submission for the same
// triple replaces the earlier one.
type Review struct {
	// ID is the row identifier. The triple, not the ID, is what makes a
	// review unique.
	ID int `json:"id"`

	// UserID is the reviewer's numeric ID (>= 1).
	UserID int `json:"user_id"`

	// CountryID is the reviewed participant's ID (>= 1).
	CountryID int `json:"country_id"`

	// RoundNum is the contest round being scored (1-3).
	RoundNum int `json:"round_num"`

	// Melody, Performance and Wardrobe are the three sub-scores, each an
	// integer in [4,10].
	Melody      int `json:"melody"`
	Performance int `json:"performance"`
	Wardrobe    int `json:"wardrobe"`
}

// SameTriple reports whether other carries the same composite identity.
func (r Review) SameTriple(other Review) bool {
	return r.UserID == other.UserID &&
		r.CountryID == other.CountryID &&
		r.RoundNum == other.RoundNum
}

// Scores is the raw score triple of a single review. The zero value is the
// default object returned when no review exists for a triple.
type Scores struct {
	Melody      int `json:"melody"`
	Performance int `json:"performance"`
	Wardrobe    int `json:"wardrobe"`
}

// Scores returns the review's raw score triple.
func (r Review) Scores() Scores {
	return Scores{Melody: r.Melody, Performance: r.Performance, Wardrobe: r.Wardrobe}
}

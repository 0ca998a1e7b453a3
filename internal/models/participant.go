package models

// Participant represents one contest entry: a country and its song in a
// given round. The lineup is populated once per contest edition and is
// read-mostly afterwards.
type Participant struct {
	// ID is the unique identifier for the entry.
	ID int `json:"id"`

	// Year is the contest edition.
	Year int `json:"year"`

	// Country is the entry's country, unique within a year.
	Country string `json:"country"`

	// CountryImg is the flag asset URL.
	CountryImg string `json:"country_img"`

	// Name is the performing artist.
	Name string `json:"name"`

	// Song is the song title.
	Song string `json:"song"`

	// Img is the artist image URL.
	Img string `json:"img"`

	// URL links to the performance video.
	URL string `json:"url"`

	// RoundNum is the contest round this entry performs in (1-3).
	RoundNum int `json:"round_num"`

	// Turn is the presentation order within the round. Entries in one
	// round are totally ordered by Turn.
	Turn int `json:"turn"`
}

package omdb

// responseFlag is the value of the "Response" field every OMDb reply carries
type responseFlag string

const responseFalse responseFlag = "False"

// envelopeHeader is the success/failure wrapper shared by all OMDb responses
type envelopeHeader struct {
	Response responseFlag `json:"Response"`
	Error    string       `json:"Error,omitempty"`
}

// SearchItem is one entry of the "Search" array
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster,omitempty"`
}

// SearchResponse is the payload of an s= request
type SearchResponse struct {
	Search       []SearchItem `json:"Search,omitempty"`
	TotalResults string       `json:"totalResults,omitempty"` // OMDb sends a numeric string
}

// Rating is a single third-party rating
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// DetailResponse is the payload of an i= request
type DetailResponse struct {
	SearchItem
	Rated        string   `json:"Rated,omitempty"`
	Released     string   `json:"Released,omitempty"`
	Runtime      string   `json:"Runtime,omitempty"`
	Genre        string   `json:"Genre,omitempty"`
	Director     string   `json:"Director,omitempty"`
	Writer       string   `json:"Writer,omitempty"`
	Actors       string   `json:"Actors,omitempty"`
	Plot         string   `json:"Plot,omitempty"`
	Language     string   `json:"Language,omitempty"`
	Country      string   `json:"Country,omitempty"`
	Awards       string   `json:"Awards,omitempty"`
	Ratings      []Rating `json:"Ratings,omitempty"`
	Metascore    string   `json:"Metascore,omitempty"`
	ImdbRating   string   `json:"imdbRating,omitempty"`
	ImdbVotes    string   `json:"imdbVotes,omitempty"`
	TotalSeasons string   `json:"totalSeasons,omitempty"`
}

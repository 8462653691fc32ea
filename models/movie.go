package models

// Movie is an anime movie entry as returned by the Jikan catalog.
type Movie struct {
	MalID    int          `json:"mal_id"`
	Title    string       `json:"title"`
	Synopsis string       `json:"synopsis"`
	Score    float64      `json:"score"`
	Year     *int         `json:"year"` // nullable
	Duration string       `json:"duration"`
	Genres   []MovieGenre `json:"genres"`
	Images   MovieImages  `json:"images"`
}

type MovieGenre struct {
	MalID int    `json:"mal_id"`
	Name  string `json:"name"`
}

type MovieImages struct {
	JPG struct {
		LargeImageURL string `json:"large_image_url"`
	} `json:"jpg"`
}

func (s *Movie) GetIntYear() int {
	if s.Year == nil {
		return 0
	}
	return *s.Year
}

// GenreNames returns at most limit genre names, all of them when limit <= 0.
func (s *Movie) GenreNames(limit int) []string {
	n := len(s.Genres)
	if limit > 0 && limit < n {
		n = limit
	}
	res := make([]string, n)
	for i := 0; i < n; i++ {
		res[i] = s.Genres[i].Name
	}
	return res
}

func (s *Movie) GetImageURL() string {
	return s.Images.JPG.LargeImageURL
}

package recommend

import (
	"fmt"

	"github.com/webtor-io/mood-anime/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxGenreTags        = 3
	synopsisPlaceholder = "An amazing anime movie experience awaits!"
	FailureMessage      = "Unable to fetch recommendations. Please try again later."
	IdleMessage         = "Select your mood to discover amazing anime movies!"
)

type MovieView struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Synopsis string   `json:"synopsis"`
	Score    float64  `json:"score"`
	Year     int      `json:"year,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Genres   []string `json:"genres"`
	ImageURL string   `json:"image_url,omitempty"`
}

// View is the rendered result of a recommendation lookup.
type View struct {
	Mood    string      `json:"mood,omitempty"`
	State   string      `json:"state"`
	Heading string      `json:"heading"`
	Summary string      `json:"summary"`
	Count   int         `json:"count"`
	Items   []MovieView `json:"items"`
}

func NewIdleView() *View {
	return &View{
		State:   StateIdle.String(),
		Heading: IdleMessage,
		Items:   []MovieView{},
	}
}

func NewView(mood string, movies []models.Movie) *View {
	items := make([]MovieView, len(movies))
	for i := range movies {
		m := &movies[i]
		synopsis := m.Synopsis
		if synopsis == "" {
			synopsis = synopsisPlaceholder
		}
		items[i] = MovieView{
			ID:       m.MalID,
			Title:    m.Title,
			Synopsis: synopsis,
			Score:    m.Score,
			Year:     m.GetIntYear(),
			Duration: m.Duration,
			Genres:   m.GenreNames(maxGenreTags),
			ImageURL: m.GetImageURL(),
		}
	}
	return &View{
		Mood:    mood,
		State:   StateSuccess.String(),
		Heading: fmt.Sprintf("Perfect for your %v mood", cases.Title(language.English).String(mood)),
		Summary: fmt.Sprintf("Here are %d anime movies curated just for you!", len(items)),
		Count:   len(items),
		Items:   items,
	}
}

func NewFailureView(mood string) *View {
	return &View{
		Mood:    mood,
		State:   StateFailure.String(),
		Heading: "Oops! Something went wrong",
		Summary: FailureMessage,
		Items:   []MovieView{},
	}
}

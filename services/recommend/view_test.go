package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webtor-io/mood-anime/models"
)

func TestNewView(t *testing.T) {
	year := 2016
	movies := []models.Movie{
		{
			MalID:    32281,
			Title:    "Kimi no Na wa.",
			Synopsis: "Mitsuha Miyamizu...",
			Score:    8.83,
			Year:     &year,
			Genres:   []models.MovieGenre{{Name: "Award Winning"}, {Name: "Drama"}, {Name: "Romance"}, {Name: "Supernatural"}},
		},
		{MalID: 2, Title: "Untitled"},
	}
	v := NewView("romantic", movies)

	assert.Equal(t, "success", v.State)
	assert.Equal(t, "Perfect for your Romantic mood", v.Heading)
	assert.Equal(t, "Here are 2 anime movies curated just for you!", v.Summary)
	assert.Equal(t, 2, v.Count)
	assert.Equal(t, []string{"Award Winning", "Drama", "Romance"}, v.Items[0].Genres)
	assert.Equal(t, 2016, v.Items[0].Year)
	assert.Equal(t, synopsisPlaceholder, v.Items[1].Synopsis)
	assert.Zero(t, v.Items[1].Year)
}

func TestNewFailureView(t *testing.T) {
	v := NewFailureView("happy")
	assert.Equal(t, "failure", v.State)
	assert.Equal(t, FailureMessage, v.Summary)
	assert.Empty(t, v.Items)
}

func TestNewIdleView(t *testing.T) {
	v := NewIdleView()
	assert.Equal(t, "idle", v.State)
	assert.NotNil(t, v.Items)
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFilters_KnownMoods(t *testing.T) {
	expected := map[string][]GenreFilter{
		"happy":       {4, 22, 36},
		"sad":         {8, 22, 37},
		"adventurous": {2, 1, 10},
		"mysterious":  {7, 41, 37},
		"nostalgic":   {8, 13, 36},
		"energetic":   {1, 30, 27},
		"peaceful":    {36},
		"romantic":    {22, 8, 25},
	}
	require.Len(t, Moods(), len(expected))
	for mood, want := range expected {
		got := ResolveFilters(mood)
		assert.Equal(t, want, got, mood)
		assert.Equal(t, got, ResolveFilters(mood), "%s must be deterministic", mood)
	}
}

func TestResolveFilters_Romantic(t *testing.T) {
	got := ResolveFilters("romantic")
	names := make([]string, len(got))
	for i, g := range got {
		names[i] = g.Name()
	}
	assert.Equal(t, []string{"Romance", "Drama", "Shoujo"}, names)
	assert.Equal(t, "22,8,25", JoinGenres(got))
}

func TestResolveFilters_Unknown(t *testing.T) {
	for _, mood := range []string{"", "angry", "HAPPYY", "💕", "romantic!"} {
		assert.Equal(t, []GenreFilter{GenreAction}, ResolveFilters(mood), "mood %q", mood)
	}
}

func TestResolveFilters_Normalized(t *testing.T) {
	assert.Equal(t, ResolveFilters("happy"), ResolveFilters("  Happy "))
}

func TestResolveFilters_ReturnsCopy(t *testing.T) {
	got := ResolveFilters("peaceful")
	got[0] = GenreAction
	assert.Equal(t, []GenreFilter{GenreSliceOfLife}, ResolveFilters("peaceful"))

	opts := Moods()
	opts[0].Genres[0] = GenreSports
	assert.Equal(t, GenreComedy, ResolveFilters("happy")[0])
}

func TestParseMood(t *testing.T) {
	m, ok := ParseMood(" ROMANTIC")
	assert.True(t, ok)
	assert.Equal(t, MoodRomantic, m)

	_, ok = ParseMood("grumpy")
	assert.False(t, ok)
}

func TestMoods_Order(t *testing.T) {
	var got []Mood
	for _, o := range Moods() {
		got = append(got, o.Mood)
		assert.NotEmpty(t, o.Emoji)
		assert.NotEmpty(t, o.Description)
	}
	assert.Equal(t, []Mood{
		MoodHappy, MoodSad, MoodAdventurous, MoodMysterious,
		MoodNostalgic, MoodEnergetic, MoodPeaceful, MoodRomantic,
	}, got)
}

func TestGenreFilter_Name(t *testing.T) {
	assert.Equal(t, "Slice of Life", GenreSliceOfLife.Name())
	assert.Equal(t, "999", GenreFilter(999).Name())
}

func TestMovie_GenreNames(t *testing.T) {
	m := &Movie{Genres: []MovieGenre{{Name: "Action"}, {Name: "Drama"}, {Name: "Fantasy"}, {Name: "Romance"}}}
	assert.Equal(t, []string{"Action", "Drama", "Fantasy"}, m.GenreNames(3))
	assert.Len(t, m.GenreNames(0), 4)
	assert.Equal(t, 0, m.GetIntYear())
}

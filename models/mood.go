package models

import (
	"strconv"
	"strings"
)

type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodSad         Mood = "sad"
	MoodAdventurous Mood = "adventurous"
	MoodMysterious  Mood = "mysterious"
	MoodNostalgic   Mood = "nostalgic"
	MoodEnergetic   Mood = "energetic"
	MoodPeaceful    Mood = "peaceful"
	MoodRomantic    Mood = "romantic"
)

func (m Mood) String() string {
	return string(m)
}

// GenreFilter is a Jikan genre id.
type GenreFilter int

const (
	GenreAction       GenreFilter = 1
	GenreAdventure    GenreFilter = 2
	GenreComedy       GenreFilter = 4
	GenreMystery      GenreFilter = 7
	GenreDrama        GenreFilter = 8
	GenreFantasy      GenreFilter = 10
	GenreHistorical   GenreFilter = 13
	GenreRomance      GenreFilter = 22
	GenreShoujo       GenreFilter = 25
	GenreShounen      GenreFilter = 27
	GenreSports       GenreFilter = 30
	GenreSliceOfLife  GenreFilter = 36
	GenreSupernatural GenreFilter = 37
	GenreSuspense     GenreFilter = 41
)

var genreNames = map[GenreFilter]string{
	GenreAction:       "Action",
	GenreAdventure:    "Adventure",
	GenreComedy:       "Comedy",
	GenreMystery:      "Mystery",
	GenreDrama:        "Drama",
	GenreFantasy:      "Fantasy",
	GenreHistorical:   "Historical",
	GenreRomance:      "Romance",
	GenreShoujo:       "Shoujo",
	GenreShounen:      "Shounen",
	GenreSports:       "Sports",
	GenreSliceOfLife:  "Slice of Life",
	GenreSupernatural: "Supernatural",
	GenreSuspense:     "Suspense",
}

// Name returns the display name of the genre, or its id when unknown.
func (g GenreFilter) Name() string {
	if n, ok := genreNames[g]; ok {
		return n
	}
	return strconv.Itoa(int(g))
}

func (g GenreFilter) String() string {
	return strconv.Itoa(int(g))
}

// DefaultGenreFilter is used for moods missing from the table.
const DefaultGenreFilter = GenreAction

// MoodOption is a single entry of the mood picker.
type MoodOption struct {
	Mood        Mood
	Emoji       string
	Description string
	Genres      []GenreFilter
}

var moodTable = []MoodOption{
	{MoodHappy, "😊", "Cheerful and uplifting", []GenreFilter{GenreComedy, GenreRomance, GenreSliceOfLife}},
	{MoodSad, "😢", "Emotional and touching", []GenreFilter{GenreDrama, GenreRomance, GenreSupernatural}},
	{MoodAdventurous, "🗡️", "Action-packed and thrilling", []GenreFilter{GenreAdventure, GenreAction, GenreFantasy}},
	{MoodMysterious, "🔮", "Suspenseful and intriguing", []GenreFilter{GenreMystery, GenreSuspense, GenreSupernatural}},
	{MoodNostalgic, "🌸", "Sentimental and reflective", []GenreFilter{GenreDrama, GenreHistorical, GenreSliceOfLife}},
	{MoodEnergetic, "⚡", "High-energy and exciting", []GenreFilter{GenreAction, GenreSports, GenreShounen}},
	{MoodPeaceful, "🕊️", "Calm and relaxing", []GenreFilter{GenreSliceOfLife}},
	{MoodRomantic, "💕", "Sweet and heartwarming", []GenreFilter{GenreRomance, GenreDrama, GenreShoujo}},
}

var moodIndex = func() map[Mood]int {
	idx := make(map[Mood]int, len(moodTable))
	for i, o := range moodTable {
		idx[o.Mood] = i
	}
	return idx
}()

// NormalizeMood trims and lowercases raw user input.
func NormalizeMood(s string) Mood {
	return Mood(strings.ToLower(strings.TrimSpace(s)))
}

// ParseMood reports whether s names one of the picker moods.
func ParseMood(s string) (Mood, bool) {
	m := NormalizeMood(s)
	_, ok := moodIndex[m]
	return m, ok
}

// Moods returns the picker entries in display order.
func Moods() []MoodOption {
	res := make([]MoodOption, len(moodTable))
	for i, o := range moodTable {
		o.Genres = append([]GenreFilter(nil), o.Genres...)
		res[i] = o
	}
	return res
}

// ResolveFilters maps a mood to its ordered genre filters. It never fails:
// anything outside the table resolves to the default filter.
func ResolveFilters(mood string) []GenreFilter {
	i, ok := moodIndex[NormalizeMood(mood)]
	if !ok {
		return []GenreFilter{DefaultGenreFilter}
	}
	return append([]GenreFilter(nil), moodTable[i].Genres...)
}

// JoinGenres renders filters the way the catalog expects them.
func JoinGenres(gs []GenreFilter) string {
	parts := make([]string, len(gs))
	for i, g := range gs {
		parts[i] = g.String()
	}
	return strings.Join(parts, ",")
}

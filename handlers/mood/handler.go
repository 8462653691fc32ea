package mood

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/mood-anime/models"
	sv "github.com/webtor-io/mood-anime/services/common"
	"github.com/webtor-io/mood-anime/services/recommend"
)

const (
	sessionName = "mood-session"
	moodKey     = "mood"
)

type moodView struct {
	Mood        string `json:"mood"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Selected    bool   `json:"selected"`
}

type selectionView struct {
	Mood *string `json:"mood"`
}

type selectRequest struct {
	Mood string `json:"mood" binding:"required"`
}

type Handler struct {
	r recommend.Recommender
}

func RegisterHandler(c *cli.Context, r *gin.Engine, rec recommend.Recommender) {
	register(r, rec, c.String(sv.SessionSecretFlag), sv.AllowedOrigins(c))
}

func register(r *gin.Engine, rec recommend.Recommender, secret string, origins []string) {
	h := &Handler{
		r: rec,
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	gr := r.Group("/api")
	gr.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: !containsWildcard(origins),
	}))
	gr.Use(sessions.Sessions(sessionName, store))
	gr.GET("/moods", h.moods)
	gr.GET("/selection", h.selection)
	gr.POST("/selection", h.selectMood)
	gr.GET("/recommendations", h.current)
	gr.GET("/recommendations/:mood", h.recommendations)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func currentMood(c *gin.Context) (models.Mood, bool) {
	v, ok := sessions.Default(c).Get(moodKey).(string)
	if !ok {
		return "", false
	}
	return models.ParseMood(v)
}

func (s *Handler) moods(c *gin.Context) {
	cur, _ := currentMood(c)
	opts := models.Moods()
	res := make([]moodView, len(opts))
	for i, o := range opts {
		res[i] = moodView{
			Mood:        o.Mood.String(),
			Emoji:       o.Emoji,
			Description: o.Description,
			Selected:    o.Mood == cur,
		}
	}
	c.JSON(http.StatusOK, res)
}

func (s *Handler) selection(c *gin.Context) {
	c.JSON(http.StatusOK, makeSelectionView(currentMood(c)))
}

func makeSelectionView(m models.Mood, ok bool) *selectionView {
	if !ok {
		return &selectionView{}
	}
	str := m.String()
	return &selectionView{Mood: &str}
}

func (s *Handler) selectMood(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mood is required"})
		return
	}
	m, ok := models.ParseMood(req.Mood)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown mood"})
		return
	}
	sess := sessions.Default(c)
	cur, hasCur := currentMood(c)
	if hasCur && cur == m {
		sess.Delete(moodKey)
	} else {
		sess.Set(moodKey, m.String())
	}
	if err := sess.Save(); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.Wrap(err, "failed to save session"))
		return
	}
	c.JSON(http.StatusOK, makeSelectionView(currentMood(c)))
}

func (s *Handler) current(c *gin.Context) {
	m, ok := currentMood(c)
	if !ok {
		c.JSON(http.StatusOK, recommend.NewIdleView())
		return
	}
	s.render(c, m.String())
}

func (s *Handler) recommendations(c *gin.Context) {
	s.render(c, string(models.NormalizeMood(c.Param("mood"))))
}

func (s *Handler) render(c *gin.Context, mood string) {
	movies, err := s.r.Fetch(c.Request.Context(), mood)
	if err != nil {
		log.WithError(err).
			WithField("mood", mood).
			WithField("request_id", c.GetString("request_id")).
			Error("failed to get recommendations")
		var tf *recommend.TransportFailure
		status := http.StatusInternalServerError
		if errors.As(err, &tf) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, recommend.NewFailureView(mood))
		return
	}
	c.JSON(http.StatusOK, recommend.NewView(mood, movies))
}

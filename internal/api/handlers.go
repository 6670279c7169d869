package api

import (
	"net/http"
	"strconv"

	"fitbot/internal/models"

	"github.com/gin-gonic/gin"
)

type exerciseOut struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
	Delta  string `json:"delta,omitempty"`
}

type workoutOut struct {
	Key    string                 `json:"key"`
	Title  string                 `json:"title"`
	Levels map[string][]exerciseOut `json:"levels"`
}

type dayOut struct {
	Date         string      `json:"date"`
	DayType      string      `json:"day_type"`
	Status       string      `json:"status"`
	Warning      string      `json:"warning,omitempty"`
	DefaultStart bool        `json:"default_start,omitempty"`
	Macros       gin.H       `json:"macros"`
	Workout      *workoutOut `json:"workout"`
}

func (s *Server) handleToday(c *gin.Context) {
	userID := c.GetInt(userIDKey)

	view, err := s.svc.Materialize(userID, s.today())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := dayOut{
		Date:         view.Plan.Date.Format("2006-01-02"),
		DayType:      string(view.Plan.DayType),
		Status:       string(view.Status),
		Warning:      view.Plan.Warning,
		DefaultStart: view.DefaultStart,
		Macros: gin.H{
			"kcal":    view.Plan.Macros.Kcal,
			"protein": view.Plan.Macros.Protein,
			"fat":     view.Plan.Macros.Fat,
			"carbs":   view.Plan.Macros.Carbs,
		},
	}
	if view.Plan.Workout != nil {
		workout := &workoutOut{
			Key:    view.Plan.Workout.Key,
			Title:  view.Plan.Workout.Title,
			Levels: make(map[string][]exerciseOut, len(models.Levels)),
		}
		for _, level := range models.Levels {
			entries := view.Plan.Workout.Levels[level]
			list := make([]exerciseOut, 0, len(entries))
			for _, ex := range entries {
				list = append(list, exerciseOut{
					Name:   ex.Name,
					Sets:   ex.Sets,
					Reps:   ex.Reps,
					Weight: ex.Weight,
					Delta:  ex.Delta,
				})
			}
			workout.Levels[string(level)] = list
		}
		out.Workout = workout
	}

	c.JSON(http.StatusOK, out)
}

type progressIn struct {
	Weight float64 `json:"weight"`
	Waist  float64 `json:"waist"`
	Belly  float64 `json:"belly"`
	Biceps float64 `json:"biceps"`
	Chest  float64 `json:"chest"`
	Note   string  `json:"note"`
}

func (s *Server) handleProgressAdd(c *gin.Context) {
	userID := c.GetInt(userIDKey)

	var in progressIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	id, err := s.repo.Progress.Add(models.ProgressEntry{
		UserID: userID,
		Date:   s.today(),
		Weight: in.Weight,
		Waist:  in.Waist,
		Belly:  in.Belly,
		Biceps: in.Biceps,
		Chest:  in.Chest,
		Note:   in.Note,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}

func (s *Server) handleProgressList(c *gin.Context) {
	userID := c.GetInt(userIDKey)

	entries, err := s.repo.Progress.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{
			"id":     e.ID,
			"date":   e.Date.Format("2006-01-02"),
			"weight": e.Weight,
			"waist":  e.Waist,
			"belly":  e.Belly,
			"biceps": e.Biceps,
			"chest":  e.Chest,
			"note":   e.Note,
		})
	}
	c.JSON(http.StatusOK, out)
}

// handleProgressUpdate перезаписывает переданные поля замера,
// нулевые и пустые поля не трогаются
func (s *Server) handleProgressUpdate(c *gin.Context) {
	userID := c.GetInt(userIDKey)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный id"})
		return
	}

	var in progressIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	err = s.repo.Progress.Update(userID, id, models.ProgressEntry{
		Weight: in.Weight,
		Waist:  in.Waist,
		Belly:  in.Belly,
		Biceps: in.Biceps,
		Chest:  in.Chest,
		Note:   in.Note,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleProgressDelete(c *gin.Context) {
	userID := c.GetInt(userIDKey)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный id"})
		return
	}
	if err := s.repo.Progress.Delete(userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

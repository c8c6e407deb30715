package main // import "github.com/tonobo/snake-top"

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const defaultGamesLimit = 20

type Server struct {
	Selector   *Selector
	History    *History
	Appearance Appearance
	// Shout is sent along with every move when set.
	Shout string

	logger *log.Logger
}

func NewServer(selector *Selector, history *History, appearance Appearance, logger *log.Logger) *Server {
	return &Server{
		Selector:   selector,
		History:    history,
		Appearance: appearance,
		logger:     logger,
	}
}

// bind decodes the engine payload, answering 400 when it is malformed.
func bind(c *gin.Context) (*Request, bool) {
	var j Request
	if err := c.ShouldBindJSON(&j); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	j.Init()
	return &j, true
}

func (s *Server) Router(debug bool) *gin.Engine {
	var r *gin.Engine
	if debug {
		r = gin.Default()
	} else {
		gin.SetMode(gin.ReleaseMode)
		r = gin.New()
		r.Use(gin.Recovery())
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Appearance)
	})

	r.POST("/start", func(c *gin.Context) {
		j, ok := bind(c)
		if !ok {
			return
		}
		s.logger.Info("start", "game", j.Game.ID, "ruleset", j.Game.Ruleset.Name)
		if s.History != nil && j.Self != nil {
			if err := s.History.RecordStart(j.Game.ID, j.Self.ID, j.Game.Ruleset.Name); err != nil {
				s.logger.Error("history", "err", err)
			}
		}
		c.JSON(http.StatusOK, gin.H{})
	})

	r.POST("/end", func(c *gin.Context) {
		j, ok := bind(c)
		if !ok {
			return
		}
		result := GameResult(j)
		s.logger.Info("end", "game", j.Game.ID, "turn", j.Turn, "result", result)
		if s.History != nil && j.Self != nil {
			if err := s.History.RecordEnd(j.Game.ID, j.Self.ID, j.Turn, result); err != nil {
				s.logger.Error("history", "err", err)
			}
		}
		c.JSON(http.StatusOK, gin.H{})
	})

	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	r.POST("/move", func(c *gin.Context) {
		j, ok := bind(c)
		if !ok {
			return
		}
		logger := s.logger.With("game", j.Game.ID, "turn", j.Turn)
		if logger.GetLevel() <= log.DebugLevel {
			logger.Debug("board\n" + RenderGrid(j.Board))
		}
		move := s.Selector.SelectMove(j.Board)
		logger.Info("move", "move", move)
		c.JSON(http.StatusOK, MoveResponse{Move: move, Shout: s.Shout})
	})

	r.GET("/games", func(c *gin.Context) {
		if s.History == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "history disabled"})
			return
		}
		limit := defaultGamesLimit
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
				return
			}
			limit = n
		}
		games, err := s.History.Recent(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, games)
	})

	return r
}

type MoveResponse struct {
	Move  Move   `json:"move"`
	Shout string `json:"shout,omitempty"`
}

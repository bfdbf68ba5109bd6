package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/puzzles"
	"svw.info/sudokusolve/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r gin.IRouter) {
	v1 := r.Group("/api").Group("/v1")
	v1.POST("/solve", h.Solve)
	v1.POST("/validate", h.Validate)
	v1.GET("/puzzles", h.ListExamples)
	v1.GET("/puzzles/:name", h.GetExample)
	v1.POST("/saved", h.Save)
	v1.GET("/saved", h.ListSaved)
	v1.GET("/saved/:id", h.LoadSaved)
}

type boardReq struct {
	Board [9][9]uint8 `json:"board"`
}

type solveResp struct {
	Solved     bool        `json:"solved"`
	Board      [9][9]uint8 `json:"board,omitempty"`
	Calls      int         `json:"calls"`
	DurationMs int64       `json:"durationMs"`
}

func (h *Handler) Solve(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	solved, st, err := h.UC.Solve(c.Request.Context(), b)
	if err != nil {
		var inv *usecase.InvalidBoardError
		if errors.As(err, &inv) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board", "conflicts": inv.Conflicts})
			return
		}
		log.Err(err).Msg("solve board")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "solve failed", "message": err.Error()})
		return
	}
	if !solved {
		c.JSON(http.StatusUnprocessableEntity, solveResp{Solved: false, Calls: st.Calls, DurationMs: st.Duration.Milliseconds()})
		return
	}
	c.JSON(http.StatusOK, solveResp{Solved: true, Board: b.Values, Calls: st.Calls, DurationMs: st.Duration.Milliseconds()})
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) Validate(c *gin.Context) {
	var req boardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		log.Err(err).Msg("validate board")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "validate failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

type exampleMeta struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) ListExamples(c *gin.Context) {
	metas := lo.Map(puzzles.All(), func(e puzzles.Example, _ int) exampleMeta {
		return exampleMeta{Name: e.Name, Description: e.Description}
	})
	c.JSON(http.StatusOK, gin.H{"puzzles": metas})
}

func (h *Handler) GetExample(c *gin.Context) {
	e, ok := puzzles.Get(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown puzzle", "name": c.Param("name")})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) Save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		log.Err(err).Str("id", p.ID).Msg("save puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) ListSaved(c *gin.Context) {
	metas, err := h.UC.List(c.Request.Context())
	if err != nil {
		log.Err(err).Msg("list puzzles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": metas})
}

func (h *Handler) LoadSaved(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown puzzle", "id": c.Param("id")})
			return
		}
		log.Err(err).Str("id", c.Param("id")).Msg("load puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

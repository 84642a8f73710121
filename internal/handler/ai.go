package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readingnest/server/internal/ai"
	"github.com/readingnest/server/internal/store"
	"github.com/readingnest/server/internal/validation"
)

// recentTitleCount is how many recently added titles feed the
// recommendation prompt.
const recentTitleCount = 3

type AIHandler struct {
	gw  ai.Gateway
	lib *store.Library
}

func NewAIHandler(gw ai.Gateway, lib *store.Library) *AIHandler {
	return &AIHandler{gw: gw, lib: lib}
}

func (h *AIHandler) RegisterRoutes(r *gin.RouterGroup) {
	aiGroup := r.Group("/ai")
	{
		aiGroup.POST("/lookup", h.Lookup)
		aiGroup.GET("/recommendations", h.Recommendations)
		aiGroup.POST("/reflect", h.Reflect)
	}
}

// Lookup godoc
// @Summary      Look up book metadata
// @Description  Structured title/author/category/summary/page-count lookup to pre-fill the add-book form
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        payload  body      LookupRequest  true  "Title to look up"
// @Success      200      {object}  LookupResponse
// @Failure      400      {object}  validation.ErrorResponse  "Missing title"
// @Failure      502      {object}  validation.ErrorResponse  "Lookup failed; enter details manually"
// @Router       /ai/lookup [post]
func (h *AIHandler) Lookup(c *gin.Context) {
	var req LookupRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	info, err := h.gw.LookupBookInfo(c.Request.Context(), req.Title)
	if err != nil {
		log.Printf("ai: %v", err)
		writeError(c, http.StatusBadGateway,
			"AI_LOOKUP_FAILED",
			"book lookup failed; enter the details manually",
		)
		return
	}

	c.JSON(http.StatusOK, LookupResponse{Data: *info})
}

// Recommendations godoc
// @Summary      Recommend books
// @Description  Three suggestions based on the library's categories and most recently added titles. Failures are logged and yield an empty list.
// @Tags         ai
// @Produce      json
// @Success      200  {object}  RecommendationsResponse
// @Router       /ai/recommendations [get]
func (h *AIHandler) Recommendations(c *gin.Context) {
	genres := h.lib.Categories()
	recent := h.lib.RecentTitles(recentTitleCount)

	recs, err := h.gw.Recommend(c.Request.Context(), genres, recent)
	if err != nil {
		// Recommendations are best effort: log and show nothing.
		log.Printf("ai: %v", err)
		c.JSON(http.StatusOK, RecommendationsResponse{Data: []ai.Recommendation{}})
		return
	}

	c.JSON(http.StatusOK, RecommendationsResponse{Data: recs})
}

// Reflect godoc
// @Summary      Reflect on a reading note
// @Description  Brief free-text comment on a note; requires non-empty content
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        payload  body      ReflectRequest  true  "Note content and owning book title"
// @Success      200      {object}  ReflectResponse
// @Failure      400      {object}  validation.ErrorResponse  "Missing content"
// @Failure      502      {object}  validation.ErrorResponse  "Reflection failed"
// @Router       /ai/reflect [post]
func (h *AIHandler) Reflect(c *gin.Context) {
	var req ReflectRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	text, err := h.gw.Reflect(c.Request.Context(), req.Content, req.BookTitle)
	if err != nil {
		log.Printf("ai: %v", err)
		writeError(c, http.StatusBadGateway,
			"AI_REFLECT_FAILED",
			"note reflection failed",
		)
		return
	}

	c.JSON(http.StatusOK, ReflectResponse{Data: Reflection{Reflection: text}})
}

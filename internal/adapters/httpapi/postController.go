package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	postPort "negar/internal/ports/post"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) FindAll(c *gin.Context) {
	filter := postPort.Filter{
		Title:      c.Query("title"),
		Pagination: parsePagination(c),
	}
	if idStr := strings.TrimSpace(c.Query("categoryId")); idStr != "" {
		if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}

	res, err := ctl.pc.FindAllAndCount(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,min=1,max=1000"`
		Description string `json:"description" binding:"required,min=1,max=1000"`
		CategoryID  uint   `json:"categoryId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	// گرفتن userID از context
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	res, err := ctl.pc.Create(c.Request.Context(), req.Title, req.Description, req.CategoryID, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Title       *string `json:"title" binding:"omitempty,min=1,max=1000"`
		Description *string `json:"description" binding:"omitempty,min=1,max=1000"`
		CategoryID  *uint   `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.pc.Update(c.Request.Context(), id, req.Title, req.Description, req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) FindID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res, err := ctl.pc.FindID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	categoryPort "negar/internal/ports/category"
	"negar/internal/ports/listing"
)

type CategoryController struct{ cc CategoryUseCase }

func NewCategoryController(cc CategoryUseCase) *CategoryController {
	return &CategoryController{cc: cc}
}

func (ctl *CategoryController) FindAll(c *gin.Context) {
	filter := categoryPort.Filter{
		Name:       c.Query("name"),
		Level:      c.Query("level"),
		ParentName: c.Query("parentName"),
		Pagination: parsePagination(c),
	}

	if idStr := strings.TrimSpace(c.Query("id")); idStr != "" {
		if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
			filter.ID = uint(id)
		}
	}
	filter.CreatedAtFrom = parseDateQuery(c, "createdAtFrom")
	filter.CreatedAtTo = parseDateQuery(c, "createdAtTo")

	res, err := ctl.cc.FindAllAndCount(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CategoryController) Create(c *gin.Context) {
	var req struct {
		Name              string `json:"name" binding:"required,min=1,max=100"`
		ParentCategoryIDs []uint `json:"parentCategoryIds"`
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

	res, err := ctl.cc.Create(c.Request.Context(), req.Name, req.ParentCategoryIDs, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *CategoryController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Name              *string `json:"name" binding:"omitempty,min=1,max=100"`
		ParentCategoryIDs []uint  `json:"parentCategoryIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.cc.Update(c.Request.Context(), id, req.Name, req.ParentCategoryIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CategoryController) FindID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res, err := ctl.cc.FindID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// parsePagination مقادیر غیرعددی یا غیرمثبت به پیش‌فرض برمی‌گردند
func parsePagination(c *gin.Context) listing.Pagination {
	p := listing.Pagination{
		Page:    listing.DefaultPage,
		PerPage: listing.DefaultPerPage,
		GetFull: c.Query("getFull") == "true",
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "")); err == nil && page >= 1 {
		p.Page = page
	}
	if perPage, err := strconv.Atoi(c.DefaultQuery("perPage", "")); err == nil && perPage >= 1 {
		p.PerPage = perPage
	}
	return p
}

// parseDateQuery تاریخ نامعتبر مثل بقیه فیلترهای نامعتبر نادیده گرفته می‌شود
func parseDateQuery(c *gin.Context, key string) *time.Time {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

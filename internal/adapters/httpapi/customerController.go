package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	customerPort "negar/internal/ports/customer"
)

type CustomerController struct{ cc CustomerUseCase }

func NewCustomerController(cc CustomerUseCase) *CustomerController {
	return &CustomerController{cc: cc}
}

const dateLayout = "2006-01-02"

func (ctl *CustomerController) Create(c *gin.Context) {
	var req struct {
		FullName    string `json:"fullName" binding:"required,min=1,max=100"`
		Bio         string `json:"bio" binding:"omitempty,max=1000"`
		Gender      string `json:"gender" binding:"required"`
		DateOfBirth string `json:"dateOfBirth" binding:"required"`
		PhoneNumber string `json:"phoneNumber" binding:"required,len=10"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	dateOfBirth, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateOfBirth"})
		return
	}

	res, err := ctl.cc.Create(c.Request.Context(), customerPort.CreateInput{
		FullName:    req.FullName,
		Bio:         req.Bio,
		Gender:      req.Gender,
		DateOfBirth: dateOfBirth,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		FullName    *string `json:"fullName" binding:"omitempty,min=1,max=100"`
		Bio         *string `json:"bio" binding:"omitempty,max=1000"`
		Gender      *string `json:"gender"`
		DateOfBirth *string `json:"dateOfBirth"`
		PhoneNumber *string `json:"phoneNumber" binding:"omitempty,len=10"`
		Email       *string `json:"email" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	in := customerPort.UpdateInput{
		FullName:    req.FullName,
		Bio:         req.Bio,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dateOfBirth"})
			return
		}
		in.DateOfBirth = &dateOfBirth
	}

	res, err := ctl.cc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CustomerController) UpdatePassword(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Password    string `json:"password" binding:"required,min=8"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	res, err := ctl.cc.UpdatePassword(c.Request.Context(), id, req.Password, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ctl.cc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}

func (ctl *CustomerController) FindID(c *gin.Context) {
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

func (ctl *CustomerController) FindAll(c *gin.Context) {
	res, err := ctl.cc.FindAllAndCount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// paramID خواندن و اعتبارسنجی پارامتر id از مسیر
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

package handler

import (
	"net/http"
	"regexp"
	"time"

	"github.com/buxinhealth/website/internal/service"
	"github.com/buxinhealth/website/internal/store"
	"github.com/gin-gonic/gin"
)

var (
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneDigitsStrip = regexp.MustCompile(`[^\d+]`)
)

type bookingRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	MeetingDate string `json:"meeting_date"`
	Platform    string `json:"platform"`
}

func bookingError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// CreateInvestorBooking 处理投资人预约提交
func (a *API) CreateInvestorBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bookingError(c, http.StatusBadRequest, "No data received")
		return
	}

	// 必填字段按固定顺序校验,错误信息带字段名
	required := []struct {
		name  string
		value string
	}{
		{"full_name", req.FullName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"country", req.Country},
		{"meeting_date", req.MeetingDate},
		{"platform", req.Platform},
	}
	for _, field := range required {
		if field.value == "" {
			bookingError(c, http.StatusBadRequest, field.name+" is required")
			return
		}
	}

	if !emailPattern.MatchString(req.Email) {
		bookingError(c, http.StatusBadRequest, "Invalid email address")
		return
	}

	digits := phoneDigitsStrip.ReplaceAllString(req.Phone, "")
	if len(digits) < 7 {
		bookingError(c, http.StatusBadRequest, "Invalid phone number (must be at least 7 digits)")
		return
	}

	booking := store.InvestorBooking{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Country:     req.Country,
		MeetingDate: req.MeetingDate,
		Platform:    req.Platform,
		Status:      store.BookingStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := a.submissions.CreateInvestorBooking(&booking); err != nil {
		c.Error(err)
		bookingError(c, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	a.notify.InvestorBookingReceived(c.Request.Context(), booking)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you! Your meeting request has been received.",
	})
}

// ListCountries 返回预约表单使用的国家列表
func (a *API) ListCountries(c *gin.Context) {
	c.JSON(http.StatusOK, service.Countries())
}

package handler

import (
	"Fable/internal/pkg/response"
	"Fable/internal/service"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingSvc service.BillingService
}

func NewBillingHandler(billingSvc service.BillingService) *BillingHandler {
	return &BillingHandler{billingSvc: billingSvc}
}

func (s *BillingHandler) CreateCheckout(c *gin.Context) {
	userId := c.GetUint64("user_id")
	result, err := s.billingSvc.CreateCheckout(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *BillingHandler) MockUpgrade(c *gin.Context) {
	userId := c.GetUint64("user_id")
	result, err := s.billingSvc.MockUpgrade(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

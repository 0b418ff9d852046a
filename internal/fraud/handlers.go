package fraud

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/upiguard/upiguard/internal/logging"
	"github.com/upiguard/upiguard/internal/validation"
)

// Handler provides HTTP endpoints for transaction scoring.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler creates a new fraud handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes sets up scoring routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/transactions", h.SubmitTransaction)
	r.GET("/transactions", h.GetHistory)
	r.GET("/stats", h.GetStats)
}

// SubmitTransaction handles POST /transactions
func (h *Handler) SubmitTransaction(c *gin.Context) {
	ctx := c.Request.Context()
	logger := logging.L(ctx)

	var draft Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Request body must be valid JSON with a numeric amount",
		})
		return
	}

	tx, err := h.svc.SubmitTransaction(ctx, draft)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation_failed",
				"message": verrs.Error(),
				"fields":  verrs,
			})
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client went away while the analysis delay was pending
			c.Status(http.StatusRequestTimeout)
			return
		}
		logger.Error("failed to score transaction", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to score transaction",
		})
		return
	}

	logger.Info("transaction recorded",
		"id", tx.ID,
		"merchant", tx.Merchant,
		"status", tx.Status,
		"risk_score", tx.RiskScore,
	)

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetHistory handles GET /transactions
func (h *Handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.svc.History(ctx)
	if err != nil {
		logging.L(ctx).Error("failed to read history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to retrieve transaction history",
		})
		return
	}

	// Optional cap for the dashboard's table
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit < len(entries) {
			entries = entries[:limit]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": entries,
		"count":        len(entries),
	})
}

// GetStats handles GET /stats
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.svc.Statistics(ctx)
	if err != nil {
		logging.L(ctx).Error("failed to compute stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to compute statistics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

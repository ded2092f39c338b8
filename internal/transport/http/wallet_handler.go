package handlers

import (
	"net/http"

	"github.com/waste3d/artemis-marketplace/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	wallet *usecase.WalletUseCase
}

func NewWalletHandler(wallet *usecase.WalletUseCase) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

// GET /api/v1/wallet
func (h *WalletHandler) Balance(c *gin.Context) {
	balance, err := h.wallet.Balance(c, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account_id": callerID(c), "balance": balance})
}

// POST /api/v1/wallet/deposit
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req struct {
		Amount int64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := h.wallet.Deposit(c, callerID(c), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account_id": callerID(c), "balance": balance})
}

// GET /api/v1/wallet/history
func (h *WalletHandler) History(c *gin.Context) {
	transfers, err := h.wallet.History(c, callerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transfers": transfers})
}

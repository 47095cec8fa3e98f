package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/seedscan/seedscan-daemon/internal/core/domain"
	"github.com/seedscan/seedscan-daemon/pkg/hdwallet"
)

// validationErrors are safe to echo back to the caller with a 400. Anything
// else maps to a generic 500, internals never leak through the API.
var validationErrors = []error{
	domain.ErrNullSeedPhrase,
	domain.ErrNullNetworks,
	domain.ErrNullBitcoinAddressTypes,
	hdwallet.ErrNullMnemonic,
	hdwallet.ErrInvalidMnemonicWordCount,
	hdwallet.ErrInvalidMnemonicChecksum,
	hdwallet.ErrNullNetworks,
	hdwallet.ErrInvalidChangeSelector,
}

func isValidationError(err error) bool {
	for _, known := range validationErrors {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

type scanResponse struct {
	Success bool                  `json:"success"`
	Results []domain.WalletReport `json:"results"`
	All     []domain.WalletReport `json:"all_derived_wallets"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Service) scanHandler(c *gin.Context) {
	var req domain.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: "invalid request body",
		})
		return
	}

	report, err := s.scanner.Scan(c.Request.Context(), req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		log.WithError(err).WithField(
			"request_id", c.GetString("request_id"),
		).Error("scan failed")
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "unexpected error, try again later",
		})
		return
	}

	c.JSON(http.StatusOK, scanResponse{
		Success: true,
		Results: report.Results,
		All:     report.AllDerivedWallets,
	})
}

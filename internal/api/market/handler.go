package market

import (
	"fmt"
	"net/http"

	"toadtoe-api/internal/infra/market"

	"github.com/gin-gonic/gin"
)

// POST /market/quote {"symbol": "MSFT"}
//
// Proxies the quote lookup and returns the upstream JSON unchanged, so the
// widget can keep parsing the Alpha Vantage time-series shape directly.
func Quote(c *gin.Context) {
	var body struct {
		Symbol string `json:"symbol"`
	}
	// an empty body defaults the symbol, matching the widget
	_ = c.ShouldBindJSON(&body)
	if body.Symbol == "" {
		body.Symbol = "MSFT"
	}

	fmt.Printf("Fetching data for symbol: %s\n", body.Symbol)

	data, err := market.IntradayQuote(body.Symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", data)
}

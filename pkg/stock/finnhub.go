package stock

import (
	"context"
	"fmt"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// Quote is the slice of market data the recommendation flow needs.
type Quote struct {
	CurrentPrice float64
	ChangePct    float64 // percent change vs previous close
}

type QuoteSource interface {
	Quote(ctx context.Context, symbol string) (*Quote, error)
}

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Quote(ctx context.Context, symbol string) (*Quote, error) {
	res, _, err := c.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub quote %s: %w", symbol, err)
	}

	q := &Quote{}
	if res.C != nil {
		q.CurrentPrice = float64(*res.C)
	}
	if res.Dp != nil {
		q.ChangePct = float64(*res.Dp)
	}
	if q.CurrentPrice == 0 {
		return nil, fmt.Errorf("finnhub quote %s: no price data", symbol)
	}
	return q, nil
}

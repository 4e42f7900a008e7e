package billing

import (
	"Fable/internal/api/config"
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client 支付网关透传客户端
type Client struct {
	http *resty.Client
	cfg  config.BillingConfig
}

func NewClient(cfg config.BillingConfig) *Client {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")

	if cfg.ApiKey != "" {
		client.SetAuthToken(cfg.ApiKey)
	}

	return &Client{http: client, cfg: cfg}
}

type checkoutRequest struct {
	PriceID           string `json:"price_id"`
	ClientReferenceID string `json:"client_reference_id"`
	CustomerEmail     string `json:"customer_email"`
	SuccessURL        string `json:"success_url"`
	CancelURL         string `json:"cancel_url"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession 创建支付会话并返回跳转链接
func (c *Client) CreateCheckoutSession(ctx context.Context, userID uint64, email string) (string, error) {
	if c.cfg.CheckoutURL == "" {
		return "", errors.New("billing checkout url is not configured")
	}

	var result checkoutResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&checkoutRequest{
			PriceID:           c.cfg.PriceID,
			ClientReferenceID: strconv.FormatUint(userID, 10),
			CustomerEmail:     email,
			SuccessURL:        c.cfg.SuccessURL,
			CancelURL:         c.cfg.CancelURL,
		}).
		SetResult(&result).
		Post(c.cfg.CheckoutURL)

	if err != nil {
		return "", errors.Wrap(err, "checkout session request failed")
	}
	if resp.IsError() {
		return "", errors.Errorf("checkout session request failed with status %d", resp.StatusCode())
	}
	if result.URL == "" {
		return "", errors.New("checkout session response has no url")
	}

	return result.URL, nil
}

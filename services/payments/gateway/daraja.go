package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/paychain/paychain/internal/pkg/logger"
	"github.com/paychain/paychain/internal/pkg/models"
	"github.com/paychain/paychain/internal/utils"
)

// Daraja environment base URLs
const (
	darajaSandboxURL    = "https://sandbox.safaricom.co.ke"
	darajaProductionURL = "https://api.safaricom.co.ke"

	darajaTimestampLayout = "20060102150405"

	// Daraja field length limits
	maxAccountRefLen  = 12
	maxDescriptionLen = 13

	// tokenExpiryMargin refreshes the token before Daraja's own expiry
	tokenExpiryMargin = 60 * time.Second
)

// DarajaClient talks to the Safaricom Daraja API. OAuth tokens are cached
// until shortly before expiry and refreshed under a mutex.
type DarajaClient struct {
	cfg    models.DarajaConfig
	client *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time

	// now is swappable for deterministic passwords in tests
	now func() time.Time
}

// NewDarajaClient creates a Daraja API client
func NewDarajaClient(cfg models.DarajaConfig) *DarajaClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = darajaSandboxURL
		if cfg.Environment == "production" {
			cfg.BaseURL = darajaProductionURL
		}
	}

	return &DarajaClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		now:    time.Now,
	}
}

// InitiatePush fires an STK push at the payer's handset. The amount is
// converted from minor units to whole KES, with a floor of 1.
func (d *DarajaClient) InitiatePush(ctx context.Context, req *models.STKPushRequest) (*models.STKPushResponse, error) {
	token, err := d.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := d.now().Format(darajaTimestampLayout)
	payload := map[string]interface{}{
		"BusinessShortCode": d.cfg.Shortcode,
		"Password":          d.password(timestamp),
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            wholeAmount(req.Amount),
		"PartyA":            req.Phone,
		"PartyB":            d.cfg.Shortcode,
		"PhoneNumber":       req.Phone,
		"CallBackURL":       req.CallbackURL,
		"AccountReference":  utils.Truncate(req.AccountRef, maxAccountRefLen),
		"TransactionDesc":   utils.Truncate(req.Description, maxDescriptionLen),
	}

	var resp models.STKPushResponse
	if err := d.post(ctx, "/mpesa/stkpush/v1/processrequest", token, payload, &resp); err != nil {
		return nil, err
	}
	if resp.ResponseCode != "0" {
		return nil, fmt.Errorf("stk push rejected: %s (%s)", resp.ResponseDescription, resp.ResponseCode)
	}

	return &resp, nil
}

// QueryPush checks the status of a previously initiated push
func (d *DarajaClient) QueryPush(ctx context.Context, checkoutRequestID string) (*models.STKQueryResponse, error) {
	token, err := d.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := d.now().Format(darajaTimestampLayout)
	payload := map[string]interface{}{
		"BusinessShortCode": d.cfg.Shortcode,
		"Password":          d.password(timestamp),
		"Timestamp":         timestamp,
		"CheckoutRequestID": checkoutRequestID,
	}

	var resp models.STKQueryResponse
	if err := d.post(ctx, "/mpesa/stkpushquery/v1/query", token, payload, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// accessToken returns a cached OAuth token, fetching a fresh one when the
// cache is empty or near expiry
func (d *DarajaClient) accessToken(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.token != "" && d.now().Before(d.tokenExpiry) {
		return d.token, nil
	}

	url := d.cfg.BaseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(d.cfg.ConsumerKey, d.cfg.ConsumerSecret)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token request returned %d: %s", resp.StatusCode, string(body))
	}

	var grant models.DarajaTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if grant.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	expiresIn, err := strconv.Atoi(grant.ExpiresIn)
	if err != nil || expiresIn <= 0 {
		expiresIn = 3600
	}

	d.token = grant.AccessToken
	d.tokenExpiry = d.now().Add(time.Duration(expiresIn)*time.Second - tokenExpiryMargin)

	logger.Debug("Daraja token refreshed",
		logger.String("environment", d.cfg.Environment))

	return d.token, nil
}

func (d *DarajaClient) post(ctx context.Context, path, token string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal daraja request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build daraja request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("daraja request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("daraja returned %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode daraja response: %w", err)
	}

	return nil
}

// password builds the base64(shortcode + passkey + timestamp) credential
// the STK endpoints require
func (d *DarajaClient) password(timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(d.cfg.Shortcode + d.cfg.Passkey + timestamp))
}

// wholeAmount converts minor units to whole KES for the Daraja payload.
// Daraja rejects zero, so sub-shilling amounts round up to 1.
func wholeAmount(cents int64) int64 {
	amount := int64(math.Round(float64(cents) / 100))
	if amount < 1 {
		amount = 1
	}
	return amount
}

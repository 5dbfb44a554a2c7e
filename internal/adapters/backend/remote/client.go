// Package remote talks to the remote universal-account service over JSON.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/bnema/universal-accounts-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxResponseBytes = 1 << 20

	smartAccountsPath   = "/v1/smart-accounts"
	assetsPath          = "/v1/assets"
	transactionsPath    = "/v1/transactions"
	sendTransactionPath = "/v1/transactions/send"

	headerProjectID = "X-Project-Id"
	headerClientKey = "X-Client-Key"
	headerAppUUID   = "X-App-Uuid"
	headerRequestID = "X-Request-Id"
)

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

var _ ports.Backend = (*Client)(nil)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) post(ctx context.Context, credentials domain.Credentials, path string, request any, response any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return domain.NewError(domain.KindConfiguration, "", "backend url", err)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerProjectID, credentials.ProjectID)
	req.Header.Set(headerClientKey, credentials.ClientKey)
	req.Header.Set(headerAppUUID, credentials.AppUUID)
	req.Header.Set(headerRequestID, requestID)

	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.NewError(domain.KindTransient, "", "request "+path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger().Debug("backend request",
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(response); err != nil {
		return domain.NewError(domain.KindTransient, "", "decode "+path+" response", err)
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// decodeAPIError maps a non-2xx answer onto the error taxonomy. Explicit error
// codes win over the status code.
func decodeAPIError(resp *http.Response) error {
	var payload apiError
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		payload = apiError{}
	}

	message := payload.Message
	if message == "" {
		message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}

	switch payload.Code {
	case domain.CodeUnsupportedChain:
		return domain.NewError(domain.KindValidation, domain.CodeUnsupportedChain, message, nil)
	case "validation", "invalid_request":
		return domain.NewError(domain.KindValidation, payload.Code, message, nil)
	case "insufficient_funds":
		return domain.NewError(domain.KindInsufficientFunds, payload.Code, message, nil)
	case domain.CodeExpiredPlan:
		return domain.NewError(domain.KindTransient, domain.CodeExpiredPlan, message, nil)
	case domain.CodeSignatureMismatch, "rejected":
		return domain.NewError(domain.KindRejection, payload.Code, message, nil)
	case "unauthorized", "invalid_credentials":
		return domain.NewError(domain.KindConfiguration, payload.Code, message, nil)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.NewError(domain.KindConfiguration, payload.Code, message, nil)
	case resp.StatusCode == http.StatusPaymentRequired:
		return domain.NewError(domain.KindInsufficientFunds, payload.Code, message, nil)
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return domain.NewError(domain.KindRejection, payload.Code, message, nil)
	case resp.StatusCode == http.StatusRequestTimeout,
		resp.StatusCode == http.StatusConflict,
		resp.StatusCode == http.StatusGone,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= http.StatusInternalServerError:
		return domain.NewError(domain.KindTransient, payload.Code, message, nil)
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		return domain.NewError(domain.KindValidation, payload.Code, message, nil)
	default:
		return domain.NewError(domain.KindTransient, payload.Code, message, nil)
	}
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}

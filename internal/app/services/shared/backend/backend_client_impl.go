package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"spectrumconnect-service/internal/app/config"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/pkg/constvars"
	"spectrumconnect-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type backendClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewBackendClient is the one HTTP collaborator every view talks to the backend API through.
func NewBackendClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.BackendClient {
	timeout := time.Duration(internalConfig.Backend.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Limit(internalConfig.Backend.MaxRequestsPerSecond)
	if internalConfig.Backend.MaxRequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := internalConfig.Backend.Burst
	if burst <= 0 {
		burst = 1
	}

	return &backendClient{
		BaseUrl:    strings.TrimRight(internalConfig.Backend.BaseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, burst),
		Log:        logger,
	}
}

func (c *backendClient) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if len(query) > 0 {
		path = fmt.Sprintf("%s?%s", path, query.Encode())
	}
	return c.do(ctx, constvars.MethodGet, path, nil, "", out)
}

func (c *backendClient) Post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, constvars.MethodPost, path, payload, constvars.MIMEApplicationJSON, out)
}

func (c *backendClient) Put(ctx context.Context, path string, body, out interface{}) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}
	return c.do(ctx, constvars.MethodPut, path, payload, constvars.MIMEApplicationJSON, out)
}

func (c *backendClient) PostMultipart(ctx context.Context, path, fieldName, fileName string, file io.Reader, out interface{}) error {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	_, err = io.Copy(part, file)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	err = writer.Close()
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	return c.do(ctx, constvars.MethodPost, path, buffer.Bytes(), writer.FormDataContentType(), out)
}

func (c *backendClient) do(ctx context.Context, method, path string, payload []byte, contentType string, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	fullURL := c.BaseUrl + path
	c.Log.Info("backendClient.do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingBackendURLKey, fullURL),
	)

	err := c.Limiter.Wait(ctx)
	if err != nil {
		c.Log.Error("backendClient.do outbound limiter aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrOutboundRateLimit(err)
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		c.Log.Error("backendClient.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	c.sign(ctx, req)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("backendClient.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if isTimeout(err) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("backendClient.do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode == constvars.StatusUnauthorized {
		c.invalidate(ctx, requestID)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		backendErr := &exceptions.BackendError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(bodyBytes),
		}
		c.Log.Error("backendClient.do backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(backendErr),
		)
		return exceptions.ErrBackendRejected(backendErr)
	}

	c.Log.Info("backendClient.do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}
	err = json.Unmarshal(bodyBytes, out)
	if err != nil {
		c.Log.Error("backendClient.do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, path)
	}
	return nil
}

// sign attaches the session's bearer token, when the request context carries a session.
func (c *backendClient) sign(ctx context.Context, req *http.Request) {
	tokenSource, ok := ctx.Value(constvars.CONTEXT_SESSION_STORE_KEY).(contracts.TokenSource)
	if !ok || tokenSource == nil {
		return
	}

	tokenType, token := tokenSource.AccessToken(ctx)
	if token == "" {
		return
	}
	if tokenType == "" || strings.EqualFold(tokenType, constvars.DefaultTokenType) {
		tokenType = constvars.DefaultTokenType
	}
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf("%s %s", tokenType, token))
}

// invalidate drops the persisted access token. Navigation is left to the caller.
func (c *backendClient) invalidate(ctx context.Context, requestID string) {
	tokenSource, ok := ctx.Value(constvars.CONTEXT_SESSION_STORE_KEY).(contracts.TokenSource)
	if !ok || tokenSource == nil {
		return
	}

	err := tokenSource.InvalidateToken(ctx)
	if err != nil {
		c.Log.Error("backendClient.invalidate error clearing access token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	c.Log.Info("backendClient.invalidate access token cleared after 401",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
}

func encodeBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return payload, nil
}

// extractDetail reads FastAPI style error bodies: {"detail": "..."} or
// {"detail": [{"msg": "..."}]}.
func extractDetail(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	detail := gjson.GetBytes(body, "detail")
	if detail.IsArray() {
		return detail.Get("0.msg").String()
	}
	if detail.Exists() {
		return detail.String()
	}
	return gjson.GetBytes(body, "message").String()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

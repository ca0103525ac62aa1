package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coordinator-console/internal/notify"
	"coordinator-console/internal/observability"
)

var (
	// ErrMissingToken is returned before any request is sent when the caller has no session token.
	ErrMissingToken = errors.New("missing session token")
	// ErrUnexpectedResponse is returned when a 2xx body does not match the endpoint schema.
	ErrUnexpectedResponse = errors.New("unexpected backend response")
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// APIError is a non-2xx answer from the coordination API.
type APIError struct {
	StatusCode int
	Message    string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s returned %d: %s", e.Path, e.StatusCode, e.Message)
}

// Client talks to the remote coordination API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a backend client with the given per-call timeout.
func NewClient(baseURL string, timeout time.Duration, logger *observability.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Login exchanges credentials for a bearer token. It is the only unauthenticated call.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", nil, "", false, LoginRequest{Email: email, Password: password}, &resp)
	return resp, err
}

func (c *Client) ListBrands(ctx context.Context, token string) ([]Brand, error) {
	var resp listBrandsResponse
	if err := c.do(ctx, http.MethodGet, "/get-all-brands", nil, token, true, nil, &resp); err != nil {
		return nil, err
	}
	return *resp.Brands, nil
}

func (c *Client) CreateBrand(ctx context.Context, token string, req CreateBrandRequest) (int64, error) {
	var resp createBrandResponse
	if err := c.do(ctx, http.MethodPost, "/create-brand", nil, token, true, req, &resp); err != nil {
		return 0, err
	}
	return resp.id(), nil
}

func (c *Client) UpdateBrand(ctx context.Context, token string, req UpdateBrandRequest) error {
	return c.do(ctx, http.MethodPut, "/brands/updateBrand", nil, token, true, req, nil)
}

func (c *Client) UploadBrandLogo(ctx context.Context, token string, req UploadLogoRequest) (string, error) {
	var resp uploadLogoResponse
	if err := c.do(ctx, http.MethodPost, "/brands/uploadBrandLogo", nil, token, true, req, &resp); err != nil {
		return "", err
	}
	return resp.LogoURL, nil
}

func (c *Client) AssignAdmins(ctx context.Context, token string, brandID int64, adminIDs []int64) error {
	query := url.Values{"brand_id": {strconv.FormatInt(brandID, 10)}}
	body := map[string][]int64{"admin_ids": adminIDs}
	return c.do(ctx, http.MethodPost, "/brands/assign-multiple-admins", query, token, true, body, nil)
}

func (c *Client) ListCampaigns(ctx context.Context, token string) ([]Campaign, error) {
	var resp listCampaignsResponse
	if err := c.do(ctx, http.MethodGet, "/get-all-campaigns", nil, token, true, nil, &resp); err != nil {
		return nil, err
	}
	return *resp.Campaigns, nil
}

func (c *Client) GetCampaign(ctx context.Context, token string, campaignID int64) (Campaign, error) {
	var resp getCampaignResponse
	query := url.Values{"campaign_id": {strconv.FormatInt(campaignID, 10)}}
	if err := c.do(ctx, http.MethodGet, "/campaign/getById", query, token, true, nil, &resp); err != nil {
		return Campaign{}, err
	}
	return *resp.Campaign, nil
}

func (c *Client) CreateCampaign(ctx context.Context, token string, req CreateCampaignRequest) error {
	if req.NurseIDs == nil {
		req.NurseIDs = []int64{}
	}
	return c.do(ctx, http.MethodPost, "/create-campaign", nil, token, true, req, nil)
}

func (c *Client) UpdateCampaign(ctx context.Context, token string, req UpdateCampaignRequest) error {
	return c.do(ctx, http.MethodPut, "/campaign/update", nil, token, true, req, nil)
}

func (c *Client) AssignNurses(ctx context.Context, token string, campaignID, brandID int64, nurseIDs []int64) error {
	query := url.Values{
		"campaign_id": {strconv.FormatInt(campaignID, 10)},
		"brand_id":    {strconv.FormatInt(brandID, 10)},
	}
	body := map[string][]int64{"nurse_ids": nurseIDs}
	return c.do(ctx, http.MethodPost, "/campaign/assign-multiple-nurses", query, token, true, body, nil)
}

func (c *Client) RevokeNurses(ctx context.Context, token string, req RevokeNursesRequest) error {
	return c.do(ctx, http.MethodPatch, "/nurse/revoke", nil, token, true, req, nil)
}

func (c *Client) ListNurses(ctx context.Context, token string) ([]User, error) {
	var resp listNursesResponse
	if err := c.do(ctx, http.MethodGet, "/nurse/getAll", nil, token, true, nil, &resp); err != nil {
		return nil, err
	}
	return *resp.Nurses, nil
}

func (c *Client) ListAdmins(ctx context.Context, token string) ([]User, error) {
	var resp listAdminsResponse
	if err := c.do(ctx, http.MethodGet, "/get-all-admins", nil, token, true, nil, &resp); err != nil {
		return nil, err
	}
	return *resp.Admins, nil
}

// CreateUser creates an admin or a nurse.
func (c *Client) CreateUser(ctx context.Context, token string, role UserRole, req CreateUserRequest) error {
	var path string
	switch role {
	case UserRoleAdmin:
		path = "/create-admin"
	case UserRoleNurse:
		path = "/create-nurse"
	default:
		return fmt.Errorf("cannot create user with role %q", role)
	}
	return c.do(ctx, http.MethodPost, path, nil, token, true, req, nil)
}

// GenerateVCF asks the backend to materialise a contact card and returns its shareable URL.
func (c *Client) GenerateVCF(ctx context.Context, token string, campaignID int64, req GenerateVCFRequest) (string, error) {
	var resp generateVCFResponse
	query := url.Values{"campaign_id": {strconv.FormatInt(campaignID, 10)}}
	if err := c.do(ctx, http.MethodPost, "/vcf/generate", query, token, true, req, &resp); err != nil {
		return "", err
	}
	return resp.FileURL, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, auth bool, body any, out shape) error {
	if auth && token == "" {
		return ErrMissingToken
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "backend_method", Value: method},
		observability.Field{Key: "backend_path", Value: path},
	)

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "backend request failed", err)
		return fmt.Errorf("backend %s unreachable: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw), Path: path}
		c.logger.Error(ctx, "backend returned an error", apiErr)
		return apiErr
	}
	c.logger.Debug(ctx, "backend request succeeded")

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error(ctx, "failed to decode backend response", err)
		return fmt.Errorf("%w: %s: %v", ErrUnexpectedResponse, path, err)
	}
	if err := out.validate(); err != nil {
		c.logger.Error(ctx, "backend response failed validation", err)
		return err
	}
	return nil
}

// errorMessage extracts a human message from a failed response body.
func errorMessage(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return notify.GenericFailure
	}
	for _, candidate := range []json.RawMessage{body.Message, body.Error} {
		var s string
		if len(candidate) > 0 && json.Unmarshal(candidate, &s) == nil && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return notify.GenericFailure
}

// Message returns the message worth showing to a user for err.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return notify.GenericFailure
}

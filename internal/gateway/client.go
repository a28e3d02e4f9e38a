// Package gateway is the typed client for the remote platform backend.
// Pure request/response: no retries, no business logic; failures propagate
// to the caller as discriminated errors (see errors.go).
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"talentbridge-engine/internal/domain"
	"talentbridge-engine/internal/netutil"
)

type Config struct {
	BaseURL string
	Timeout time.Duration

	// Token, when non-nil, supplies the bearer token for each request.
	// A lookup failure means "no token"; the backend decides whether
	// anonymous access is acceptable.
	Token func() (string, error)
}

type Client struct {
	base    *url.URL
	hc      *http.Client
	limiter *netutil.HostLimiter
	token   func() (string, error)
}

func New(cfg Config, limiter *netutil.HostLimiter) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		base:    base,
		hc:      &http.Client{Timeout: timeout},
		limiter: limiter,
		token:   cfg.Token,
	}, nil
}

// FetchCompanyProfile resolves the company profile behind an opaque company id.
func (c *Client) FetchCompanyProfile(ctx context.Context, companyID string) (*domain.CompanyProfile, error) {
	var out domain.CompanyProfile
	err := c.getJSON(ctx, "/getCompanyProfile", url.Values{"companyId": {companyID}}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchJobApplications lists every application submitted against the
// company's postings. The backend wraps the list in a data envelope.
func (c *Client) FetchJobApplications(ctx context.Context, companyID string) ([]domain.JobApplication, error) {
	var out struct {
		Data []domain.JobApplication `json:"data"`
	}
	err := c.getJSON(ctx, "/getJobApplications", url.Values{"companyId": {companyID}}, &out)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) FetchStudentProfile(ctx context.Context, studentID string) (*domain.StudentProfile, error) {
	var out domain.StudentProfile
	err := c.getJSON(ctx, "/getStudentInfoById", url.Values{"studentId": {studentID}}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitInvite posts a composed invite. A payload-level refusal comes back as
// InviteResult{Success: false} with a nil error; only transport/status
// problems are errors.
func (c *Client) SubmitInvite(ctx context.Context, payload domain.InvitePayload) (*domain.InviteResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode invite")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/createInvite", nil)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "application/json")

	var out domain.InviteResult
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register proxies the registration boundary: it forwards the form to the
// backend and relays the server-provided outcome.
func (c *Client) Register(ctx context.Context, email, password, universityName string) error {
	body, err := json.Marshal(map[string]string{
		"email":          email,
		"password":       password,
		"universityName": universityName,
	})
	if err != nil {
		return errors.Wrap(err, "encode registration")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/Uregister", nil)
	if err != nil {
		return err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

func (c *Client) newRequest(ctx context.Context, method, path string, q url.Values) (*http.Request, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if q != nil {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", "TalentBridge/1.0 (+local)")
	if c.token != nil {
		if tok, err := c.token(); err == nil && tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, q)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.WaitHost(req.Context(), req.URL.Host); err != nil {
			return errors.Wrap(err, "rate limit wait")
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return errors.Wrapf(err, "backend %s %s", req.Method, req.URL.Path)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &RemoteError{Status: res.StatusCode, Message: readMessage(res.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s response", req.URL.Path)
	}
	return nil
}

// readMessage pulls a {"message": ...} body out of an error response when the
// backend sent one; anything else yields an empty message.
func readMessage(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &body) == nil && body.Message != "" {
		return body.Message
	}
	return ""
}

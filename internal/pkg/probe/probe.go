package probe

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/imroc/req/v3"
)

// Result is the outcome of a single probe against a candidate URL.
type Result struct {
	URL    string
	Alive  bool
	Status int
	Err    string
}

// Prober issues one HTTP GET per candidate and classifies the outcome.
// Every network-level failure is non-fatal; the candidate is simply dropped.
type Prober struct {
	client *req.Client
	nextUA func() string
}

// NewProber creates a prober with the given per-request timeout. userAgent
// is called once per probe so the caller can rotate agents.
func NewProber(timeout time.Duration, userAgent func() string) *Prober {
	client := req.C().
		SetTimeout(timeout).
		EnableInsecureSkipVerify()

	return &Prober{
		client: client,
		nextUA: userAgent,
	}
}

// SetProxyURL routes all probes through the given HTTP proxy.
func (p *Prober) SetProxyURL(proxyURL string) error {
	if _, err := url.Parse(proxyURL); err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}
	p.client.SetProxyURL(proxyURL)
	return nil
}

// SetDialContext replaces the dialer used for outgoing connections, e.g. to
// send probes through a userspace WireGuard tunnel.
func (p *Prober) SetDialContext(dialContext func(ctx context.Context, network, addr string) (net.Conn, error)) {
	p.client.DialContext = dialContext
}

// Check probes a single URL. A candidate is alive when the request completes
// with status 200 and the body does not look like a parked domain page.
func (p *Prober) Check(ctx context.Context, url string) Result {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", p.nextUA()).
		Get(url)
	if err != nil {
		return Result{URL: url, Err: err.Error()}
	}

	if resp.StatusCode != 200 {
		return Result{URL: url, Status: resp.StatusCode}
	}

	if IsParked(resp.String()) {
		return Result{URL: url, Status: resp.StatusCode, Err: "parked domain page"}
	}

	return Result{URL: url, Alive: true, Status: resp.StatusCode}
}

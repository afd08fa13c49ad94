package moralis

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	"github.com/x-xyz/warplet/base/backoff"
	bCtx "github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/log"
)

const (
	apiKeyHeader = "X-API-Key"
	v2Api        = "https://deep-index.moralis.io/api/v2.2"
	maxBodySize  = 32 << 20
	retryStart   = 200 * time.Millisecond
	retryLimit   = 2 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewClient(cfg *ClientCfg) Client {
	base := cfg.BaseUrl
	if base == "" {
		base = v2Api
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		apikey:  cfg.Apikey,
		baseUrl: base,
		limiter: limiter,
		retries: cfg.Retries,
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	apikey  string
	baseUrl string
	limiter *rate.Limiter
	retries int
}

func (c *client) GetCollectionsByOwner(ctx bCtx.Ctx, owner string, chain string, cursor string) (*CollectionsResp, error) {
	params := url.Values{}
	params.Set("chain", chain)
	params.Set("exclude_spam", "true")
	params.Set("token_counts", "true")
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	u := fmt.Sprintf("%s/%s/nft/collections?%s", c.baseUrl, url.PathEscape(owner), params.Encode())

	data, err := c.get(ctx, u)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &CollectionsResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) GetNftsByOwner(ctx bCtx.Ctx, owner string, chain string, contract string, cursor string) (*NftsResp, error) {
	params := url.Values{}
	params.Set("chain", chain)
	params.Set("exclude_spam", "true")
	params.Set("normalizeMetadata", "true")
	params.Set("media_items", "true")
	if contract != "" {
		params.Set("token_addresses", contract)
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	u := fmt.Sprintf("%s/%s/nft?%s", c.baseUrl, url.PathEscape(owner), params.Encode())

	data, err := c.get(ctx, u)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &NftsResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

// get retries a rate limited request with backoff, other failures return at once
func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	var (
		body    []byte
		lastErr error
	)
	b := backoff.NewExponential(retryStart, retryLimit)
	err := backoff.Retry(ctx, b, c.retries+1, func(attempt int) error {
		if err := c.limiter.Wait(ctx); err != nil {
			lastErr = err
			return backoff.ErrStop
		}
		data, err := c.do(ctx, url)
		if err == ErrRateLimited {
			ctx.WithField("url", url).WithField("attempt", attempt).Warn("rate limited")
			lastErr = err
			return err
		} else if err != nil {
			lastErr = err
			return backoff.ErrStop
		}
		body = data
		return nil
	})
	if err != nil {
		return nil, lastErr
	}
	return body, nil
}

func (c *client) do(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set(apiKeyHeader, c.apikey)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}

package web3bio

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	bCtx "github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/log"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/identity"
)

const (
	defaultApi  = "https://api.web3.bio"
	maxBodySize = 1 << 20
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// BaseUrl defaults to the public web3.bio api
	BaseUrl string
}

type client struct {
	client  http.Client
	timeout time.Duration
	baseUrl string
}

// NewClient returns a farcaster profile lookup backed by web3.bio
func NewClient(cfg *ClientCfg) identity.ProfileRepo {
	base := cfg.BaseUrl
	if base == "" {
		base = defaultApi
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		baseUrl: base,
	}
}

func (c *client) GetByFid(ctx bCtx.Ctx, fid uint64) ([]byte, error) {
	return c.getProfile(ctx, strconv.FormatUint(fid, 10))
}

func (c *client) GetByUsername(ctx bCtx.Ctx, username string) ([]byte, error) {
	return c.getProfile(ctx, username)
}

func (c *client) getProfile(ctx bCtx.Ctx, id string) ([]byte, error) {
	u := fmt.Sprintf("%s/profile/farcaster/%s", c.baseUrl, url.PathEscape(id))

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Warn("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ctx.WithFields(log.Fields{
			"url":        u,
			"statusCode": resp.StatusCode,
		}).Warn("unexpected status code")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}

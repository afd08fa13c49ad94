package repository

import (
	"io"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/log"
	"golang.org/x/xerrors"
)

// maxBodySize caps what a single metadata or media read may load
const maxBodySize = 16 << 20

var ErrStatusCodeNotOk = xerrors.New("resp.StatusCode != 200")

func fetch(c bCtx.Ctx, client http.Client, timeout time.Duration, url string, headers map[string]string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		ctx.WithField("url", url).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Warn("resp.StatusCode != 200")
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

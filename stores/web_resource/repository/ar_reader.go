package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain"
	"golang.org/x/xerrors"
)

const arUriSchema = "ar://"

type arReaderRepo struct {
	client     http.Client
	gateway    string
	ctxTimeout time.Duration
	headers    map[string]string
}

// NewArReaderRepo reads ar:// uris through gateway, e.g. https://arweave.net.
// An empty gateway means domain.DefaultArweaveGateway.
func NewArReaderRepo(client http.Client, gateway string, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	if gateway == "" {
		gateway = domain.DefaultArweaveGateway
	}
	return &arReaderRepo{
		client:     client,
		gateway:    strings.TrimSuffix(gateway, "/"),
		ctxTimeout: timeout,
		headers:    headers,
	}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	if !strings.HasPrefix(url, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri")
	}
	url = r.gateway + "/" + strings.TrimPrefix(url, arUriSchema)
	return fetch(c, r.client, r.ctxTimeout, url, r.headers)
}

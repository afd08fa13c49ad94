package usecase

import (
	"net/url"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"

	bCtx "github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/log"
	"github.com/x-xyz/warplet/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultIpfsGateway    = domain.DefaultIpfsGateway
	DefaultArweaveGateway = domain.DefaultArweaveGateway

	ipfsPrefix = "ipfs://"
	arPrefix   = "ar://"
)

type WebResourceUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	ArUriReader   domain.WebResourceReaderRepository
	// gateways NormalizeUrl rewrites to, defaults apply when empty
	IpfsGateway    string
	ArweaveGateway string
}

type webResourceUseCase struct {
	httpReader     domain.WebResourceReaderRepository
	ipfsReader     domain.WebResourceReaderRepository
	dataUriReader  domain.WebResourceReaderRepository
	arUriReader    domain.WebResourceReaderRepository
	ipfsGateway    string
	arweaveGateway string
}

func withSlash(s, def string) string {
	if s == "" {
		s = def
	}
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:     cfg.HttpReader,
		ipfsReader:     cfg.IpfsReader,
		dataUriReader:  cfg.DataUriReader,
		arUriReader:    cfg.ArUriReader,
		ipfsGateway:    withSlash(cfg.IpfsGateway, DefaultIpfsGateway),
		arweaveGateway: withSlash(cfg.ArweaveGateway, DefaultArweaveGateway),
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl, true)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl, true)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Warn("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

// NormalizeUrl rewrites ipfs:// and ar:// to their http gateways and leaves
// every other url untouched
func (u *webResourceUseCase) NormalizeUrl(rawUrl string) string {
	switch {
	case strings.HasPrefix(rawUrl, ipfsPrefix):
		return u.ipfsGateway + ipfsPath(rawUrl)
	case strings.HasPrefix(rawUrl, arPrefix):
		return u.arweaveGateway + strings.TrimPrefix(rawUrl, arPrefix)
	}
	return rawUrl
}

func ipfsPath(rawUrl string) string {
	p := strings.TrimPrefix(rawUrl, ipfsPrefix)
	return strings.TrimPrefix(p, "ipfs/") // early foundation's metadata bug
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string, fallback bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("failed to parse url")
		return nil, err
	}

	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		data, err = u.ipfsReader.Get(c, ipfsPath(rawUrl))
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	case "ar":
		data, err = u.arUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err == nil {
		return data, nil
	}

	if fallback && pUrl.Scheme == "https" {
		ipfsUrl := getIpfsUrl(rawUrl)
		if len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl, false)
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Warn("failed to fetch")
	return nil, err
}

var (
	gatewayPrefixes = []string{
		"https://gateway.pinata.cloud/ipfs/",
		"https://ipfs.io/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
		"https://nftstorage.link/ipfs/",
	}
	dedicatedPinataRegex = regexp.MustCompile(`^https://[^/]+\.mypinata\.cloud/ipfs/`)
)

// getIpfsUrl maps a well known public gateway url back to ipfs://
func getIpfsUrl(url string) string {
	for _, p := range gatewayPrefixes {
		if strings.HasPrefix(url, p) {
			return strings.Replace(url, p, ipfsPrefix, 1)
		}
	}
	if dedicatedPinataRegex.MatchString(url) {
		return dedicatedPinataRegex.ReplaceAllLiteralString(url, ipfsPrefix)
	}
	return ""
}

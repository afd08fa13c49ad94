package repository

import (
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/log"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/chain"
	"github.com/x-xyz/warplet/domain/collection"
	"github.com/x-xyz/warplet/domain/holding"
	"github.com/x-xyz/warplet/domain/nftitem"
	"github.com/x-xyz/warplet/service/moralis"
)

const defaultMaxPages = 1

type Cfg struct {
	Client moralis.Client
	// WebResource rewrites ipfs:// and ar:// image urls
	WebResource domain.WebResourceUseCase
	// MaxPages bounds how many indexer pages one lookup follows
	MaxPages int
}

type moralisRepo struct {
	client   moralis.Client
	urls     domain.WebResourceUseCase
	maxPages int
}

// NewMoralisRepo reads holdings from the Moralis deep index
func NewMoralisRepo(cfg *Cfg) holding.IndexerRepo {
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &moralisRepo{
		client:   cfg.Client,
		urls:     cfg.WebResource,
		maxPages: maxPages,
	}
}

func (r *moralisRepo) GetCollections(c ctx.Ctx, owner domain.Address, ch chain.Chain) ([]collection.Summary, error) {
	res := []collection.Summary{}
	cursor := ""
	for page := 0; page < r.maxPages; page++ {
		resp, err := r.client.GetCollectionsByOwner(c, owner.ToLowerStr(), ch.MoralisCode(), cursor)
		if err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"owner": owner,
				"chain": ch,
				"page":  page,
			}).Error("client.GetCollectionsByOwner failed")
			return nil, xerrors.Errorf("%w: %v", domain.ErrUpstream, err)
		}
		for _, rec := range resp.Result {
			if s, ok := r.toSummary(ch, rec); ok {
				res = append(res, s)
			}
		}
		if cursor = resp.Cursor; cursor == "" {
			break
		}
	}
	return res, nil
}

func (r *moralisRepo) GetTokens(c ctx.Ctx, owner domain.Address, ch chain.Chain, contract domain.Address) ([]nftitem.NftItem, error) {
	res := []nftitem.NftItem{}
	cursor := ""
	for page := 0; page < r.maxPages; page++ {
		resp, err := r.client.GetNftsByOwner(c, owner.ToLowerStr(), ch.MoralisCode(), contract.ToLowerStr(), cursor)
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"owner":    owner,
				"chain":    ch,
				"contract": contract,
				"page":     page,
			}).Error("client.GetNftsByOwner failed")
			return nil, xerrors.Errorf("%w: %v", domain.ErrUpstream, err)
		}
		for _, rec := range resp.Result {
			if item, ok := r.toItem(c, ch, contract, rec); ok {
				res = append(res, item)
			}
		}
		if cursor = resp.Cursor; cursor == "" {
			break
		}
	}
	return res, nil
}

func (r *moralisRepo) toSummary(ch chain.Chain, rec moralis.CollectionRecord) (collection.Summary, bool) {
	contract := domain.Address(strings.TrimSpace(rec.TokenAddress)).ToLower()
	if contract.IsEmpty() {
		return collection.Summary{}, false
	}
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = collection.UntitledName
	}
	return collection.Summary{
		Chain:           ch,
		ContractAddress: contract,
		Name:            name,
		Symbol:          rec.Symbol,
		TokenCount:      rec.Held(),
		Image:           r.normalize(rec.LogoUrl()),
	}, true
}

func (r *moralisRepo) toItem(c ctx.Ctx, ch chain.Chain, contract domain.Address, rec moralis.NftRecord) (nftitem.NftItem, bool) {
	tokenId := domain.TokenId(strings.TrimSpace(string(rec.TokenId)))
	if tokenId == "" {
		return nftitem.NftItem{}, false
	}

	addr := domain.Address(strings.TrimSpace(rec.TokenAddress)).ToLower()
	if addr.IsEmpty() {
		addr = contract.ToLower()
	}

	meta := parseMeta(c, rec.Metadata)
	normalized := parseMeta(c, rec.NormalizedMetadata)
	media := nftitem.Metadata{}
	if m := parseMeta(c, rec.Media); len(m) > 0 {
		media["media"] = map[string]interface{}(m)
	}

	image := nftitem.FirstMatch(meta, nftitem.ImageRules)
	if image == "" {
		image = nftitem.FirstMatch(normalized, nftitem.ImageRules)
	}
	if image == "" {
		image = nftitem.FirstMatch(media, nftitem.MediaRules)
	}

	name := meta.Name()
	if name == "" {
		name = normalized.Name()
	}
	if name == "" {
		name = strings.TrimSpace(rec.Name)
	}

	standard := domain.NormalizeTokenStandard(rec.ContractType)
	if standard == "" {
		standard = domain.TokenStandard(rec.ContractType)
	}

	return nftitem.NftItem{
		Chain:           ch,
		ContractAddress: addr,
		TokenId:         tokenId,
		Name:            name,
		Image:           r.normalize(image),
		TokenStandard:   standard,
		Amount:          string(rec.Amount),
		TokenUri:        strings.TrimSpace(rec.TokenUri),
		OpenseaUrl:      nftitem.OpenseaUrl(ch, addr, tokenId),
	}, true
}

func (r *moralisRepo) normalize(url string) string {
	if url == "" || r.urls == nil {
		return url
	}
	return r.urls.NormalizeUrl(url)
}

// parseMeta tolerates absent and malformed documents
func parseMeta(c ctx.Ctx, raw []byte) nftitem.Metadata {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" || s == `""` {
		return nftitem.Metadata{}
	}
	m, err := nftitem.ParseMetadata(raw)
	if err != nil {
		c.WithField("err", err).Debug("ParseMetadata failed")
		return nftitem.Metadata{}
	}
	return m
}

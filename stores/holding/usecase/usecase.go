package usecase

import (
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/base/log"
	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/chain"
	"github.com/x-xyz/warplet/domain/collection"
	"github.com/x-xyz/warplet/domain/holding"
	"github.com/x-xyz/warplet/domain/keys"
	"github.com/x-xyz/warplet/domain/nftitem"
	"github.com/x-xyz/warplet/service/cache"
)

const defaultEnrichWorkers = 5

type Cfg struct {
	Indexer     holding.IndexerRepo
	WebResource domain.WebResourceUseCase
	// Cache holds indexer answers, a short ttl keeps lists fresh enough
	Cache cache.Service
	// EnrichWorkers bounds concurrent token uri fetches of one request
	EnrichWorkers int
}

type impl struct {
	indexer       holding.IndexerRepo
	webResource   domain.WebResourceUseCase
	cache         cache.Service
	enrichWorkers int
}

func New(cfg *Cfg) holding.UseCase {
	workers := cfg.EnrichWorkers
	if workers <= 0 {
		workers = defaultEnrichWorkers
	}
	return &impl{
		indexer:       cfg.Indexer,
		webResource:   cfg.WebResource,
		cache:         cfg.Cache,
		enrichWorkers: workers,
	}
}

func (im *impl) GetCollections(c ctx.Ctx, owner domain.Address, ch chain.Chain) ([]collection.Summary, error) {
	if !owner.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	owner = owner.ToLower()

	res := []collection.Summary{}
	key := keys.HoldingKey(keys.PfxCollections, owner.ToLowerStr(), ch.String())
	err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		list, err := im.indexer.GetCollections(c, owner, ch)
		if err != nil {
			return nil, err
		}
		return &list, nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
			"chain": ch,
		}).Error("cache.GetByFunc failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetTokens(c ctx.Ctx, owner domain.Address, ch chain.Chain, contract domain.Address) ([]nftitem.NftItem, error) {
	if !owner.IsValid() || !contract.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	owner = owner.ToLower()
	contract = contract.ToLower()

	res := []nftitem.NftItem{}
	key := keys.HoldingKey(keys.PfxTokens, owner.ToLowerStr(), ch.String(), contract.ToLowerStr())
	err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		items, err := im.indexer.GetTokens(c, owner, ch, contract)
		if err != nil {
			return nil, err
		}
		im.enrich(c, items)
		return &items, nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"chain":    ch,
			"contract": contract,
		}).Error("cache.GetByFunc failed")
		return nil, err
	}
	return res, nil
}

type chainResult struct {
	idx  int
	list []collection.Summary
}

func (im *impl) Aggregate(c ctx.Ctx, owner domain.Address, chains []chain.Chain) ([]collection.Summary, error) {
	if !owner.IsValid() {
		return nil, domain.ErrInvalidAddress
	}

	chains = dedupe(chains)
	if len(chains) == 0 {
		return []collection.Summary{}, nil
	}

	b := goroutines.NewBatch(len(chains), goroutines.WithBatchSize(len(chains)))
	defer b.Close()
	for i, ch := range chains {
		idx, ch := i, ch
		b.Queue(func() (interface{}, error) {
			list, err := im.GetCollections(c, owner, ch)
			if err != nil {
				// a failing chain contributes nothing
				c.WithFields(log.Fields{
					"err":   err,
					"owner": owner,
					"chain": ch,
				}).Warn("GetCollections failed, chain skipped")
				list = nil
			}
			return chainResult{idx, list}, nil
		})
	}
	b.QueueComplete()

	// merge in chain order, not completion order
	lists := make([][]collection.Summary, len(chains))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("aggregate error result")
			continue
		}
		r := ret.Value().(chainResult)
		lists[r.idx] = r.list
	}

	merged := collection.Merge(lists...)
	collection.SortByTokenCount(merged)
	return merged, nil
}

func dedupe(chains []chain.Chain) []chain.Chain {
	seen := map[chain.Chain]bool{}
	res := []chain.Chain{}
	for _, ch := range chains {
		if ch == "" || seen[ch] {
			continue
		}
		seen[ch] = true
		res = append(res, ch)
	}
	return res
}

package usecase

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain/nftitem"
)

type enriched struct {
	idx   int
	image string
}

// enrich fills missing images from token uris in place. Failures leave the
// item untouched.
func (im *impl) enrich(c ctx.Ctx, items []nftitem.NftItem) {
	todo := []int{}
	for i, item := range items {
		if item.Image == "" && item.TokenUri != "" {
			todo = append(todo, i)
		}
	}
	if len(todo) == 0 || im.webResource == nil {
		return
	}

	b := goroutines.NewBatch(im.enrichWorkers, goroutines.WithBatchSize(len(todo)))
	defer b.Close()
	for _, i := range todo {
		idx, uri := i, items[i].TokenUri
		b.Queue(func() (interface{}, error) {
			return enriched{idx, im.imageFromUri(c, uri)}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			continue
		}
		e := ret.Value().(enriched)
		if e.image != "" {
			items[e.idx].Image = e.image
		}
	}
}

// imageFromUri reads a token uri. An image document is its own image,
// otherwise the image or animation field of the metadata is used.
func (im *impl) imageFromUri(c ctx.Ctx, uri string) string {
	data, err := im.webResource.Get(c, uri)
	if err != nil {
		c.WithField("err", err).WithField("uri", uri).Debug("webResource.Get failed")
		return ""
	}

	if mtype := mimetype.Detect(data); strings.HasPrefix(mtype.String(), "image/") {
		return im.webResource.NormalizeUrl(uri)
	}

	meta, err := nftitem.ParseMetadata(data)
	if err != nil {
		c.WithField("err", err).WithField("uri", uri).Debug("ParseMetadata failed")
		return ""
	}
	image := nftitem.FirstMatch(meta, nftitem.ImageRules, nftitem.AnimationRules)
	if image == "" {
		return ""
	}
	return im.webResource.NormalizeUrl(image)
}

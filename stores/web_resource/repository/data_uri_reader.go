package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/x-xyz/warplet/base/ctx"
	"github.com/x-xyz/warplet/domain"
	"golang.org/x/xerrors"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct {
}

func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("invalid data uri")
	}
	// data:[<mediatype>][;base64],<data>
	parts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(parts) < 2 || len(parts[1]) == 0 {
		return nil, xerrors.Errorf("no data part provided")
	}

	if strings.HasSuffix(parts[0], ";base64") {
		if data, err := base64.StdEncoding.DecodeString(parts[1]); err == nil {
			return data, nil
		}
		// some contracts drop the padding
		return base64.RawStdEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	}

	// plain text, percent-encoded when it came from an url
	if data, err := url.PathUnescape(parts[1]); err == nil {
		return []byte(data), nil
	}
	return []byte(parts[1]), nil
}

package moralis

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	bCtx "github.com/x-xyz/warplet/base/ctx"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrRateLimited     = errors.New("moralis rate limited")
)

type Client interface {
	// GetCollectionsByOwner lists one page of the collections owner holds
	GetCollectionsByOwner(ctx bCtx.Ctx, owner string, chain string, cursor string) (*CollectionsResp, error)
	// GetNftsByOwner lists one page of the tokens owner holds, filtered by contract when not empty
	GetNftsByOwner(ctx bCtx.Ctx, owner string, chain string, contract string, cursor string) (*NftsResp, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	// BaseUrl defaults to the public deep index api
	BaseUrl string
	// RateLimit is requests per second, zero disables limiting
	RateLimit float64
	Burst     int
	// Retries on 429, zero means no retry
	Retries int
}

type CollectionsResp struct {
	Cursor string             `json:"cursor"`
	Page   int                `json:"page"`
	Result []CollectionRecord `json:"result"`
}

type CollectionRecord struct {
	TokenAddress   string  `json:"token_address"`
	ContractType   string  `json:"contract_type"`
	Name           string  `json:"name"`
	Symbol         string  `json:"symbol"`
	TokenCount     FlexInt `json:"token_count"`
	Amount         FlexInt `json:"amount"`
	Count          FlexInt `json:"count"`
	CollectionLogo string  `json:"collection_logo"`
	Logo           string  `json:"logo"`
	Image          string  `json:"image"`
	PossibleSpam   bool    `json:"possible_spam"`
}

// Held returns the first count field the record carries
func (r CollectionRecord) Held() int64 {
	for _, n := range []FlexInt{r.TokenCount, r.Amount, r.Count} {
		if n.Valid {
			return n.Value
		}
	}
	return 0
}

// LogoUrl returns the first non-empty image field
func (r CollectionRecord) LogoUrl() string {
	for _, s := range []string{r.CollectionLogo, r.Logo, r.Image} {
		if s != "" {
			return s
		}
	}
	return ""
}

type NftsResp struct {
	Cursor string      `json:"cursor"`
	Page   int         `json:"page"`
	Result []NftRecord `json:"result"`
}

type NftRecord struct {
	TokenAddress string   `json:"token_address"`
	TokenId      FlexText `json:"token_id"`
	Amount       FlexText `json:"amount"`
	ContractType string   `json:"contract_type"`
	Name         string   `json:"name"`
	Symbol       string   `json:"symbol"`
	TokenUri     string   `json:"token_uri"`
	// Metadata is usually a JSON string holding the document
	Metadata           jsoniter.RawMessage `json:"metadata"`
	NormalizedMetadata jsoniter.RawMessage `json:"normalized_metadata"`
	Media              jsoniter.RawMessage `json:"media"`
}

// FlexInt decodes a count sent either as a number or a numeric string
type FlexInt struct {
	Value int64
	Valid bool
}

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = FlexInt{}
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// counts above int64 never happen in practice, treat as absent
		*n = FlexInt{}
		return nil
	}
	*n = FlexInt{Value: v, Valid: true}
	return nil
}

// FlexText decodes a value sent either as a string or a number into text
type FlexText string

func (t *FlexText) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*t = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*t = FlexText(v)
		return nil
	}
	*t = FlexText(s)
	return nil
}

package nftitem

import (
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/x-xyz/warplet/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Metadata is the subset of a token metadata document we read
type Metadata map[string]interface{}

// ParseMetadata decodes a metadata document, a JSON string holding a document
// is unwrapped once
func ParseMetadata(data []byte) (Metadata, error) {
	meta := Metadata{}
	if err := json.Unmarshal(data, &meta); err == nil {
		return meta, nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	if err := json.Unmarshal([]byte(s), &meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	return meta, nil
}

// ImageRule picks an image url out of a metadata document
type ImageRule func(Metadata) string

func fieldRule(path ...string) ImageRule {
	return func(m Metadata) string {
		var cur interface{} = map[string]interface{}(m)
		for _, p := range path {
			obj, ok := cur.(map[string]interface{})
			if !ok {
				return ""
			}
			cur = obj[p]
		}
		s, _ := cur.(string)
		return strings.TrimSpace(s)
	}
}

// ImageRules is the order in which image fields are tried
var ImageRules = []ImageRule{
	fieldRule("image"),
	fieldRule("image_url"),
	fieldRule("imageUrl"),
}

// AnimationRules are tried when none of ImageRules match
var AnimationRules = []ImageRule{
	fieldRule("animation_url"),
}

// MediaRules read the indexer's media block of a token record
var MediaRules = []ImageRule{
	fieldRule("media", "original_media_url"),
	fieldRule("media", "originalMediaUrl"),
}

// FirstMatch returns the first non-empty result of rules
func FirstMatch(m Metadata, rules ...[]ImageRule) string {
	for _, rs := range rules {
		for _, r := range rs {
			if v := r(m); v != "" {
				return v
			}
		}
	}
	return ""
}

// Name returns the name field of a metadata document
func (m Metadata) Name() string {
	return fieldRule("name")(m)
}

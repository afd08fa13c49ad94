package keys

import "strings"

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxCollections is used for prefixing per chain collection lists
	PfxCollections = "collections"
	// PfxTokens is used for prefixing per collection token lists
	PfxTokens = "tokens"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key, used as the metrics tag of a cache
// access so addresses never end up in a tag
func GetPrefix(key string) string {
	s := strings.SplitN(key, ":", 2)
	if len(s) > 1 {
		return s[0]
	}
	return ""
}

// HoldingKey builds the cache key of a holding lookup, address and contract
// are lowercased so mixed case queries share an entry
func HoldingKey(pfx, address, chain string, contract ...string) string {
	comps := []string{pfx, strings.ToLower(address), chain}
	for _, c := range contract {
		comps = append(comps, strings.ToLower(c))
	}
	return RedisKey(comps...)
}

package identity

import (
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/x-xyz/warplet/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExtractionRule returns the candidate addresses it finds in one profile
// record, in preference order
type ExtractionRule struct {
	Name    string
	Extract func(record map[string]interface{}) []string
}

func str(v interface{}) []string {
	if s, ok := v.(string); ok {
		return []string{s}
	}
	return nil
}

func path(record map[string]interface{}, keys ...string) interface{} {
	var cur interface{} = record
	for _, k := range keys {
		obj, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur = obj[k]
	}
	return cur
}

func fieldRule(keys ...string) ExtractionRule {
	return ExtractionRule{
		Name: strings.Join(keys, "."),
		Extract: func(record map[string]interface{}) []string {
			return str(path(record, keys...))
		},
	}
}

func listRule(key string, fields ...string) ExtractionRule {
	name := key + "[]"
	if len(fields) > 0 {
		name += "." + strings.Join(fields, ",")
	}
	return ExtractionRule{
		Name: name,
		Extract: func(record map[string]interface{}) []string {
			list, ok := record[key].([]interface{})
			if !ok {
				return nil
			}
			res := []string{}
			for _, elem := range list {
				if len(fields) == 0 {
					res = append(res, str(elem)...)
					continue
				}
				obj, ok := elem.(map[string]interface{})
				if !ok {
					continue
				}
				for _, f := range fields {
					res = append(res, str(obj[f])...)
				}
			}
			return res
		},
	}
}

// ExtractionRules is the order in which a profile record is searched
var ExtractionRules = []ExtractionRule{
	fieldRule("address"),
	fieldRule("owner"),
	fieldRule("links", "ethereum", "address"),
	fieldRule("links", "eth", "address"),
	listRule("addresses"),
	listRule("accounts", "address", "value"),
}

// nested records searched after the top level one
var nestedRecordKeys = []string{"profile", "identity"}

// ExtractAddress decodes a profile document and returns the first candidate
// that is a hex address, lowercased. A top-level array is treated as a list of
// records searched in order.
func ExtractAddress(data []byte) (domain.Address, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", domain.ErrInvalidJsonFormat
	}

	records := []map[string]interface{}{}
	switch v := doc.(type) {
	case map[string]interface{}:
		records = append(records, v)
	case []interface{}:
		for _, elem := range v {
			if r, ok := elem.(map[string]interface{}); ok {
				records = append(records, r)
			}
		}
	}

	for _, r := range records {
		if addr, ok := extractRecord(r); ok {
			return addr, nil
		}
	}
	return "", domain.ErrNotFound
}

func extractRecord(r map[string]interface{}) (domain.Address, bool) {
	for _, rule := range ExtractionRules {
		for _, cand := range rule.Extract(r) {
			if a := domain.Address(strings.TrimSpace(cand)); a.IsValid() {
				return a.ToLower(), true
			}
		}
	}
	for _, k := range nestedRecordKeys {
		if nested, ok := r[k].(map[string]interface{}); ok {
			if addr, ok := extractRecord(nested); ok {
				return addr, true
			}
		}
	}
	return "", false
}

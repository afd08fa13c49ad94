package identity

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/warplet/domain"
)

const (
	addrA = "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"
	addrB = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
)

type ExtractTestSuite struct {
	suite.Suite
}

func (s *ExtractTestSuite) TestRules() {
	tests := []struct {
		desc string
		doc  string
		exp  domain.Address
	}{
		{"address", `{"address":"0x939AE6A4C8DFDBB1F7085189574F0A938013952B"}`, addrA},
		{"owner", `{"owner":"` + addrB + `"}`, addrB},
		{"links.ethereum", `{"links":{"ethereum":{"address":"` + addrA + `"}}}`, addrA},
		{"links.eth", `{"links":{"eth":{"address":"` + addrB + `"}}}`, addrB},
		{"addresses", `{"addresses":["nope","` + addrA + `"]}`, addrA},
		{"accounts.address", `{"accounts":[{"address":"` + addrB + `"}]}`, addrB},
		{"accounts.value", `{"accounts":[{"platform":"x","value":"` + addrA + `"}]}`, addrA},
		{"nested profile", `{"profile":{"owner":"` + addrB + `"}}`, addrB},
		{"top level array", `[{"identity":"dwr"},{"address":"` + addrA + `"}]`, addrA},
	}
	for _, t := range tests {
		addr, err := ExtractAddress([]byte(t.doc))
		s.NoError(err, t.desc)
		s.Equal(t.exp, addr, t.desc)
	}
}

func (s *ExtractTestSuite) TestPrecedence() {
	// address outranks owner which outranks accounts
	doc := `{"accounts":[{"address":"` + addrA + `"}],"owner":"` + addrB + `","address":"invalid"}`
	addr, err := ExtractAddress([]byte(doc))
	s.NoError(err)
	s.Equal(domain.Address(addrB), addr)
}

func (s *ExtractTestSuite) TestNotFound() {
	for _, doc := range []string{
		`{}`,
		`{"address":"0x123"}`,
		`{"addresses":"` + addrA + `"}`,
		`[]`,
		`"` + addrA + `"`,
	} {
		_, err := ExtractAddress([]byte(doc))
		s.ErrorIs(err, domain.ErrNotFound, doc)
	}

	_, err := ExtractAddress([]byte(`<html>`))
	s.ErrorIs(err, domain.ErrInvalidJsonFormat)
}

func (s *ExtractTestSuite) TestRulesAreIndividuallyUsable() {
	s.Len(ExtractionRules, 6)
	s.Equal("address", ExtractionRules[0].Name)
	s.Equal([]string{addrA}, ExtractionRules[2].Extract(map[string]interface{}{
		"links": map[string]interface{}{"ethereum": map[string]interface{}{"address": addrA}},
	}))
	s.Nil(ExtractionRules[2].Extract(map[string]interface{}{"links": "flat"}))
}

func TestExtractTestSuite(t *testing.T) {
	suite.Run(t, new(ExtractTestSuite))
}

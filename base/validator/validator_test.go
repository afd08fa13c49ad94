package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - checksummed",
			address:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			expIsValid: true,
		},
		{
			desc:       "invalid address - bad checksum",
			address:    "0x5aAeb6053f3E94C9b9A09f33669435E7Ef1BeAed",
			expIsValid: false,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
		{
			desc:       "valid address - upper case",
			address:    "0x939AE6A4C8DFDBB1F7085189574F0A938013952B",
			expIsValid: true,
		},
		{
			desc:       "invalid address - no prefix",
			address:    "939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

type payload struct {
	Owner string `validate:"required,ethaddr"`
	Chain string `validate:"omitempty,chain"`
}

func (s *ValidatorTestSuite) TestCustomTags() {
	v := NewCustomValidator(New())

	s.NoError(v.Validate(&payload{Owner: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", Chain: "eth"}))
	s.Error(v.Validate(&payload{Owner: "0x5aAeb6053f3E94C9b9A09f33669435E7Ef1BeAed"}))
	s.NoError(v.Validate(&payload{Owner: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"}))
	s.Error(v.Validate(&payload{Owner: "vitalik.eth"}))
	s.Error(v.Validate(&payload{Owner: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", Chain: "solana"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/warplet/domain"
	"github.com/x-xyz/warplet/domain/chain"
)

// IsValidAddress returns is an address valid or not. Mixed case input must
// carry a correct EIP-55 checksum.
func IsValidAddress(address string) bool {
	if !domain.Address(address).IsValid() {
		return false
	}
	if strings.ToLower(address) == address || strings.ToUpper(address[2:]) == address[2:] {
		return true
	}
	return common.HexToAddress(address).Hex() == address
}

// New returns a validator with the custom tags registered
//
//	ethaddr: a 0x prefixed 40 hex digit address, mixed case must be checksummed
//	chain:   a supported chain name or alias
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("ethaddr", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("chain", func(fl validator.FieldLevel) bool {
		_, ok := chain.Parse(fl.Field().String())
		return ok
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

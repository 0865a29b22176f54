package services

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"go-storefront/internal/models"
)

// Symbolic validation codes for product submissions. The presentation layer
// maps them to user-facing text.
const (
	ErrMissingName             = "MissingName"
	ErrMissingPrice            = "MissingPrice"
	ErrPriceNotANumber         = "PriceNotANumber"
	ErrPriceNotGreaterThanZero = "PriceNotGreaterThanZero"
	ErrMissingStock            = "MissingStock"
	ErrStockNotAnInteger       = "StockNotAnInteger"
	ErrStockNotGreaterThanZero = "StockNotGreaterThanZero"
)

// A productRule inspects one aspect of the submission and yields zero or one
// error code.
type productRule func(p models.ProductViewModel) (string, bool)

// Rules run in this fixed order and are evaluated independently, so one
// submission can accumulate several codes. An empty Price field fails both
// the missing and the parse rule; callers depend on that pairing.
var productRules = []productRule{
	nameMissing,
	priceMissing,
	priceValue,
	stockMissing,
	stockValue,
}

// CheckProductModelErrors validates a product submission against the catalog
// business rules and returns the ordered list of violated codes. A valid
// submission returns an empty list. Description and Details are unchecked.
func CheckProductModelErrors(p models.ProductViewModel) []string {
	errs := []string{}
	for _, rule := range productRules {
		if code, bad := rule(p); bad {
			errs = append(errs, code)
		}
	}
	return errs
}

func nameMissing(p models.ProductViewModel) (string, bool) {
	return ErrMissingName, strings.TrimSpace(p.Name) == ""
}

func priceMissing(p models.ProductViewModel) (string, bool) {
	return ErrMissingPrice, strings.TrimSpace(p.Price) == ""
}

// priceValue reports a parse failure or a non-positive value, never both:
// the range is only checked once the parse succeeds.
func priceValue(p models.ProductViewModel) (string, bool) {
	price, err := decimal.NewFromString(strings.TrimSpace(p.Price))
	if err != nil {
		return ErrPriceNotANumber, true
	}
	return ErrPriceNotGreaterThanZero, price.Sign() <= 0
}

func stockMissing(p models.ProductViewModel) (string, bool) {
	return ErrMissingStock, strings.TrimSpace(p.Stock) == ""
}

func stockValue(p models.ProductViewModel) (string, bool) {
	stock, err := strconv.Atoi(strings.TrimSpace(p.Stock))
	if err != nil {
		return ErrStockNotAnInteger, true
	}
	return ErrStockNotGreaterThanZero, stock <= 0
}

package service

import (
	"log"

	"github.com/sangkips/venuebook-api/internal/config"
	"github.com/sangkips/venuebook-api/pkg/utils"
)

// TaxCalculator derives tax and totals from a booking subtotal using
// the injected region rate table. It is a pure computation component;
// tests substitute their own TaxConfig fixtures.
type TaxCalculator struct {
	cfg config.TaxConfig
}

// NewTaxCalculator creates a new tax calculator
func NewTaxCalculator(cfg config.TaxConfig) *TaxCalculator {
	return &TaxCalculator{cfg: cfg}
}

// TaxResult is the financial outcome of applying discount and tax to
// a subtotal. All amounts are rounded to 2 decimals.
type TaxResult struct {
	SubTotal       float64 `json:"sub_total"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxableAmount  float64 `json:"taxable_amount"`
	TaxRate        float64 `json:"tax_rate"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// Calculate applies the region's tax rate and the discount code to a
// subtotal. Discount codes are accepted but currently always yield a
// zero discount; the hook exists for a future coupon engine and the
// no-op behavior is deliberate.
func (c *TaxCalculator) Calculate(subTotal float64, region string, discountCode string) TaxResult {
	discount := 0.0
	if discountCode != "" {
		log.Printf("discount code %q accepted but not applied (no coupon engine)", discountCode)
	}

	rate := c.cfg.RateFor(region)

	taxable := utils.RoundMoney(subTotal - discount)
	tax := utils.RoundMoney(taxable * rate)
	total := utils.RoundMoney(taxable + tax)

	return TaxResult{
		SubTotal:       utils.RoundMoney(subTotal),
		DiscountAmount: discount,
		TaxableAmount:  taxable,
		TaxRate:        rate,
		TaxAmount:      tax,
		TotalAmount:    total,
	}
}

package zatca

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sangkips/venuebook-api/pkg/utils"
)

// TLV tags defined by the ZATCA simplified e-invoice QR specification.
const (
	tagSellerName = 1
	tagVATNumber  = 2
	tagTimestamp  = 3
	tagTotal      = 4
	tagTaxAmount  = 5
)

// maxTLVValueLen is the largest value a single TLV length byte can
// describe. Longer values are truncated at a rune boundary.
const maxTLVValueLen = 255

// InvoiceSeal holds the inputs for the tamper-evidence fields of an
// invoice. All values are captured from the frozen financial snapshot
// at generation time and must never be recomputed afterwards.
type InvoiceSeal struct {
	InvoiceNumber   string
	SellerName      string
	SellerVATNumber string
	IssuedAt        time.Time
	TotalWithTax    float64
	TaxAmount       float64
}

// encodeTLV appends one tag-length-value tuple. Length is the UTF-8
// byte length of the value; values longer than one length byte can
// describe are truncated without splitting a rune.
func encodeTLV(buf []byte, tag byte, value string) []byte {
	b := []byte(value)
	if len(b) > maxTLVValueLen {
		cut := maxTLVValueLen
		for cut > 0 && !utf8.RuneStart(b[cut]) {
			cut--
		}
		b = b[:cut]
	}
	buf = append(buf, tag, byte(len(b)))
	return append(buf, b...)
}

// QRCode returns the base64-encoded TLV payload for the invoice QR.
// Field order is fixed: seller name, VAT number, ISO-8601 timestamp,
// total with tax (2 decimals), tax amount (2 decimals).
func (s InvoiceSeal) QRCode() string {
	var buf []byte
	buf = encodeTLV(buf, tagSellerName, s.SellerName)
	buf = encodeTLV(buf, tagVATNumber, s.SellerVATNumber)
	buf = encodeTLV(buf, tagTimestamp, s.IssuedAt.Format(time.RFC3339))
	buf = encodeTLV(buf, tagTotal, utils.FormatMoney(s.TotalWithTax))
	buf = encodeTLV(buf, tagTaxAmount, utils.FormatMoney(s.TaxAmount))
	return base64.StdEncoding.EncodeToString(buf)
}

// Hash returns the base64-encoded SHA-256 fingerprint of the invoice,
// computed over the pipe-joined frozen fields.
func (s InvoiceSeal) Hash() string {
	payload := strings.Join([]string{
		s.InvoiceNumber,
		s.SellerVATNumber,
		s.IssuedAt.Format(time.RFC3339),
		utils.FormatMoney(s.TotalWithTax),
		utils.FormatMoney(s.TaxAmount),
	}, "|")

	sum := sha256.Sum256([]byte(payload))
	return base64.StdEncoding.EncodeToString(sum[:])
}

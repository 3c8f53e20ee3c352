package qr

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	qrcode "github.com/skip2/go-qrcode"

	"gameonbaby/internal/domain"
)

const pngSize = 256

type spdGenerator struct{}

// NewSPDGenerator returns a PaymentQRGenerator producing Czech short payment
// descriptor (SPD 1.0) QR codes rendered as base64 PNG data URIs.
func NewSPDGenerator() domain.PaymentQRGenerator {
	return &spdGenerator{}
}

func (g *spdGenerator) Generate(req domain.PaymentQRRequest) (*domain.PaymentQR, error) {
	if req.Account == "" {
		return nil, fmt.Errorf("payment qr: missing account")
	}
	iban, err := accountToIBAN(req.Account)
	if err != nil {
		return nil, fmt.Errorf("payment qr: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "CZK"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "SPD*1.0*ACC:%s*AM:%d.00*CC:%s", iban, req.Amount, currency)
	if req.VariableSymbol != "" {
		fmt.Fprintf(&b, "*X-VS:%s", req.VariableSymbol)
	}
	if msg := sanitizeMessage(req.Message); msg != "" {
		fmt.Fprintf(&b, "*MSG:%s", msg)
	}
	payload := b.String()

	png, err := qrcode.Encode(payload, qrcode.Medium, pngSize)
	if err != nil {
		return nil, fmt.Errorf("payment qr: encode: %w", err)
	}
	return &domain.PaymentQR{
		Payload:   payload,
		PNGBase64: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}

// accountToIBAN converts a Czech domestic account number
// ("prefix-account/bank" or "account/bank") into a CZ IBAN.
func accountToIBAN(account string) (string, error) {
	parts := strings.Split(account, "/")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid account format %q", account)
	}
	bank := parts[1]
	prefix := ""
	number := parts[0]
	if idx := strings.Index(number, "-"); idx >= 0 {
		prefix = number[:idx]
		number = number[idx+1:]
	}
	if bank == "" || number == "" {
		return "", fmt.Errorf("invalid account format %q", account)
	}
	for _, part := range []string{prefix, number, bank} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return "", fmt.Errorf("invalid account format %q", account)
			}
		}
	}

	bban := zeroPad(bank, 4) + zeroPad(prefix, 6) + zeroPad(number, 10)
	check := 98 - mod97(bban+"123500") // CZ -> 12 35, check digits 00
	return fmt.Sprintf("CZ%02d%s", check, bban), nil
}

func zeroPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// mod97 computes the IBAN mod-97 remainder over a digit string without
// overflowing 64-bit arithmetic.
func mod97(digits string) int {
	rem := 0
	for _, r := range digits {
		rem = (rem*10 + int(r-'0')) % 97
	}
	return rem
}

// sanitizeMessage strips the SPD field separator and trims to the 60-byte
// field limit without splitting a multi-byte rune.
func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "*", " ")
	msg = strings.TrimSpace(msg)
	if len(msg) > 60 {
		cut := 60
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return msg
}

// Package payu implements the hosted-checkout handshake digests for the
// PayU payment gateway: a SHA-512 over a pipe-delimited canonical string,
// with different field orders for the outbound request and the inbound
// callback. The two orders are part of the gateway contract and must not be
// assumed symmetric.
package payu

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Credentials are the merchant key and shared secret issued by the gateway
type Credentials struct {
	Key  string
	Salt string
}

// RequestParams are the fields covered by the outbound request digest
type RequestParams struct {
	TxnID       string
	Amount      string
	ProductInfo string
	FirstName   string
	Email       string
	UDF1        string
	UDF2        string
}

// ResponseParams are the fields covered by the inbound callback digest
type ResponseParams struct {
	Status      string
	TxnID       string
	Amount      string
	ProductInfo string
	FirstName   string
	Email       string
	UDF1        string
	UDF2        string
	UDF3        string
	UDF4        string
	UDF5        string
}

// RequestHash computes the digest the hosted payment page expects with the
// auto-posted form. Canonical order:
//
//	key|txnid|amount|productinfo|firstname|email|udf1|udf2|<ten empty>|salt
func RequestHash(c Credentials, p RequestParams) string {
	parts := make([]string, 0, 19)
	parts = append(parts,
		c.Key,
		p.TxnID,
		p.Amount,
		p.ProductInfo,
		p.FirstName,
		p.Email,
		p.UDF1,
		p.UDF2,
	)
	// Ten unused optional slots stay empty but still separated
	for i := 0; i < 10; i++ {
		parts = append(parts, "")
	}
	parts = append(parts, c.Salt)

	return digest(strings.Join(parts, "|"))
}

// ResponseHash computes the digest the gateway sends with its callback.
// The gateway reverses the field order and prepends the transaction status:
//
//	salt|status|udf5|udf4|udf3|udf2|udf1|email|firstname|productinfo|amount|txnid|key
func ResponseHash(c Credentials, p ResponseParams) string {
	parts := []string{
		c.Salt,
		p.Status,
		p.UDF5,
		p.UDF4,
		p.UDF3,
		p.UDF2,
		p.UDF1,
		p.Email,
		p.FirstName,
		p.ProductInfo,
		p.Amount,
		p.TxnID,
		c.Key,
	}

	return digest(strings.Join(parts, "|"))
}

// Equal compares two hex digests in constant time. Gateway callbacks arrive
// through a browser redirect, so the supplied hash is attacker-controlled.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(a)), []byte(strings.ToLower(b))) == 1
}

func digest(canonical string) string {
	sum := sha512.Sum512([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

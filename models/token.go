package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued bearer token.
//
// It extends the standard registered claims (sub, exp, iat, iss) with the
// store-assigned user identifier, which the token verifier uses to resolve
// the token back to an account. The claim set must never contain the
// password hash or any other secret field.
type TokenClaims struct {
	jwt.RegisteredClaims

	// UserID is the store-assigned identifier of the account the token
	// was issued for.
	UserID int64 `json:"uid"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side. Tokens exist only in transit and on the client;
// the server keeps no record of issued tokens.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the token's claim set.
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

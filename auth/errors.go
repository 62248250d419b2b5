package auth

import "errors"

// ErrInvalidCredentials covers both unknown usernames and wrong passwords
// so that callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found")

// ErrIdentityInactive means the credentials were fine but the account is disabled.
var ErrIdentityInactive = errors.New("inactive user")

// ErrNotAuthenticated means the request carried no usable identity.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrForbidden means the identity is authenticated but lacks permission.
var ErrForbidden = errors.New("not enough permissions")

// ErrSelfAction blocks destructive operations against the caller's own account.
var ErrSelfAction = errors.New("cannot perform this action on your own account")

// ErrNoEmptyString rejects empty passwords before hashing.
var ErrNoEmptyString = errors.New("value must not be an empty string")

// ErrMismatchedHashAndPassword is returned for any failed password
// verification, malformed hashes included.
var ErrMismatchedHashAndPassword = errors.New("hashed password does not match")

// ErrTokenMissing means the transport carried no token at all.
var ErrTokenMissing = errors.New("missing or malformed token")

// ErrTokenMalformed covers undecodable tokens and unsupported algorithms.
var ErrTokenMalformed = errors.New("token is malformed")

// ErrTokenExpired means the token was valid but its lifetime has passed.
var ErrTokenExpired = errors.New("token is expired")

// ErrTokenSignatureInvalid means the signature does not match the server secret.
var ErrTokenSignatureInvalid = errors.New("token signature is invalid")

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

// IsMalformedError will check for malformed or badly signed tokens
func IsMalformedError(err error) bool {
	return errors.Is(err, ErrTokenMalformed) || errors.Is(err, ErrTokenSignatureInvalid)
}

// IsAuthError reports whether err belongs to the authentication taxonomy,
// meaning the caller should answer with a 401 class response.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrTokenMissing) ||
		errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenSignatureInvalid) ||
		errors.Is(err, ErrIdentityNotFound) ||
		errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrInvalidCredentials)
}

// Package jwt provides RS256 JSON Web Token signing and validation.
//
// The server signs access tokens with a private key loaded from disk;
// validation only needs the public key, so read-only deployments can
// run without the private half.
//
// # Signing
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "./keys/private.pem",
//	    Issuer:         "api.clubdeck.app",
//	    ExpirationMins: 60,
//	})
//	token, err := service.Sign(jwt.Claims{UserID: user.ID, Email: user.Email})
//
// # Validation
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // invalid, expired, or tampered token
//	}
//	userID := claims.UserID
//
// Use GenerateKeyPair to create a PEM key pair for development, and
// NewTestService to build a service around an in-memory key in tests.
package jwt

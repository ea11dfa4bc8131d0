// Package session owns the bearer token lifecycle for the storefront client:
// persist, retrieve, clear, decode, and derive role hints.
//
// The token is an opaque credential issued by the remote API. This package
// only ever inspects its second dot-delimited segment, which carries a
// base64url-encoded JSON claims object. No signature verification happens
// here and none is wanted: decoded claims are display and authorization
// hints, never trust decisions. Real authorization is enforced by the remote
// API on every privileged request.
//
// # Usage
//
//	store := session.New(kv.NewMemory())
//
//	if err := store.SetToken(ctx, token); err != nil {
//		log.Fatal(err)
//	}
//
//	if claims, ok := store.Claims(ctx); ok {
//		name, _ := claims.Name()
//		fmt.Println("hello,", name)
//	}
//
//	if store.IsAdmin(ctx) {
//		// show admin controls
//	}
//
// # Failure Semantics
//
// Read paths never fail loudly. A missing, malformed, or undecodable token
// degrades to "no claims" (ok == false); IsAdmin degrades to false. Only
// writes through the storage collaborator (SetToken, Logout) return errors.
package session

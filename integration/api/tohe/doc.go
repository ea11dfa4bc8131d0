// Package tohe is a typed client for the ToHe storefront REST API: the
// authentication endpoints under /auth and the product catalog under
// /products.
//
// The client sources its bearer token from a TokenSource, typically the
// session store, so a login immediately authenticates subsequent requests:
//
//	sessions := session.New(kv.NewMemory())
//
//	client, err := tohe.New(tohe.Config{BaseURL: "https://api.tohe.example"},
//		tohe.WithTokenSource(sessions),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	auth, err := client.Login(ctx, tohe.Credentials{Email: email, Password: password})
//	if err != nil {
//		return err
//	}
//	if err := sessions.SetToken(ctx, auth.Token); err != nil {
//		return err
//	}
//
// All authorization decisions happen server-side; the client attaches the
// token when it has one and otherwise sends the request anonymously.
package tohe

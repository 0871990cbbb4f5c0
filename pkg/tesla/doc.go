// Package tesla defines the public surface of the Tesla API client: the
// Client interface and its grouped resource clients, API surface
// selection (owner vs. fleet with region routing), the OAuth token model,
// the closed error taxonomy, wire types, vehicle commands and the
// optional response cache.
//
// Construct clients with pkg/teslaclient:
//
//	api := tesla.FleetAPI(tesla.RegionEuropeMiddleEastAfrica, clientID, clientSecret, redirectURI)
//	client, err := teslaclient.New(&tesla.Config{API: api})
//	if err != nil {
//		// handle error
//	}
//
//	url, verifier, err := client.AuthorizationURL()
//	// direct the user to url, capture the redirect, extract ?code=...
//	token, err := client.ExchangeCode(ctx, code, verifier)
//
//	vehicles, err := client.Vehicles().List(ctx)
//
// Every operation that needs authentication validates the stored session
// token first and silently refreshes it when expired and a refresh token
// is available. Expired sessions without a refresh token surface
// tesla.ErrAuthenticationRequired without touching the network.
package tesla

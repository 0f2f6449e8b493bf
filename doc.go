// Package gravityzone provides a client for the Bitdefender GravityZone
// Control Center JSON-RPC API.
//
// The console exposes one HTTP endpoint per resource (accounts, companies,
// network, policies and so on) and speaks JSON-RPC 2.0 over POST with HTTP
// basic authentication: the API key is the username, the password stays
// empty. The Client wraps that protocol behind typed resource methods and
// keeps the raw Call and Paginate surface public for console methods it does
// not cover.
//
// # Getting Started
//
// Construct a Client with the console's access URL and an API key:
//
//	client, err := gravityzone.New(
//	    "https://cloud.gravityzone.bitdefender.com",
//	    apiKey,
//	    gravityzone.WithTimeout(45*time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	details, err := client.GetAPIKeyDetails(ctx)
//
// NewFromEnv reads GRAVITYZONE_ACCESS_URL and GRAVITYZONE_API_KEY instead,
// loading a .env file when one is present.
//
// # Pagination
//
// Listing methods return lazy sequences that fetch pages as the loop
// advances; breaking out of the loop stops further requests:
//
//	for endpoint, err := range client.GetEndpoints(ctx, companyID) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(endpoint["label"])
//	}
//
// Collect gathers a whole sequence into a slice, and DecodeSeq adapts raw
// item maps into caller-defined structs.
//
// # Error Handling
//
// Every failing call returns an *Error recording the endpoint, method and
// params alongside a classification of the failure. Branch with the
// predicates:
//
//	if gravityzone.IsAuthorizationError(err) {
//	    // the API key is not licensed for this endpoint
//	}
//
// # Raw Calls
//
// Call and Paginate accept endpoint and method names directly, for console
// methods without a typed wrapper:
//
//	raw, err := client.Call(ctx, "general", "getApiKeyDetails", nil)
//
// # Push Events
//
// SetPushEventSettings points the console's event push service at an HTTPS
// receiver; the webhook package implements the receiving side.
package gravityzone

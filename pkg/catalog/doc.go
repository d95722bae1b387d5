// Package catalog defines the public contracts of the catalog admin client:
// entity types, list parameters, the normalized error taxonomy, the response
// envelope, and the interfaces implemented by the concrete client in
// internal/client.
//
// Construct a client with the adminclient package:
//
//	client, err := adminclient.New(&catalog.Config{
//		BaseURL: "http://localhost:3004",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	categories, err := client.API().Categories().List(ctx, nil)
//
// Every operation returns either its typed result or a *catalog.Error
// carrying one of four codes: SERVER_ERROR (response received, non-2xx),
// NETWORK_ERROR (no response, including timeouts), REQUEST_ERROR (local
// construction failure), or VALIDATION_ERROR (payload rejected before
// submission).
//
// List endpoints answer either an envelope with pagination meta or a bare
// array; catalog.List normalizes both into one shape at the client
// boundary.
package catalog

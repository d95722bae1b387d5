// Package adminclient provides the primary entry point for constructing a
// catalog admin API client that implements the catalog.Client interface.
//
// It layers the HTTP gateway, credential storage, and the OTP login
// session on top of the resource interfaces and types defined in the
// catalog package. Most applications should import adminclient to build a
// client, then use API() to reach resource-specific clients, for example
// Categories(), Products(), Banners(), and Session() to drive login.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/storekit-io/catalog-admin-client/pkg/adminclient"
//	  "github.com/storekit-io/catalog-admin-client/pkg/catalog"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := adminclient.New(&catalog.Config{BaseURL: "http://localhost:3004"})
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//
//	  // OTP login flow.
//	  if err := cli.Session().RequestOTP(ctx, "+15550100"); err != nil {
//	    log.Fatal(err)
//	  }
//	  if err := cli.Session().VerifyOTP(ctx, "123456"); err != nil {
//	    log.Fatal(err)
//	  }
//
//	  categories, err := cli.API().Categories().List(ctx, &catalog.CategoryListParams{})
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//	  _ = categories
//	}
package adminclient

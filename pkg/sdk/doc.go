// Package formvault provides a Go client for the formvault insurance form
// registry backed by Redis with search modules.
//
// The client embeds the full service stack and talks to Redis directly, so
// no HTTP server is needed:
//
//	client, _ := formvault.New(ctx, formvault.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	created, _ := client.Forms().Create(ctx, formvault.Form{Name: "Fire Policy"})
//	hits, _ := client.Forms().Search(ctx, "fire")
//
// Every created form is mirrored into a full-text search index; Search runs
// against that index and returns the matching forms.
package formvault

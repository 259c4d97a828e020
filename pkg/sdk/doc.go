// Package kbase provides a Go client for the kbase knowledge retrieval API.
//
//	client, _ := kbase.New("http://localhost:8080", kbase.WithAPIKey("secret"))
//	resp, _ := client.Query(ctx, kbase.QueryRequest{
//	    Query:   "how do I validate my business model?",
//	    Domains: []string{"business"},
//	})
//	for _, r := range resp.Items {
//	    fmt.Println(r.Item.Title, r.SimilarityScore)
//	}
package kbase

package main

import (
	"flag"
	"log"

	"github.com/go-resty/resty/v2"
)

type webhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

// Posts sample Dialogflow payloads at a running server and prints the
// fulfillment replies. Handy after changing program data or webhook logic.
func main() {
	baseURL := flag.String("url", "http://localhost:5000", "server base URL")
	flag.Parse()

	samples := []map[string]interface{}{
		{
			"queryResult": map[string]interface{}{
				"queryText": "What are the requirements for Foundation in Science?",
				"parameters": map[string]interface{}{
					"program_name": "Foundation in Science",
				},
			},
		},
		{
			"queryResult": map[string]interface{}{
				"queryText":  "what documents do I need for computer science",
				"parameters": map[string]interface{}{},
			},
		},
		{
			"queryResult": map[string]interface{}{
				"queryText":  "when is the deadline",
				"parameters": map[string]interface{}{},
			},
		},
	}

	client := resty.New()

	for i, sample := range samples {
		var result webhookResponse
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(sample).
			SetResult(&result).
			Post(*baseURL + "/dialogflow-webhook")
		if err != nil {
			log.Fatalf("Request %d failed: %v", i+1, err)
		}

		log.Printf("Request %d -> %s", i+1, resp.Status())
		log.Printf("  %s", result.FulfillmentText)
	}
}

// Package search mirrors the property inventory into Meilisearch for
// full-text search. It is separate from the inventory substring filter.
package search

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meilisearch/meilisearch-go"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

const defaultLimit = 20

type SearchClient struct {
	client *meilisearch.Client
	index  string
}

func NewSearchClient(host, apiKey string) *SearchClient {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	return &SearchClient{
		client: client,
		index:  "properties",
	}
}

// InitIndex initializes the Meilisearch index
func (s *SearchClient) InitIndex() error {
	_, err := s.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.index,
		PrimaryKey: "id",
	})
	// Ignore error if index already exists
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSearchableAttributes(&[]string{
		"title",
		"address",
		"description",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateFilterableAttributes(&[]string{
		"type",
		"status",
		"price",
		"beds",
	})
	if err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSortableAttributes(&[]string{
		"price",
		"sqft",
	})
	return err
}

// IndexProperties replaces the indexed documents with properties
func (s *SearchClient) IndexProperties(properties []models.Property) error {
	if _, err := s.client.Index(s.index).DeleteAllDocuments(); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}
	if len(properties) == 0 {
		return nil
	}
	_, err := s.client.Index(s.index).AddDocuments(properties, "id")
	return err
}

// Search searches for properties by free text
func (s *SearchClient) Search(query string, limit int64) ([]models.Property, error) {
	return s.FilterSearch(FilterParams{Query: query, Limit: limit})
}

// decodeHits converts raw hits back into properties. Hits that don't decode
// are skipped.
func decodeHits(hits []interface{}) []models.Property {
	properties := make([]models.Property, 0, len(hits))
	for _, hit := range hits {
		hitJSON, err := json.Marshal(hit)
		if err != nil {
			continue
		}

		var property models.Property
		if err := json.Unmarshal(hitJSON, &property); err != nil {
			continue
		}

		properties = append(properties, property)
	}
	return properties
}

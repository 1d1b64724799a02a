package es

import (
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

const DefaultIndexName = "genai-documents"

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if len(config.Addresses) == 0 {
		return nil, fmt.Errorf("elasticsearch addresses are required")
	}
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}

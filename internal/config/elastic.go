package config

import (
	"github.com/elastic/go-elasticsearch/v8"
)

func NewElasticClient(cfg *Config) (*elasticsearch.Client, error) {
	escfg := elasticsearch.Config{
		Addresses: []string{cfg.ElasticURL},
	}
	if cfg.ElasticUsername != "" {
		escfg.Username = cfg.ElasticUsername
		escfg.Password = cfg.ElasticPassword
	}
	return elasticsearch.NewClient(escfg)
}

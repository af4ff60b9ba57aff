package store

import (
	"bytes"
	"context"
	"fmt"
	"github.com/cenkalti/backoff/v4"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/rs/zerolog/log"
	"github.com/voidshard/budget/pkg/domain"
	"math"
	"os"
	"strconv"
	"time"
)

// from https://github.com/elastic/go-elasticsearch/blob/master/_examples/bulk/indexer.go

const (
	esIndex = "budget"
	esFlush = 2048

	envEsAddr = "ELASTICSEARCH_SERVICE_HOST"
	envEsPort = "ELASTICSEARCH_SERVICE_PORT"
)

// ElasticsearchV8 is a write only sink indexing each transaction as a document.
// Document IDs are ledger positions, so exporting the same ledger twice
// overwrites rather than duplicates.
type ElasticsearchV8 struct {
	addresses []string
}

func NewElasticsearchV8(urls ...string) *ElasticsearchV8 {
	if len(urls) == 0 || (len(urls) == 1 && urls[0] == "") {
		address := os.Getenv(envEsAddr)
		port := os.Getenv(envEsPort)
		if port == "" {
			port = "9200"
		}
		if address == "" {
			address = "localhost"
		}
		urls = []string{fmt.Sprintf("http://%s:%s", address, port)}
	}

	return &ElasticsearchV8{addresses: urls}
}

func (e *ElasticsearchV8) Write(txns []*domain.Transaction) error {
	retryBackoff := backoff.NewExponentialBackOff()

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: e.addresses,

		// Retry on 429 TooManyRequests statuses
		RetryOnStatus: []int{502, 503, 504, 429},

		// Configure the backoff function
		RetryBackoff: func(i int) time.Duration {
			if i == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		},

		// Retry up to 5 attempts
		MaxRetries: 5,
	})
	if err != nil {
		return err
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         esIndex,
		FlushBytes:    esFlush,
		Client:        es,
		NumWorkers:    4,
		FlushInterval: 10 * time.Second,
	})
	if err != nil {
		return err
	}

	_, err = es.Indices.Create(esIndex)
	if err != nil {
		log.Debug().Err(err).Str("index", esIndex).Msg("attempted to make index")
	}

	for i, t := range txns {
		c := *t
		c.Amount = math.Abs(c.Amount)
		data, err := c.JSON()
		if err != nil {
			return err
		}

		err = bi.Add(
			context.Background(),
			esutil.BulkIndexerItem{
				// Action field configures the operation to perform (index, create, delete, update)
				Action: "index",

				// DocumentID is the ledger position, re-exporting overwrites
				DocumentID: strconv.Itoa(i),

				// Body is an `io.Reader` with the payload
				Body: bytes.NewReader(data),

				// OnSuccess is called for each successful operation
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {},

				// OnFailure is called for each failed operation
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					if err != nil {
						log.Error().Err(err).Str("id", item.DocumentID).Msg("failed to index transaction")
					} else {
						log.Error().Str("id", item.DocumentID).Str("type", res.Error.Type).Msg(res.Error.Reason)
					}
				},
			},
		)
		if err != nil {
			return err
		}
	}

	err = bi.Close(context.Background())
	if err != nil {
		return err
	}

	stats := bi.Stats()
	if stats.NumFailed > 0 {
		return fmt.Errorf("failed indexing %d of %d transactions", stats.NumFailed, len(txns))
	}
	log.Info().Uint64("indexed", stats.NumFlushed).Msg("exported transactions to elasticsearch")

	return nil
}

package batchapi

import (
	"net/http"
	"time"

	"github.com/go-kit/log"
)

const DefaultAPIVersion = "2023-05-01.17.0"

type Config struct {
	// AccountURL is the batch account endpoint, for example
	// https://myaccount.westeurope.batch.azure.com.
	AccountURL string
	// AccountName and AccountKey are used to sign requests with the Shared Key
	// scheme. Requests are sent unsigned if AccountKey is empty.
	AccountName string
	AccountKey  string
	// PoolID is the pool all the calls are scoped to.
	PoolID string
	// APIVersion is sent as the api-version query parameter.
	APIVersion string
	// Timeout is applied to every single HTTP request. Paginated listings
	// apply it per page.
	Timeout time.Duration
	// PageSize is the maximum number of nodes returned by a single listing page.
	PageSize int
	// HTTPClient allows to override the transport, mostly for testing.
	HTTPClient *http.Client
	Logger     log.Logger
}

func DefaultConfig() Config {
	return Config{
		APIVersion: DefaultAPIVersion,
		Timeout:    30 * time.Second,
		PageSize:   1000,
		HTTPClient: http.DefaultClient,
		Logger:     log.NewNopLogger(),
	}
}

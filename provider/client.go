// Package provider talks to a chain gateway over its REST API and decodes
// contract execution results back into typed values.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/erdkit/erdkit/common"
	"github.com/erdkit/erdkit/common/logging"
	"github.com/erdkit/erdkit/core"
)

var (
	ErrFailedToMarshalRequest    = errors.New("failed to marshal request")
	ErrFailedToSendRequest       = errors.New("failed to send request")
	ErrUnexpectedStatusCode      = errors.New("unexpected status code")
	ErrFailedToReadResponse      = errors.New("failed to read response")
	ErrFailedToUnmarshalResponse = errors.New("failed to unmarshal response")
	ErrGatewayError              = errors.New("gateway error")
)

// envelope is the uniform wrapper the gateway puts around every response.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

type config struct {
	retry   *common.RetryConfig
	headers map[string]string
}

type Option func(*config)

// RetryConfig makes the client retry failed requests per the given policy.
func RetryConfig(rcfg *common.RetryConfig) Option {
	return func(cfg *config) {
		cfg.retry = rcfg
	}
}

// Headers sets extra headers sent with every request, e.g. authentication.
func Headers(headers map[string]string) Option {
	return func(cfg *config) {
		cfg.headers = headers
	}
}

// GatewayClient is an HTTP client over the gateway REST API. It is safe for
// concurrent use.
type GatewayClient struct {
	endpoint string
	client   http.Client
	headers  map[string]string
	logger   zerolog.Logger
	retrier  *common.RetryRunner
}

func NewGatewayClient(endpoint string, logger zerolog.Logger, opts ...Option) *GatewayClient {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &GatewayClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		headers:  cfg.headers,
		logger:   logger,
	}

	if cfg.retry != nil {
		retrier := common.NewRetryRunner(*cfg.retry, c.logger)
		c.retrier = &retrier
	}

	return c
}

func (c *GatewayClient) doRequest(ctx context.Context, method, path string, requestBody []byte) (json.RawMessage, error) {
	var result json.RawMessage

	call := func(ctx context.Context) error {
		body, err := c.performRequest(ctx, method, path, requestBody)
		if err != nil {
			return err
		}

		var response envelope
		if err := json.Unmarshal(body, &response); err != nil {
			c.logger.Debug().Str("response", string(body)).Msg("failed to unmarshal response")
			return fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
		}
		if response.Error != "" {
			return fmt.Errorf("%w: %s", ErrGatewayError, response.Error)
		}

		result = response.Data
		return nil
	}

	var err error
	if c.retrier != nil {
		err = c.retrier.Do(ctx, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *GatewayClient) performRequest(ctx context.Context, method, path string, requestBody []byte) ([]byte, error) {
	var reader io.Reader
	if requestBody != nil {
		reader = bytes.NewReader(requestBody)
		c.logger.Trace().RawJSON("request", requestBody).Send()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToSendRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug().
			Str(logging.FieldHttpMethod, method).
			Str(logging.FieldEndpoint, path).
			Int(logging.FieldHttpStatus, resp.StatusCode).
			Msg("request rejected")
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatusCode, resp.StatusCode, body)
	}

	c.logger.Trace().RawJSON("response", body).Send()
	return body, nil
}

func (c *GatewayClient) get(ctx context.Context, path string, out any) error {
	data, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
	}
	return nil
}

func (c *GatewayClient) post(ctx context.Context, path string, in, out any) error {
	requestBody, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToMarshalRequest, err)
	}

	data, err := c.doRequest(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
	}
	return nil
}

// GetNetworkConfig fetches the chain parameters the SDK needs for building
// transactions.
func (c *GatewayClient) GetNetworkConfig(ctx context.Context) (*NetworkConfig, error) {
	var data struct {
		Config NetworkConfig `json:"config"`
	}
	if err := c.get(ctx, "/network/config", &data); err != nil {
		return nil, err
	}
	return &data.Config, nil
}

// GetAccount fetches the current state of an account.
func (c *GatewayClient) GetAccount(ctx context.Context, address core.Address) (*Account, error) {
	var data struct {
		Account Account `json:"account"`
	}
	if err := c.get(ctx, "/address/"+address.Bech32(), &data); err != nil {
		return nil, err
	}
	return &data.Account, nil
}

// SendTransaction broadcasts a signed transaction and returns its hash.
func (c *GatewayClient) SendTransaction(ctx context.Context, tx *core.Transaction) (string, error) {
	var data struct {
		TxHash string `json:"txHash"`
	}
	if err := c.post(ctx, "/transaction/send", tx, &data); err != nil {
		return "", err
	}

	c.logger.Info().
		Str(logging.FieldTransactionHash, data.TxHash).
		Uint64(logging.FieldTransactionNonce, tx.Nonce).
		Str(logging.FieldReceiver, tx.Receiver.Bech32()).
		Msg("transaction sent")
	return data.TxHash, nil
}

// GetTransaction fetches a transaction by hash, with its contract results
// when withResults is set.
func (c *GatewayClient) GetTransaction(ctx context.Context, hash string, withResults bool) (*TransactionOnNetwork, error) {
	path := "/transaction/" + hash
	if withResults {
		path += "?withResults=true"
	}

	var data struct {
		Transaction TransactionOnNetwork `json:"transaction"`
	}
	if err := c.get(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data.Transaction, nil
}

// QueryContract runs a read-only contract call against current state.
func (c *GatewayClient) QueryContract(ctx context.Context, request *QueryRequest) (*QueryResponse, error) {
	var data struct {
		Data QueryResponse `json:"data"`
	}
	if err := c.post(ctx, "/vm-values/query", request, &data); err != nil {
		return nil, err
	}
	return &data.Data, nil
}

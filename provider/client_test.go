package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erdkit/erdkit/common"
	"github.com/erdkit/erdkit/common/logging"
	"github.com/erdkit/erdkit/core"
)

const aliceBech32 = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"

func testServer(t *testing.T, handler http.HandlerFunc) *GatewayClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGatewayClient(server.URL, logging.Nop())
}

func TestGetNetworkConfig(t *testing.T) {
	t.Parallel()

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/network/config", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"config":{
			"erd_chain_id":"D",
			"erd_min_gas_limit":50000,
			"erd_min_gas_price":1000000000,
			"erd_gas_per_data_byte":1500}},"error":"","code":"successful"}`))
	})

	config, err := client.GetNetworkConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, core.ChainIDDevnet, config.ChainID)
	assert.Equal(t, core.MinGasLimit, config.MinGasLimit)

	schedule := config.GasSchedule()
	assert.Equal(t, uint64(core.DefaultGasPrice), schedule.GasPrice)
	assert.Equal(t, core.GasPerDataByte, schedule.GasPerDataByte)
}

func TestGetAccount(t *testing.T) {
	t.Parallel()

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/address/"+aliceBech32, r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"account":{
			"address":"` + aliceBech32 + `",
			"nonce":7,
			"balance":"1000000"}},"error":"","code":"successful"}`))
	})

	account, err := client.GetAccount(context.Background(), core.MustNewAddressFromBech32(aliceBech32))
	require.NoError(t, err)

	assert.Equal(t, aliceBech32, account.Address.Bech32())
	assert.Equal(t, uint64(7), account.Nonce)
	assert.Equal(t, "1000000", account.Balance.String())
}

func TestSendTransaction(t *testing.T) {
	t.Parallel()

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/send", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, aliceBech32, body["sender"])

		_, _ = w.Write([]byte(`{"data":{"txHash":"abcd"},"error":"","code":"successful"}`))
	})

	tx := core.Transaction{
		Value:    core.NewZeroValue(),
		Sender:   core.MustNewAddressFromBech32(aliceBech32),
		Receiver: core.MustNewAddressFromBech32(aliceBech32),
		ChainID:  core.ChainIDDevnet,
		Version:  core.TxVersionDefault,
	}

	hash, err := client.SendTransaction(context.Background(), &tx)
	require.NoError(t, err)
	assert.Equal(t, "abcd", hash)
}

func TestQueryContract(t *testing.T) {
	t.Parallel()

	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vm-values/query", r.URL.Path)
		// "BA==" is base64 for 0x04.
		_, _ = w.Write([]byte(`{"data":{"data":{
			"returnData":["BA=="],
			"returnCode":"ok",
			"returnMessage":""}},"error":"","code":"successful"}`))
	})

	response, err := client.QueryContract(context.Background(), &QueryRequest{
		ScAddress: aliceBech32,
		FuncName:  "getSum",
		Args:      []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, ReturnCodeOK, response.ReturnCode)
	require.Len(t, response.ReturnData, 1)
	assert.Equal(t, []byte{0x04}, response.ReturnData[0])
}

func TestGatewayErrors(t *testing.T) {
	t.Parallel()

	errClient := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"error":"account not found","code":"internal_issue"}`))
	})
	_, err := errClient.GetNetworkConfig(context.Background())
	require.ErrorIs(t, err, ErrGatewayError)
	assert.Contains(t, err.Error(), "account not found")

	statusClient := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err = statusClient.GetNetworkConfig(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedStatusCode)

	garbageClient := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	_, err = garbageClient.GetNetworkConfig(context.Background())
	require.ErrorIs(t, err, ErrFailedToUnmarshalResponse)
}

func TestClientRetries(t *testing.T) {
	t.Parallel()

	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"config":{"erd_chain_id":"D"}},"error":"","code":"successful"}`))
	}))
	t.Cleanup(server.Close)

	client := NewGatewayClient(server.URL, logging.Nop(), RetryConfig(&common.RetryConfig{
		ShouldRetry: common.LimitRetries(5),
		NextDelay:   func(uint32) time.Duration { return time.Millisecond },
	}))

	config, err := client.GetNetworkConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "D", config.ChainID)
	assert.Equal(t, 3, attempts)
}

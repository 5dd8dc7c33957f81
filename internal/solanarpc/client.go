// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package solanarpc implements the thin slice of Solana's JSON-RPC
// surface this wallet needs: balance checks, airdrops, blockhash
// fetching, transaction submission, and confirmation polling. There is
// no Solana SDK or generic JSON-RPC client dependency in play (see
// DESIGN.md), so this talks plain JSON-RPC 2.0 over net/http directly.
package solanarpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/zengo-x/solana-tss/errs"
	"github.com/zengo-x/solana-tss/internal/logging"
)

var log = logging.Logger("solanarpc")

// Network names one of Solana's public clusters.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
)

// ClusterURL returns the public RPC endpoint for net, or a
// errs.WrongNetwork error for any other string.
func ClusterURL(net string) (string, error) {
	switch Network(net) {
	case Mainnet:
		return "https://api.mainnet-beta.solana.com", nil
	case Testnet:
		return "https://api.testnet.solana.com", nil
	case Devnet:
		return "https://api.devnet.solana.com", nil
	default:
		return "", errs.WrongNetwork(net)
	}
}

// Client is a minimal JSON-RPC 2.0 client bound to one cluster URL.
type Client struct {
	url        string
	httpClient *http.Client
}

func New(clusterURL string) *Client {
	return &Client{url: clusterURL, httpClient: &http.Client{Timeout: 30 * time.Second}}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debugw("rpc call", "method", method)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var parsed rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return err
	}
	if parsed.Error != nil {
		return parsed.Error
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(parsed.Result, out)
}

// GetBalance returns the lamport balance of base58 address.
func (c *Client) GetBalance(ctx context.Context, address string) (uint64, error) {
	var result struct {
		Value uint64 `json:"value"`
	}
	if err := c.call(ctx, "getBalance", []interface{}{address}, &result); err != nil {
		return 0, errs.BalanceFailed(err)
	}
	return result.Value, nil
}

// RequestAirdrop asks the cluster's faucet for lamports, returning the
// airdrop transaction's signature.
func (c *Client) RequestAirdrop(ctx context.Context, address string, lamports uint64) (string, error) {
	var sig string
	if err := c.call(ctx, "requestAirdrop", []interface{}{address, lamports}, &sig); err != nil {
		return "", errs.AirdropFailed(err)
	}
	return sig, nil
}

// GetLatestBlockhash returns the base58-encoded recent blockhash every
// transaction must be stamped with before signing.
func (c *Client) GetLatestBlockhash(ctx context.Context) (string, error) {
	var result struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}
	if err := c.call(ctx, "getLatestBlockhash", nil, &result); err != nil {
		return "", errs.RecentHashFailed(err)
	}
	return result.Value.Blockhash, nil
}

// SendTransaction submits a fully-signed, wire-encoded transaction and
// returns its signature.
func (c *Client) SendTransaction(ctx context.Context, rawTx []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(rawTx)
	params := []interface{}{encoded, map[string]string{"encoding": "base64"}}
	var sig string
	if err := c.call(ctx, "sendTransaction", params, &sig); err != nil {
		return "", errs.SendTransactionFailed(err)
	}
	return sig, nil
}

type signatureStatus struct {
	ConfirmationStatus string      `json:"confirmationStatus"`
	Err                 interface{} `json:"err"`
}

// ConfirmTransaction polls getSignatureStatuses until sig reaches at
// least "confirmed" status or the context is cancelled, accumulating
// every transient poll failure into a single multierror rather than
// returning only the last one seen.
func (c *Client) ConfirmTransaction(ctx context.Context, sig string) error {
	var errsSeen *multierror.Error
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			errsSeen = multierror.Append(errsSeen, ctx.Err())
			return errs.ConfirmingTransactionFailed(errsSeen.ErrorOrNil())
		case <-ticker.C:
			var result struct {
				Value []*signatureStatus `json:"value"`
			}
			if err := c.call(ctx, "getSignatureStatuses", []interface{}{[]string{sig}}, &result); err != nil {
				errsSeen = multierror.Append(errsSeen, err)
				continue
			}
			if len(result.Value) == 0 || result.Value[0] == nil {
				continue
			}
			status := result.Value[0]
			if status.Err != nil {
				return errs.ConfirmingTransactionFailed(fmt.Errorf("transaction failed on-chain: %v", status.Err))
			}
			if status.ConfirmationStatus == "confirmed" || status.ConfirmationStatus == "finalized" {
				return nil
			}
		}
	}
}

// Package explorer implements the collaborator contracts against a
// Blockstream-style block explorer REST API: UTXO listing, fee-rate tiers
// and transaction broadcast. It is a thin request/response wrapper; no core
// logic depends on it.
package explorer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"btcforge/errors"
	"btcforge/jsonx"
	"btcforge/logx"
	"btcforge/types"
)

// DefaultBaseURL points at the public mainnet Blockstream API.
const DefaultBaseURL = "https://blockstream.info/api"

// Confirmation targets (in blocks) backing the three fee tiers.
const (
	fastTarget   = 2
	mediumTarget = 6
	slowTarget   = 144
)

// Client talks to one explorer endpoint. It implements
// interfaces.UTXOSource, interfaces.FeeEstimator and interfaces.Broadcaster.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL, falling back to the public
// endpoint when baseURL is empty.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// utxoResponse mirrors the explorer's address UTXO payload.
type utxoResponse struct {
	Txid   string `json:"txid"`
	Vout   uint32 `json:"vout"`
	Value  uint64 `json:"value"`
	Status struct {
		Confirmed bool `json:"confirmed"`
	} `json:"status"`
	ScriptPubKey string `json:"script_pubkey"`
}

// ListUTXOs fetches the unspent outputs of an address.
func (c *Client) ListUTXOs(ctx context.Context, address string) ([]types.UTXO, error) {
	url := fmt.Sprintf("%s/address/%s/utxo", c.baseURL, address)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var raw []utxoResponse
	if err := jsonx.Unmarshal(body, &raw); err != nil {
		return nil, errors.NewErrorf(errors.ErrCodeExplorerUnavailable,
			"explorer returned malformed UTXO payload: %v", err)
	}

	utxos := make([]types.UTXO, len(raw))
	for i, u := range raw {
		utxos[i] = types.UTXO{
			Txid:         u.Txid,
			Vout:         u.Vout,
			Value:        u.Value,
			Confirmed:    u.Status.Confirmed,
			ScriptPubKey: u.ScriptPubKey,
		}
	}
	return utxos, nil
}

// EstimateFee fetches the explorer's confirmation-target fee map and folds
// it into the three tiers the API exposes. When an exact target is missing
// the nearest not-larger target is used.
func (c *Client) EstimateFee(ctx context.Context) (*types.FeeEstimate, error) {
	body, err := c.get(ctx, c.baseURL+"/fee-estimates")
	if err != nil {
		return nil, err
	}

	estimates := map[string]float64{}
	if err := jsonx.Unmarshal(body, &estimates); err != nil {
		return nil, errors.NewErrorf(errors.ErrCodeExplorerUnavailable,
			"explorer returned malformed fee estimates: %v", err)
	}
	if len(estimates) == 0 {
		return nil, errors.NewError(errors.ErrCodeExplorerUnavailable,
			"explorer returned no fee estimates")
	}

	return &types.FeeEstimate{
		Fast:   tierRate(estimates, fastTarget),
		Medium: tierRate(estimates, mediumTarget),
		Slow:   tierRate(estimates, slowTarget),
	}, nil
}

// Broadcast submits signed transaction hex. The explorer responds with the
// accepted txid as plain text, or a rejection reason on error.
func (c *Client) Broadcast(ctx context.Context, txHex string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tx", strings.NewReader(txHex))
	if err != nil {
		return "", errors.NewErrorf(errors.ErrCodeExplorerUnavailable, "building broadcast request: %v", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewErrorf(errors.ErrCodeExplorerUnavailable, "broadcast request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		logx.Warn("EXPLORER", "broadcast rejected: ", strings.TrimSpace(string(body)))
		return "", errors.NewErrorf(errors.ErrCodeBroadcastRejected,
			"broadcast rejected: %s", strings.TrimSpace(string(body)))
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewErrorf(errors.ErrCodeExplorerUnavailable, "building request: %v", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewErrorf(errors.ErrCodeExplorerUnavailable, "explorer request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewErrorf(errors.ErrCodeExplorerUnavailable, "reading explorer response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewErrorf(errors.ErrCodeExplorerUnavailable,
			"explorer returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// tierRate picks the rate for target, or the nearest smaller target when the
// explorer does not quote that exact block count.
func tierRate(estimates map[string]float64, target int) float64 {
	if rate, ok := estimates[strconv.Itoa(target)]; ok {
		return rate
	}

	targets := make([]int, 0, len(estimates))
	for k := range estimates {
		if n, err := strconv.Atoi(k); err == nil {
			targets = append(targets, n)
		}
	}
	sort.Ints(targets)

	best := 0.0
	for _, t := range targets {
		if t > target {
			break
		}
		best = estimates[strconv.Itoa(t)]
	}
	if best == 0 && len(targets) > 0 {
		best = estimates[strconv.Itoa(targets[0])]
	}
	return best
}

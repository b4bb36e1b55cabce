package service

import (
	"context"
	"time"

	"btcforge/chaincfg"
	"btcforge/errors"
	"btcforge/interfaces"
	"btcforge/logx"
	"btcforge/monitoring"
	"btcforge/signing"
	"btcforge/txbuild"
	"btcforge/types"
	"btcforge/wire"
)

// WalletService orchestrates the offline core (build, sign) and the
// explorer collaborators (UTXO listing, fee estimation, broadcast). Every
// call is a stateless transform of its arguments; history recording is a
// side channel that never influences results.
type WalletService struct {
	params  *chaincfg.Params
	utxos   interfaces.UTXOSource
	fees    interfaces.FeeEstimator
	caster  interfaces.Broadcaster
	history interfaces.HistoryStore
}

// NewWalletService wires the service. Any collaborator may be nil; the
// corresponding operations then fail with explorer_unavailable, and history
// recording is skipped.
func NewWalletService(params *chaincfg.Params, utxos interfaces.UTXOSource, fees interfaces.FeeEstimator,
	caster interfaces.Broadcaster, history interfaces.HistoryStore) *WalletService {
	return &WalletService{
		params:  params,
		utxos:   utxos,
		fees:    fees,
		caster:  caster,
		history: history,
	}
}

// CreateTransaction builds an unsigned transaction from the request.
func (s *WalletService) CreateTransaction(ctx context.Context, req *types.CreateTxRequest) (*types.TxResponse, error) {
	start := time.Now()
	defer monitoring.RecordRequestDuration("tx.create", time.Since(start))

	tx, err := txbuild.BuildUnsigned(req.Inputs, req.Outputs, s.params)
	if err != nil {
		monitoring.RecordRequestError(string(errors.CodeOf(err)))
		return nil, err
	}

	txHex := tx.SerializeHex()
	monitoring.IncreaseBuiltTxCount()
	s.record(&types.HistoryEntry{
		Txid:      tx.TxID(),
		Kind:      types.HistoryBuilt,
		TxHex:     txHex,
		Network:   s.params.Name,
		Timestamp: uint64(time.Now().Unix()),
	})
	return &types.TxResponse{TxHex: txHex}, nil
}

// SignTransaction signs every input of the supplied unsigned transaction,
// all-or-nothing. Key material is used transiently and never recorded.
func (s *WalletService) SignTransaction(ctx context.Context, req *types.SignTxRequest) (*types.TxResponse, error) {
	start := time.Now()
	defer monitoring.RecordRequestDuration("tx.sign", time.Since(start))

	signedHex, err := signing.SignTransaction(req.UnsignedTxHex, req.Inputs, s.params)
	if err != nil {
		monitoring.RecordRequestError(string(errors.CodeOf(err)))
		return nil, err
	}

	signedTx, err := wire.DeserializeHex(signedHex)
	if err != nil {
		monitoring.RecordRequestError(string(errors.CodeOf(err)))
		return nil, err
	}

	monitoring.IncreaseSignedTxCount()
	s.record(&types.HistoryEntry{
		Txid:      signedTx.TxID(),
		Kind:      types.HistorySigned,
		TxHex:     signedHex,
		Network:   s.params.Name,
		Timestamp: uint64(time.Now().Unix()),
	})
	return &types.TxResponse{TxHex: signedHex}, nil
}

// ListUTXOs passes an address through to the explorer.
func (s *WalletService) ListUTXOs(ctx context.Context, addr string) ([]types.UTXO, error) {
	if s.utxos == nil {
		return nil, errors.NewError(errors.ErrCodeExplorerUnavailable, "no UTXO source configured")
	}
	return s.utxos.ListUTXOs(ctx, addr)
}

// EstimateFee passes through to the explorer fee estimator.
func (s *WalletService) EstimateFee(ctx context.Context) (*types.FeeEstimate, error) {
	if s.fees == nil {
		return nil, errors.NewError(errors.ErrCodeExplorerUnavailable, "no fee estimator configured")
	}
	return s.fees.EstimateFee(ctx)
}

// Broadcast validates the hex parses as a transaction and submits it.
func (s *WalletService) Broadcast(ctx context.Context, txHex string) (*types.BroadcastResponse, error) {
	start := time.Now()
	defer monitoring.RecordRequestDuration("tx.broadcast", time.Since(start))

	if s.caster == nil {
		return nil, errors.NewError(errors.ErrCodeExplorerUnavailable, "no broadcaster configured")
	}
	tx, err := wire.DeserializeHex(txHex)
	if err != nil {
		monitoring.RecordRequestError(string(errors.CodeOf(err)))
		return nil, err
	}

	txid, err := s.caster.Broadcast(ctx, txHex)
	if err != nil {
		monitoring.RecordRequestError(string(errors.CodeOf(err)))
		return nil, err
	}

	monitoring.IncreaseBroadcastTxCount()
	s.record(&types.HistoryEntry{
		Txid:      tx.TxID(),
		Kind:      types.HistoryBroadcast,
		TxHex:     txHex,
		Network:   s.params.Name,
		Timestamp: uint64(time.Now().Unix()),
	})
	return &types.BroadcastResponse{Txid: txid}, nil
}

// History lists recorded entries, newest first.
func (s *WalletService) History(ctx context.Context, limit int) ([]*types.HistoryEntry, error) {
	if s.history == nil {
		return []*types.HistoryEntry{}, nil
	}
	return s.history.List(limit)
}

// record writes a history entry; failures are logged, never surfaced, so
// the core result is unaffected by storage problems.
func (s *WalletService) record(entry *types.HistoryEntry) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(entry); err != nil {
		logx.Warn("WALLET", "failed to record history entry for tx ", entry.Txid, ": ", err)
	}
}

// Package jsonrpc exposes the wallet service over JSON-RPC 2.0 via HTTP.
package jsonrpc

import (
	"context"
	"net/http"
	"strings"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"

	"btcforge/errors"
	"btcforge/logx"
	"btcforge/service"
	"btcforge/types"
)

// JSON-RPC error codes: client-side rule violations map to invalid params,
// everything else to internal error.
const (
	codeClientError   = -32602
	codeInternalError = -32603
)

// toJRPC2Error converts a service error into a jrpc2 error carrying the
// wallet error code as structured data.
func toJRPC2Error(err error) error {
	if err == nil {
		return nil
	}
	if we, ok := err.(*errors.WalletError); ok {
		return jrpc2.Errorf(jrpc2.Code(codeClientError), "%s", we.Message).WithData(we)
	}
	return jrpc2.Errorf(jrpc2.Code(codeInternalError), "%s", err.Error())
}

// --- Params/Results ---

type getUTXOsRequest struct {
	Address string `json:"address"`
}

type getUTXOsResponse struct {
	UTXOs []types.UTXO `json:"utxos"`
}

type broadcastRequest struct {
	TxHex string `json:"tx_hex"`
}

type historyRequest struct {
	Limit int `json:"limit"`
}

type historyResponse struct {
	Entries []*types.HistoryEntry `json:"entries"`
}

// --- Server ---

type Server struct {
	addr       string
	svc        *service.WalletService
	corsConfig CORSConfig
	httpServer *http.Server
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

func NewServer(addr string, svc *service.WalletService) *Server {
	return &Server{
		addr: addr,
		svc:  svc,
		corsConfig: CORSConfig{
			AllowedOrigins: []string{},
			AllowedMethods: []string{},
			AllowedHeaders: []string{},
		},
	}
}

// SetCORSConfig allows configuring CORS settings
func (s *Server) SetCORSConfig(config CORSConfig) {
	s.corsConfig = config
}

// Start serves the JSON-RPC bridge; it blocks until the listener fails or
// the server is shut down.
func (s *Server) Start() error {
	methods := s.buildMethodMap()
	jh := jhttp.NewBridge(methods, &jhttp.BridgeOptions{Server: &jrpc2.ServerOptions{}})

	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.setCORSHeaders(w, r)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		jh.ServeHTTP(w, r)
	}))

	s.httpServer = &http.Server{Addr: s.addr, Handler: mux}
	logx.Info("RPC", "JSON-RPC server listening on ", s.addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	if len(s.corsConfig.AllowedOrigins) == 0 {
		return
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range s.corsConfig.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			break
		}
	}
	if len(s.corsConfig.AllowedMethods) > 0 {
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(s.corsConfig.AllowedMethods, ", "))
	}
	if len(s.corsConfig.AllowedHeaders) > 0 {
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(s.corsConfig.AllowedHeaders, ", "))
	}
}

// Build jrpc2 method map
func (s *Server) buildMethodMap() handler.Map {
	return handler.Map{
		"tx.create": handler.New(func(ctx context.Context, p types.CreateTxRequest) (*types.TxResponse, error) {
			res, err := s.svc.CreateTransaction(ctx, &p)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return res, nil
		}),
		"tx.sign": handler.New(func(ctx context.Context, p types.SignTxRequest) (*types.TxResponse, error) {
			res, err := s.svc.SignTransaction(ctx, &p)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return res, nil
		}),
		"tx.broadcast": handler.New(func(ctx context.Context, p broadcastRequest) (*types.BroadcastResponse, error) {
			res, err := s.svc.Broadcast(ctx, p.TxHex)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return res, nil
		}),
		"tx.history": handler.New(func(ctx context.Context, p historyRequest) (*historyResponse, error) {
			entries, err := s.svc.History(ctx, p.Limit)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &historyResponse{Entries: entries}, nil
		}),
		"address.getutxos": handler.New(func(ctx context.Context, p getUTXOsRequest) (*getUTXOsResponse, error) {
			utxos, err := s.svc.ListUTXOs(ctx, p.Address)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return &getUTXOsResponse{UTXOs: utxos}, nil
		}),
		"fee.estimate": handler.New(func(ctx context.Context) (*types.FeeEstimate, error) {
			est, err := s.svc.EstimateFee(ctx)
			if err != nil {
				return nil, toJRPC2Error(err)
			}
			return est, nil
		}),
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/callmeahab/scent-variants/variants"
)

const (
	serviceName         = "fragrance.v1.VariantService"
	healthProcedure     = "/" + serviceName + "/Health"
	clusterProcedure    = "/" + serviceName + "/ClusterAndAnnotate"
	groupBrandProcedure = "/" + serviceName + "/GroupBrand"
)

type server struct {
	catalog   *CatalogStore // nil when the database is unavailable
	engine    *variants.Engine
	batchSize int
}

type clusterRequest struct {
	Variants []variants.FragranceVariant `json:"variants"`
}

type groupBrandRequest struct {
	BrandID string `json:"brand_id"`
}

func (s *server) Health(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	st, err := toStructPB(map[string]any{"status": "healthy"})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(st), nil
}

func (s *server) ClusterAndAnnotate(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	var in clusterRequest
	if err := fromStructPB(req.Msg, &in); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid variants payload: %w", err))
	}
	return s.run(ctx, "rpc", in.Variants)
}

func (s *server) GroupBrand(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	if s.catalog == nil {
		return nil, connect.NewError(connect.CodeUnavailable, errors.New("database not connected"))
	}
	var in groupBrandRequest
	if err := fromStructPB(req.Msg, &in); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if in.BrandID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("brand_id is required"))
	}

	batch, err := s.catalog.LoadBrand(ctx, in.BrandID, s.batchSize)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return s.run(ctx, "catalog", batch)
}

func (s *server) run(ctx context.Context, source string, batch []variants.FragranceVariant) (*connect.Response[structpb.Struct], error) {
	runID := uuid.NewString()
	started := time.Now()

	res, err := s.engine.ClusterAndAnnotate(ctx, batch)
	if err != nil {
		log.Error().Err(err).Str("run_id", runID).Msg("grouping failed")
		if ctx.Err() != nil {
			return nil, connect.NewError(connect.CodeCanceled, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	observeRun(source, started, res)
	log.Info().
		Str("run_id", runID).
		Str("source", source).
		Int("variants", len(batch)).
		Int("groups", len(res.Groups)).
		Int("skipped", len(res.Skipped)).
		Dur("took", time.Since(started)).
		Msg("grouping run complete")

	st, err := toStructPB(newGroupsResponse(runID, res))
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(st), nil
}

// handler builds the HTTP handler: Connect procedures and /metrics, wrapped in CORS and
// h2c for HTTP/2 without TLS.
func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(healthProcedure, connect.NewUnaryHandler(healthProcedure, s.Health))
	mux.Handle(clusterProcedure, connect.NewUnaryHandler(clusterProcedure, s.ClusterAndAnnotate))
	mux.Handle(groupBrandProcedure, connect.NewUnaryHandler(groupBrandProcedure, s.GroupBrand))
	mux.Handle("/metrics", promhttp.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Connect-Protocol-Version"},
		ExposedHeaders:   []string{"Grpc-Status", "Grpc-Message"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	return h2c.NewHandler(corsHandler.Handler(mux), &http2.Server{})
}

func runConnectServer(ctx context.Context, cfg Config) error {
	initMetrics()

	s := &server{
		engine:    variants.NewEngine(variants.WithWorkers(cfg.Workers), variants.WithLogger(log.Logger)),
		batchSize: cfg.BatchSize,
	}

	db, err := connectDB(cfg.DatabaseURL)
	if err == nil {
		if err = db.PingContext(ctx); err != nil {
			db.Close()
		}
	}
	if err != nil {
		log.Warn().Err(err).Msg("database unavailable, GroupBrand disabled")
	} else {
		log.Info().Msg("database connected")
		defer db.Close()
		s.catalog = NewCatalogStore(db)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("ConnectRPC server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/exchange-chat-service/internal/config"
	"github.com/s21platform/exchange-chat-service/internal/databus/exchange"
	"github.com/s21platform/exchange-chat-service/internal/databus/match"
	api "github.com/s21platform/exchange-chat-service/internal/generated"
	"github.com/s21platform/exchange-chat-service/internal/hub"
	"github.com/s21platform/exchange-chat-service/internal/infra"
	"github.com/s21platform/exchange-chat-service/internal/pkg/access"
	"github.com/s21platform/exchange-chat-service/internal/pkg/jwt"
	"github.com/s21platform/exchange-chat-service/internal/pkg/validator"
	"github.com/s21platform/exchange-chat-service/internal/relay"
	db "github.com/s21platform/exchange-chat-service/internal/repository/postgres"
	"github.com/s21platform/exchange-chat-service/internal/rest"
	"github.com/s21platform/exchange-chat-service/internal/service"
	"github.com/s21platform/exchange-chat-service/pkg/notification"
)

const (
	exchangeAcceptedConsumerGroupID = "exchange-chat-room-provisioner"
	matchFoundConsumerGroupID       = "exchange-chat-match-notifier"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.JWT.Secret)
	guard := access.New(dbRepo)

	realtimeHub := hub.New(cfg.Hub, dbRepo, guard, vldtr, jwtGenerator, logger)

	ctx := context.WithValue(context.Background(), config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)
	go realtimeHub.Run(ctx)

	notificationRelay := relay.New(realtimeHub)

	notificationService := service.New(notificationRelay)
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			infra.AuthInterceptorGRPC(cfg.JWT.Secret),
			infra.LoggerGRPC(logger),
		),
	)
	notification.RegisterNotificationServiceServer(grpcServer, notificationService)

	exchangeConsumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.ExchangeAcceptedTopic,
		exchangeAcceptedConsumerGroupID,
	)
	exchangeConsumer, err := kafkalib.NewConsumer(exchangeConsumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create exchange consumer: %v", err))
	}
	exchangeHandler := exchange.New(dbRepo, notificationRelay)
	exchangeConsumer.RegisterHandler(ctx, exchangeHandler.Handler)

	matchConsumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.MatchFoundTopic,
		matchFoundConsumerGroupID,
	)
	matchConsumer, err := kafkalib.NewConsumer(matchConsumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create match consumer: %v", err))
	}
	matchHandler := match.New(notificationRelay)
	matchConsumer.RegisterHandler(ctx, matchHandler.Handler)

	handler := rest.New(dbRepo, guard, vldtr, jwtGenerator)
	router := chi.NewRouter()

	// The websocket endpoint authenticates with a connect token in the query
	// string instead of the bearer header, so it stays outside the auth group.
	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		})
		r.Get("/api/chat/ws", realtimeHub.ServeWS)
	})

	router.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return infra.AuthInterceptorHTTP(next, cfg.JWT.Secret)
		})
		r.Use(func(next http.Handler) http.Handler {
			return infra.LoggerHTTP(next, logger)
		})

		api.HandlerFromMux(handler, r)
	})

	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}

package httpserver

import (
	"context"
	"fmt"

	"sg-console-srv/config"
	"sg-console-srv/internal/actionlog"
	kafkaProducer "sg-console-srv/internal/actionlog/delivery/kafka/producer"
	rabbitProducer "sg-console-srv/internal/actionlog/delivery/rabbitmq/producer"
	actionlogPostgre "sg-console-srv/internal/actionlog/repository/postgre"
	actionlogUsecase "sg-console-srv/internal/actionlog/usecase"
	lookupRedis "sg-console-srv/internal/lookup/repository/redis"
	lookupUsecase "sg-console-srv/internal/lookup/usecase"
)

// setupCoreDomains builds the usecases shared by the entity domains: the action log
// recorder and the cross-entity lookup.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	repo := actionlogPostgre.New(srv.postgresDB, srv.l)
	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate action log: %w", err)
	}

	if srv.minioClient == nil {
		srv.l.Warnf(ctx, "MinIO not configured, action log export is disabled")
	}
	srv.actionLogUC = actionlogUsecase.New(srv.l, repo, srv.newActionProducer(ctx), srv.minioClient, actionlogUsecase.Config{
		ExportBucket: srv.config.MinIO.Bucket,
		ExportLimit:  srv.config.MinIO.ExportLimit,
		ExportExpiry: srv.config.MinIO.ExportExpiry,
	})

	cacheRepo := lookupRedis.New(srv.redisClient, srv.l, srv.config.Redis.LookupTTL)
	srv.lookupUC = lookupUsecase.New(srv.l, srv.sgs, cacheRepo)

	srv.l.Infof(ctx, "Core domains (ActionLog, Lookup) initialized")
	return nil
}

// newActionProducer returns the publisher for events.transport, or nil when that bus
// is unavailable.
func (srv *HTTPServer) newActionProducer(ctx context.Context) actionlog.Producer {
	switch srv.config.Events.Transport {
	case config.TransportRabbitMQ:
		if srv.rabbitChannel == nil {
			break
		}
		p, err := rabbitProducer.New(srv.l, srv.rabbitChannel, srv.config.RabbitMQ.Exchange)
		if err != nil {
			srv.l.Warnf(ctx, "httpserver.newActionProducer: %v", err)
			break
		}
		return p
	default:
		if srv.kafkaProducer != nil {
			return kafkaProducer.New(srv.l, srv.kafkaProducer)
		}
	}

	srv.l.Warnf(ctx, "No %s publisher configured, action events will not be published", srv.config.Events.Transport)
	return nil
}

package app

import (
	"context"
	"fmt"

	"github.com/kapu/appsflyer-remote-command-go/internal/bridge"
	"github.com/kapu/appsflyer-remote-command-go/internal/command"
	"github.com/kapu/appsflyer-remote-command-go/internal/config"
	"github.com/kapu/appsflyer-remote-command-go/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container bundles the assembled bridge and remote command.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Redis         *redis.Client
	RemoteCommand *command.RemoteCommand
	Conversions   *command.ConversionListener

	commandsConsumer  *bridge.Consumer
	callbacksConsumer *bridge.Consumer
	closers           []func()
}

// Build connects to Redis and wires the tracker adapter, remote command and
// queue consumers. Anything opened before a failure is closed again.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	client, err := bridge.NewRedisClient(ctx, bridge.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closers = append(closers, func() {
		_ = client.Close()
	})

	breaker := bridge.NewBreaker(cfg.Bridge.BreakerThreshold, cfg.Bridge.BreakerResetTimeout, logger)
	publisher := bridge.NewPublisher(client, cfg.Bridge.PublishTimeout, logger, bridge.WithBreaker(breaker))

	tracker := bridge.NewTracker(publisher, bridge.TrackerConfig{
		Queue:  cfg.Bridge.OperationsQueue,
		DevKey: cfg.AppsFlyer.DevKey,
	}, logger)

	remoteCommand, err := command.NewRemoteCommand(&command.Dependencies{
		Tracker: tracker,
		Logger:  logger,
	}, command.WithID(cfg.Command.ID), command.WithDescription(cfg.Command.Description))
	if err != nil {
		return nil, fmt.Errorf("failed to create remote command: %w", err)
	}

	hostEvents := bridge.NewHostEvents(publisher, cfg.Bridge.HostEventsQueue, logger)
	conversions := command.NewConversionListener(hostEvents, logger)
	router := bridge.NewCallbackRouter(conversions, logger)

	commandsConsumer := bridge.NewConsumer(client, cfg.Bridge.CommandsQueue, cfg.Bridge.PollTimeout,
		func(_ context.Context, data []byte) error {
			return remoteCommand.InvokeJSON(data)
		}, logger)
	callbacksConsumer := bridge.NewConsumer(client, cfg.Bridge.CallbacksQueue, cfg.Bridge.PollTimeout, router.Handle, logger)

	logger.Info("Remote command assembled",
		zap.String("id", remoteCommand.ID()),
		zap.Int("commands", remoteCommand.Registry().Count()),
		zap.Int("standard_events", domain.StandardEventCount()),
		zap.String("operations_queue", cfg.Bridge.OperationsQueue),
	)

	return &Container{
		Config:            cfg,
		Logger:            logger,
		Redis:             client,
		RemoteCommand:     remoteCommand,
		Conversions:       conversions,
		commandsConsumer:  commandsConsumer,
		callbacksConsumer: callbacksConsumer,
		closers:           closers,
	}, nil
}

// NewRunner returns a runner feeding payloads into the assembled command.
func (c *Container) NewRunner() (*Runner, error) {
	if c == nil || c.RemoteCommand == nil {
		return nil, fmt.Errorf("remote command not initialized")
	}
	return NewRunner(c.RemoteCommand, c.Config.Worker.Concurrency, c.Logger,
		c.commandsConsumer, c.callbacksConsumer), nil
}

// Close releases the Redis connection.
func (c *Container) Close() {
	if c == nil {
		return
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

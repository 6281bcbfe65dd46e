package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/jitter"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const (
	notificationWait  = 30 * time.Second
	reconnectBase     = 2 * time.Second
	reconnectMaxDelay = time.Minute
)

// OutboxWorker отправляет события из outbox в Kafka.
// Будится по NOTIFY и по таймеру, чтобы подобрать события, отложенные после ошибки.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	cfg       *cfg.OutboxCfg
	dbConnStr string
	wake      chan struct{}
	stop      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	now       func() time.Time
}

// NewOutboxWorker: пустой dbConnStr отключает LISTEN, остаётся только опрос по таймеру.
func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	cfg *cfg.OutboxCfg,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		cfg:       cfg,
		dbConnStr: dbConnStr,
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
		now:       time.Now,
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		<-w.stop
		cancel()
	}()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()

	if w.dbConnStr != "" {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.listenOutboxNotifications(ctx)
		}()
	}
}

// Stop останавливает воркер и ждёт завершения текущей пачки.
func (w *OutboxWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *OutboxWorker) run(ctx context.Context) {
	// Обрабатываем "остатки" при старте
	w.logger.Infof("Draining pending outbox events on startup...")
	w.drain(ctx)

	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Outbox worker stopped")
			return
		case <-ticker.C:
			w.drain(ctx)
		case <-w.wake:
			w.logger.Debugf("Received outbox notification, draining outbox events")
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) drain(ctx context.Context) {
	for ctx.Err() == nil {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("Batch processing failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

func (w *OutboxWorker) notify() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	for attempt := 0; ctx.Err() == nil; attempt++ {
		if err := w.listen(ctx); err != nil && ctx.Err() == nil {
			delay := jitter.ExponentialBackoff(reconnectBase, reconnectMaxDelay, attempt, jitter.DefaultJitter)
			w.logger.Warnf("LISTEN %s failed: %v. Reconnecting in %s", usecase.OutboxChannel, err, delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
			continue
		}
		attempt = 0
	}
}

// listen держит соединение с LISTEN до ошибки или отмены ctx.
func (w *OutboxWorker) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, w.dbConnStr)
	if err != nil {
		return e.Wrap("failed to connect for LISTEN", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{usecase.OutboxChannel}.Sanitize()); err != nil {
		return e.Wrap("failed to LISTEN", err)
	}
	w.logger.Infof("Subscribed to '%s' channel", usecase.OutboxChannel)

	// события, записанные пока соединения не было
	w.notify()

	for {
		waitCtx, cancel := context.WithTimeout(ctx, notificationWait)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			return err
		}

		if notif != nil && notif.Channel == usecase.OutboxChannel {
			w.notify()
		}
	}
}

// processBatch отправляет одну пачку. true, если пачка была полной и стоит запросить ещё.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, w.cfg.BatchSize)
	if err != nil {
		return false, err
	}

	for _, event := range events {
		if err := w.producer.WriteEvent(ctx, event); err != nil {
			w.fail(ctx, event, err)
			continue
		}
		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("mark processed failed: %v", err)
		}
	}

	return len(events) == w.cfg.BatchSize, nil
}

// fail возвращает событие в очередь с экспоненциальной задержкой по числу попыток.
func (w *OutboxWorker) fail(ctx context.Context, event *usecase.OutboxEvent, sendErr error) {
	delay := jitter.ExponentialBackoff(w.cfg.BaseBackoff, w.cfg.MaxBackoff, max(event.Attempts-1, 0), jitter.DefaultJitter)

	if isRetryableError(sendErr) {
		w.logger.Warnf("Temporary Kafka failure for event %s (attempt %d), retry in %s: %v", event.EventID, event.Attempts, delay, sendErr)
	} else {
		w.logger.Errorf(sendErr, "Kafka failure for event %s (attempt %d), retry in %s", event.EventID, event.Attempts, delay)
	}

	if err := w.repo.MarkAsFailed(ctx, event.ID, w.now().Add(delay)); err != nil {
		w.logger.Warnf("mark failed failed: %v", err)
	}
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"leader not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}

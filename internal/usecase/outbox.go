package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OutboxChannel: канал NOTIFY, по которому воркер узнаёт о новых событиях.
const OutboxChannel = "outbox_pending"

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductUpserted         OutboxEventType = "product.upserted"
	ProductDiscountsChanged OutboxEventType = "product.discounts_changed"
	SettingsUpdated         OutboxEventType = "settings.updated"
	OrderPlaced             OutboxEventType = "order.placed"
	OrderStatusChanged      OutboxEventType = "order.status_changed"
)

// OutboxEvent — событие, записанное в одной транзакции с изменением и отправляемое в Kafka воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	AggregateID int64
	Payload     []byte // JSON
	Status      OutboxStatus
	Attempts    int
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// NewOutboxEvent формирует событие со сгенерированным EventID. data сериализуется в JSON.
func NewOutboxEvent(eventType OutboxEventType, aggregateID int64, data any) (*OutboxEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:     uuid.NewString(),
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Key возвращает ключ сообщения Kafka. События одного агрегата попадают в одну партицию.
func (o *OutboxEvent) Key() []byte {
	aggregate, _, _ := strings.Cut(string(o.EventType), ".")
	return []byte(aggregate + ":" + strconv.FormatInt(o.AggregateID, 10))
}

// writeOutboxEvent пишет событие в outbox в транзакции из ctx.
func writeOutboxEvent(ctx context.Context, repo OutboxRepository, eventType OutboxEventType, aggregateID int64, data any) (*OutboxEvent, error) {
	event, err := NewOutboxEvent(eventType, aggregateID, data)
	if err != nil {
		return nil, err
	}

	return repo.Create(ctx, event)
}

package service

import (
	"context"
	"log"
	"time"

	"NovaCom/internal/pkg"
	"NovaCom/internal/repository/mysql"
)

type Sender func(ctx context.Context, row *mysql.OutboxRow) error

// OutboxRelayer 定时扫描 outbox 表，把待投递事件交给 sender
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      mysql.NewOutboxRepository(),
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run 启动投递循环，ctx 取消时退出
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

// drainOnce 投递一批；失败的记重试，下轮继续
func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		row := rows[i]
		if err = r.sender(ctx, &row); err != nil {
			_ = r.repo.RetryUpdate(ctx, row.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, row.ID)
	}
}

// KafkaSender 按 actor id 分区投递到 kafka
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, row *mysql.OutboxRow) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(row.ActorID), []byte(row.Payload))
	}
}

// LogSender 默认 sender（占位）：kafka 不可用时只打印
func LogSender(ctx context.Context, row *mysql.OutboxRow) error {
	log.Printf("OUTBOX SEND type=%s actor=%d target=%d community=%d payload=%s",
		row.EventType, row.ActorID, row.TargetID, row.CommunityID, row.Payload)
	return nil
}

package service

import (
	"context"
	"log"
	"time"

	"NovaCom/internal/model"
	"NovaCom/internal/store"
)

// Persister 持久化协作方。每次成功的写操作之后，服务层把当前完整快照
// 连同本次产生的领域事件交给它；实现负责原子落库。
type Persister interface {
	Flush(ctx context.Context, snap store.Snapshot, events ...model.SocialEvent) error
}

const flushTimeout = 5 * time.Second

// flush 变更成功后同步落库；落库失败只记日志，内存态仍是权威数据
func flush(st *store.Store, p Persister, events ...model.SocialEvent) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := p.Flush(ctx, st.Snapshot(), events...); err != nil {
		log.Printf("snapshot flush failed: %v", err)
	}
}

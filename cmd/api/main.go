package main

import (
	"context"
	"log"

	"NovaCom/internal/pkg"
	"NovaCom/internal/repository/mysql"
	"NovaCom/internal/repository/redis"
	"NovaCom/internal/router"
	"NovaCom/internal/service"
	"NovaCom/internal/store"
)

func main() {
	dsn := "user:password@tcp(127.0.0.1:3306)/novacom?charset=utf8mb4&parseTime=True"
	if err := mysql.InitDB(dsn); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init("127.0.0.1:6379", "", 0); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(mysql.AllRows()...); err != nil {
		panic(err)
	}

	// 启动时从快照恢复内存态
	st := store.New()
	snapRepo := mysql.NewSnapshotRepository()
	snap, err := snapRepo.Load(context.Background())
	if err != nil {
		panic(err)
	}
	st.Hydrate(snap)

	// 邮件配置
	emailCfg := pkg.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "no-reply@example.com",
		Password: "changeme",
		From:     "NoReply <no-reply@example.com>",
	}

	// outbox 投递到 kafka
	producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
		Brokers: []string{"127.0.0.1:9092"},
		Topic:   "social-events",
	})
	sender := service.LogSender
	if err == nil {
		defer producer.Close()
		sender = service.KafkaSender(producer)
	} else {
		log.Printf("kafka unavailable, fallback to log sender: %v", err)
	}

	relayCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(sender).Run(relayCtx)

	// Gin
	r := router.InitRouter(st, snapRepo, emailCfg)
	if err := r.Run(":8080"); err != nil {
		return
	}
}

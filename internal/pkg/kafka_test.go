package pkg_test

import (
	"testing"

	"NovaCom/internal/pkg"

	"github.com/stretchr/testify/assert"
)

func TestNewKafkaProducerNoBrokers(t *testing.T) {
	t.Parallel()

	_, err := pkg.NewKafkaProducer(pkg.KafkaConfig{Topic: "social-events"})
	assert.Error(t, err)
}

func TestNewKafkaProducerUnreachableBroker(t *testing.T) {
	t.Parallel()

	// 1 端口没有监听者，拨号立刻被拒
	_, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
		Brokers: []string{"127.0.0.1:1"},
		Topic:   "social-events",
	})
	assert.Error(t, err)
}

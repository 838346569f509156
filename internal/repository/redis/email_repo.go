package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	EmailCodePrefix     = "email:code"

	// 两阶段键：先写 pending，邮件发出去之后才转 confirmed
	PendingSuffix   = "pending"
	ConfirmedSuffix = "confirmed"
)

var (
	ErrEmailNotFound       = errors.New("email code not found")
	ErrEmailCodeDelFailed  = errors.New("email code delete failed")
	ErrCodePendingFailed   = errors.New("code pending failed")
	ErrCodeConfirmedFailed = errors.New("code confirmed failed")
)

// EmailRepository 验证码存储，scope 为 register / reset
type EmailRepository struct{}

func codeKey(scope, stage, email string) string {
	return fmt.Sprintf("%s:%s:%s:%s", EmailCodePrefix, scope, stage, email)
}

// PutPending 写入 pending 键，带 TTL
func (e *EmailRepository) PutPending(scope, email, code string) error {
	if err := Client.Set(context.Background(), codeKey(scope, PendingSuffix, email), code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrCodePendingFailed
	}
	return nil
}

// Confirm 用 lua 原子地把 pending 转成 confirmed：取值+写目标+设 TTL+删源
func (e *EmailRepository) Confirm(scope, email string) error {
	srcKey := codeKey(scope, PendingSuffix, email)
	dstKey := codeKey(scope, ConfirmedSuffix, email)

	script := `
local val = redis.call("GET", KEYS[1])
if not val then
  return 0
end
redis.call("SET", KEYS[2], val, "PX", ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`
	px := int64(DefaultEmailCodeTTL / time.Millisecond)
	res := Client.Eval(context.Background(), script, []string{srcKey, dstKey}, px)
	if err := res.Err(); err != nil {
		return ErrCodeConfirmedFailed
	}
	ok, _ := res.Int()
	if ok != 1 {
		return ErrCodeConfirmedFailed
	}
	return nil
}

// DeletePending 发信失败后的清理（幂等）
func (e *EmailRepository) DeletePending(scope, email string) error {
	if err := Client.Del(context.Background(), codeKey(scope, PendingSuffix, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}

// GetConfirmed 校验时读 confirmed 键
func (e *EmailRepository) GetConfirmed(scope, email string) (string, error) {
	val, err := Client.Get(context.Background(), codeKey(scope, ConfirmedSuffix, email)).Result()
	if err != nil {
		return "", ErrEmailNotFound
	}
	return val, nil
}

// DeleteConfirmed 验证码一次性消费
func (e *EmailRepository) DeleteConfirmed(scope, email string) error {
	if err := Client.Del(context.Background(), codeKey(scope, ConfirmedSuffix, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}

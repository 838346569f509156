package service

import (
	"NovaCom/internal/pkg"
	"NovaCom/internal/repository/redis"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendCode 发送验证码，scope 为 register / reset。
// 先写 pending，邮件真正发出后才转 confirmed，发信失败时清理 pending。
func (s *EmailService) SendCode(scope, email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err = s.rds.PutPending(scope, email, code); err != nil {
		return err
	}

	subject := "注册验证码"
	title := "注册验证"
	if scope == "reset" {
		subject = "密码重置验证码"
		title = "重置密码"
	}
	html := pkg.EmailCodeHTML(title, code, redis.DefaultEmailCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, subject, html); err != nil {
		_ = s.rds.DeletePending(scope, email)
		return err
	}

	if err = s.rds.Confirm(scope, email); err != nil {
		_ = s.rds.DeletePending(scope, email)
		return err
	}
	return nil
}

// VerifyCode 校验验证码并一次性删除
func (s *EmailService) VerifyCode(scope, email, code string) (bool, error) {
	val, err := s.rds.GetConfirmed(scope, email)
	if err != nil {
		// 不存在或已过期
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteConfirmed(scope, email); err != nil {
		return false, err
	}
	return true, nil
}

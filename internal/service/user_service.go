package service

import (
	"context"
	"errors"

	"NovaCom/internal/model"
	"NovaCom/internal/pkg"
	"NovaCom/internal/repository/redis"
	"NovaCom/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

type UserService struct {
	st       *store.Store
	persist  Persister
	rSession *redis.SessionRepository
	rCache   *redis.RecCacheRepository
	emailSvc *EmailService
}

func NewUserService(st *store.Store, p Persister, emailSvc *EmailService) *UserService {
	return &UserService{
		st:       st,
		persist:  p,
		rSession: &redis.SessionRepository{},
		rCache:   redis.NewRecCacheRepository(),
		emailSvc: emailSvc,
	}
}

// Register 校验邮箱验证码后注册；用户名冲突整体拒绝，不分配 id
func (s *UserService) Register(username, password, email, code string, avatarURL string, tags []string) (uint64, error) {
	ok, err := s.emailSvc.VerifyCode("register", email, code)
	if err != nil || !ok {
		return 0, errors.New("verification failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	id, err := s.st.CreateUser(username, email, string(hash), avatarURL, tags)
	if err != nil {
		return 0, err
	}
	flush(s.st, s.persist)
	return id, nil
}

func (s *UserService) Login(username, password string) (*pkg.Pair, error) {
	user, ok := s.st.FindByUsername(username)
	if !ok {
		return nil, ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidPassword
	}
	// token 写入 redis，同一用户只保留最新一次登录
	token, err := pkg.GeneratePair(user.ID)
	if err != nil {
		return nil, err
	}
	if err = s.rSession.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(usrID uint64) error {
	return s.rSession.DeleteUserToken(usrID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

// ChangePassword 登录态修改密码，成功后使当前会话失效
func (s *UserService) ChangePassword(usrID uint64, oldPassword, newPassword string) error {
	user, ok := s.st.GetUser(usrID)
	if !ok {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.st.UpdatePassword(usrID, string(hash))
	flush(s.st, s.persist)
	return s.Logout(usrID)
}

// ResetPassword 忘记密码：邮箱验证码换新密码
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyCode("reset", email, code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}
	user, found := s.st.FindByEmail(email)
	if !found {
		return ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.st.UpdatePassword(user.ID, string(hash))
	flush(s.st, s.persist)
	return nil
}

func (s *UserService) Profile(usrID uint64) (model.User, error) {
	user, ok := s.st.GetUser(usrID)
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(usrID uint64, email, avatarURL string, tags []string) error {
	if !s.st.UpdateProfile(usrID, email, avatarURL, tags) {
		return ErrUserNotFound
	}
	flush(s.st, s.persist)
	return nil
}

// DeleteAccount 注销：好友图与所有社区角色级联清理，会话与推荐缓存一并失效
func (s *UserService) DeleteAccount(usrID uint64) error {
	friends := s.st.Friends(usrID)
	if !s.st.DeleteUser(usrID) {
		return ErrUserNotFound
	}
	_ = s.rSession.DeleteUserToken(usrID)

	affected := make([]uint64, 0, len(friends)+1)
	affected = append(affected, usrID)
	for _, f := range friends {
		affected = append(affected, f.ID)
	}
	s.rCache.Invalidate(context.Background(), affected...)

	flush(s.st, s.persist, model.SocialEvent{Type: model.EventUserDeleted, ActorID: usrID, TargetID: usrID})
	return nil
}

// Search 用户名子串 + 标签过滤
func (s *UserService) Search(query, tagFilter string) []model.User {
	return s.st.SearchUsers(query, tagFilter)
}

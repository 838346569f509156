package service

import (
	"NovaCom/internal/model"
	"NovaCom/internal/store"
)

type ModerationService struct {
	st      *store.Store
	persist Persister
}

func NewModerationService(st *store.Store, p Persister) *ModerationService {
	return &ModerationService{st: st, persist: p}
}

// Promote 仅 Owner 可把普通成员提升为 Admin
func (s *ModerationService) Promote(commID, actorID, targetID uint64) error {
	if err := s.st.PromoteAdmin(commID, actorID, targetID); err != nil {
		return err
	}
	flush(s.st, s.persist)
	return nil
}

func (s *ModerationService) Demote(commID, actorID, targetID uint64) error {
	if err := s.st.DemoteAdmin(commID, actorID, targetID); err != nil {
		return err
	}
	flush(s.st, s.persist)
	return nil
}

// Transfer 所有权移交：actor 退为普通成员，目标成为 Owner
func (s *ModerationService) Transfer(commID, actorID, targetID uint64) error {
	if err := s.st.TransferOwnership(commID, actorID, targetID); err != nil {
		return err
	}
	flush(s.st, s.persist, model.SocialEvent{
		Type: model.EventSuccession, ActorID: actorID, TargetID: targetID, CommunityID: commID,
	})
	return nil
}

// Ban 封禁：Owner 永不可封；Admin 不能封 Admin
func (s *ModerationService) Ban(commID, actorID, targetID uint64) error {
	if err := s.st.Ban(commID, actorID, targetID); err != nil {
		return err
	}
	flush(s.st, s.persist, model.SocialEvent{
		Type: model.EventBan, ActorID: actorID, TargetID: targetID, CommunityID: commID,
	})
	return nil
}

// Unban 解封只清封禁名单，不恢复成员身份
func (s *ModerationService) Unban(commID, actorID, targetID uint64) error {
	if err := s.st.Unban(commID, actorID, targetID); err != nil {
		return err
	}
	flush(s.st, s.persist, model.SocialEvent{
		Type: model.EventUnban, ActorID: actorID, TargetID: targetID, CommunityID: commID,
	})
	return nil
}

// DeleteMessage 管理删帖，目标不存在时幂等成功
func (s *ModerationService) DeleteMessage(commID, actorID, msgID uint64) error {
	if err := s.st.DeleteMessage(commID, actorID, msgID); err != nil {
		return err
	}
	flush(s.st, s.persist)
	return nil
}

// PinMessage 置顶开关，容量满时淘汰最旧的置顶
func (s *ModerationService) PinMessage(commID, actorID, msgID uint64) error {
	if err := s.st.PinMessage(commID, actorID, msgID); err != nil {
		return err
	}
	flush(s.st, s.persist)
	return nil
}

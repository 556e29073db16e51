package service

import (
	"context"
	"testing"

	"culturebridge/internal/model"
	"culturebridge/internal/repository"
)

// fakeConversationRepo keeps histories in memory.
type fakeConversationRepo struct {
	histories map[string][]model.Message
}

var _ repository.ConversationRepository = (*fakeConversationRepo)(nil)

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{histories: make(map[string][]model.Message)}
}

func (f *fakeConversationRepo) GetHistory(ctx context.Context, sessionID string) ([]model.Message, error) {
	return f.histories[sessionID], nil
}

func (f *fakeConversationRepo) AppendMessages(ctx context.Context, sessionID string, messages ...model.Message) error {
	f.histories[sessionID] = append(f.histories[sessionID], messages...)
	return nil
}

func (f *fakeConversationRepo) ClearHistory(ctx context.Context, sessionID string) error {
	delete(f.histories, sessionID)
	return nil
}

func TestRespondNeedsMoreInfoEarly(t *testing.T) {
	fake := &fakeLLM{chatReply: "그랬군요, 더 자세히 말씀해 주세요"}
	svc := NewChatService(fake, newFakeConversationRepo())

	reply, err := svc.Respond(context.Background(), "", "교수님이 밥 먹었냐고 물어봤어요", nil, "ko")
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if !reply.NeedsMoreInfo {
		t.Error("an opening message must need more info")
	}
	if reply.Message.Role != model.RoleAssistant || reply.Message.Content == "" {
		t.Errorf("unexpected reply message %+v", reply.Message)
	}
}

func TestRespondEnoughContext(t *testing.T) {
	fake := &fakeLLM{chatReply: "이제 분석을 시작할 수 있어요"}
	svc := NewChatService(fake, newFakeConversationRepo())

	history := []model.Message{
		{Role: model.RoleUser, Content: "첫 번째"},
		{Role: model.RoleAssistant, Content: "공감"},
		{Role: model.RoleUser, Content: "두 번째"},
	}
	reply, err := svc.Respond(context.Background(), "", "세 번째", history, "ko")
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if reply.NeedsMoreInfo {
		t.Error("three prior turns plus the new one must be enough context")
	}
}

func TestRespondPersistsSession(t *testing.T) {
	fake := &fakeLLM{chatReply: "공감합니다"}
	repo := newFakeConversationRepo()
	svc := NewChatService(fake, repo)

	if _, err := svc.Respond(context.Background(), "session-1", "안녕하세요", nil, "ko"); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}

	saved := repo.histories["session-1"]
	if len(saved) != 2 {
		t.Fatalf("expected 2 persisted turns, got %d", len(saved))
	}
	if saved[0].Role != model.RoleUser || saved[1].Role != model.RoleAssistant {
		t.Errorf("turns persisted out of order: %+v", saved)
	}
	if saved[0].ID == "" || saved[1].ID == "" {
		t.Error("persisted turns must carry ids")
	}
}

func TestRespondLoadsStoredHistory(t *testing.T) {
	fake := &fakeLLM{chatReply: "계속 들어볼게요"}
	repo := newFakeConversationRepo()
	repo.histories["session-2"] = []model.Message{
		{Role: model.RoleUser, Content: "a"},
		{Role: model.RoleAssistant, Content: "b"},
		{Role: model.RoleUser, Content: "c"},
	}
	svc := NewChatService(fake, repo)

	reply, err := svc.Respond(context.Background(), "session-2", "d", nil, "ko")
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if reply.NeedsMoreInfo {
		t.Error("the stored history must count toward the turn threshold")
	}
}

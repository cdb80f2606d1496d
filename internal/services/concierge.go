package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"gliitz-backend/internal/intent"
	"gliitz-backend/internal/models"
	"gliitz-backend/internal/reply"
	"gliitz-backend/internal/repository"
)

// historyFetchLimit: how many stored turns feed the context tracker. Wider
// than the tracker's own window so trimming stays its decision.
const historyFetchLimit = 20

// ConciergeService runs one chat turn end to end: load history, extract
// entities, merge context, pick and render a reply (or delegate to Gemini),
// persist both turns, notify websocket listeners.
type ConciergeService struct {
	convRepo  *repository.ConversationRepo
	venueRepo *repository.VenueRepo
	userRepo  *repository.UserRepo
	selector  *reply.Selector
	gemini    *GeminiService // nil when no API key is configured
	redis     *redis.Client
}

func NewConciergeService(
	convRepo *repository.ConversationRepo,
	venueRepo *repository.VenueRepo,
	userRepo *repository.UserRepo,
	selector *reply.Selector,
	gemini *GeminiService,
	redisClient *redis.Client,
) *ConciergeService {
	return &ConciergeService{
		convRepo:  convRepo,
		venueRepo: venueRepo,
		userRepo:  userRepo,
		selector:  selector,
		gemini:    gemini,
		redis:     redisClient,
	}
}

func (s *ConciergeService) HandleMessage(ctx context.Context, userID uuid.UUID, req models.ChatRequest) (*models.ChatResponse, error) {
	conv, err := s.resolveConversation(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	history, err := s.convRepo.ListMessages(ctx, conv.ID, historyFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	cur := intent.Extract(req.Message)
	merged := intent.MergeContext(history, cur)

	if merged.PartySize == 0 {
		if prefs, err := s.userRepo.GetPreferences(ctx, userID); err == nil {
			applyMemberDefaults(&merged, prefs)
		} else {
			log.Printf("preferences lookup failed for user %s: %v", userID, err)
		}
	}

	var (
		replyText  string
		intentName string
		delegated  bool
	)

	if s.gemini != nil && shouldDelegate(cur, req.Message) {
		if text, err := s.gemini.Chat(ctx, req.Message, history); err == nil {
			replyText = text
			intentName = "delegated"
			delegated = true
		} else {
			log.Printf("Gemini delegation failed, using fallback: %v", err)
		}
	}

	if replyText == "" {
		tpl := s.selector.Select(merged, cur, history)
		venues := s.venuesFor(ctx, merged)
		replyText = reply.Render(tpl, merged, venues)
		intentName = tpl.Intent
	}

	userMsg := &models.Message{ConversationID: conv.ID, Sender: models.SenderUser, Text: req.Message}
	if err := s.convRepo.AppendMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}
	assistantMsg := &models.Message{ConversationID: conv.ID, Sender: models.SenderAssistant, Text: replyText}
	if err := s.convRepo.AppendMessage(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to store assistant message: %w", err)
	}

	s.publishUpdate(ctx, userID, models.WSMessage{
		Type:    "assistant_reply",
		Payload: assistantMsg,
	})

	return &models.ChatResponse{
		ConversationID: conv.ID,
		Reply:          replyText,
		Intent:         intentName,
		Delegated:      delegated,
		Entities: models.ChatEntities{
			Services:  merged.RequestedServices,
			PartySize: merged.PartySize,
			Timeframe: merged.Timeframe,
			Moods:     merged.Moods,
		},
	}, nil
}

func (s *ConciergeService) resolveConversation(ctx context.Context, userID uuid.UUID, req models.ChatRequest) (*models.Conversation, error) {
	if req.ConversationID == nil {
		conv := &models.Conversation{UserID: userID, Title: conversationTitle(req.Message)}
		if err := s.convRepo.Create(ctx, conv); err != nil {
			return nil, fmt.Errorf("failed to create conversation: %w", err)
		}
		return conv, nil
	}

	conv, err := s.convRepo.GetByID(ctx, *req.ConversationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Message: "Conversation not found"}
		}
		return nil, err
	}
	if conv.UserID != userID {
		return nil, &ForbiddenError{Message: "Access denied"}
	}
	return conv, nil
}

// venuesFor fetches recommendation candidates for a single resolved service,
// mood-filtered when the context carries one. Multi-service and empty
// intents get no venue clause. Directory errors degrade to no
// recommendation, never to a failed turn.
func (s *ConciergeService) venuesFor(ctx context.Context, merged intent.Context) []models.Venue {
	if len(merged.RequestedServices) != 1 {
		return nil
	}
	category := merged.RequestedServices[0]

	var (
		venues []models.Venue
		err    error
	)
	if len(merged.Moods) > 0 {
		venues, err = s.venueRepo.ListByCategoryAndTag(ctx, category, merged.Moods[0], 3)
	} else {
		venues, err = s.venueRepo.ListByCategory(ctx, category, 3)
	}
	if err != nil {
		log.Printf("venue lookup failed for %q: %v", category, err)
		return nil
	}
	return venues
}

func (s *ConciergeService) publishUpdate(ctx context.Context, userID uuid.UUID, msg models.WSMessage) {
	data, _ := json.Marshal(msg)
	s.redis.Publish(ctx, models.UserUpdatesChannel(userID), string(data))
}

// applyMemberDefaults fills gaps the conversation never specified from the
// member's stored preferences. Anything said in the conversation wins.
func applyMemberDefaults(merged *intent.Context, prefs *models.Preferences) {
	if merged.PartySize == 0 && prefs.DefaultPartySize != nil && *prefs.DefaultPartySize > 0 {
		merged.PartySize = *prefs.DefaultPartySize
	}
}

// shouldDelegate: the rule engine recognized nothing, the message is not a
// plain greeting, and it is substantial enough that a canned clarification
// would feel dismissive.
func shouldDelegate(cur intent.Entities, message string) bool {
	if !cur.Empty() || cur.Greeting {
		return false
	}
	return len(strings.Fields(message)) >= 4
}

// conversationTitle derives a list label from the opening message.
func conversationTitle(message string) string {
	title := strings.TrimSpace(message)
	if title == "" {
		return "Nouvelle conversation"
	}
	runes := []rune(title)
	if len(runes) > 48 {
		return string(runes[:48]) + "…"
	}
	return title
}

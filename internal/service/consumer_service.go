package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/entity"
	"ai-recipe-be/internal/repository/specification"
	"ai-recipe-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// IConsumerService runs the catalog enrichment worker: every recorded
// suggestion that came back from the provider is filed as an
// ai_generated catalog recipe with its ingredient links.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.CatalogRecipeMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal catalog message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	query, err := uow.QueryHistoryRepository().FindOne(ctx, specification.ByID{ID: payload.QueryId})
	if err != nil {
		log.Printf("[ERROR] Failed to load query %s: %v", payload.QueryId, err)
		msg.Nack() // Retriable
		return
	}
	if query == nil || query.ResponseText == nil {
		msg.Ack()
		return
	}

	// Fallback text is generic boilerplate, not worth cataloguing.
	if query.Fallback {
		msg.Ack()
		return
	}

	recipe := &entity.Recipe{
		Id:          uuid.New(),
		Title:       recipeTitle(*query.ResponseText),
		Description: fmt.Sprintf("AI suggestion from: %s", query.QueryText),
		FullText:    *query.ResponseText,
		AiGenerated: true,
	}

	if err := uow.RecipeRepository().Create(ctx, recipe); err != nil {
		// Content the database rejects stays rejected on redelivery, so
		// Ack rather than loop. The ledger row keeps the original text.
		log.Printf("[ERROR] Failed to create catalog recipe for query %s, skipping: %v", query.Id, err)
		msg.Ack()
		return
	}

	for _, name := range query.Ingredients {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		ingredient, err := uow.RecipeRepository().FirstOrCreateIngredient(ctx, name)
		if err != nil {
			log.Printf("[ERROR] Failed to upsert ingredient %q: %v", name, err)
			continue
		}
		if err := uow.RecipeRepository().LinkIngredient(ctx, recipe.Id, ingredient.Id); err != nil {
			log.Printf("[ERROR] Failed to link ingredient %q: %v", name, err)
		}
	}

	msg.Ack()
}

// recipeTitle extracts the first non-empty line of the generated text,
// stripped of markdown heading markers. The title column is
// varchar(255), so truncation counts runes, never bytes, to avoid
// splitting a multi-byte character.
func recipeTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.ToValidUTF8(strings.TrimSpace(strings.TrimLeft(line, "#* ")), "")
		if line != "" {
			if runes := []rune(line); len(runes) > 255 {
				line = string(runes[:255])
			}
			return line
		}
	}
	return "Untitled recipe"
}

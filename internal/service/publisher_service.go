package service

import (
	"encoding/json"

	"ai-recipe-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// IPublisherService hands recorded suggestions to the in-process
// catalog enrichment pipeline.
type IPublisherService interface {
	PublishCatalogRecipe(queryId uuid.UUID) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (s *publisherService) PublishCatalogRecipe(queryId uuid.UUID) error {
	payload, err := json.Marshal(dto.CatalogRecipeMessage{QueryId: queryId})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.publisher.Publish(s.topicName, msg)
}

package usecases

import (
	"regexp"

	"admin-server/entities"
	"admin-server/repositories"
)

// topic_name is a slug used in URLs and system messages; labels carry the
// display text.
var topicNamePattern = regexp.MustCompile(`^\S+$`)

type TopicUseCase struct {
	topics repositories.TopicRepository
}

func NewTopicUseCase(topics repositories.TopicRepository) *TopicUseCase {
	return &TopicUseCase{topics: topics}
}

func (uc *TopicUseCase) List(q repositories.TopicQuery) ([]entities.Topic, Pagination, error) {
	q.Page, q.Limit = normalizePage(q.Page, q.Limit)
	topics, total, err := uc.topics.List(q)
	if err != nil {
		return nil, Pagination{}, err
	}
	return topics, paginate(q.Page, q.Limit, total), nil
}

func (uc *TopicUseCase) Get(id string) (*entities.Topic, error) {
	topic, err := uc.topics.GetByID(id)
	if err != nil {
		return nil, notFound("topic")
	}
	return topic, nil
}

// ListPublic returns active topics only, for the unauthenticated surface.
func (uc *TopicUseCase) ListPublic() ([]entities.Topic, error) {
	return uc.topics.ListActive()
}

type CreateTopicRequest struct {
	TopicName   string
	TopicLabel  string
	Description string
	CreatedBy   string
	PromptID    *string
}

func (uc *TopicUseCase) Create(req CreateTopicRequest) (*entities.Topic, error) {
	if req.TopicName == "" {
		return nil, invalid("topic name is required")
	}
	if !topicNamePattern.MatchString(req.TopicName) {
		return nil, invalid("topic name must not contain spaces")
	}
	if req.TopicLabel == "" {
		return nil, invalid("topic label is required")
	}
	if req.CreatedBy == "" {
		return nil, invalid("created by is required")
	}

	topic := &entities.Topic{
		TopicName:   req.TopicName,
		TopicLabel:  req.TopicLabel,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		PromptID:    normalizeRef(req.PromptID),
		Active:      true,
	}
	if err := uc.topics.Create(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

type UpdateTopicRequest struct {
	TopicName   *string
	TopicLabel  *string
	Description *string
	CreatedBy   *string
	PromptID    *string
}

func (uc *TopicUseCase) Update(id string, req UpdateTopicRequest) (*entities.Topic, error) {
	topic, err := uc.topics.GetByID(id)
	if err != nil {
		return nil, notFound("topic")
	}

	if req.TopicName != nil {
		if *req.TopicName == "" {
			return nil, invalid("topic name cannot be empty")
		}
		if !topicNamePattern.MatchString(*req.TopicName) {
			return nil, invalid("topic name must not contain spaces")
		}
		topic.TopicName = *req.TopicName
	}
	if req.TopicLabel != nil {
		if *req.TopicLabel == "" {
			return nil, invalid("topic label cannot be empty")
		}
		topic.TopicLabel = *req.TopicLabel
	}
	if req.Description != nil {
		topic.Description = *req.Description
	}
	if req.CreatedBy != nil {
		if *req.CreatedBy == "" {
			return nil, invalid("created by cannot be empty")
		}
		topic.CreatedBy = *req.CreatedBy
	}
	if req.PromptID != nil {
		topic.PromptID = normalizeRef(req.PromptID)
	}

	if err := uc.topics.Update(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (uc *TopicUseCase) Delete(id string) error {
	if _, err := uc.topics.GetByID(id); err != nil {
		return notFound("topic")
	}
	return uc.topics.Delete(id)
}

// ToggleStatus flips the active flag and returns the updated topic.
func (uc *TopicUseCase) ToggleStatus(id string) (*entities.Topic, error) {
	topic, err := uc.topics.GetByID(id)
	if err != nil {
		return nil, notFound("topic")
	}
	topic.Active = !topic.Active
	if err := uc.topics.Update(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// normalizeRef turns an empty id into a null reference.
func normalizeRef(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}

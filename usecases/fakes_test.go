package usecases

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"admin-server/entities"
	"admin-server/repositories"
)

var errFakeNotFound = errors.New("record not found")

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = "Viewer"
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeUserRepo) List(q repositories.UserQuery) ([]entities.User, int64, error) {
	var matched []entities.User
	for _, user := range r.users {
		if q.Role != "" && string(user.Role) != q.Role {
			continue
		}
		if q.IsActive != nil && user.IsActive != *q.IsActive {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(user.Name+user.Email), strings.ToLower(q.Search)) {
			continue
		}
		matched = append(matched, *user)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Email < matched[j].Email })
	return page(matched, q.Page, q.Limit)
}

func (r *fakeUserRepo) Update(user *entities.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errFakeNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return errFakeNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeTopicRepo struct {
	topics map[string]*entities.Topic
}

func newFakeTopicRepo() *fakeTopicRepo {
	return &fakeTopicRepo{topics: make(map[string]*entities.Topic)}
}

func (r *fakeTopicRepo) Create(topic *entities.Topic) error {
	if topic.ID == "" {
		topic.ID = uuid.New().String()
	}
	clone := *topic
	r.topics[topic.ID] = &clone
	return nil
}

func (r *fakeTopicRepo) GetByID(id string) (*entities.Topic, error) {
	topic, ok := r.topics[id]
	if !ok {
		return nil, errFakeNotFound
	}
	clone := *topic
	return &clone, nil
}

func (r *fakeTopicRepo) List(q repositories.TopicQuery) ([]entities.Topic, int64, error) {
	var matched []entities.Topic
	for _, topic := range r.topics {
		if q.Active != nil && topic.Active != *q.Active {
			continue
		}
		if q.CreatedBy != "" && topic.CreatedBy != q.CreatedBy {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(topic.TopicName+topic.TopicLabel), strings.ToLower(q.Search)) {
			continue
		}
		matched = append(matched, *topic)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].TopicName < matched[j].TopicName })
	return page(matched, q.Page, q.Limit)
}

func (r *fakeTopicRepo) ListActive() ([]entities.Topic, error) {
	var active []entities.Topic
	for _, topic := range r.topics {
		if topic.Active {
			active = append(active, *topic)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].TopicName < active[j].TopicName })
	return active, nil
}

func (r *fakeTopicRepo) Update(topic *entities.Topic) error {
	if _, ok := r.topics[topic.ID]; !ok {
		return errFakeNotFound
	}
	clone := *topic
	r.topics[topic.ID] = &clone
	return nil
}

func (r *fakeTopicRepo) Delete(id string) error {
	if _, ok := r.topics[id]; !ok {
		return errFakeNotFound
	}
	delete(r.topics, id)
	return nil
}

type fakePromptRepo struct {
	prompts map[string]*entities.Prompt
}

func newFakePromptRepo() *fakePromptRepo {
	return &fakePromptRepo{prompts: make(map[string]*entities.Prompt)}
}

func (r *fakePromptRepo) Create(prompt *entities.Prompt) error {
	if prompt.ID == "" {
		prompt.ID = uuid.New().String()
	}
	clone := *prompt
	r.prompts[prompt.ID] = &clone
	return nil
}

func (r *fakePromptRepo) GetByID(id string) (*entities.Prompt, error) {
	prompt, ok := r.prompts[id]
	if !ok {
		return nil, errFakeNotFound
	}
	clone := *prompt
	return &clone, nil
}

func (r *fakePromptRepo) List(q repositories.PromptQuery) ([]entities.Prompt, int64, error) {
	var matched []entities.Prompt
	for _, prompt := range r.prompts {
		if q.CreatedBy != "" && prompt.CreatedBy != q.CreatedBy {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(prompt.PromptName), strings.ToLower(q.Search)) {
			continue
		}
		matched = append(matched, *prompt)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].PromptName < matched[j].PromptName })
	return page(matched, q.Page, q.Limit)
}

func (r *fakePromptRepo) ListAll() ([]entities.Prompt, error) {
	var all []entities.Prompt
	for _, prompt := range r.prompts {
		all = append(all, *prompt)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].PromptName < all[j].PromptName })
	return all, nil
}

func (r *fakePromptRepo) Update(prompt *entities.Prompt) error {
	if _, ok := r.prompts[prompt.ID]; !ok {
		return errFakeNotFound
	}
	clone := *prompt
	r.prompts[prompt.ID] = &clone
	return nil
}

func (r *fakePromptRepo) Delete(id string) error {
	if _, ok := r.prompts[id]; !ok {
		return errFakeNotFound
	}
	delete(r.prompts, id)
	return nil
}

type fakeChatEngineRepo struct {
	engines map[string]*entities.ChatEngine
}

func newFakeChatEngineRepo() *fakeChatEngineRepo {
	return &fakeChatEngineRepo{engines: make(map[string]*entities.ChatEngine)}
}

func (r *fakeChatEngineRepo) Create(engine *entities.ChatEngine) error {
	if engine.ID == "" {
		engine.ID = uuid.New().String()
	}
	clone := *engine
	r.engines[engine.ID] = &clone
	return nil
}

func (r *fakeChatEngineRepo) GetByID(id string) (*entities.ChatEngine, error) {
	engine, ok := r.engines[id]
	if !ok {
		return nil, errFakeNotFound
	}
	clone := *engine
	return &clone, nil
}

func (r *fakeChatEngineRepo) List(q repositories.ChatEngineQuery) ([]entities.ChatEngine, int64, error) {
	var matched []entities.ChatEngine
	for _, engine := range r.engines {
		if q.Active != nil && engine.Active != *q.Active {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(engine.EngineName), strings.ToLower(q.Search)) {
			continue
		}
		matched = append(matched, *engine)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].EngineName < matched[j].EngineName })
	return page(matched, q.Page, q.Limit)
}

func (r *fakeChatEngineRepo) ListActive() ([]entities.ChatEngine, error) {
	var active []entities.ChatEngine
	for _, engine := range r.engines {
		if engine.Active {
			active = append(active, *engine)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].EngineName < active[j].EngineName })
	return active, nil
}

func (r *fakeChatEngineRepo) Update(engine *entities.ChatEngine) error {
	if _, ok := r.engines[engine.ID]; !ok {
		return errFakeNotFound
	}
	clone := *engine
	r.engines[engine.ID] = &clone
	return nil
}

func (r *fakeChatEngineRepo) Delete(id string) error {
	if _, ok := r.engines[id]; !ok {
		return errFakeNotFound
	}
	delete(r.engines, id)
	return nil
}

type fakeLoginRecordRepo struct {
	records []entities.LoginRecord
}

func newFakeLoginRecordRepo() *fakeLoginRecordRepo {
	return &fakeLoginRecordRepo{}
}

func (r *fakeLoginRecordRepo) Create(record *entities.LoginRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeLoginRecordRepo) ListAll() ([]entities.LoginRecord, error) {
	out := make([]entities.LoginRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// page applies offset pagination the way the gorm repositories do.
func page[T any](items []T, pageNum, limit int) ([]T, int64, error) {
	total := int64(len(items))
	if limit <= 0 {
		return items, total, nil
	}
	start := (pageNum - 1) * limit
	if start >= len(items) {
		return []T{}, total, nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total, nil
}

package repositories

import "admin-server/entities"

// UserQuery filters and paginates user listings.
type UserQuery struct {
	Page     int
	Limit    int
	Search   string
	Role     string
	IsActive *bool
}

// TopicQuery filters and paginates topic listings.
type TopicQuery struct {
	Page      int
	Limit     int
	Search    string
	CreatedBy string
	Active    *bool
}

// PromptQuery filters and paginates prompt listings.
type PromptQuery struct {
	Page      int
	Limit     int
	Search    string
	CreatedBy string
}

// ChatEngineQuery filters and paginates chat engine listings.
type ChatEngineQuery struct {
	Page   int
	Limit  int
	Search string
	Active *bool
}

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	List(q UserQuery) ([]entities.User, int64, error)
	Update(user *entities.User) error
	Delete(id string) error
}

type TopicRepository interface {
	Create(topic *entities.Topic) error
	GetByID(id string) (*entities.Topic, error)
	List(q TopicQuery) ([]entities.Topic, int64, error)
	ListActive() ([]entities.Topic, error)
	Update(topic *entities.Topic) error
	Delete(id string) error
}

type PromptRepository interface {
	Create(prompt *entities.Prompt) error
	GetByID(id string) (*entities.Prompt, error)
	List(q PromptQuery) ([]entities.Prompt, int64, error)
	ListAll() ([]entities.Prompt, error)
	Update(prompt *entities.Prompt) error
	Delete(id string) error
}

type ChatEngineRepository interface {
	Create(engine *entities.ChatEngine) error
	GetByID(id string) (*entities.ChatEngine, error)
	List(q ChatEngineQuery) ([]entities.ChatEngine, int64, error)
	ListActive() ([]entities.ChatEngine, error)
	Update(engine *entities.ChatEngine) error
	Delete(id string) error
}

type LoginRecordRepository interface {
	Create(record *entities.LoginRecord) error
	ListAll() ([]entities.LoginRecord, error)
}

type SystemInfoRepository interface {
	Get() (*entities.SystemInfo, error)
}

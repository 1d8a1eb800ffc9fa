package usecases

import (
	"admin-server/entities"
	"admin-server/repositories"
)

const supportedProvidersHint = "supported engines include: OpenAI, Anthropic/Claude, Google/Gemini"

type ChatEngineUseCase struct {
	engines repositories.ChatEngineRepository
}

func NewChatEngineUseCase(engines repositories.ChatEngineRepository) *ChatEngineUseCase {
	return &ChatEngineUseCase{engines: engines}
}

func (uc *ChatEngineUseCase) List(q repositories.ChatEngineQuery) ([]entities.ChatEngine, Pagination, error) {
	q.Page, q.Limit = normalizePage(q.Page, q.Limit)
	engines, total, err := uc.engines.List(q)
	if err != nil {
		return nil, Pagination{}, err
	}
	return engines, paginate(q.Page, q.Limit, total), nil
}

func (uc *ChatEngineUseCase) Get(id string) (*entities.ChatEngine, error) {
	engine, err := uc.engines.GetByID(id)
	if err != nil {
		return nil, notFound("chat engine")
	}
	return engine, nil
}

// ListPublic returns active engines; the handler strips credentials.
func (uc *ChatEngineUseCase) ListPublic() ([]entities.ChatEngine, error) {
	return uc.engines.ListActive()
}

type CreateChatEngineRequest struct {
	EngineName  string
	Description string
	Provider    entities.Provider
	APIKey      string
	ChatAPIURL  string
	Active      *bool
}

// Create stores a new engine. The provider discriminant is inferred from the
// engine name when not given explicitly; names matching no known provider are
// rejected here rather than failing per request later.
func (uc *ChatEngineUseCase) Create(req CreateChatEngineRequest) (*entities.ChatEngine, error) {
	if req.EngineName == "" {
		return nil, invalid("engine name is required")
	}
	if req.APIKey == "" {
		return nil, invalid("api key is required")
	}

	provider, err := resolveRequestedProvider(req.Provider, req.EngineName)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	engine := &entities.ChatEngine{
		EngineName:  req.EngineName,
		Description: req.Description,
		Provider:    provider,
		APIKey:      req.APIKey,
		ChatAPIURL:  req.ChatAPIURL,
		Active:      active,
	}
	if err := uc.engines.Create(engine); err != nil {
		return nil, err
	}
	return engine, nil
}

type UpdateChatEngineRequest struct {
	EngineName  *string
	Description *string
	Provider    *entities.Provider
	APIKey      *string
	ChatAPIURL  *string
	Active      *bool
}

func (uc *ChatEngineUseCase) Update(id string, req UpdateChatEngineRequest) (*entities.ChatEngine, error) {
	engine, err := uc.engines.GetByID(id)
	if err != nil {
		return nil, notFound("chat engine")
	}

	if req.EngineName != nil {
		if *req.EngineName == "" {
			return nil, invalid("engine name cannot be empty")
		}
		engine.EngineName = *req.EngineName
	}
	if req.Provider != nil {
		if !validProvider(*req.Provider) {
			return nil, invalidf("unsupported provider: %s; %s", *req.Provider, supportedProvidersHint)
		}
		engine.Provider = *req.Provider
	} else if req.EngineName != nil {
		// renamed without an explicit provider: re-infer so the discriminant
		// keeps matching the display name
		provider, err := resolveRequestedProvider("", engine.EngineName)
		if err != nil {
			return nil, err
		}
		engine.Provider = provider
	}
	if req.Description != nil {
		engine.Description = *req.Description
	}
	if req.APIKey != nil {
		if *req.APIKey == "" {
			return nil, invalid("api key cannot be empty")
		}
		engine.APIKey = *req.APIKey
	}
	if req.ChatAPIURL != nil {
		engine.ChatAPIURL = *req.ChatAPIURL
	}
	if req.Active != nil {
		engine.Active = *req.Active
	}

	if err := uc.engines.Update(engine); err != nil {
		return nil, err
	}
	return engine, nil
}

// Delete removes an engine. Prompts referencing it keep their dangling id;
// readers resolve that to a null engine.
func (uc *ChatEngineUseCase) Delete(id string) error {
	if _, err := uc.engines.GetByID(id); err != nil {
		return notFound("chat engine")
	}
	return uc.engines.Delete(id)
}

// ToggleStatus flips the active flag and returns the updated engine.
func (uc *ChatEngineUseCase) ToggleStatus(id string) (*entities.ChatEngine, error) {
	engine, err := uc.engines.GetByID(id)
	if err != nil {
		return nil, notFound("chat engine")
	}
	engine.Active = !engine.Active
	if err := uc.engines.Update(engine); err != nil {
		return nil, err
	}
	return engine, nil
}

func validProvider(p entities.Provider) bool {
	switch p {
	case entities.ProviderOpenAI, entities.ProviderAnthropic, entities.ProviderGemini:
		return true
	}
	return false
}

func resolveRequestedProvider(requested entities.Provider, engineName string) (entities.Provider, error) {
	if requested != "" {
		if !validProvider(requested) {
			return "", invalidf("unsupported provider: %s; %s", requested, supportedProvidersHint)
		}
		return requested, nil
	}
	provider, ok := entities.ResolveProvider(engineName)
	if !ok {
		return "", invalidf("unsupported chat engine: %s; %s", engineName, supportedProvidersHint)
	}
	return provider, nil
}

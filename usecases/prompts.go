package usecases

import (
	"admin-server/entities"
	"admin-server/repositories"
)

type PromptUseCase struct {
	prompts repositories.PromptRepository
}

func NewPromptUseCase(prompts repositories.PromptRepository) *PromptUseCase {
	return &PromptUseCase{prompts: prompts}
}

func (uc *PromptUseCase) List(q repositories.PromptQuery) ([]entities.Prompt, Pagination, error) {
	q.Page, q.Limit = normalizePage(q.Page, q.Limit)
	prompts, total, err := uc.prompts.List(q)
	if err != nil {
		return nil, Pagination{}, err
	}
	return prompts, paginate(q.Page, q.Limit, total), nil
}

func (uc *PromptUseCase) Get(id string) (*entities.Prompt, error) {
	prompt, err := uc.prompts.GetByID(id)
	if err != nil {
		return nil, notFound("prompt")
	}
	return prompt, nil
}

// ListPublic returns every prompt; the handler trims the payload down to
// name and description.
func (uc *PromptUseCase) ListPublic() ([]entities.Prompt, error) {
	return uc.prompts.ListAll()
}

type CreatePromptRequest struct {
	PromptName   string
	Prompt       string
	Description  string
	CreatedBy    string
	ChatEngineID *string
}

func (uc *PromptUseCase) Create(req CreatePromptRequest) (*entities.Prompt, error) {
	if req.PromptName == "" {
		return nil, invalid("prompt name is required")
	}
	if req.Prompt == "" {
		return nil, invalid("prompt is required")
	}
	if req.CreatedBy == "" {
		return nil, invalid("created by is required")
	}

	prompt := &entities.Prompt{
		PromptName:   req.PromptName,
		Prompt:       req.Prompt,
		Description:  req.Description,
		CreatedBy:    req.CreatedBy,
		ChatEngineID: normalizeRef(req.ChatEngineID),
	}
	if err := uc.prompts.Create(prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

type UpdatePromptRequest struct {
	PromptName   *string
	Prompt       *string
	Description  *string
	CreatedBy    *string
	ChatEngineID *string
}

func (uc *PromptUseCase) Update(id string, req UpdatePromptRequest) (*entities.Prompt, error) {
	prompt, err := uc.prompts.GetByID(id)
	if err != nil {
		return nil, notFound("prompt")
	}

	if req.PromptName != nil {
		if *req.PromptName == "" {
			return nil, invalid("prompt name cannot be empty")
		}
		prompt.PromptName = *req.PromptName
	}
	if req.Prompt != nil {
		if *req.Prompt == "" {
			return nil, invalid("prompt cannot be empty")
		}
		prompt.Prompt = *req.Prompt
	}
	if req.Description != nil {
		prompt.Description = *req.Description
	}
	if req.CreatedBy != nil {
		if *req.CreatedBy == "" {
			return nil, invalid("created by cannot be empty")
		}
		prompt.CreatedBy = *req.CreatedBy
	}
	if req.ChatEngineID != nil {
		prompt.ChatEngineID = normalizeRef(req.ChatEngineID)
		// drop any stale preloaded engine so the response reflects the new link
		prompt.ChatEngine = nil
	}

	if err := uc.prompts.Update(prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

func (uc *PromptUseCase) Delete(id string) error {
	if _, err := uc.prompts.GetByID(id); err != nil {
		return notFound("prompt")
	}
	return uc.prompts.Delete(id)
}

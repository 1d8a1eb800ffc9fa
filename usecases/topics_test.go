package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-server/entities"
)

func TestTopicCreate(t *testing.T) {
	t.Run("creates active topic", func(t *testing.T) {
		uc := NewTopicUseCase(newFakeTopicRepo())
		topic, err := uc.Create(CreateTopicRequest{
			TopicName:  "billing",
			TopicLabel: "Billing",
			CreatedBy:  "Admin",
		})
		require.NoError(t, err)
		assert.True(t, topic.Active)
		assert.NotEmpty(t, topic.ID)
	})

	t.Run("rejects whitespace in topic name", func(t *testing.T) {
		uc := NewTopicUseCase(newFakeTopicRepo())
		for _, name := range []string{"two words", "tab\tname", "trailing "} {
			_, err := uc.Create(CreateTopicRequest{
				TopicName:  name,
				TopicLabel: "Label",
				CreatedBy:  "Admin",
			})
			require.Error(t, err, "name %q should be rejected", name)
			assert.True(t, IsValidation(err))
		}
	})

	t.Run("empty prompt id stored as null", func(t *testing.T) {
		uc := NewTopicUseCase(newFakeTopicRepo())
		empty := ""
		topic, err := uc.Create(CreateTopicRequest{
			TopicName:  "billing",
			TopicLabel: "Billing",
			CreatedBy:  "Admin",
			PromptID:   &empty,
		})
		require.NoError(t, err)
		assert.Nil(t, topic.PromptID)
	})
}

func TestTopicToggleStatus(t *testing.T) {
	repo := newFakeTopicRepo()
	uc := NewTopicUseCase(repo)
	topic, err := uc.Create(CreateTopicRequest{
		TopicName:  "billing",
		TopicLabel: "Billing",
		CreatedBy:  "Admin",
	})
	require.NoError(t, err)

	toggled, err := uc.ToggleStatus(topic.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	toggled, err = uc.ToggleStatus(topic.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Active)
}

func TestTopicListPublic(t *testing.T) {
	repo := newFakeTopicRepo()
	require.NoError(t, repo.Create(&entities.Topic{TopicName: "active", TopicLabel: "Active", CreatedBy: "Admin", Active: true}))
	require.NoError(t, repo.Create(&entities.Topic{TopicName: "hidden", TopicLabel: "Hidden", CreatedBy: "Admin", Active: false}))
	uc := NewTopicUseCase(repo)

	topics, err := uc.ListPublic()
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "active", topics[0].TopicName)
}

func TestTopicUpdate(t *testing.T) {
	t.Run("validates renamed topic name", func(t *testing.T) {
		repo := newFakeTopicRepo()
		uc := NewTopicUseCase(repo)
		topic, err := uc.Create(CreateTopicRequest{TopicName: "billing", TopicLabel: "Billing", CreatedBy: "Admin"})
		require.NoError(t, err)

		bad := "has space"
		_, err = uc.Update(topic.ID, UpdateTopicRequest{TopicName: &bad})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("clears prompt link with empty id", func(t *testing.T) {
		repo := newFakeTopicRepo()
		uc := NewTopicUseCase(repo)
		promptID := "prompt-1"
		topic, err := uc.Create(CreateTopicRequest{TopicName: "billing", TopicLabel: "Billing", CreatedBy: "Admin", PromptID: &promptID})
		require.NoError(t, err)
		require.NotNil(t, topic.PromptID)

		empty := ""
		updated, err := uc.Update(topic.ID, UpdateTopicRequest{PromptID: &empty})
		require.NoError(t, err)
		assert.Nil(t, updated.PromptID)
	})

	t.Run("unknown topic", func(t *testing.T) {
		uc := NewTopicUseCase(newFakeTopicRepo())
		label := "Label"
		_, err := uc.Update("missing", UpdateTopicRequest{TopicLabel: &label})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTopicDelete(t *testing.T) {
	repo := newFakeTopicRepo()
	uc := NewTopicUseCase(repo)
	topic, err := uc.Create(CreateTopicRequest{TopicName: "billing", TopicLabel: "Billing", CreatedBy: "Admin"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(topic.ID))
	assert.ErrorIs(t, uc.Delete(topic.ID), ErrNotFound)
}

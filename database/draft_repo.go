package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rpupo63/project-editor-backend/document"
)

const (
	draftKeyPrefix = "editor:draft:" // One autosave slot per editor key: editor:draft:{key}
	draftTTL       = 7 * 24 * time.Hour
)

// Draft is the autosaved editor state for one editing session. Drafts are
// best-effort convenience state with a TTL, not durable records.
type Draft struct {
	Data    document.Document `json:"data"`
	SavedAt time.Time         `json:"savedAt"`
}

// DraftRepo stores drafts in redis.
type DraftRepo struct {
	client *redis.Client
}

func NewDraftRepo(client *redis.Client) *DraftRepo {
	return &DraftRepo{client: client}
}

// Save overwrites the draft slot for key and refreshes its TTL.
func (r *DraftRepo) Save(ctx context.Context, key string, doc document.Document) (Draft, error) {
	draft := Draft{Data: doc, SavedAt: time.Now()}

	data, err := json.Marshal(draft)
	if err != nil {
		return Draft{}, fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := r.client.Set(ctx, r.draftKey(key), data, draftTTL).Err(); err != nil {
		return Draft{}, fmt.Errorf("failed to store draft: %w", err)
	}

	return draft, nil
}

// Find returns the draft stored under key, or nil when none exists.
func (r *DraftRepo) Find(ctx context.Context, key string) (*Draft, error) {
	data, err := r.client.Get(ctx, r.draftKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// Delete discards the draft slot for key.
func (r *DraftRepo) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.draftKey(key)).Err()
}

func (r *DraftRepo) draftKey(key string) string {
	return draftKeyPrefix + key
}

package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	bookmarksout "confmate/internal/modules/bookmarks/port/out"
	apperrors "confmate/internal/platform/errors"
	"confmate/internal/platform/kv"
)

// KVRecordStore keeps each event's bookmarks as a JSON array of session ids
// under the event's own key in the key-value store. Other events' records
// are never touched.
type KVRecordStore struct {
	store kv.Store
}

func NewKVRecordStore(store kv.Store) bookmarksout.RecordStore {
	return &KVRecordStore{store: store}
}

func (s *KVRecordStore) Load(ctx context.Context, eventID string) ([]string, error) {
	payload, err := s.store.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}
	var ids []string
	if err := json.Unmarshal([]byte(payload), &ids); err != nil {
		return nil, fmt.Errorf("decode bookmarks: %w", err)
	}
	return ids, nil
}

func (s *KVRecordStore) Save(ctx context.Context, eventID string, sessionIDs []string) error {
	if len(sessionIDs) == 0 {
		if err := s.store.Delete(ctx, eventID); err != nil {
			return fmt.Errorf("remove bookmarks: %w", err)
		}
		return nil
	}
	payload, err := json.Marshal(sessionIDs)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := s.store.Set(ctx, eventID, string(payload)); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	return nil
}

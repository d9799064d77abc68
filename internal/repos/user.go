package repos

import (
	"context"

	"github.com/TFDAdonis/adonis/internal/types"
)

func (s *MemStore) GetUser(ctx context.Context, id int) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

// GetUserByUsername scans users in insertion order for an exact,
// case-sensitive match and returns the first one. Uniqueness is not
// enforced here; callers must pre-check before CreateUser.
func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedIDs(s.users) {
		if s.users[id].Username == username {
			return cloneUser(s.users[id]), nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateUser(ctx context.Context, user types.User) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = cloneUser(&user)

	s.log.Debug("Created user", "user_id", user.ID)
	return &user, nil
}

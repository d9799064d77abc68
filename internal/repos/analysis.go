package repos

import (
	"context"
	"time"

	"github.com/TFDAdonis/adonis/internal/types"
)

func (s *MemStore) GetAnalysisResult(ctx context.Context, id int) (*types.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.results[id]
	if !ok {
		return nil, nil
	}
	return cloneResult(r), nil
}

func (s *MemStore) GetAnalysisResultsByUser(ctx context.Context, userID int) ([]*types.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*types.AnalysisResult{}
	for _, id := range sortedIDs(s.results) {
		r := s.results[id]
		if r.UserID != nil && *r.UserID == userID {
			out = append(out, cloneResult(r))
		}
	}
	return out, nil
}

func (s *MemStore) CreateAnalysisResult(ctx context.Context, result types.AnalysisResult) (*types.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result.ID = s.nextResultID
	s.nextResultID++
	result.CreatedAt = time.Now().UTC()
	s.results[result.ID] = cloneResult(&result)

	s.log.Debug("Created analysis result", "result_id", result.ID, "script_id", result.ScriptID)
	return &result, nil
}

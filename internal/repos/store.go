package repos

import (
	"context"
	"maps"
	"sort"
	"sync"

	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/types"
)

// Store is the process-lifetime entity store. Lookups return (nil, nil) on
// a miss; filtered scans return records in insertion order and never fail.
// Create operations assign the next per-kind identity (starting at 1, never
// reused) and return the stored record. The store enforces no uniqueness or
// referential integrity; callers own those checks.
type Store interface {
	GetUser(ctx context.Context, id int) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	CreateUser(ctx context.Context, user types.User) (*types.User, error)

	GetScript(ctx context.Context, id int) (*types.Script, error)
	GetScriptsByUser(ctx context.Context, userID int) ([]*types.Script, error)
	GetPublicScripts(ctx context.Context) ([]*types.Script, error)
	CreateScript(ctx context.Context, script types.Script) (*types.Script, error)

	GetAnalysisResult(ctx context.Context, id int) (*types.AnalysisResult, error)
	GetAnalysisResultsByUser(ctx context.Context, userID int) ([]*types.AnalysisResult, error)
	CreateAnalysisResult(ctx context.Context, result types.AnalysisResult) (*types.AnalysisResult, error)
}

// MemStore keeps all three collections in memory. Nothing survives a
// restart. Every method takes the mutex: the HTTP layer serves requests
// concurrently and the maps and counters are shared across all of them.
type MemStore struct {
	mu  sync.Mutex
	log *logger.Logger

	users   map[int]*types.User
	scripts map[int]*types.Script
	results map[int]*types.AnalysisResult

	nextUserID   int
	nextScriptID int
	nextResultID int
}

func NewMemStore(baseLog *logger.Logger) *MemStore {
	s := &MemStore{
		log:          baseLog.With("repo", "MemStore"),
		users:        make(map[int]*types.User),
		scripts:      make(map[int]*types.Script),
		results:      make(map[int]*types.AnalysisResult),
		nextUserID:   1,
		nextScriptID: 1,
		nextResultID: 1,
	}
	s.seedScripts()
	return s
}

var _ Store = (*MemStore)(nil)

// sortedIDs returns map keys in ascending order. Identities are assigned
// monotonically, so ascending id order is insertion order.
func sortedIDs[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func cloneUser(u *types.User) *types.User {
	cp := *u
	return &cp
}

func cloneScript(s *types.Script) *types.Script {
	cp := *s
	cp.Parameters = maps.Clone(s.Parameters)
	if s.CreatedByID != nil {
		id := *s.CreatedByID
		cp.CreatedByID = &id
	}
	return &cp
}

func cloneResult(r *types.AnalysisResult) *types.AnalysisResult {
	cp := *r
	cp.Parameters = maps.Clone(r.Parameters)
	cp.Results = maps.Clone(r.Results)
	cp.Region = maps.Clone(r.Region)
	if r.UserID != nil {
		id := *r.UserID
		cp.UserID = &id
	}
	return &cp
}

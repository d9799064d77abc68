package repos

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/types"
)

func newTestStore(t *testing.T) *MemStore {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewMemStore(log)
}

func TestSeedScripts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	scripts, err := s.GetPublicScripts(ctx)
	if err != nil {
		t.Fatalf("GetPublicScripts: %v", err)
	}
	if len(scripts) != 4 {
		t.Fatalf("seeded public scripts: got=%d want=4", len(scripts))
	}

	wantTypes := []string{
		"calculateEC",
		"estimateSAR",
		"detectSaltAffectedSoils",
		"analyzeHistoricalTrends",
	}
	for i, sc := range scripts {
		if sc.ID != i+1 {
			t.Errorf("seed script %d: id got=%d want=%d", i, sc.ID, i+1)
		}
		if sc.ScriptType != wantTypes[i] {
			t.Errorf("seed script %d: scriptType got=%q want=%q", i, sc.ScriptType, wantTypes[i])
		}
		if !sc.IsPublic {
			t.Errorf("seed script %d: not public", i)
		}
		if sc.CreatedByID != nil {
			t.Errorf("seed script %d: createdById got=%v want nil", i, *sc.CreatedByID)
		}
		if sc.CreatedAt.IsZero() {
			t.Errorf("seed script %d: createdAt is zero", i)
		}
		if !strings.Contains(sc.Code, "// This is a placeholder for actual GEE script code") {
			t.Errorf("seed script %d: code lost its placeholder text:\n%s", i, sc.Code)
		}
	}
}

// The store itself never dedupes usernames; that invariant belongs to the
// caller. Two creates with the same username must yield two distinct,
// independently retrievable records.
func TestCreateUserDoesNotDedupe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateUser(ctx, types.User{Username: "amina", Password: "p1"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	second, err := s.CreateUser(ctx, types.User{Username: "amina", Password: "p2"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("duplicate usernames shared an id: %d", first.ID)
	}
	for _, want := range []*types.User{first, second} {
		got, err := s.GetUser(ctx, want.ID)
		if err != nil {
			t.Fatalf("GetUser(%d): %v", want.ID, err)
		}
		if got == nil || got.Password != want.Password {
			t.Fatalf("GetUser(%d): got=%+v want=%+v", want.ID, got, want)
		}
	}

	byName, err := s.GetUserByUsername(ctx, "amina")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if byName == nil || byName.ID != first.ID {
		t.Fatalf("GetUserByUsername: got=%+v want first record id=%d", byName, first.ID)
	}
}

func TestUsernameLookupIsExactAndCaseSensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, types.User{Username: "Karim", Password: "p"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	for _, name := range []string{"karim", "Karim ", "Kari"} {
		got, err := s.GetUserByUsername(ctx, name)
		if err != nil {
			t.Fatalf("GetUserByUsername(%q): %v", name, err)
		}
		if got != nil {
			t.Fatalf("GetUserByUsername(%q) matched %+v, want no match", name, got)
		}
	}
}

func TestIdentitiesAreStrictlyIncreasingPerKind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var userIDs, scriptIDs, resultIDs []int
	for i := 0; i < 3; i++ {
		u, _ := s.CreateUser(ctx, types.User{Username: "u", Password: "p"})
		sc, _ := s.CreateScript(ctx, types.Script{Name: "n", ScriptType: "t", Code: "c"})
		r, _ := s.CreateAnalysisResult(ctx, types.AnalysisResult{ScriptID: sc.ID})
		userIDs = append(userIDs, u.ID)
		scriptIDs = append(scriptIDs, sc.ID)
		resultIDs = append(resultIDs, r.ID)
	}

	if !reflect.DeepEqual(userIDs, []int{1, 2, 3}) {
		t.Errorf("user ids: got=%v want=[1 2 3]", userIDs)
	}
	// Seed scripts occupy ids 1 through 4.
	if !reflect.DeepEqual(scriptIDs, []int{5, 6, 7}) {
		t.Errorf("script ids: got=%v want=[5 6 7]", scriptIDs)
	}
	if !reflect.DeepEqual(resultIDs, []int{1, 2, 3}) {
		t.Errorf("result ids: got=%v want=[1 2 3]", resultIDs)
	}
}

func TestScansReturnEmptyForUnknownUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	scripts, err := s.GetScriptsByUser(ctx, 999)
	if err != nil {
		t.Fatalf("GetScriptsByUser: %v", err)
	}
	if len(scripts) != 0 {
		t.Fatalf("GetScriptsByUser(999): got=%d records want=0", len(scripts))
	}

	results, err := s.GetAnalysisResultsByUser(ctx, 999)
	if err != nil {
		t.Fatalf("GetAnalysisResultsByUser: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("GetAnalysisResultsByUser(999): got=%d records want=0", len(results))
	}
}

func TestFilteredScansKeepInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := 7
	for _, name := range []string{"first", "second", "third"} {
		if _, err := s.CreateScript(ctx, types.Script{Name: name, ScriptType: "t", Code: "c", CreatedByID: &owner}); err != nil {
			t.Fatalf("CreateScript: %v", err)
		}
	}

	scripts, err := s.GetScriptsByUser(ctx, owner)
	if err != nil {
		t.Fatalf("GetScriptsByUser: %v", err)
	}
	var names []string
	for _, sc := range scripts {
		names = append(names, sc.Name)
	}
	if !reflect.DeepEqual(names, []string{"first", "second", "third"}) {
		t.Fatalf("scan order: got=%v", names)
	}
}

func TestCreateScriptRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	owner := 3
	created, err := s.CreateScript(ctx, types.Script{
		Name:        "Custom EC",
		Description: "tweaked thresholds",
		ScriptType:  "calculateEC",
		Code:        "var x = 1;",
		CreatedByID: &owner,
		IsPublic:    false,
		Parameters:  types.JSONMap{"threshold": 0.5},
	})
	if err != nil {
		t.Fatalf("CreateScript: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("create did not assign id/createdAt: %+v", created)
	}

	got, err := s.GetScript(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetScript: %v", err)
	}
	if got == nil {
		t.Fatal("GetScript returned nil for freshly created script")
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", got, created)
	}
}

func TestAnalysisResultRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	userID := 2
	created, err := s.CreateAnalysisResult(ctx, types.AnalysisResult{
		UserID:     &userID,
		ScriptID:   1,
		Parameters: types.JSONMap{"startDate": "2023-01-01"},
		Results:    types.JSONMap{"averageSalinity": 5.7},
		Status:     "completed",
		Region:     types.JSONMap{"name": "Biskra"},
	})
	if err != nil {
		t.Fatalf("CreateAnalysisResult: %v", err)
	}

	got, err := s.GetAnalysisResult(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAnalysisResult: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("round trip mismatch:\n got=%+v\nwant=%+v", got, created)
	}

	byUser, err := s.GetAnalysisResultsByUser(ctx, userID)
	if err != nil {
		t.Fatalf("GetAnalysisResultsByUser: %v", err)
	}
	if len(byUser) != 1 || byUser[0].ID != created.ID {
		t.Fatalf("GetAnalysisResultsByUser: got=%+v want single record id=%d", byUser, created.ID)
	}
}

func TestLookupMissReturnsNilNotError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.GetUser(ctx, 42)
	if err != nil || u != nil {
		t.Fatalf("GetUser miss: got=(%+v, %v) want=(nil, nil)", u, err)
	}
	sc, err := s.GetScript(ctx, 42)
	if err != nil || sc != nil {
		t.Fatalf("GetScript miss: got=(%+v, %v) want=(nil, nil)", sc, err)
	}
	r, err := s.GetAnalysisResult(ctx, 42)
	if err != nil || r != nil {
		t.Fatalf("GetAnalysisResult miss: got=(%+v, %v) want=(nil, nil)", r, err)
	}
}

// Callers get copies; mutating a returned record must not leak into the
// stored state.
func TestStoreOwnsItsRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateScript(ctx, types.Script{
		Name:       "mutate me",
		ScriptType: "t",
		Code:       "c",
		Parameters: types.JSONMap{"k": "v"},
	})
	if err != nil {
		t.Fatalf("CreateScript: %v", err)
	}

	created.Name = "changed"
	created.Parameters["k"] = "changed"

	got, err := s.GetScript(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetScript: %v", err)
	}
	if got.Name != "mutate me" || got.Parameters["k"] != "v" {
		t.Fatalf("stored record was mutated through a returned copy: %+v", got)
	}
}

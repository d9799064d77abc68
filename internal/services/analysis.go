package services

import (
	"context"

	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/repos"
	"github.com/TFDAdonis/adonis/internal/types"
)

type RunAnalysisInput struct {
	ScriptID   int
	Parameters types.JSONMap
	Region     types.JSONMap
	UserID     *int
}

type AnalysisService interface {
	Run(ctx context.Context, input RunAnalysisInput) (*types.AnalysisResult, error)
	Result(ctx context.Context, id int) (*types.AnalysisResult, error)
	ResultsByUser(ctx context.Context, userID int) ([]*types.AnalysisResult, error)
}

type analysisService struct {
	store repos.Store
	log   *logger.Logger
}

func NewAnalysisService(store repos.Store, baseLog *logger.Logger) AnalysisService {
	return &analysisService{store: store, log: baseLog.With("service", "AnalysisService")}
}

// Run records an analysis against an existing script. The result payload is
// a placeholder until script execution is backed by real GEE runs.
func (as *analysisService) Run(ctx context.Context, input RunAnalysisInput) (*types.AnalysisResult, error) {
	script, err := as.store.GetScript(ctx, input.ScriptID)
	if err != nil {
		return nil, err
	}
	if script == nil {
		return nil, ErrScriptNotFound
	}

	selectedArea := "Algeria Test Site"
	if name, ok := input.Region["name"].(string); ok && name != "" {
		selectedArea = name
	}

	result, err := as.store.CreateAnalysisResult(ctx, types.AnalysisResult{
		UserID:     input.UserID,
		ScriptID:   input.ScriptID,
		Parameters: input.Parameters,
		Results: types.JSONMap{
			"selectedArea":    selectedArea,
			"averageSalinity": 5.7,
			"affectedArea":    467.3,
			"confidenceLevel": 82,
		},
		Status: "completed",
		Region: input.Region,
	})
	if err != nil {
		return nil, err
	}

	as.log.Info("Recorded analysis run", "result_id", result.ID, "script_id", input.ScriptID)
	return result, nil
}

func (as *analysisService) Result(ctx context.Context, id int) (*types.AnalysisResult, error) {
	result, err := as.store.GetAnalysisResult(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrResultNotFound
	}
	return result, nil
}

func (as *analysisService) ResultsByUser(ctx context.Context, userID int) ([]*types.AnalysisResult, error) {
	return as.store.GetAnalysisResultsByUser(ctx, userID)
}

package services

import (
	"context"

	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/repos"
	"github.com/TFDAdonis/adonis/internal/types"
)

type CreateScriptInput struct {
	Name        string
	Description string
	ScriptType  string
	Code        string
	CreatedByID *int
	IsPublic    bool
	Parameters  types.JSONMap
}

type ScriptService interface {
	PublicScripts(ctx context.Context) ([]*types.Script, error)
	Script(ctx context.Context, id int) (*types.Script, error)
	CreateScript(ctx context.Context, input CreateScriptInput) (*types.Script, error)
}

type scriptService struct {
	store repos.Store
	log   *logger.Logger
}

func NewScriptService(store repos.Store, baseLog *logger.Logger) ScriptService {
	return &scriptService{store: store, log: baseLog.With("service", "ScriptService")}
}

func (ss *scriptService) PublicScripts(ctx context.Context) ([]*types.Script, error) {
	return ss.store.GetPublicScripts(ctx)
}

func (ss *scriptService) Script(ctx context.Context, id int) (*types.Script, error) {
	script, err := ss.store.GetScript(ctx, id)
	if err != nil {
		return nil, err
	}
	if script == nil {
		return nil, ErrScriptNotFound
	}
	return script, nil
}

func (ss *scriptService) CreateScript(ctx context.Context, input CreateScriptInput) (*types.Script, error) {
	script, err := ss.store.CreateScript(ctx, types.Script{
		Name:        input.Name,
		Description: input.Description,
		ScriptType:  input.ScriptType,
		Code:        input.Code,
		CreatedByID: input.CreatedByID,
		IsPublic:    input.IsPublic,
		Parameters:  input.Parameters,
	})
	if err != nil {
		return nil, err
	}

	ss.log.Info("Created script", "script_id", script.ID, "script_type", script.ScriptType)
	return script, nil
}

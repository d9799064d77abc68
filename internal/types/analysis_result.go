package types

import "time"

// AnalysisResult records one analysis run. UserID and ScriptID are weak
// references; the store never verifies the referenced rows exist.
type AnalysisResult struct {
	ID         int       `json:"id"`
	UserID     *int      `json:"userId"`
	ScriptID   int       `json:"scriptId"`
	Parameters JSONMap   `json:"parameters"`
	Results    JSONMap   `json:"results"`
	Status     string    `json:"status"`
	Region     JSONMap   `json:"region"`
	CreatedAt  time.Time `json:"createdAt"`
}

package types

import "time"

// Script is a named GEE script preset. ScriptType discriminates which
// canned execution result the script maps to.
type Script struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ScriptType  string    `json:"scriptType"`
	Code        string    `json:"code"`
	CreatedByID *int      `json:"createdById"`
	IsPublic    bool      `json:"isPublic"`
	Parameters  JSONMap   `json:"parameters"`
	CreatedAt   time.Time `json:"createdAt"`
}

package types

// JSONMap holds open-ended, schema-less JSON objects such as script
// parameters and analysis outputs. The store never inspects its contents.
type JSONMap = map[string]any

package services

import (
	"time"

	"github.com/TFDAdonis/adonis/internal/data"
	"github.com/TFDAdonis/adonis/internal/pkg/logger"
	"github.com/TFDAdonis/adonis/internal/types"
)

// ScriptInfo describes the script a canned execution stands in for.
type ScriptInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Region      string `json:"region"`
	ResultType  string `json:"resultType"`
}

type Execution struct {
	Script ScriptInfo    `json:"script"`
	Result types.JSONMap `json:"result"`
}

// GeeService resolves a scriptType discriminator to its sample result
// payload. No actual GEE computation happens; the numbers are fixed and
// only the timestamp varies per call.
type GeeService interface {
	Execute(scriptType string) (*Execution, error)
}

type geeService struct {
	log *logger.Logger
}

func NewGeeService(baseLog *logger.Logger) GeeService {
	return &geeService{log: baseLog.With("service", "GeeService")}
}

func (gs *geeService) Execute(scriptType string) (*Execution, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	switch scriptType {
	case "calculateEC":
		return &Execution{
			Script: ScriptInfo{
				Name:        "Calculate EC from Sentinel-2",
				Description: "Calculates Electrical Conductivity (EC) using Sentinel-2 imagery",
				Region:      "Algeria",
				ResultType:  "ec",
			},
			Result: types.JSONMap{
				"ec_values": []float64{0.43, 0.75, 0.91, 1.22, 1.85, 2.3},
				"avg_ec":    1.24,
				"units":     "dS/m",
				"region":    "Algeria Test Site",
				"timestamp": now,
			},
		}, nil

	case "estimateSAR":
		return &Execution{
			Script: ScriptInfo{
				Name:        "Estimate SAR from Landsat",
				Description: "Estimates Sodium Adsorption Ratio (SAR) using Landsat imagery",
				Region:      "Algeria",
				ResultType:  "sar",
			},
			Result: types.JSONMap{
				"sar_values": []float64{3.2, 5.4, 7.8, 10.2, 12.5, 15.1},
				"avg_sar":    9.03,
				"region":     "Algeria Test Site",
				"timestamp":  now,
			},
		}, nil

	case "detectSaltAffectedSoils":
		return &Execution{
			Script: ScriptInfo{
				Name:        "Detect Salt-Affected Soils",
				Description: "Detects salt-affected soils using multi-spectral imagery",
				Region:      "Algeria",
				ResultType:  "salt_affected",
			},
			Result: types.JSONMap{
				"affected_area":       325.7, // hectares
				"percentage_affected": 47.3,
				"severity_levels": types.JSONMap{
					"severe":   18.2,
					"moderate": 42.6,
					"mild":     39.2,
				},
				"region":    "Algeria Test Site",
				"timestamp": now,
			},
		}, nil

	case "analyzeHistoricalTrends":
		return &Execution{
			Script: ScriptInfo{
				Name:        "Analyze Historical Trends",
				Description: "Analyzes historical trends in soil salinity over time",
				Region:      "Algeria",
				ResultType:  "historical_trends",
			},
			Result: types.JSONMap{
				"time_series": types.JSONMap{
					"years":         data.SalinityPrecipitation.Years,
					"salinity":      data.SalinityPrecipitation.Salinity,
					"precipitation": data.SalinityPrecipitation.Precipitation,
				},
				"correlation": -0.73,
				"trend_slope": 0.015,
				"region":      "Algeria Test Site",
				"timestamp":   now,
			},
		}, nil

	default:
		gs.log.Warn("Rejected unknown script type", "script_type", scriptType)
		return nil, ErrUnknownScriptType
	}
}

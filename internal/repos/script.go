package repos

import (
	"context"
	"time"

	"github.com/TFDAdonis/adonis/internal/types"
)

func (s *MemStore) GetScript(ctx context.Context, id int) (*types.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.scripts[id]
	if !ok {
		return nil, nil
	}
	return cloneScript(sc), nil
}

func (s *MemStore) GetScriptsByUser(ctx context.Context, userID int) ([]*types.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*types.Script{}
	for _, id := range sortedIDs(s.scripts) {
		sc := s.scripts[id]
		if sc.CreatedByID != nil && *sc.CreatedByID == userID {
			out = append(out, cloneScript(sc))
		}
	}
	return out, nil
}

func (s *MemStore) GetPublicScripts(ctx context.Context) ([]*types.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*types.Script{}
	for _, id := range sortedIDs(s.scripts) {
		if s.scripts[id].IsPublic {
			out = append(out, cloneScript(s.scripts[id]))
		}
	}
	return out, nil
}

func (s *MemStore) CreateScript(ctx context.Context, script types.Script) (*types.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	script.ID = s.nextScriptID
	s.nextScriptID++
	script.CreatedAt = time.Now().UTC()
	s.scripts[script.ID] = cloneScript(&script)

	s.log.Debug("Created script", "script_id", script.ID, "script_type", script.ScriptType)
	return &script, nil
}

// seedScripts inserts the four predefined GEE scripts at construction time.
// They occupy ids 1 through 4 and are public with no owner.
func (s *MemStore) seedScripts() {
	now := time.Now().UTC()
	defaults := []types.Script{
		{
			Name:        "Calculate EC from Sentinel-2",
			Description: "Calculates Electrical Conductivity (EC) using Sentinel-2 imagery",
			ScriptType:  "calculateEC",
			Code: `// Sentinel-2 EC calculation GEE script
        // This is a placeholder for actual GEE script code
        var sentinel2 = ee.ImageCollection('COPERNICUS/S2');
        var salinity = sentinel2.calculate_ec();
        `,
			IsPublic: true,
			Parameters: types.JSONMap{
				"bands":   []string{"B4", "B8", "B11"},
				"indices": []string{"NDSI", "SAVI"},
			},
		},
		{
			Name:        "Estimate SAR from Landsat",
			Description: "Estimates Sodium Adsorption Ratio (SAR) using Landsat imagery",
			ScriptType:  "estimateSAR",
			Code: `// Landsat SAR estimation GEE script
        // This is a placeholder for actual GEE script code
        var landsat = ee.ImageCollection('LANDSAT/LC08/C01/T1_TOA');
        var sar = landsat.estimate_sar();
        `,
			IsPublic: true,
			Parameters: types.JSONMap{
				"bands":   []string{"B4", "B5", "B7"},
				"indices": []string{"NDSI", "SI"},
			},
		},
		{
			Name:        "Detect Salt-Affected Soils",
			Description: "Detects salt-affected soils using multi-spectral imagery",
			ScriptType:  "detectSaltAffectedSoils",
			Code: `// Salt-affected soil detection GEE script
        // This is a placeholder for actual GEE script code
        var sentinel2 = ee.ImageCollection('COPERNICUS/S2');
        var saltAffected = sentinel2.detect_salt_affected_regions();
        `,
			IsPublic: true,
			Parameters: types.JSONMap{
				"threshold": 0.45,
				"indices":   []string{"SI", "NDSI", "BSI"},
			},
		},
		{
			Name:        "Analyze Historical Trends",
			Description: "Analyzes historical trends in soil salinity over time",
			ScriptType:  "analyzeHistoricalTrends",
			Code: `// Historical trend analysis GEE script
        // This is a placeholder for actual GEE script code
        var landsat = ee.ImageCollection('LANDSAT/LC08/C01/T1_TOA')
          .filterDate('2018-01-01', '2023-01-01');
        var trends = landsat.analyzeTimeSeries();
        `,
			IsPublic: true,
			Parameters: types.JSONMap{
				"startYear":          2018,
				"endYear":            2023,
				"temporalResolution": "monthly",
			},
		},
	}

	for i := range defaults {
		sc := defaults[i]
		sc.ID = s.nextScriptID
		s.nextScriptID++
		sc.CreatedAt = now
		s.scripts[sc.ID] = &sc
	}
}

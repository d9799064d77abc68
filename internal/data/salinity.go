// Package data holds the fixed time-series datasets derived from the
// salinity GEE scripts. The values are constants, not computed.
package data

type SalinityPrecipitationSeries struct {
	Years         []int     `json:"years"`
	Salinity      []float64 `json:"salinity"`
	Precipitation []float64 `json:"precipitation"`
}

type SalinityIndexSeries struct {
	Years []int     `json:"years"`
	SI    []float64 `json:"si"`
}

var SalinityPrecipitation = SalinityPrecipitationSeries{
	Years:         []int{2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023, 2024},
	Salinity:      []float64{1.010, 0.985, 1.055, 1.060, 1.015, 1.060, 1.050, 1.090, 1.045, 1.105, 1.140},
	Precipitation: []float64{405, 470, 380, 395, 455, 410, 420, 390, 435, 375, 350},
}

var AnnualSalinityIndex = SalinityIndexSeries{
	Years: []int{2014, 2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023, 2024},
	SI:    []float64{0.97, 0.95, 1.02, 1.05, 1.01, 1.03, 1.04, 1.08, 1.09, 1.12, 1.15},
}

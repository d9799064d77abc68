package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TFDAdonis/adonis/internal/data"
	"github.com/TFDAdonis/adonis/internal/http/response"
)

// DatasetHandler serves the fixed time-series datasets backing the
// frontend charts.
type DatasetHandler struct{}

func NewDatasetHandler() *DatasetHandler { return &DatasetHandler{} }

func (dh *DatasetHandler) SalinityPrecipitation(c *gin.Context) {
	response.RespondOK(c, data.SalinityPrecipitation)
}

func (dh *DatasetHandler) SalinityIndex(c *gin.Context) {
	response.RespondOK(c, data.AnnualSalinityIndex)
}

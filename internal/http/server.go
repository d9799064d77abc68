package http

import (
	"github.com/gin-gonic/gin"

	"github.com/TFDAdonis/adonis/internal/pkg/logger"
)

type Server struct {
	Engine *gin.Engine
}

func NewServer(log *logger.Logger, cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(log, cfg)}
}

func (s *Server) Run(address string) error {
	return s.Engine.Run(address)
}

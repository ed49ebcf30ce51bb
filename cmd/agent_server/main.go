package main

import (
	"parallel-pi/internal/agent"
	"parallel-pi/internal/config"
	"parallel-pi/internal/logger"
)

func main() {
	config.InitConfig(".env")
	logger.InitAgentLogger()
	defer logger.CloseLogger()

	logger.INFO.Println("Agent server started")
	defer logger.INFO.Println("Agent server stopped")

	agent.StartAgent()
}

package handler

import "github.com/gin-gonic/gin"

// response is the envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, response{Success: true, Data: data})
}

func respondMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, response{Success: true, Message: message})
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, response{Success: false, Error: message})
}

package router

import (
	"video_transcode_trigger/internal/transcode/app"
	"video_transcode_trigger/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册 notification 相关的路由
func RegisterRoutes(fiberApp *fiber.App, webhookHandler *app.WebhookHandler, secret []byte) {
	fiberApp.Get("/", app.ConnectCheck)
	fiberApp.Post("/debug", app.DebugLogFlag)
	fiberApp.Post("/notifications", middlewares.JWTMiddleware(secret), webhookHandler.ReceiveNotification)
}

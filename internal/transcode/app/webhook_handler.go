package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"video_transcode_trigger/internal/transcode/domain"
	"video_transcode_trigger/pkg"
	"video_transcode_trigger/pkg/logger"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// objectCreatedPrefixes AWS 與 MinIO 的 event name 前綴
var objectCreatedPrefixes = []string{"s3:ObjectCreated:", "ObjectCreated:"}

// WebhookHandler receive bucket notifications over HTTP
type WebhookHandler struct {
	Usecase TranscodeUseCase
}

// ReceiveNotification POST /notifications
func (h *WebhookHandler) ReceiveNotification(c *fiber.Ctx) error {
	var n domain.Notification
	if err := json.Unmarshal(c.Body(), &n); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notification body"})
	}

	if len(n.Records) > 0 && n.Records[0].EventName != "" &&
		!pkg.HasAnyPrefix(n.Records[0].EventName, objectCreatedPrefixes) {
		logger.Log.Debug("Skip non object-created event", zap.String("event", n.Records[0].EventName))
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "ignored"})
	}

	ack, err := h.Usecase.HandleNotification(c.UserContext(), n)
	if errors.Is(err, domain.ErrEmptyNotification) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		// 500 讓來源重新投遞
		sentry.CaptureException(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": ack})
}

// ConnectCheck check service start
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString("transcode trigger start!")
}

// DebugLogFlag toggle debug log flag
func DebugLogFlag(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Context().QueryArgs().QueryString()))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	status, err := strconv.ParseBool(query.Get("status"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	logger.Log.SetDebugMode(status)
	return c.SendString(fmt.Sprintf("debug mode is : %t", status))
}

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Recovery перехватывает паники обработчиков; паника всплывает в
// customErrorHandler и отдаётся клиенту как обычная 500-ошибка.
func Recovery() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
	})
}

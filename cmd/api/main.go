package main

import (
	"os"
	"strings"

	_ "shrijee_plots/docs"
	"shrijee_plots/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Plot Sales API
// @version         1.0
// @description     Plot inventory, bookings, installment previews and payment schedules backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	setupLogger()
	routes.Run()
}

// setupLogger uses JSON output unless LOG_FORMAT=text.
func setupLogger() {
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// Это диагностический лог; журнал боёв пишут приёмники событий.
var Log *logrus.Logger

// Init инициализирует глобальный логгер из переменных окружения
// LOG_LEVEL (по умолчанию "info") и LOG_FORMAT ("json" или "text").
// Вызывается один раз при старте и в TestMain.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	Configure(logLevel, os.Getenv("LOG_FORMAT"), os.Stderr)
}

// Configure пересоздаёт глобальный логгер с явными настройками.
// Неизвестный уровень превращается в info.
func Configure(logLevel, logFormat string, out io.Writer) {
	Log = logrus.New()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для сбора логов, иначе текст для человека
	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// Пишем в stderr: stdout занят консолью и ростером
	Log.SetOutput(out)
}

package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/camionrouge/vitrine/config"
	"github.com/camionrouge/vitrine/internal/content"
	"github.com/camionrouge/vitrine/internal/mailer"
)

// Application holds the process-wide dependencies: configuration, the shared
// content client and the mail sender. All of them are immutable after Init.
type Application struct {
	appConfig *config.AppConfig
	content   content.Source
	sender    mailer.Sender
	idNode    *snowflake.Node
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider  = (*Application)(nil)
	_ ContentProvider = (*Application)(nil)
	_ MailerProvider  = (*Application)(nil)
	_ AppContext      = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Content() content.Source {
	return a.content
}

func (a *Application) Mailer() mailer.Sender {
	return a.sender
}

// OverrideContent replaces the content source (used in tests).
func (a *Application) OverrideContent(src content.Source) {
	a.content = src
}

// OverrideMailer replaces the mail sender (used in tests).
func (a *Application) OverrideMailer(s mailer.Sender) {
	a.sender = s
}

// NextID returns a new correlation id for request logging.
func (a *Application) NextID() string {
	if a.idNode == nil {
		return ""
	}
	return a.idNode.Generate().String()
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	node, err := snowflake.NewNode(1)
	if err != nil {
		zap.S().Errorf("snowflake node init failed: %v", err)
	} else {
		a.idNode = node
	}

	a.content = content.NewClient(cfg.Content)
	a.sender = mailer.NewSmtpSender(cfg.Smtp)

	zap.S().Infof("application initialized, content dataset: %s", cfg.Content.Dataset)
}

// Release releases application resources
func (a *Application) Release() {
	_ = zap.L().Sync()
}

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// AppConfig is the full process configuration. It is loaded once at startup
// and never mutated afterwards.
type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Content ContentConfig `yaml:"content" json:"content"`
	Smtp    SmtpConfig    `yaml:"smtp" json:"smtp"`
	Logger  LogConfig     `yaml:"logger" json:"logger"`
}

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	SiteName string `yaml:"site_name" json:"site_name"`
	SiteURL  string `yaml:"site_url" json:"site_url"`
}

type WebConfig struct {
	Host           string   `yaml:"host" json:"host"`
	Port           int      `yaml:"port" json:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
}

// ContentConfig locates the headless content source. Endpoint may be left
// empty, in which case it is derived from the project/dataset pair the way
// the hosted service lays out its query URLs.
type ContentConfig struct {
	Endpoint   string `yaml:"endpoint" json:"endpoint"`
	ProjectID  string `yaml:"project_id" json:"project_id"`
	Dataset    string `yaml:"dataset" json:"dataset"`
	ApiVersion string `yaml:"api_version" json:"api_version"`
	Token      string `yaml:"token" json:"token"`
	UseCdn     bool   `yaml:"use_cdn" json:"use_cdn"`
}

type SmtpConfig struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	Ssl      bool   `yaml:"ssl" json:"ssl"`
	Mailbox  string `yaml:"mailbox" json:"mailbox"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

// DefaultAppConfig returns the baseline configuration used when no file and
// no environment overrides are present.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "vitrine",
			Location: "Europe/Paris",
			SiteName: "Le Camion Rouge",
			SiteURL:  "https://www.lecamionrouge.fr",
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 8090,
		},
		Content: ContentConfig{
			Dataset:    "production",
			ApiVersion: "v2021-10-21",
			UseCdn:     true,
		},
		Smtp: SmtpConfig{
			Host: "localhost",
			Port: 25,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/vitrine/vitrine.log",
		},
	}
}

// LoadConfig reads the YAML file at path (if it exists), then applies
// environment overrides on top. A missing file is not an error; the
// environment alone can carry a full configuration.
func LoadConfig(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := DefaultAppConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	setEnvString(&c.Web.Host, "VITRINE_WEB_HOST")
	setEnvInt(&c.Web.Port, "VITRINE_WEB_PORT")
	setEnvString(&c.System.SiteName, "VITRINE_SITE_NAME")
	setEnvString(&c.System.SiteURL, "VITRINE_SITE_URL")

	setEnvString(&c.Content.Endpoint, "VITRINE_CONTENT_ENDPOINT")
	setEnvString(&c.Content.ProjectID, "VITRINE_CONTENT_PROJECT_ID")
	setEnvString(&c.Content.Dataset, "VITRINE_CONTENT_DATASET")
	setEnvString(&c.Content.ApiVersion, "VITRINE_CONTENT_API_VERSION")
	setEnvString(&c.Content.Token, "VITRINE_CONTENT_TOKEN")
	setEnvBool(&c.Content.UseCdn, "VITRINE_CONTENT_USE_CDN")

	setEnvString(&c.Smtp.Host, "VITRINE_SMTP_HOST")
	setEnvInt(&c.Smtp.Port, "VITRINE_SMTP_PORT")
	setEnvString(&c.Smtp.Username, "VITRINE_SMTP_USERNAME")
	setEnvString(&c.Smtp.Password, "VITRINE_SMTP_PASSWORD")
	setEnvBool(&c.Smtp.Ssl, "VITRINE_SMTP_SSL")
	setEnvString(&c.Smtp.Mailbox, "VITRINE_SMTP_MAILBOX")

	setEnvString(&c.Logger.Mode, "VITRINE_LOGGER_MODE")
	setEnvBool(&c.Logger.FileEnable, "VITRINE_LOGGER_FILE_ENABLE")
	setEnvString(&c.Logger.Filename, "VITRINE_LOGGER_FILENAME")
}

// Validate checks the two settings without which the process cannot do
// anything useful.
func (c *AppConfig) Validate() error {
	if c.Content.Endpoint == "" && c.Content.ProjectID == "" {
		return fmt.Errorf("content: endpoint or project_id is required")
	}
	if c.Smtp.Mailbox == "" {
		return fmt.Errorf("smtp: mailbox is required")
	}
	return nil
}

func setEnvString(target *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*target = v
	}
}

func setEnvInt(target *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*target = cast.ToInt(v)
	}
}

func setEnvBool(target *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*target = cast.ToBool(v)
	}
}

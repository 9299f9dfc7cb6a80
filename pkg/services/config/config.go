package config

import (
	"errors"
	"fmt"
	"os/user"
	"strings"

	"github.com/de-tools/alert-atlas/pkg/models/domain"
	"github.com/de-tools/alert-atlas/pkg/services/alerturl"
	"github.com/spf13/viper"
)

const EnvPrefix = "ALERT_ATLAS"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Days        int               `mapstructure:"days"`
	TemplateURL string            `mapstructure:"template_url"`
	Placeholder string            `mapstructure:"placeholder"`
	Categories  domain.Categories `mapstructure:"categories"`
	Mail        MailConfig        `mapstructure:"mail"`
}

type MailConfig struct {
	Recipients    []string `mapstructure:"recipients"`
	Sender        string   `mapstructure:"sender"`
	SenderDomain  string   `mapstructure:"sender_domain"`
	SubjectPrefix string   `mapstructure:"subject_prefix"`
	SendmailPath  string   `mapstructure:"sendmail_path"`
	Transport     string   `mapstructure:"transport"`
}

// Default returns the compiled-in configuration used when no file is given
func Default() Config {
	return Config{
		Days:        5,
		TemplateURL: alerturl.DefaultTemplate,
		Placeholder: alerturl.DefaultPlaceholder,
		Categories: domain.Categories{
			{Name: "dart alerts", ID: "80"},
			{Name: "scrub alerts", ID: "91"},
		},
		Mail: MailConfig{
			Recipients:    []string{"alerts@example.com"},
			SenderDomain:  "example.com",
			SubjectPrefix: "Service Log Report",
			SendmailPath:  "sendmail",
			Transport:     "sendmail",
		},
	}
}

// LoadConfig reads the optional config file at path on top of the defaults.
// ALERT_ATLAS_* environment variables override scalar values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	categories := make([]map[string]string, 0, len(d.Categories))
	for _, c := range d.Categories {
		categories = append(categories, map[string]string{"name": c.Name, "id": c.ID})
	}

	v.SetDefault("days", d.Days)
	v.SetDefault("template_url", d.TemplateURL)
	v.SetDefault("placeholder", d.Placeholder)
	v.SetDefault("categories", categories)
	v.SetDefault("mail.recipients", d.Mail.Recipients)
	v.SetDefault("mail.sender", d.Mail.Sender)
	v.SetDefault("mail.sender_domain", d.Mail.SenderDomain)
	v.SetDefault("mail.subject_prefix", d.Mail.SubjectPrefix)
	v.SetDefault("mail.sendmail_path", d.Mail.SendmailPath)
	v.SetDefault("mail.transport", d.Mail.Transport)
}

func (c *Config) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("%w: days must not be negative, got %d", ErrInvalidConfig, c.Days)
	}
	if c.TemplateURL == "" {
		return fmt.Errorf("%w: template_url is required", ErrInvalidConfig)
	}
	if c.Placeholder == "" {
		return fmt.Errorf("%w: placeholder is required", ErrInvalidConfig)
	}
	if !strings.Contains(c.TemplateURL, c.Placeholder) {
		return fmt.Errorf("%w: template_url does not contain placeholder %q", ErrInvalidConfig, c.Placeholder)
	}

	seen := make(map[string]struct{}, len(c.Categories))
	for i, category := range c.Categories {
		if category.Name == "" {
			return fmt.Errorf("%w: category %d has no name", ErrInvalidConfig, i)
		}
		if category.ID == "" {
			return fmt.Errorf("%w: category %q has no id", ErrInvalidConfig, category.Name)
		}
		if _, dup := seen[category.Name]; dup {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidConfig, category.Name)
		}
		seen[category.Name] = struct{}{}
	}

	if len(c.Mail.Recipients) == 0 {
		return fmt.Errorf("%w: mail.recipients must not be empty", ErrInvalidConfig)
	}
	if c.Mail.SendmailPath == "" {
		return fmt.Errorf("%w: mail.sendmail_path is required", ErrInvalidConfig)
	}
	if c.Mail.Transport == "" {
		return fmt.Errorf("%w: mail.transport is required", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Template() alerturl.Template {
	return alerturl.NewTemplate(c.TemplateURL, c.Placeholder)
}

// ResolveSender returns the configured sender or <current user>@<sender domain>
func (m MailConfig) ResolveSender(current func() (*user.User, error)) (string, error) {
	if m.Sender != "" {
		return m.Sender, nil
	}
	if current == nil {
		current = user.Current
	}
	usr, err := current()
	if err != nil {
		return "", fmt.Errorf("failed to resolve current user: %w", err)
	}
	return fmt.Sprintf("%s@%s", usr.Username, m.SenderDomain), nil
}

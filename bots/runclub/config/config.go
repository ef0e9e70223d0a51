// Package config holds the run-club bot configuration: the shared core
// settings plus the database, the operator chat and the club details.
package config

import (
	"errors"
	"fmt"
	"strings"

	coreconfig "github.com/m3rciful/runclub/core/config"
	coredatabase "github.com/m3rciful/runclub/core/database"
)

const defaultCoachHandle = "@coach_pramuk"

// OperatorConfig selects the chat that receives booking summaries.
type OperatorConfig struct {
	// ChatID falls back to telegram.admin_id when zero.
	ChatID         int64 `yaml:"chat_id" envconfig:"OPERATOR_CHAT_ID"`
	MirrorMessages bool  `yaml:"mirror_messages" envconfig:"OPERATOR_MIRROR_MESSAGES"`
}

// ClubConfig carries texts that differ between deployments.
type ClubConfig struct {
	PaymentInfo  string `yaml:"payment_info" envconfig:"CLUB_PAYMENT_INFO"`
	ContactAdmin string `yaml:"contact_admin" envconfig:"CLUB_CONTACT_ADMIN"`
	Address      string `yaml:"address" envconfig:"CLUB_ADDRESS"`
	MapLink      string `yaml:"map_link" envconfig:"CLUB_MAP_LINK"`
	CoachHandle  string `yaml:"coach_handle" envconfig:"CLUB_COACH_HANDLE"`
}

// BookingConfig tunes the booking dialogue.
type BookingConfig struct {
	KeepDraftOnChange bool `yaml:"keep_draft_on_change" envconfig:"BOOKING_KEEP_DRAFT_ON_CHANGE"`
}

// Config is the full bot configuration.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
	Operator OperatorConfig      `yaml:"operator"`
	Club     ClubConfig          `yaml:"club"`
	Booking  BookingConfig       `yaml:"booking"`
}

// CoreConfig exposes the embedded core settings.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Config
}

// Load reads the YAML file at path, overlays the environment and validates.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := coreconfig.Decode(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates the configuration and fills defaults.
func (c *Config) Normalize() error {
	if c == nil {
		return errors.New("nil config")
	}
	if err := coreconfig.Normalize(&c.Config); err != nil {
		return err
	}
	if err := c.Database.Normalize(); err != nil {
		return err
	}
	if c.Operator.ChatID == 0 {
		c.Operator.ChatID = c.Telegram.AdminID
	}
	if c.Operator.MirrorMessages && c.Operator.ChatID == 0 {
		return fmt.Errorf("operator.mirror_messages needs operator.chat_id or telegram.admin_id")
	}

	c.Club.PaymentInfo = strings.TrimSpace(c.Club.PaymentInfo)
	c.Club.ContactAdmin = strings.TrimSpace(c.Club.ContactAdmin)
	c.Club.Address = strings.TrimSpace(c.Club.Address)
	c.Club.MapLink = strings.TrimSpace(c.Club.MapLink)
	c.Club.CoachHandle = strings.TrimSpace(c.Club.CoachHandle)
	if c.Club.CoachHandle == "" {
		c.Club.CoachHandle = defaultCoachHandle
	}
	return nil
}

package settings

import (
	"context"
	"strconv"

	"github.com/dentalogix/dentalogix-api/internal/config"
)

// Provider is what collaborators (notification, handlers rendering contact
// details) receive instead of reaching for a global settings singleton.
type Provider interface {
	SiteSettings(ctx context.Context) (*SiteSettings, error)
}

type UpdateSettingsDTO struct {
	SiteName          *string `json:"site_name"`
	SiteURL           *string `json:"site_url"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	NotificationEmail *string `json:"notification_email"`
	SMTPHost          *string `json:"smtp_host"`
	SMTPPort          *int    `json:"smtp_port"`
	SMTPUser          *string `json:"smtp_user"`
	SMTPPass          *string `json:"smtp_pass"`
	SMTPSecure        *bool   `json:"smtp_secure"`
	SMTPFrom          *string `json:"smtp_from"`
}

type Service interface {
	Provider
	Update(ctx context.Context, dto UpdateSettingsDTO) (*SiteSettings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SiteSettings(ctx context.Context) (*SiteSettings, error) {
	values, err := s.repo.LoadAll()
	if err != nil {
		return nil, err
	}

	out := SiteSettings{
		SiteName:          values[keySiteName],
		SiteURL:           values[keySiteURL],
		Email:             values[keyEmail],
		Phone:             values[keyPhone],
		Address:           values[keyAddress],
		NotificationEmail: values[keyNotificationEmail],
		SMTPHost:          values[keySMTPHost],
		SMTPUser:          values[keySMTPUser],
		SMTPFrom:          values[keySMTPFrom],
	}
	if port, err := strconv.Atoi(values[keySMTPPort]); err == nil {
		out.SMTPPort = port
	}
	out.SMTPSecure = values[keySMTPSecure] == "true"

	if enc := values[keySMTPPass]; enc != "" {
		pass, err := config.Decrypt(enc)
		if err != nil {
			config.WithContext(ctx).WithError(err).Warn("Failed to decrypt SMTP password")
		} else {
			out.SMTPPass = pass
		}
	}

	return &out, nil
}

func (s *service) Update(ctx context.Context, dto UpdateSettingsDTO) (*SiteSettings, error) {
	log := config.WithContext(ctx)

	updates := map[string]*string{
		keySiteName:          dto.SiteName,
		keySiteURL:           dto.SiteURL,
		keyEmail:             dto.Email,
		keyPhone:             dto.Phone,
		keyAddress:           dto.Address,
		keyNotificationEmail: dto.NotificationEmail,
		keySMTPHost:          dto.SMTPHost,
		keySMTPUser:          dto.SMTPUser,
		keySMTPFrom:          dto.SMTPFrom,
	}
	for key, value := range updates {
		if value == nil {
			continue
		}
		if err := s.repo.Upsert(key, *value); err != nil {
			log.WithError(err).WithField("key", key).Error("Failed to update setting")
			return nil, err
		}
	}

	if dto.SMTPPort != nil {
		if err := s.repo.Upsert(keySMTPPort, strconv.Itoa(*dto.SMTPPort)); err != nil {
			return nil, err
		}
	}
	if dto.SMTPSecure != nil {
		if err := s.repo.Upsert(keySMTPSecure, strconv.FormatBool(*dto.SMTPSecure)); err != nil {
			return nil, err
		}
	}
	if dto.SMTPPass != nil {
		enc, err := config.Encrypt(*dto.SMTPPass)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt SMTP password")
			return nil, err
		}
		if err := s.repo.Upsert(keySMTPPass, enc); err != nil {
			return nil, err
		}
	}

	log.Info("Site settings updated")
	return s.SiteSettings(ctx)
}

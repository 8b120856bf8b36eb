package settings

// Setting is one key-value row. The admin panel edits individual keys; the
// rest of the codebase only ever sees the typed SiteSettings view.
type Setting struct {
	Key   string `gorm:"type:text;primaryKey" json:"key"`
	Value string `gorm:"type:text;not null;default:''" json:"value"`
}

// SiteSettings is the typed projection of the settings table handed to
// collaborators at construction time.
type SiteSettings struct {
	SiteName          string `json:"site_name"`
	SiteURL           string `json:"site_url"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	NotificationEmail string `json:"notification_email"`

	SMTPHost   string `json:"smtp_host"`
	SMTPPort   int    `json:"smtp_port"`
	SMTPUser   string `json:"smtp_user"`
	SMTPPass   string `json:"-"`
	SMTPSecure bool   `json:"smtp_secure"`
	SMTPFrom   string `json:"smtp_from"`
}

const (
	keySiteName          = "site_name"
	keySiteURL           = "site_url"
	keyEmail             = "email"
	keyPhone             = "phone"
	keyAddress           = "address"
	keyNotificationEmail = "notification_email"
	keySMTPHost          = "smtp_host"
	keySMTPPort          = "smtp_port"
	keySMTPUser          = "smtp_user"
	keySMTPPass          = "smtp_pass"
	keySMTPSecure        = "smtp_secure"
	keySMTPFrom          = "smtp_from"
)

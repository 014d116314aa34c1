package entity

import "strings"

// UserStatus is the account lifecycle state kept by the backend.
type UserStatus string

const (
	UserStatusPending     UserStatus = "PENDING"
	UserStatusActivated   UserStatus = "ACTIVATED"
	UserStatusDeactivated UserStatus = "DEACTIVATED"
	UserStatusRejected    UserStatus = "REJECTED"
)

// IsValid checks if the status is one of the known values.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusActivated, UserStatusDeactivated, UserStatusRejected:
		return true
	default:
		return false
	}
}

// User is the authenticated principal as confirmed by the backend.
// The JSON shape matches the backend user resource and is also the snapshot
// persisted in the session store.
type User struct {
	ID         string     `json:"id"`
	ProviderID string     `json:"providerId"` // Subject id issued by the identity provider.
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Picture    string     `json:"picture,omitempty"`
	Roles      Roles      `json:"roles"`
	Status     UserStatus `json:"status"`

	// Embedded company reference. CompanyStatus is empty when the backend did
	// not resolve the company for this user.
	CompanyID     string        `json:"companyId,omitempty"`
	CompanyName   string        `json:"companyName,omitempty"`
	CompanyStatus CompanyStatus `json:"companyStatus,omitempty"`
}

// EmailDomain returns the lowercase domain part of the user's email, or "" when
// the email has none.
func (u *User) EmailDomain() string {
	if u == nil {
		return ""
	}

	return EmailDomain(u.Email)
}

// EmbeddedCompanyStatus returns the company status carried on the user itself.
func (u *User) EmbeddedCompanyStatus() (CompanyStatusResult, bool) {
	if u == nil || u.CompanyStatus == "" {
		return CompanyStatusResult{}, false
	}

	return CompanyStatusResult{
		Status: u.CompanyStatus,
		Name:   u.CompanyName,
		Domain: u.EmailDomain(),
	}, true
}

// EmailDomain extracts the lowercase domain of an email address.
func EmailDomain(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return ""
	}

	return strings.ToLower(strings.TrimSpace(email[at+1:]))
}

package entity

import "time"

// CompanyStatus is the lifecycle state of a company, plus NOT_FOUND for
// domains no company is registered under.
type CompanyStatus string

const (
	CompanyStatusActive      CompanyStatus = "ACTIVE"
	CompanyStatusDeactivated CompanyStatus = "DEACTIVATED"
	CompanyStatusSuspended   CompanyStatus = "SUSPENDED"
	CompanyStatusNotFound    CompanyStatus = "NOT_FOUND"
)

// IsInactive reports whether the company blocks its users.
func (s CompanyStatus) IsInactive() bool {
	return s == CompanyStatusDeactivated || s == CompanyStatusSuspended
}

// Company is the backend company resource, reduced to what status resolution needs.
type Company struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	PrimaryDomain string        `json:"primaryDomain"`
	ContactEmail  string        `json:"contactEmail"`
	Status        CompanyStatus `json:"status"`
}

// CompanyStatusResult is the outcome of resolving an email domain to a company.
type CompanyStatusResult struct {
	Status CompanyStatus `json:"status"`
	Name   string        `json:"name,omitempty"`
	Domain string        `json:"domain"`
}

// CompanyStatusEntry is a cached CompanyStatusResult.
//
// ExpiresAt bounds freshness. LastCheckedAt bounds the request rate: a persisted
// entry checked recently is reused even by a process that never saw it.
type CompanyStatusEntry struct {
	Result        CompanyStatusResult `json:"result"`
	ExpiresAt     time.Time           `json:"expiresAt"`
	LastCheckedAt time.Time           `json:"lastCheckedAt"`
}

// NewCompanyStatusEntry stamps result as checked at now and fresh for ttl.
func NewCompanyStatusEntry(result CompanyStatusResult, now time.Time, ttl time.Duration) CompanyStatusEntry {
	return CompanyStatusEntry{
		Result:        result,
		ExpiresAt:     now.Add(ttl),
		LastCheckedAt: now,
	}
}

// Fresh reports whether the entry has not yet expired.
func (e CompanyStatusEntry) Fresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// RecentlyChecked reports whether the entry was checked less than window ago.
func (e CompanyStatusEntry) RecentlyChecked(now time.Time, window time.Duration) bool {
	return !e.LastCheckedAt.IsZero() && now.Sub(e.LastCheckedAt) < window
}

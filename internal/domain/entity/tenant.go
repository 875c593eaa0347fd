// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Tenant is one onboarded restaurant: the unit of data isolation.
// Its registry row lives in the shared public schema, while all menu
// data lives in the tenant's private schema named by SchemaName.
type Tenant struct {
	ID           int64      // Numeric registry identity.
	Slug         Identifier // Public URL identifier, immutable after provisioning.
	DisplayName  string     // Trading name shown to customers.
	LegalName    *string    // Registered company name, optional.
	CNPJ         *string    // Brazilian company registration number, optional.
	Address      *string
	Phone        *string
	LogoPath     *string
	PrimaryHex   *string // Branding colours for the public menu page.
	SecondaryHex *string
	OpeningTime  *string         // "HH:MM", optional.
	ClosingTime  *string         // "HH:MM", optional; may be earlier than OpeningTime for overnight hours.
	OpenDays     map[string]bool // Keys dom/seg/ter/qua/qui/sex/sab.
	SchemaName   Identifier      // Private schema name, immutable after provisioning.
	Email        string          // Responsible-party login email, unique.
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TenantPatch carries the fields of a partial registry update.
// Identity fields (slug, schema name, email) are deliberately absent:
// they are immutable after provisioning.
type TenantPatch struct {
	DisplayName  *string
	LegalName    *string
	CNPJ         *string
	Address      *string
	Phone        *string
	LogoPath     *string
	PrimaryHex   *string
	SecondaryHex *string
	OpeningTime  *string
	ClosingTime  *string
	OpenDays     map[string]bool
}

// Empty reports whether the patch changes nothing.
func (p TenantPatch) Empty() bool {
	return p.DisplayName == nil && p.LegalName == nil && p.CNPJ == nil &&
		p.Address == nil && p.Phone == nil && p.LogoPath == nil &&
		p.PrimaryHex == nil && p.SecondaryHex == nil &&
		p.OpeningTime == nil && p.ClosingTime == nil && p.OpenDays == nil
}

// OpenStatus is the computed "open right now" state for the public menu page.
type OpenStatus struct {
	Open bool
	Text string
}

var weekdayKeys = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sab"}

// OpenStatusAt reports whether the restaurant is open at the given local time.
// Overnight windows (closing time before opening time) span midnight.
func (t *Tenant) OpenStatusAt(now time.Time) OpenStatus {
	if t.OpeningTime == nil || t.ClosingTime == nil || len(t.OpenDays) == 0 {
		return OpenStatus{Open: false, Text: "Horário não informado"}
	}

	if !t.OpenDays[weekdayKeys[now.Weekday()]] {
		return OpenStatus{Open: false, Text: "Fechado agora"}
	}

	clock := now.Format("15:04")
	opening, closing := *t.OpeningTime, *t.ClosingTime

	var within bool
	if opening < closing {
		within = clock >= opening && clock < closing
	} else {
		within = clock >= opening || clock < closing
	}

	if within {
		return OpenStatus{Open: true, Text: "Aberto agora"}
	}

	return OpenStatus{Open: false, Text: "Fechado agora"}
}

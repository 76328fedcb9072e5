package models

import (
	"fmt"
	"strings"
)

// ZoneFallback is displayed when a record carries no zone label
const ZoneFallback = "GENERAL"

// Billboard represents a single billboard face in the inventory.
// Records are loaded once at startup and never mutated.
type Billboard struct {
	ID      string `json:"id"`
	Code    string `json:"codigo"`
	Element string `json:"elemento"` // e.g. Unipolar, Minipolar
	Face    string `json:"cara"`     // A, B, C
	Format  string `json:"formato"`  // e.g. 12x5, 8x4
	Width   string `json:"ancho"`
	Height  string `json:"alto"`
	Size    string `json:"medida"` // e.g. 60m2

	Type     string `json:"tipo"` // Digital, Estática
	Zone     string `json:"zona"` // Norte, Sur, Este, Oeste, Centro
	District string `json:"distrito"`

	CommercialAddress string  `json:"direccionComercial"`
	LegalAddress      string  `json:"direccionLegal"`
	Department        string  `json:"departamento"`
	Latitude          float64 `json:"latitud"`
	Longitude         float64 `json:"longitud"`

	Audience    int    `json:"audiencia"` // daily impressions, 0 = unknown
	Observation string `json:"observacion"`
	ImageURL    string `json:"imagen"`
}

// IsDigital reports whether the face is a digital screen.
// Classification is a case-insensitive substring check so variants
// like "Pantalla Digital" or "DIGITAL LED" all qualify.
func (b Billboard) IsDigital() bool {
	return strings.Contains(strings.ToUpper(b.Type), "DIGITAL")
}

// ZoneLabel returns the zone for display, falling back to GENERAL
// when the record has no zone assigned.
func (b Billboard) ZoneLabel() string {
	if b.Zone == "" {
		return ZoneFallback
	}
	return b.Zone
}

// HasLocation reports whether the record carries usable coordinates.
// A (0,0) pair means "no location" in the source data, not a point in
// the Gulf of Guinea.
func (b Billboard) HasLocation() bool {
	return b.Latitude != 0 || b.Longitude != 0
}

// MapURL returns a Google Maps deep link for the record's coordinates,
// or the empty string when no usable location exists.
func (b Billboard) MapURL() string {
	if !b.HasLocation() {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", b.Latitude, b.Longitude)
}

// AudienceLabel formats the daily impressions estimate for display.
// Zero means the estimate is not available.
func (b Billboard) AudienceLabel() string {
	if b.Audience <= 0 {
		return "-"
	}
	return formatThousands(b.Audience)
}

// formatThousands renders 1234567 as "1,234,567"
func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}

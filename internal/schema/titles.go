package schema

import (
	"strings"

	"github.com/invitekit/invitekit/internal/record"
)

// coupleTitle joins two names with an ampersand, tolerating either side
// being absent. The fallback is used when both are empty.
func coupleTitle(first, second, fallback string) string {
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)
	switch {
	case first != "" && second != "":
		return first + " & " + second
	case first != "":
		return first
	case second != "":
		return second
	default:
		return fallback
	}
}

// firstNonEmpty returns the first non-blank candidate, or the fallback.
func firstNonEmpty(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return fallback
}

func weddingTitle(rec *record.Record) string {
	return coupleTitle(rec.BrideName, rec.GroomName, "Düğünümüze Davetlisiniz")
}

func engagementTitle(rec *record.Record) string {
	return coupleTitle(rec.BrideName, rec.GroomName, "Nişanımıza Davetlisiniz")
}

func hennaTitle(rec *record.Record) string {
	return firstNonEmpty("Kına Gecesi", rec.BrideName, rec.HostName)
}

func babyShowerTitle(rec *record.Record) string {
	return firstNonEmpty("Baby Shower", rec.ChildName, rec.HostName)
}

func genderRevealTitle(rec *record.Record) string {
	return firstNonEmpty("Kız mı Erkek mi?", rec.ChildName, rec.HostName)
}

func circumcisionTitle(rec *record.Record) string {
	return firstNonEmpty("Sünnet Düğünü", rec.ChildName)
}

// birthdayTitle renders "name age Yaşında" only when both parts are present;
// an age without a name falls through to the generic party string.
func birthdayTitle(rec *record.Record) string {
	name := strings.TrimSpace(rec.ChildName)
	age := strings.TrimSpace(rec.Age)
	if name != "" && age != "" {
		return name + " " + age + " Yaşında"
	}
	if name != "" {
		return name
	}
	return "Doğum Günü Partisi"
}

func recitationTitle(rec *record.Record) string {
	return firstNonEmpty("Mevlid Davetiyesi", rec.HostName)
}

func corporateTitle(rec *record.Record) string {
	return firstNonEmpty("Kurumsal Davet", rec.Organization, rec.HostName)
}

func openingTitle(rec *record.Record) string {
	return firstNonEmpty("Açılışımıza Davetlisiniz", rec.Organization, rec.HostName)
}

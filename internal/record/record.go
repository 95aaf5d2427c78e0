// Package record defines the invitation data record supplied by the editor
// or the persistence layer, and the normalization step that turns any stored
// shape (including legacy ones) into the canonical form the rendering engine
// consumes. The engine itself never validates a record; every field is
// optional and absence degrades to a hidden or empty element.
package record

import (
	"time"

	"github.com/invitekit/invitekit/internal/element"
)

// MediaKind names the kind of user-supplied background media.
type MediaKind string

const (
	MediaNone     MediaKind = ""
	MediaImage    MediaKind = "image"
	MediaCarousel MediaKind = "carousel"
	MediaVideo    MediaKind = "video"
)

// BackgroundType selects between user media and a solid/gradient preset.
type BackgroundType string

const (
	BackgroundDefault BackgroundType = ""
	BackgroundMedia   BackgroundType = "media"
	BackgroundPreset  BackgroundType = "preset"
)

// OverlayIntensity is the three-level darkening enum.
type OverlayIntensity string

const (
	OverlayUnset  OverlayIntensity = ""
	OverlayLight  OverlayIntensity = "light"
	OverlayMedium OverlayIntensity = "medium"
	OverlayDark   OverlayIntensity = "dark"
)

// CountdownStyle selects the countdown's visual treatment.
type CountdownStyle string

const (
	CountdownClassic CountdownStyle = "classic"
	CountdownModern  CountdownStyle = "modern"
	CountdownMinimal CountdownStyle = "minimal"
)

// AvatarShape controls how avatar images are clipped.
type AvatarShape string

const (
	AvatarCircle  AvatarShape = "circle"
	AvatarRounded AvatarShape = "rounded"
)

// FontRole is an abstract slot a font family is assigned to.
type FontRole string

const (
	RoleTitle FontRole = "title"
	RoleNames FontRole = "names"
	RoleNote  FontRole = "note"
)

// Background describes the caller's background selection. References are
// opaque URLs owned by the object-storage layer.
type Background struct {
	Type     BackgroundType `yaml:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=media preset"`
	PresetID string         `yaml:"preset_id,omitempty" json:"preset_id,omitempty"`
	Kind     MediaKind      `yaml:"kind,omitempty" json:"kind,omitempty" validate:"omitempty,oneof=image carousel video"`
	Images   []string       `yaml:"images,omitempty" json:"images,omitempty" validate:"omitempty,dive,uri"`
	VideoURL string         `yaml:"video_url,omitempty" json:"video_url,omitempty" validate:"omitempty,uri"`
}

// Toggles carries per-element visibility switches. A nil pointer means the
// caller expressed no preference; see element.Resolve for the precedence
// rule.
type Toggles struct {
	MainTitle       *bool `yaml:"main_title,omitempty" json:"main_title,omitempty"`
	Subtitle        *bool `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Avatar          *bool `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Note            *bool `yaml:"note,omitempty" json:"note,omitempty"`
	Date            *bool `yaml:"date,omitempty" json:"date,omitempty"`
	Venue           *bool `yaml:"venue,omitempty" json:"venue,omitempty"`
	Countdown       *bool `yaml:"countdown,omitempty" json:"countdown,omitempty"`
	ReminderButton  *bool `yaml:"reminder_button,omitempty" json:"reminder_button,omitempty"`
	ScrollIndicator *bool `yaml:"scroll_indicator,omitempty" json:"scroll_indicator,omitempty"`
}

// ElementToggles converts the struct form into the set arithmetic form.
func (t Toggles) ElementToggles() element.Toggles {
	return element.Toggles{
		element.MainTitle:       t.MainTitle,
		element.Subtitle:        t.Subtitle,
		element.Avatar:          t.Avatar,
		element.Note:            t.Note,
		element.Date:            t.Date,
		element.Venue:           t.Venue,
		element.Countdown:       t.Countdown,
		element.ReminderButton:  t.ReminderButton,
		element.ScrollIndicator: t.ScrollIndicator,
	}
}

// Style groups the customization parameters applied on top of a template.
type Style struct {
	TextColor        string              `yaml:"text_color,omitempty" json:"text_color,omitempty" validate:"omitempty,hexcolor"`
	Fonts            map[FontRole]string `yaml:"fonts,omitempty" json:"fonts,omitempty"`
	TitleSize        int                 `yaml:"title_size,omitempty" json:"title_size,omitempty" validate:"omitempty,min=8,max=160"`
	NamesSize        int                 `yaml:"names_size,omitempty" json:"names_size,omitempty" validate:"omitempty,min=8,max=160"`
	NoteSize         int                 `yaml:"note_size,omitempty" json:"note_size,omitempty" validate:"omitempty,min=8,max=96"`
	CountdownStyle   CountdownStyle      `yaml:"countdown_style,omitempty" json:"countdown_style,omitempty" validate:"omitempty,oneof=classic modern minimal"`
	OverlayIntensity OverlayIntensity    `yaml:"overlay,omitempty" json:"overlay,omitempty" validate:"omitempty,oneof=light medium dark"`
	AvatarImages     []string            `yaml:"avatar_images,omitempty" json:"avatar_images,omitempty" validate:"omitempty,dive,uri"`
	AvatarShape      AvatarShape         `yaml:"avatar_shape,omitempty" json:"avatar_shape,omitempty" validate:"omitempty,oneof=circle rounded"`
	Background       Background          `yaml:"background,omitempty" json:"background,omitempty"`
	Toggles          Toggles             `yaml:"show,omitempty" json:"show,omitempty"`
}

// Record is the caller-supplied invitation payload. Every field is optional;
// the engine treats the record as read-only and retains nothing between
// renders.
type Record struct {
	Category   string `yaml:"category,omitempty" json:"category,omitempty"`
	TemplateID string `yaml:"template_id,omitempty" json:"template_id,omitempty"`

	// Person fields; which ones are meaningful depends on the category.
	BrideName    string `yaml:"bride_name,omitempty" json:"bride_name,omitempty"`
	GroomName    string `yaml:"groom_name,omitempty" json:"groom_name,omitempty"`
	ChildName    string `yaml:"child_name,omitempty" json:"child_name,omitempty"`
	Age          string `yaml:"age,omitempty" json:"age,omitempty"`
	HostName     string `yaml:"host_name,omitempty" json:"host_name,omitempty"`
	MotherName   string `yaml:"mother_name,omitempty" json:"mother_name,omitempty"`
	FatherName   string `yaml:"father_name,omitempty" json:"father_name,omitempty"`
	Organization string `yaml:"organization,omitempty" json:"organization,omitempty"`
	Reason       string `yaml:"reason,omitempty" json:"reason,omitempty"`

	Subtitle string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Note     string `yaml:"note,omitempty" json:"note,omitempty"`

	EventDate    string `yaml:"event_date,omitempty" json:"event_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EventTime    string `yaml:"event_time,omitempty" json:"event_time,omitempty" validate:"omitempty,datetime=15:04"`
	VenueName    string `yaml:"venue_name,omitempty" json:"venue_name,omitempty"`
	VenueAddress string `yaml:"venue_address,omitempty" json:"venue_address,omitempty"`
	MapLink      string `yaml:"map_link,omitempty" json:"map_link,omitempty" validate:"omitempty,url"`

	RSVPEnabled bool `yaml:"rsvp_enabled,omitempty" json:"rsvp_enabled,omitempty"`

	Style Style `yaml:"style,omitempty" json:"style,omitempty"`

	// Legacy fields from earlier schema versions, folded into the
	// canonical fields by Normalize and never read elsewhere.
	LegacyName1    string `yaml:"name1,omitempty" json:"name1,omitempty"`
	LegacyName2    string `yaml:"name2,omitempty" json:"name2,omitempty"`
	LegacyPlace    string `yaml:"place,omitempty" json:"place,omitempty"`
	LegacyTemplate string `yaml:"template,omitempty" json:"template,omitempty"`
}

// EventDateTime parses the record's date (and optional time) into a concrete
// timestamp. The boolean is false when no parseable date is present; the
// engine renders a zero countdown and hides the date line in that case.
func (r *Record) EventDateTime() (time.Time, bool) {
	if r == nil || r.EventDate == "" {
		return time.Time{}, false
	}
	layout := "2006-01-02"
	value := r.EventDate
	if r.EventTime != "" {
		layout = "2006-01-02 15:04"
		value = r.EventDate + " " + r.EventTime
	}
	ts, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		// Tolerate a record whose date field predates the canonical
		// format; a bad date must not break the page.
		ts, err = time.ParseInLocation("2006-01-02", r.EventDate, time.Local)
		if err != nil {
			return time.Time{}, false
		}
	}
	return ts, true
}

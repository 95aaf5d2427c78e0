package schema

import "github.com/invitekit/invitekit/internal/element"

// Shared field definitions reused across categories.
var eventFields = []Field{
	{Key: "event_date", Label: "Tarih", Placeholder: "2026-06-15", Kind: InputDate},
	{Key: "event_time", Label: "Saat", Placeholder: "17:30", Kind: InputTime, Optional: true},
	{Key: "venue_name", Label: "Mekan", Placeholder: "Mekan adı", Kind: InputText, Optional: true},
	{Key: "venue_address", Label: "Adres", Placeholder: "Açık adres", Kind: InputText, Optional: true},
	{Key: "map_link", Label: "Harita Bağlantısı", Placeholder: "https://maps...", Kind: InputURL, Optional: true},
	{Key: "note", Label: "Davet Notu", Placeholder: "Davetlilerinize notunuz", Kind: InputTextarea, Optional: true},
}

func withEventFields(fields ...Field) []Field {
	out := make([]Field, 0, len(fields)+len(eventFields))
	out = append(out, fields...)
	out = append(out, eventFields...)
	return out
}

var allElements = element.NewSet(element.All...)

var noAvatarElements = element.NewSet(
	element.MainTitle, element.Subtitle, element.Note, element.Date,
	element.Venue, element.Countdown, element.ReminderButton, element.ScrollIndicator,
)

var recitationElements = element.NewSet(
	element.MainTitle, element.Subtitle, element.Note, element.Date,
	element.Venue, element.ReminderButton,
)

// registryOrder fixes the iteration order for listings.
var registryOrder = []Category{
	Wedding, Engagement, HennaNight, BabyShower, GenderReveal,
	Circumcision, Birthday, Recitation, Corporate, Opening,
}

var registry = map[Category]Schema{
	Wedding: {
		Category: Wedding,
		Fields: withEventFields(
			Field{Key: "bride_name", Label: "Gelin", Placeholder: "Gelinin adı", Kind: InputText},
			Field{Key: "groom_name", Label: "Damat", Placeholder: "Damadın adı", Kind: InputText},
		),
		DefaultSubtitle: "Evleniyoruz",
		DefaultNote:     "Bu mutlu günümüzde sizleri de aramızda görmekten onur duyarız.",
		Elements:        allElements,
		Title:           weddingTitle,
	},
	Engagement: {
		Category: Engagement,
		Fields: withEventFields(
			Field{Key: "bride_name", Label: "Gelin Adayı", Placeholder: "Adı", Kind: InputText},
			Field{Key: "groom_name", Label: "Damat Adayı", Placeholder: "Adı", Kind: InputText},
		),
		DefaultSubtitle: "Nişanlanıyoruz",
		DefaultNote:     "Nişan törenimizde sizleri de aramızda görmekten mutluluk duyarız.",
		Elements:        allElements,
		Title:           engagementTitle,
	},
	HennaNight: {
		Category: HennaNight,
		Fields: withEventFields(
			Field{Key: "bride_name", Label: "Gelin", Placeholder: "Gelinin adı", Kind: InputText},
			Field{Key: "host_name", Label: "Davet Sahibi", Placeholder: "Adı", Kind: InputText, Optional: true},
		),
		DefaultSubtitle: "Kına Gecemize Davetlisiniz",
		DefaultNote:     "Kına gecemizde buluşalım.",
		Elements:        allElements,
		Title:           hennaTitle,
	},
	BabyShower: {
		Category: BabyShower,
		Fields: withEventFields(
			Field{Key: "child_name", Label: "Bebeğin Adı", Placeholder: "Bebeğin adı", Kind: InputText, Optional: true},
			Field{Key: "host_name", Label: "Davet Sahibi", Placeholder: "Anne adayının adı", Kind: InputText},
		),
		DefaultSubtitle: "Bebeğimizi Bekliyoruz",
		DefaultNote:     "Minik misafirimizi birlikte karşılayalım.",
		Elements:        allElements,
		Title:           babyShowerTitle,
	},
	GenderReveal: {
		Category: GenderReveal,
		Fields: withEventFields(
			Field{Key: "host_name", Label: "Davet Sahibi", Placeholder: "Adı", Kind: InputText},
		),
		DefaultSubtitle: "Cinsiyet Partisi",
		DefaultNote:     "Pembe mi mavi mi? Birlikte öğrenelim.",
		Elements:        noAvatarElements,
		Title:           genderRevealTitle,
	},
	Circumcision: {
		Category: Circumcision,
		Fields: withEventFields(
			Field{Key: "child_name", Label: "Çocuğun Adı", Placeholder: "Adı", Kind: InputText},
			Field{Key: "mother_name", Label: "Anne", Placeholder: "Anne adı", Kind: InputText, Optional: true},
			Field{Key: "father_name", Label: "Baba", Placeholder: "Baba adı", Kind: InputText, Optional: true},
		),
		DefaultSubtitle: "Sünnet Düğünümüze Davetlisiniz",
		DefaultNote:     "Oğlumuzun sünnet düğününde sizleri de aramızda görmek isteriz.",
		Elements:        allElements,
		Title:           circumcisionTitle,
	},
	Birthday: {
		Category: Birthday,
		Fields: withEventFields(
			Field{Key: "child_name", Label: "Adı", Placeholder: "Doğum günü sahibinin adı", Kind: InputText},
			Field{Key: "age", Label: "Yaş", Placeholder: "5", Kind: InputText, Optional: true},
		),
		DefaultSubtitle: "Doğum Günü Partisi",
		DefaultNote:     "Doğum günü partimize bekliyoruz!",
		Elements:        allElements,
		Title:           birthdayTitle,
	},
	Recitation: {
		Category: Recitation,
		Fields: withEventFields(
			Field{Key: "host_name", Label: "Davet Sahibi", Placeholder: "Adı", Kind: InputText},
			Field{Key: "reason", Label: "Vesile", Placeholder: "Mevlidin vesilesi", Kind: InputText, Optional: true},
		),
		DefaultSubtitle: "Mevlid Daveti",
		DefaultNote:     "Okutacağımız mevlide teşrifinizi rica ederiz.",
		Elements:        recitationElements,
		Title:           recitationTitle,
	},
	Corporate: {
		Category: Corporate,
		Fields: withEventFields(
			Field{Key: "organization", Label: "Kurum", Placeholder: "Kurum adı", Kind: InputText},
			Field{Key: "reason", Label: "Etkinlik Konusu", Placeholder: "Toplantı konusu", Kind: InputText, Optional: true},
		),
		DefaultSubtitle: "Kurumsal Etkinlik",
		DefaultNote:     "Etkinliğimize katılımınızdan onur duyarız.",
		Elements:        noAvatarElements,
		Title:           corporateTitle,
	},
	Opening: {
		Category: Opening,
		Fields: withEventFields(
			Field{Key: "organization", Label: "İşletme", Placeholder: "İşletme adı", Kind: InputText},
			Field{Key: "host_name", Label: "Davet Sahibi", Placeholder: "Adı", Kind: InputText, Optional: true},
		),
		DefaultSubtitle: "Açılış Daveti",
		DefaultNote:     "Açılışımıza teşriflerinizi bekleriz.",
		Elements:        noAvatarElements,
		Title:           openingTitle,
	},
}

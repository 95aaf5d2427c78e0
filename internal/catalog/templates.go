package catalog

import (
	"github.com/invitekit/invitekit/internal/record"
	"github.com/invitekit/invitekit/internal/schema"
)

// templates is the build-time catalog. Ids 1-3 correspond to the original
// classic/modern/bohemian designs and must keep their positions for records
// persisted under the string scheme.
var templates = []Descriptor{
	{
		ID: 1, Name: "Klasik", Category: schema.Wedding, Layout: LayoutCentered,
		BackgroundAsset: "/assets/backgrounds/classic-roses.jpg", PreviewTag: "elegant",
		Overlay: record.OverlayMedium, AccentColor: "#b76e79", AccentTint: "#f7e8ea",
		AvatarCount: 2, AvatarGlyphs: []string{"💍", "💍"},
	},
	{
		ID: 2, Name: "Modern", Category: schema.Wedding, Layout: LayoutMinimal,
		BackgroundAsset: "/assets/backgrounds/modern-marble.jpg", PreviewTag: "minimal",
		Overlay: record.OverlayLight, AccentColor: "#1f2a44", AccentTint: "#e9ecf5",
	},
	{
		ID: 3, Name: "Bohem", Category: schema.Wedding, Layout: LayoutBottomLeft,
		BackgroundAsset: "/assets/backgrounds/bohemian-pampas.jpg", PreviewTag: "warm",
		Overlay: record.OverlayMedium, AccentColor: "#a9745b", AccentTint: "#f4eadf",
		AvatarCount: 2, AvatarGlyphs: []string{"🌿", "🌿"},
	},
	{
		ID: 4, Name: "Gece Bahçesi", Category: schema.Wedding, Layout: LayoutTopCenter,
		BackgroundAsset: "/assets/backgrounds/night-garden.jpg", PreviewTag: "dark",
		Overlay: record.OverlayDark, AccentColor: "#d9b26f", AccentTint: "#241f1a",
		AvatarCount: 2, AvatarGlyphs: []string{"🌙", "✨"},
	},
	{
		ID: 5, Name: "Sahil", Category: schema.Wedding, Layout: LayoutSplit,
		BackgroundAsset: "/assets/backgrounds/seaside.jpg", PreviewTag: "fresh",
		Overlay: record.OverlayLight, AccentColor: "#2e7d9a", AccentTint: "#e3f2f7",
	},
	{
		ID: 6, Name: "Sade Beyaz", Category: schema.Wedding, Layout: LayoutMinimal,
		BackgroundAsset: "/assets/backgrounds/plain-ivory.jpg", PreviewTag: "minimal",
		Overlay: record.OverlayLight, AccentColor: "#7c7266", AccentTint: "#f6f3ee",
	},
	{
		ID: 7, Name: "Yüzük", Category: schema.Engagement, Layout: LayoutCentered,
		BackgroundAsset: "/assets/backgrounds/rings.jpg", PreviewTag: "elegant",
		Overlay: record.OverlayMedium, AccentColor: "#8e5a8a", AccentTint: "#f3e9f2",
		AvatarCount: 2, AvatarGlyphs: []string{"💍", "💍"},
	},
	{
		ID: 8, Name: "Söz", Category: schema.Engagement, Layout: LayoutBottomLeft,
		BackgroundAsset: "/assets/backgrounds/blush-silk.jpg", PreviewTag: "warm",
		Overlay: record.OverlayLight, AccentColor: "#c26a77", AccentTint: "#fbeef0",
		AvatarCount: 2, AvatarGlyphs: []string{"🕊", "🕊"},
	},
	{
		ID: 9, Name: "Kına", Category: schema.HennaNight, Layout: LayoutCentered,
		BackgroundAsset: "/assets/backgrounds/henna-red.jpg", PreviewTag: "traditional",
		Overlay: record.OverlayDark, AccentColor: "#9c2b2b", AccentTint: "#f6e2e2",
		AvatarCount: 1, AvatarGlyphs: []string{"🌺"},
	},
	{
		ID: 10, Name: "Al Duvak", Category: schema.HennaNight, Layout: LayoutTopCenter,
		BackgroundAsset: "/assets/backgrounds/red-veil.jpg", PreviewTag: "traditional",
		Overlay: record.OverlayDark, AccentColor: "#b8452f", AccentTint: "#fbe9e4",
		AvatarCount: 1, AvatarGlyphs: []string{"🌺"},
	},
	{
		ID: 11, Name: "Pamuk", Category: schema.BabyShower, Layout: LayoutCentered,
		BackgroundAsset: "/assets/backgrounds/cotton-clouds.jpg", PreviewTag: "soft",
		Overlay: record.OverlayLight, AccentColor: "#7fa8c9", AccentTint: "#eaf3fa",
		AvatarCount: 1, AvatarGlyphs: []string{"🍼"},
	},
	{
		ID: 12, Name: "Yıldızlar", Category: schema.BabyShower, Layout: LayoutSplit,
		BackgroundAsset: "/assets/backgrounds/nursery-stars.jpg", PreviewTag: "soft",
		Overlay: record.OverlayLight, AccentColor: "#c9a87f", AccentTint: "#faf3ea",
		AvatarCount: 1, AvatarGlyphs: []string{"⭐"},
	},
	{
		ID: 13, Name: "Pembe mi Mavi mi", Category: schema.GenderReveal, Layout: LayoutCentered,
		BackgroundAsset: "/assets/backgrounds/pink-blue.jpg", PreviewTag: "playful",
		Overlay: record.OverlayMedium, AccentColor: "#d46a9f", AccentTint: "#eef4fb",
	},
	{
		ID: 14, Name: "Balonlar", Category: schema.GenderReveal, Layout: LayoutTopCenter,
		BackgroundAsset: "/assets/backgrounds/balloons.jpg", PreviewTag: "playful",
		Overlay: record.OverlayLight, AccentColor: "#5c9ad2", AccentTint: "#fdeef5",
	},
	{
		ID: 15, Name: "Şehzade", Category: schema.Circumcision, Layout: LayoutCentered,
		BackgroundAsset: "/assets/backgrounds/prince-blue.jpg", PreviewTag: "traditional",
		Overlay: record.OverlayMedium, AccentColor: "#2c4f8c", AccentTint: "#e7edf8",
		AvatarCount: 1, AvatarGlyphs: []string{"👑"},
	},
	{
		ID: 16, Name: "Maşallah", Category: schema.Circumcision, Layout: LayoutBottomLeft,
		BackgroundAsset: "/assets/backgrounds/ottoman-motif.jpg", PreviewTag: "traditional",
		Overlay: record.OverlayDark, AccentColor: "#8c6d2c", AccentTint: "#f8f1e0",
		AvatarCount: 1, AvatarGlyphs: []string{"🐎"},
	},
	{
		ID: 17, Name: "Konfeti", Category: schema.Birthday, Layout: LayoutCentered,
		BackgroundAsset: "/assets/backgrounds/confetti.jpg", PreviewTag: "playful",
		Overlay: record.OverlayLight, AccentColor: "#e0932c", AccentTint: "#fdf3e3",
		AvatarCount: 1, AvatarGlyphs: []string{"🎂"},
	},
	{
		ID: 18, Name: "Balon Partisi", Category: schema.Birthday, Layout: LayoutSplit,
		BackgroundAsset: "/assets/backgrounds/party-balloons.jpg", PreviewTag: "playful",
		Overlay: record.OverlayMedium, AccentColor: "#c2412f", AccentTint: "#fdeae6",
		AvatarCount: 1, AvatarGlyphs: []string{"🎈"},
	},
	{
		ID: 19, Name: "Gece Partisi", Category: schema.Birthday, Layout: LayoutMinimal,
		BackgroundAsset: "/assets/backgrounds/neon-night.jpg", PreviewTag: "dark",
		Overlay: record.OverlayDark, AccentColor: "#34d2c8", AccentTint: "#10232b",
	},
	{
		ID: 20, Name: "Tesbih", Category: schema.Recitation, Layout: LayoutMinimal,
		BackgroundAsset: "/assets/backgrounds/calligraphy.jpg", PreviewTag: "solemn",
		Overlay: record.OverlayMedium, AccentColor: "#3e5d45", AccentTint: "#eef4ef",
	},
	{
		ID: 21, Name: "Plaza", Category: schema.Corporate, Layout: LayoutCorporate,
		BackgroundAsset: "/assets/backgrounds/plaza.jpg", PreviewTag: "business",
		Overlay: record.OverlayMedium, AccentColor: "#20456b", AccentTint: "#e8eef5",
	},
	{
		ID: 22, Name: "Zirve", Category: schema.Corporate, Layout: LayoutCorporate,
		BackgroundAsset: "/assets/backgrounds/summit.jpg", PreviewTag: "business",
		Overlay: record.OverlayDark, AccentColor: "#9aa7b8", AccentTint: "#1a2430",
	},
	{
		ID: 23, Name: "Kurdele", Category: schema.Opening, Layout: LayoutCorporate,
		BackgroundAsset: "/assets/backgrounds/ribbon.jpg", PreviewTag: "business",
		Overlay: record.OverlayMedium, AccentColor: "#a8322f", AccentTint: "#fbeae9",
	},
	{
		ID: 24, Name: "Vitrin", Category: schema.Opening, Layout: LayoutSplit,
		BackgroundAsset: "/assets/backgrounds/storefront.jpg", PreviewTag: "fresh",
		Overlay: record.OverlayLight, AccentColor: "#2f7d52", AccentTint: "#e7f5ec",
	},
}

package question

import (
	"context"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/google/uuid"
)

type seedOption struct {
	label  string
	emoji  string
	points PointMap
}

type seedQuestion struct {
	prompt      string
	subtitle    string
	category    string
	icon        string
	funFact     string
	multiSelect bool
	options     []seedOption
}

// Seed inserts the default question bank when the table is empty.
func Seed(ctx context.Context, repo Repository) error {
	log := config.WithContext(ctx)

	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	bank := []seedQuestion{
		{
			prompt:   "What's your #1 smile goal right now?",
			subtitle: "Everyone's smile journey is unique — let's find yours!",
			category: "goals",
			icon:     "⭐",
			funFact:  "Did you know? 48% of adults say a smile is the most memorable feature when meeting someone new!",
			options: []seedOption{
				{"A brighter, whiter smile", "✨", PointMap{"whitening": 3, "veneers": 1}},
				{"Straighter teeth", "📐", PointMap{"invisalign": 3, "veneers": 1}},
				{"Healthier gums & teeth", "💪", PointMap{"preventive": 3, "deepCleaning": 2}},
				{"Replace missing teeth", "🦷", PointMap{"implants": 3, "bridges": 2}},
				{"Just feel more confident", "😊", PointMap{"cosmetic": 2, "whitening": 1, "invisalign": 1}},
			},
		},
		{
			prompt:   "How would you describe your smile right now?",
			subtitle: "Be honest — no judgment here! This helps us help you.",
			category: "current",
			icon:     "😊",
			funFact:  "You're not alone! Studies show 57% of Americans cover their mouth when they laugh.",
			options: []seedOption{
				{"I love it! Just want to maintain", "🥰", PointMap{"preventive": 3}},
				{"It's okay, room for improvement", "🤔", PointMap{"cosmetic": 1, "whitening": 1}},
				{"I hide it in photos", "🫣", PointMap{"cosmetic": 2, "veneers": 1, "invisalign": 1}},
				{"I avoid smiling altogether", "😔", PointMap{"cosmetic": 3, "fullMakeover": 2}},
			},
		},
		{
			prompt:   "Let's talk about tooth color...",
			subtitle: "Coffee lovers, wine enthusiasts — we see you!",
			category: "color",
			icon:     "☀️",
			funFact:  "Good news! Professional whitening can lighten teeth up to 8 shades in just one visit!",
			options: []seedOption{
				{"Pretty white and bright", "⭐", PointMap{"preventive": 2}},
				{"Slightly yellow/dull", "🌤️", PointMap{"whitening": 2}},
				{"Noticeably stained", "🌥️", PointMap{"whitening": 3, "veneers": 1}},
				{"Dark spots or discoloration", "☁️", PointMap{"whitening": 2, "veneers": 2, "bonding": 1}},
			},
		},
		{
			prompt:   "How about the alignment of your teeth?",
			subtitle: "Perfectly imperfect? Or imperfectly perfect?",
			category: "alignment",
			icon:     "⚡",
			funFact:  "Clear aligners have helped over 14 million people straighten their smiles — often in under a year!",
			options: []seedOption{
				{"Pretty straight", "✅", PointMap{"preventive": 2}},
				{"Minor crowding or gaps", "↔️", PointMap{"invisalign": 2, "bonding": 1}},
				{"Moderate crookedness", "〰️", PointMap{"invisalign": 3}},
				{"Significant alignment issues", "🔀", PointMap{"invisalign": 3, "orthodontics": 2}},
			},
		},
		{
			prompt:      "Any of these bothering you?",
			subtitle:    "Select all that apply — it's like a dental wishlist!",
			category:    "concerns",
			icon:        "❤️",
			funFact:     "Dental bonding can fix chips in just 30-60 minutes per tooth — often in a single visit!",
			multiSelect: true,
			options: []seedOption{
				{"Chips or cracks", "💔", PointMap{"bonding": 2, "veneers": 2}},
				{"Gaps between teeth", "🦷", PointMap{"invisalign": 2, "bonding": 1, "veneers": 1}},
				{"Gummy smile", "😁", PointMap{"gumContouring": 3}},
				{"Worn down teeth", "📉", PointMap{"crowns": 2, "veneers": 2}},
				{"Uneven tooth shapes", "📊", PointMap{"bonding": 2, "veneers": 2}},
				{"None of these!", "🎉", PointMap{"preventive": 2}},
			},
		},
		{
			prompt:   "How are your gums feeling?",
			subtitle: "Gum health = smile health. Let's check in!",
			category: "health",
			icon:     "🛡️",
			funFact:  "Healthy gums shouldn't bleed! If yours do, don't worry — it's usually reversible with proper care.",
			options: []seedOption{
				{"Pink, healthy, no bleeding", "💗", PointMap{"preventive": 3}},
				{"Occasional bleeding when brushing", "🩹", PointMap{"deepCleaning": 2, "preventive": 1}},
				{"Sensitive or puffy gums", "😬", PointMap{"deepCleaning": 3, "periodontal": 1}},
				{"Receding gumline", "📉", PointMap{"periodontal": 3, "gumContouring": 1}},
			},
		},
		{
			prompt:   "When's your ideal smile transformation?",
			subtitle: "Big event coming up? Or taking your time?",
			category: "timeline",
			icon:     "✨",
			funFact:  "Zoom whitening takes just 45 minutes! Perfect for wedding season or big presentations.",
			options: []seedOption{
				{"ASAP — I have an event!", "🚀", PointMap{"whitening": 2, "bonding": 1}},
				{"Within 3-6 months", "📆", PointMap{"invisalign": 1, "veneers": 1}},
				{"Within a year", "🗓️", PointMap{"invisalign": 2, "fullMakeover": 1}},
				{"No rush — whenever it's right", "🧘", PointMap{"preventive": 1}},
			},
		},
		{
			prompt:   "Last one! How do you feel about dental visits?",
			subtitle: "Honest answers only — we've heard it all!",
			category: "experience",
			icon:     "❤️",
			funFact:  "Dental anxiety is SUPER common — and modern dentistry has amazing comfort options. You're in good hands!",
			options: []seedOption{
				{"I actually enjoy them!", "😍", PointMap{"preventive": 2}},
				{"They're fine, no big deal", "👍", PointMap{"preventive": 1}},
				{"A little nervous", "😅", PointMap{"sedation": 1}},
				{"Pretty anxious, honestly", "😰", PointMap{"sedation": 2, "anxietyFree": 2}},
			},
		},
	}

	for i, sq := range bank {
		q := Question{
			ID:            uuid.New(),
			Prompt:        sq.prompt,
			Subtitle:      sq.subtitle,
			Category:      sq.category,
			Icon:          sq.icon,
			FunFact:       sq.funFact,
			IsMultiSelect: sq.multiSelect,
			SortOrder:     i,
			IsActive:      true,
		}
		for j, so := range sq.options {
			q.Options = append(q.Options, Option{
				ID:        uuid.New(),
				Label:     so.label,
				Emoji:     so.emoji,
				Points:    so.points,
				SortOrder: j,
			})
		}
		if err := repo.Create(&q); err != nil {
			return err
		}
	}

	log.WithField("count", len(bank)).Info("Seeded default question bank")
	return nil
}

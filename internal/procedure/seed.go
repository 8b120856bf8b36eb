package procedure

import (
	"context"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/google/uuid"
)

// Seed inserts the default catalog when the table is empty. Safe to call on
// every boot.
func Seed(ctx context.Context, repo Repository) error {
	log := config.WithContext(ctx)

	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []Procedure{
		{Key: "whitening", Name: "Professional Teeth Whitening", Description: "Brighten your smile up to 8 shades with our safe, effective whitening treatments.", Timeframe: "1 visit (45 min) or 2 weeks at home", Icon: "✨", ColorGradient: "from-yellow-400 to-amber-500", Category: CategoryCosmetic},
		{Key: "invisalign", Name: "Invisalign Clear Aligners", Description: "Straighten your teeth discreetly with nearly invisible aligners. No metal brackets!", Timeframe: "6-18 months typical", Icon: "📐", ColorGradient: "from-blue-400 to-cyan-500", Category: CategoryOrthodontic},
		{Key: "veneers", Name: "Porcelain Veneers", Description: "Custom-crafted shells that transform the color, shape, and size of your teeth.", Timeframe: "2-3 visits over 2-4 weeks", Icon: "💎", ColorGradient: "from-purple-400 to-pink-500", Category: CategoryCosmetic},
		{Key: "bonding", Name: "Dental Bonding", Description: "Quick, affordable fix for chips, gaps, and minor imperfections.", Timeframe: "1 visit (30-60 min per tooth)", Icon: "🔧", ColorGradient: "from-green-400 to-emerald-500", Category: CategoryCosmetic},
		{Key: "preventive", Name: "Preventive Care Plan", Description: "Keep your healthy smile shining with regular cleanings and checkups.", Timeframe: "Every 6 months", Icon: "🛡️", ColorGradient: "from-teal-400 to-cyan-500", Category: CategoryPreventive},
		{Key: "deepCleaning", Name: "Deep Cleaning (Scaling)", Description: "Restore gum health with a thorough cleaning below the gumline.", Timeframe: "1-2 visits", Icon: "🧹", ColorGradient: "from-indigo-400 to-blue-500", Category: CategoryPreventive},
		{Key: "implants", Name: "Dental Implants", Description: "Permanent, natural-looking replacement for missing teeth.", Timeframe: "3-6 months total process", Icon: "🦷", ColorGradient: "from-slate-400 to-zinc-500", Category: CategoryRestorative},
		{Key: "crowns", Name: "Dental Crowns", Description: "Restore damaged teeth with custom-fitted, natural-looking caps.", Timeframe: "2 visits over 2 weeks", Icon: "👑", ColorGradient: "from-amber-400 to-orange-500", Category: CategoryRestorative},
		{Key: "gumContouring", Name: "Gum Contouring", Description: "Reshape your gumline for a more balanced, beautiful smile.", Timeframe: "1 visit", Icon: "✂️", ColorGradient: "from-rose-400 to-pink-500", Category: CategoryCosmetic},
		{Key: "cosmetic", Name: "Smile Makeover Consultation", Description: "Comprehensive evaluation to design your perfect smile transformation.", Timeframe: "1 consultation visit", Icon: "🎨", ColorGradient: "from-violet-400 to-purple-500", Category: CategoryCosmetic},
		{Key: "sedation", Name: "Sedation Dentistry", Description: "Relaxation options for a comfortable, anxiety-free experience.", Timeframe: "Available with any procedure", Icon: "😌", ColorGradient: "from-sky-400 to-blue-500", Category: CategoryComfort},
		{Key: "anxietyFree", Name: "Anxiety-Free Experience", Description: "We specialize in making nervous patients feel at ease. You're in caring hands!", Timeframe: "Every visit", Icon: "🤗", ColorGradient: "from-pink-400 to-rose-500", Category: CategoryComfort},
	}

	for i := range defaults {
		defaults[i].ID = uuid.New()
		defaults[i].SortOrder = i
		defaults[i].IsActive = true
		if err := repo.Create(&defaults[i]); err != nil {
			return err
		}
	}

	log.WithField("count", len(defaults)).Info("Seeded default procedure catalog")
	return nil
}

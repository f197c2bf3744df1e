package database

import (
	"log/slog"

	"github.com/carepoint/carepoint-api/internal/models"
)

// Seed fills the content tables with starter data. Each table is only
// touched when it is empty, so reruns are harmless.
func Seed() error {
	if err := seedTips(); err != nil {
		return err
	}
	if err := seedArticles(); err != nil {
		return err
	}
	if err := seedFAQs(); err != nil {
		return err
	}
	return seedPrivacyPolicy()
}

func seedTips() error {
	var count int64
	if err := DB.Model(&models.HealthTip{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tips := []models.HealthTip{
		{Title: "Stay Hydrated", Content: "Aim to drink at least 8 glasses of water per day to keep your body hydrated and functioning optimally.", Category: "hydration"},
		{Title: "Get Moving", Content: "Even a 20-minute walk each day lowers your risk of heart disease and lifts your mood.", Category: "exercise"},
		{Title: "Sleep Well", Content: "Adults need 7-9 hours of sleep. Keep a consistent bedtime and avoid screens for an hour before bed.", Category: "sleep"},
		{Title: "Eat Your Vegetables", Content: "Fill half your plate with vegetables and fruit at every meal to cover your vitamin and fiber needs.", Category: "nutrition"},
		{Title: "Take Mental Breaks", Content: "Short breaks during focused work reduce stress and improve concentration. Step away from your desk every hour.", Category: "mental_health"},
	}
	if err := DB.Create(&tips).Error; err != nil {
		return err
	}
	slog.Info("seeded health tips", "count", len(tips))
	return nil
}

func seedArticles() error {
	var count int64
	if err := DB.Model(&models.HealthArticle{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	articles := []models.HealthArticle{
		{
			Title:       "Understanding Your Heart Health",
			Slug:        "understanding-your-heart-health",
			Summary:     "Learn the key numbers behind cardiovascular health and what you can do to improve them.",
			Content:     "Your heart beats about 100,000 times a day. Blood pressure, resting heart rate and cholesterol are the three numbers worth knowing. Regular aerobic exercise, a diet low in saturated fat and not smoking are the biggest levers you control.",
			Category:    "preventive",
			IsFeatured:  true,
			IsPublished: true,
		},
		{
			Title:       "The Importance of Preventive Care",
			Slug:        "the-importance-of-preventive-care",
			Summary:     "Screenings and checkups catch problems while they are still easy to treat.",
			Content:     "Most chronic conditions develop silently for years. Annual checkups, age-appropriate screenings and staying current on vaccinations are the cheapest health insurance there is. Talk to your provider about which screenings apply to you.",
			Category:    "preventive",
			IsFeatured:  true,
			IsPublished: true,
		},
		{
			Title:       "Mental Health: Breaking the Stigma",
			Slug:        "mental-health-breaking-the-stigma",
			Summary:     "Mental health is health. Knowing when and how to ask for help matters.",
			Content:     "One in five adults experiences a mental health condition each year. Persistent low mood, anxiety that interferes with daily life, or changes in sleep and appetite are all reasons to talk to a professional.",
			Category:    "mental_health",
			IsPublished: true,
		},
		{
			Title:       "COVID-19: What You Need to Know",
			Slug:        "covid-19-what-you-need-to-know",
			Summary:     "Current guidance on symptoms, testing and staying protected.",
			Content:     "Vaccination remains the most effective protection against severe illness. If you develop fever, cough or loss of taste or smell, test early and stay home while symptomatic.",
			Category:    "covid",
			IsPublished: true,
		},
		{
			Title:       "Seasonal Flu: Prevention and Care",
			Slug:        "seasonal-flu-prevention-and-care",
			Summary:     "How to lower your odds of catching the flu and what to do if you get it.",
			Content:     "A yearly flu shot, frequent hand washing and staying home when ill are the pillars of flu prevention. Most healthy adults recover in about a week with rest and fluids.",
			Category:    "flu",
			IsPublished: true,
		},
	}
	if err := DB.Create(&articles).Error; err != nil {
		return err
	}
	slog.Info("seeded health articles", "count", len(articles))
	return nil
}

func seedFAQs() error {
	var count int64
	if err := DB.Model(&models.FAQ{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	faqs := []models.FAQ{
		{Question: "How do I track my wellness goals?", Answer: "Open the dashboard and your daily goals appear automatically. Log progress against any goal and it rolls up into your weekly summary.", Category: "wellness", Order: 1},
		{Question: "How is my health data protected?", Answer: "All data access is authenticated and audited. Your records are visible only to you and, read-only, to your assigned provider.", Category: "privacy", Order: 2},
		{Question: "How do preventive care reminders work?", Answer: "Create a reminder with a date and optional time. Upcoming reminders show on your dashboard; you mark them completed or reschedule them yourself.", Category: "wellness", Order: 3},
		{Question: "Can my doctor see my goals?", Answer: "Your assigned provider can view your recent goals and reminders but cannot change them.", Category: "privacy", Order: 4},
	}
	if err := DB.Create(&faqs).Error; err != nil {
		return err
	}
	slog.Info("seeded FAQs", "count", len(faqs))
	return nil
}

func seedPrivacyPolicy() error {
	var count int64
	if err := DB.Model(&models.PrivacyPolicy{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	policy := models.PrivacyPolicy{
		Title:         "Privacy Policy",
		Content:       "We collect only the information needed to provide your care: account details, wellness records you enter, and audit trails of who accessed what. We never sell personal data. You may request deletion of your account and records at any time.",
		Version:       "1.0",
		EffectiveDate: "2024-01-01",
		IsActive:      true,
	}
	if err := DB.Create(&policy).Error; err != nil {
		return err
	}
	slog.Info("seeded privacy policy", "version", policy.Version)
	return nil
}

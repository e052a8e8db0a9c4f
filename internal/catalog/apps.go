package catalog

// builtin is the canonical roster shown on the site.
var builtin = []Item{
	{
		ID:           1,
		Name:         "MyndSpark",
		Description:  "Mental wellness app with real-time push/in-app notifications and an AI chatbot for mental health. Available on App Store and Play Store.",
		Screens:      []string{"Home", "Ideas", "Brainstorm", "Projects", "Profile"},
		Technologies: []string{"React Native", "Node.js", "MongoDB", "Express", "AI Chatbot"},
		Features:     []string{"Real-time Push Notifications", "In-app Notifications", "AI Mental Health Chatbot"},
		Links: Links{
			AppStore:  "https://apps.apple.com/pk/app/myndspark/id6739531918",
			PlayStore: "https://play.google.com/store/apps/details?id=com.myndspark",
		},
		Variant: VariantLight,
		Icon:    IconSparkles,
		Logo:    "myndspark-logo.png",
	},
	{
		ID:           2,
		Name:         "LoyalAI",
		Description:  "Relationship-focused loyalty assistant with real-time push/in-app notifications and an AI chatbot for relationships. Available on App Store.",
		Screens:      []string{"Dashboard", "Rewards", "Analytics", "Campaigns", "Settings"},
		Technologies: []string{"React Native", "Node.js", "MongoDB", "Express", "AI Chatbot"},
		Features:     []string{"Real-time Push Notifications", "In-app Notifications", "Relationship AI Assistant"},
		Links: Links{
			AppStore: "https://apps.apple.com/pk/app/loyalai-modern-love-tracker/id6747716993",
		},
		Variant: VariantDark,
		Icon:    IconCPUChip,
		Logo:    "loyal-ai-logo.png",
		Screenshots: []string{
			"loyalai/iMockup - iPhone 15 Pro1 Max.png",
			"loyalai/iMockup - iPhone 15 Pro Max (1).png",
			"loyalai/iMockup - iPhone 15 Pro Max (2).png",
			"loyalai/iMockup - iPhone 15 Pro Max (3).png",
			"loyalai/iMockup - iPhone 15 Pro Max-2.png",
			"loyalai/iMockup - iPhone 15 Pro Max-4.png",
			"loyalai/iMockup - iPhone 15 Pro Max-3.png",
			"loyalai/iMockup - iPhone 15 Pro Max-1.png",
			"loyalai/iMockup - iPhone 15 Pro Max.png",
		},
	},
	{
		ID:           3,
		Name:         "FanGenie",
		Description:  "Fan engagement platform with push notifications and Stripe Payment Sheet integration. Available on App Store.",
		Screens:      []string{"Feed", "Create", "Fans", "Analytics", "Monetize"},
		Technologies: []string{"React Native", "Node.js", "MongoDB", "Express", "Stripe Payments"},
		Features:     []string{"Push Notifications", "Fan Engagement", "Stripe Payment Integration"},
		Links: Links{
			AppStore: "https://apps.apple.com/pk/app/fangenie/id6751832502",
		},
		Variant: VariantDark,
		Icon:    IconUserGroup,
		Logo:    "fangenie-logo.jpg",
	},
	{
		ID:           4,
		Name:         "SplitMart",
		Description:  "Educational marketplace platform for teaching, learning, and service selling. Features real-time chat, course management, and integrated payment processing.",
		Screens:      []string{"Courses", "Marketplace", "Chat", "Payments", "Dashboard"},
		Technologies: []string{"React Native", "Node.js", "MongoDB", "Express", "Payment Integration"},
		Features:     []string{"Course Management", "Service Marketplace", "Real-time Chat", "Payment Processing", "User Ratings & Reviews"},
		Links: Links{
			AppStore:  "https://apps.apple.com/pk/app/splitmart/id6740323886",
			PlayStore: "https://play.google.com/store/apps/details?id=com.splitmart",
		},
		Variant: VariantSky,
		Icon:    IconAcademicCap,
		Logo:    "splitmart-logo.png",
	},
}

// Default returns the built-in roster.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic("catalog: invalid built-in roster: " + err.Error())
	}
	return c
}

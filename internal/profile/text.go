package profile

var (
	AboutMe = `I'm a passionate **React Native Engineer** with over 2 years of professional experience building
innovative mobile applications across diverse industries including *mental wellness, healthcare, education,
and social engagement*.

My expertise spans the entire mobile development lifecycle, from conceptualization to deployment on both
*App Store and Google Play*. I've successfully delivered 5+ production-ready applications, serving thousands
of users worldwide.

I thrive on solving complex challenges and creating seamless user experiences. Whether it's integrating
cutting-edge AI technology, implementing secure payment systems, or building real-time communication
features, I bring *technical excellence and creative problem-solving* to every project.`

	CoreExpertise = []string{
		"React Native & Expo Development",
		"Node.js, Express, MongoDB",
		"Firebase",
		"AI Chatbot Integration",
		"Real-time Features & WebSockets",
		"Audio/Video Calling",
	}

	Specializations = []string{
		"Payment Integration (Stripe & more)",
		"RevenueCat with In-App Subscriptions",
		"Push & In-app Notifications",
		"Video Consultation (ZegoCloud)",
		"Multi-language Support",
		"App Store & Play Store Launch Expertise",
	}

	FooterCredit  = "© 2024 Muhammad Saad - React Native Engineer"
	FooterTagline = "Crafted with passion and attention to detail"
	DetailTeaser  = "More details and live demos coming soon..."
)

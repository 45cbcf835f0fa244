package routes

import "github.com/aimanzahar/mealshare-web/appwrite"

// Static marketing content for the landing page. Mirrors the copy shipped
// with the MealShare Android app's site.

type featureCard struct {
	Title string
	Body  string
	Badge string
}

var featureCards = []featureCard{
	{
		Title: "AI Chatbot Assistant",
		Body:  "DeepSeek-powered assistant answers donation questions, safety tips, and onboarding flows in real time.",
		Badge: "New",
	},
	{
		Title: "Reservation Flow",
		Body:  "End-to-end reservation lifecycle (Pending, Confirmed, Completed) with duplicate prevention and live status.",
		Badge: "Core",
	},
	{
		Title: "Rich Listings",
		Body:  "Create listings with up to 10 photos, expiry tracking, smart categories, and pickup windows donors control.",
		Badge: "Experience",
	},
	{
		Title: "Map & Nearby",
		Body:  "Interactive map + list toggle shows nearby surplus food with clustering, filters, and distance hints.",
		Badge: "Location",
	},
	{
		Title: "Role-Based Dashboards",
		Body:  "Tailored views for Donors, Receivers, and Volunteers with stats, quick actions, and task tracking.",
		Badge: "Personalized",
	},
	{
		Title: "Impact by Design",
		Body:  "Built around SDG 2 (Zero Hunger) and SDG 12 (Responsible Consumption) to curb food waste.",
		Badge: "Mission",
	},
}

type roleJourney struct {
	Name    string
	Summary string
	Items   []string
}

var roleJourneys = []roleJourney{
	{
		Name:    "Donors",
		Summary: "Share surplus meals in minutes.",
		Items: []string{
			"One-tap listing with photos & expiry reminders",
			"Control reservations and pickup confirmations",
			"Impact stats: meals donated & food saved",
		},
	},
	{
		Name:    "Receivers",
		Summary: "Find nearby, safe-to-eat meals fast.",
		Items: []string{
			"Reserve instantly with clear status updates",
			"Navigation to pickup + contact info",
			"Money saved and nutrition trackers",
		},
	},
	{
		Name:    "Volunteers",
		Summary: "Bridge donors to receivers.",
		Items: []string{
			"Delivery and sorting tasks with urgency cues",
			"Route-friendly pickup planning",
			"Hours logged and people helped stats",
		},
	},
}

type highlight struct {
	Label string
	Value string
}

var highlights = []highlight{
	{Label: "UN SDG Focus", Value: "SDG 2 & SDG 12"},
	{Label: "Tech Stack", Value: "Android · Kotlin · HMS · Appwrite"},
	{Label: "Data Trust", Value: "Status-colored chips & validation"},
	{Label: "Visual Polish", Value: "Material 3, gradients, shimmer"},
}

type flowStep struct {
	Title string
	Body  string
}

var flowSteps = []flowStep{
	{
		Title: "List or find food",
		Body:  "Donors post items with photos, expiry, and pickup slots. Receivers browse nearby with filters and urgency badges.",
	},
	{
		Title: "Reserve & confirm",
		Body:  "One-tap reservations trigger status tracking, notifications, and duplicate-prevention safeguards.",
	},
	{
		Title: "Pickup & track impact",
		Body:  "Volunteers deliver, donors mark complete, and everyone sees meals saved plus carbon-friendly wins.",
	},
}

type impactCard struct {
	Label   string
	Value   string
	Caption string
}

// impactCards returns the dashboard mock stats; anonymous visitors see
// placeholders prompting a login.
func impactCards(user *appwrite.User) []impactCard {
	if user == nil {
		return []impactCard{
			{Label: "Meals donated", Value: "—", Caption: "Login to see"},
			{Label: "Receivers helped", Value: "—", Caption: "Login to see"},
			{Label: "Food saved", Value: "—", Caption: "Login to see"},
			{Label: "Volunteer hours", Value: "—", Caption: "Login to see"},
		}
	}
	return []impactCard{
		{Label: "Meals donated", Value: "42", Caption: "Last 30 days"},
		{Label: "Receivers helped", Value: "18", Caption: "Across 4 districts"},
		{Label: "Food saved", Value: "128 kg", Caption: "Est. landfill diversion"},
		{Label: "Volunteer hours", Value: "24 h", Caption: "Coordinated pickups"},
	}
}

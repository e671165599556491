package catalog

// ServiceDescriptor is one bookable offering with display pricing.
type ServiceDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// services is the clinic's fixed offering table, returned verbatim.
var services = []ServiceDescriptor{
	{
		ID:          "gp",
		Name:        "Private GP Consultation",
		Price:       "From £45",
		Duration:    "15-30 minutes",
		Description: "Same-day appointments available",
	},
	{
		ID:          "blood",
		Name:        "Blood Testing",
		Price:       "From £400",
		Duration:    "15 minutes",
		Description: "Same-day results",
	},
	{
		ID:          "iv",
		Name:        "IV Therapy",
		Price:       "From £295",
		Duration:    "45 minutes",
		Description: "Personalized vitamin infusions",
	},
	{
		ID:          "weight",
		Name:        "Weight Loss Program",
		Price:       "From £349",
		Duration:    "3-6 months",
		Description: "Medical weight management",
	},
	{
		ID:          "prp",
		Name:        "PRP Treatment",
		Price:       "From £475",
		Duration:    "60 minutes",
		Description: "Hair, skin & joint therapy",
	},
	{
		ID:          "facial",
		Name:        "Medical Facial",
		Price:       "Contact for pricing",
		Duration:    "60-90 minutes",
		Description: "Medical-grade treatments",
	},
}

// dailySlots is the fixed daily template. Availability is not cross-checked
// against existing bookings.
var dailySlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// Services returns the fixed offering table.
func Services() []ServiceDescriptor {
	out := make([]ServiceDescriptor, len(services))
	copy(out, services)
	return out
}

// Slots returns the fixed daily slot template for any date and service;
// inputs are echoed by the handler, never validated.
func Slots() []string {
	out := make([]string, len(dailySlots))
	copy(out, dailySlots)
	return out
}

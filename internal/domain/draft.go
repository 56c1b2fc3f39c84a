package domain

// DraftRequest accumulates a customer's answers across the wizard steps.
// It lives entirely in the wizard session and is never persisted as-is;
// a completed draft is normalized into a CustomInquiry on submission.
// Dates are ISO-8601 strings until validation coerces them.
type DraftRequest struct {
	Regions       []string `json:"regions"`
	TravelStyle   string   `json:"travel_style"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	Infants       int      `json:"infants"`
	Accommodation string   `json:"accommodation"`
	Experiences   []string `json:"experiences"`
	BudgetMin     int64    `json:"budget_min"`
	BudgetMax     int64    `json:"budget_max"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	CountryCode   string   `json:"country_code"`
	Phone         string   `json:"phone"`
	Notes         string   `json:"notes"`
}

// BookingInput is the lighter single-step form submitted from a package page.
type BookingInput struct {
	PackageID      string `json:"package_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	CountryCode    string `json:"country_code"`
	Phone          string `json:"phone"`
	TravelDate     string `json:"travel_date"`
	NumberOfPeople int    `json:"number_of_people"`
}

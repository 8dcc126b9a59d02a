package domain

type MealPreference string

const (
	MealPreferenceVeg    MealPreference = "Veg"
	MealPreferenceNonVeg MealPreference = "Non-Veg"
)

// MealOptions is the fixed on-board menu. The meal option is picked at
// booking time; the Veg/Non-Veg preference is collected alongside but not
// cross-checked against it.
var MealOptions = []string{
	"Paneer Curry",
	"Dal Tadka",
	"Fruit Platter",
	"Veg Biryani",
	"Chicken Biryani",
	"Fish Fry",
	"Butter Chicken",
	"Prawn Gravy",
}

func IsMealOption(option string) bool {
	for _, m := range MealOptions {
		if m == option {
			return true
		}
	}
	return false
}

func IsMealPreference(pref string) bool {
	return pref == string(MealPreferenceVeg) || pref == string(MealPreferenceNonVeg)
}

type Passenger struct {
	Name           string
	Corporate      bool
	CorporateID    string
	MealPreference MealPreference
	MealOption     string
}

// NewPassenger builds a passenger record for one booking attempt. The
// corporate id is dropped when the corporate flag is off, regardless of
// what was typed into the field.
func NewPassenger(name string, corporate bool, corporateID string) Passenger {
	if !corporate {
		corporateID = ""
	}
	return Passenger{Name: name, Corporate: corporate, CorporateID: corporateID}
}

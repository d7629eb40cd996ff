package service

import "sort"

// countryNames backs the booking form dropdown. "Other" is included so the
// list never forces a wrong answer.
var countryNames = []string{
	"United States", "United Kingdom", "Canada", "Australia", "Germany", "France", "Italy", "Spain",
	"Netherlands", "Belgium", "Switzerland", "Austria", "Sweden", "Norway", "Denmark", "Finland",
	"Poland", "Portugal", "Greece", "Ireland", "Czech Republic", "Hungary", "Romania", "Bulgaria",
	"Croatia", "Slovakia", "Slovenia", "Estonia", "Latvia", "Lithuania", "Luxembourg", "Malta",
	"Cyprus", "Japan", "China", "India", "South Korea", "Singapore", "Hong Kong", "Taiwan",
	"Thailand", "Malaysia", "Indonesia", "Philippines", "Vietnam", "New Zealand", "South Africa",
	"Brazil", "Mexico", "Argentina", "Chile", "Colombia", "Peru", "Venezuela", "Uruguay",
	"Ecuador", "Panama", "Costa Rica", "Guatemala", "Honduras", "El Salvador", "Nicaragua",
	"Dominican Republic", "Jamaica", "Trinidad and Tobago", "Bahamas", "Barbados", "Belize",
	"Israel", "United Arab Emirates", "Saudi Arabia", "Qatar", "Kuwait", "Bahrain", "Oman",
	"Jordan", "Lebanon", "Egypt", "Turkey", "Russia", "Ukraine", "Kazakhstan", "Belarus",
	"Georgia", "Armenia", "Azerbaijan", "Moldova", "Albania", "Bosnia and Herzegovina",
	"Serbia", "Montenegro", "North Macedonia", "Kosovo", "Iceland", "Liechtenstein", "Monaco",
	"San Marino", "Andorra", "Vatican City", "Bangladesh", "Pakistan", "Sri Lanka", "Nepal",
	"Bhutan", "Myanmar", "Cambodia", "Laos", "Mongolia", "North Korea", "Afghanistan",
	"Iran", "Iraq", "Syria", "Yemen", "Libya", "Tunisia", "Algeria", "Morocco", "Sudan",
	"Ethiopia", "Kenya", "Tanzania", "Uganda", "Ghana", "Nigeria", "Senegal", "Ivory Coast",
	"Cameroon", "Gabon", "Angola", "Mozambique", "Madagascar", "Mauritius", "Seychelles",
	"Botswana", "Namibia", "Zimbabwe", "Zambia", "Malawi", "Rwanda", "Burundi", "Djibouti",
	"Eritrea", "Somalia", "Chad", "Niger", "Mali", "Burkina Faso", "Guinea", "Sierra Leone",
	"Liberia", "Togo", "Benin", "Gambia", "Guinea-Bissau", "Cape Verde", "São Tomé and Príncipe",
	"Equatorial Guinea", "Central African Republic", "Republic of the Congo", "Democratic Republic of the Congo",
	"Other",
}

// Countries returns the dropdown country list, sorted alphabetically. Callers
// get a fresh copy.
func Countries() []string {
	out := make([]string, len(countryNames))
	copy(out, countryNames)
	sort.Strings(out)
	return out
}

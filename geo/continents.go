// File: /geo/continents.go
package geo

// Continent is one of the fixed buckets used by the suggestion engine to
// group countries. Any country code outside the table maps to ContinentOther.
type Continent string

const (
	ContinentEurope   Continent = "europe"
	ContinentAsia     Continent = "asia"
	ContinentAmericas Continent = "americas"
	ContinentAfrica   Continent = "africa"
	ContinentOceania  Continent = "oceania"
	ContinentOther    Continent = "other"
)

// Static partition of ISO 3166-1 alpha-3 codes. Extend by adding entries.
var continentByCountry = map[string]Continent{
	// Europe
	"ALB": ContinentEurope, "AND": ContinentEurope, "AUT": ContinentEurope,
	"BEL": ContinentEurope, "BGR": ContinentEurope, "BIH": ContinentEurope,
	"BLR": ContinentEurope, "CHE": ContinentEurope, "CYP": ContinentEurope,
	"CZE": ContinentEurope, "DEU": ContinentEurope, "DNK": ContinentEurope,
	"ESP": ContinentEurope, "EST": ContinentEurope, "FIN": ContinentEurope,
	"FRA": ContinentEurope, "GBR": ContinentEurope, "GRC": ContinentEurope,
	"HRV": ContinentEurope, "HUN": ContinentEurope, "IRL": ContinentEurope,
	"ISL": ContinentEurope, "ITA": ContinentEurope, "LIE": ContinentEurope,
	"LTU": ContinentEurope, "LUX": ContinentEurope, "LVA": ContinentEurope,
	"MCO": ContinentEurope, "MDA": ContinentEurope, "MKD": ContinentEurope,
	"MLT": ContinentEurope, "MNE": ContinentEurope, "NLD": ContinentEurope,
	"NOR": ContinentEurope, "POL": ContinentEurope, "PRT": ContinentEurope,
	"ROU": ContinentEurope, "SMR": ContinentEurope, "SRB": ContinentEurope,
	"SVK": ContinentEurope, "SVN": ContinentEurope, "SWE": ContinentEurope,
	"UKR": ContinentEurope, "VAT": ContinentEurope,

	// Asia
	"ARE": ContinentAsia, "ARM": ContinentAsia, "AZE": ContinentAsia,
	"BGD": ContinentAsia, "BHR": ContinentAsia, "BRN": ContinentAsia,
	"BTN": ContinentAsia, "CHN": ContinentAsia, "GEO": ContinentAsia,
	"HKG": ContinentAsia, "IDN": ContinentAsia, "IND": ContinentAsia,
	"IRN": ContinentAsia, "IRQ": ContinentAsia, "ISR": ContinentAsia,
	"JOR": ContinentAsia, "JPN": ContinentAsia, "KAZ": ContinentAsia,
	"KGZ": ContinentAsia, "KHM": ContinentAsia, "KOR": ContinentAsia,
	"KWT": ContinentAsia, "LAO": ContinentAsia, "LBN": ContinentAsia,
	"LKA": ContinentAsia, "MDV": ContinentAsia, "MMR": ContinentAsia,
	"MNG": ContinentAsia, "MYS": ContinentAsia, "NPL": ContinentAsia,
	"OMN": ContinentAsia, "PAK": ContinentAsia, "PHL": ContinentAsia,
	"PRK": ContinentAsia, "QAT": ContinentAsia, "SAU": ContinentAsia,
	"SGP": ContinentAsia, "SYR": ContinentAsia, "THA": ContinentAsia,
	"TJK": ContinentAsia, "TKM": ContinentAsia, "TUR": ContinentAsia,
	"TWN": ContinentAsia, "UZB": ContinentAsia, "VNM": ContinentAsia,
	"YEM": ContinentAsia,

	// Americas
	"ARG": ContinentAmericas, "BHS": ContinentAmericas, "BLZ": ContinentAmericas,
	"BOL": ContinentAmericas, "BRA": ContinentAmericas, "BRB": ContinentAmericas,
	"CAN": ContinentAmericas, "CHL": ContinentAmericas, "COL": ContinentAmericas,
	"CRI": ContinentAmericas, "CUB": ContinentAmericas, "DOM": ContinentAmericas,
	"ECU": ContinentAmericas, "GTM": ContinentAmericas, "GUY": ContinentAmericas,
	"HND": ContinentAmericas, "HTI": ContinentAmericas, "JAM": ContinentAmericas,
	"MEX": ContinentAmericas, "NIC": ContinentAmericas, "PAN": ContinentAmericas,
	"PER": ContinentAmericas, "PRY": ContinentAmericas, "SLV": ContinentAmericas,
	"SUR": ContinentAmericas, "TTO": ContinentAmericas, "URY": ContinentAmericas,
	"USA": ContinentAmericas, "VEN": ContinentAmericas,

	// Africa
	"AGO": ContinentAfrica, "BEN": ContinentAfrica, "BWA": ContinentAfrica,
	"CIV": ContinentAfrica, "CMR": ContinentAfrica, "COD": ContinentAfrica,
	"COG": ContinentAfrica, "DZA": ContinentAfrica, "EGY": ContinentAfrica,
	"ETH": ContinentAfrica, "GAB": ContinentAfrica, "GHA": ContinentAfrica,
	"GIN": ContinentAfrica, "KEN": ContinentAfrica, "LBY": ContinentAfrica,
	"MAR": ContinentAfrica, "MDG": ContinentAfrica, "MLI": ContinentAfrica,
	"MOZ": ContinentAfrica, "MRT": ContinentAfrica, "MUS": ContinentAfrica,
	"MWI": ContinentAfrica, "NAM": ContinentAfrica, "NER": ContinentAfrica,
	"NGA": ContinentAfrica, "RWA": ContinentAfrica, "SDN": ContinentAfrica,
	"SEN": ContinentAfrica, "SYC": ContinentAfrica, "TGO": ContinentAfrica,
	"TUN": ContinentAfrica, "TZA": ContinentAfrica, "UGA": ContinentAfrica,
	"ZAF": ContinentAfrica, "ZMB": ContinentAfrica, "ZWE": ContinentAfrica,

	// Oceania
	"AUS": ContinentOceania, "FJI": ContinentOceania, "KIR": ContinentOceania,
	"NCL": ContinentOceania, "NZL": ContinentOceania, "PNG": ContinentOceania,
	"PYF": ContinentOceania, "SLB": ContinentOceania, "TON": ContinentOceania,
	"VUT": ContinentOceania, "WSM": ContinentOceania,
}

// ContinentOf maps a country code to its continent bucket. Total over all
// strings: unknown codes map to ContinentOther.
func ContinentOf(countryCode string) Continent {
	if c, ok := continentByCountry[countryCode]; ok {
		return c
	}
	return ContinentOther
}

// CountriesIn returns the country codes classified under the given
// continent. ContinentOther has no enumerable member set and yields nil.
func CountriesIn(continent Continent) []string {
	var codes []string
	for code, c := range continentByCountry {
		if c == continent {
			codes = append(codes, code)
		}
	}
	return codes
}

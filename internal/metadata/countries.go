package metadata

// countryByName maps ISO 3166-1 country names to their alpha-2 codes.
var countryByName = map[string]string{
	"Afghanistan":                      "AF",
	"Albania":                          "AL",
	"Algeria":                          "DZ",
	"American Samoa":                   "AS",
	"Andorra":                          "AD",
	"Angola":                           "AO",
	"Anguilla":                         "AI",
	"Antarctica":                       "AQ",
	"Antigua and Barbuda":              "AG",
	"Argentina":                        "AR",
	"Armenia":                          "AM",
	"Aruba":                            "AW",
	"Australia":                        "AU",
	"Austria":                          "AT",
	"Azerbaijan":                       "AZ",
	"Bahamas":                          "BS",
	"Bahrain":                          "BH",
	"Bangladesh":                       "BD",
	"Barbados":                         "BB",
	"Belarus":                          "BY",
	"Belgium":                          "BE",
	"Belize":                           "BZ",
	"Benin":                            "BJ",
	"Bermuda":                          "BM",
	"Bhutan":                           "BT",
	"Bolivia":                          "BO",
	"Bosnia and Herzegovina":           "BA",
	"Botswana":                         "BW",
	"Brazil":                           "BR",
	"Brunei Darussalam":                "BN",
	"Bulgaria":                         "BG",
	"Burkina Faso":                     "BF",
	"Burundi":                          "BI",
	"Cabo Verde":                       "CV",
	"Cambodia":                         "KH",
	"Cameroon":                         "CM",
	"Canada":                           "CA",
	"Cayman Islands":                   "KY",
	"Central African Republic":         "CF",
	"Chad":                             "TD",
	"Chile":                            "CL",
	"China":                            "CN",
	"Colombia":                         "CO",
	"Comoros":                          "KM",
	"Congo":                            "CG",
	"Cook Islands":                     "CK",
	"Costa Rica":                       "CR",
	"Croatia":                          "HR",
	"Cuba":                             "CU",
	"Curacao":                          "CW",
	"Cyprus":                           "CY",
	"Czechia":                          "CZ",
	"Czech Republic":                   "CZ",
	"Denmark":                          "DK",
	"Djibouti":                         "DJ",
	"Dominica":                         "DM",
	"Dominican Republic":               "DO",
	"Ecuador":                          "EC",
	"Egypt":                            "EG",
	"El Salvador":                      "SV",
	"Equatorial Guinea":                "GQ",
	"Eritrea":                          "ER",
	"Estonia":                          "EE",
	"Eswatini":                         "SZ",
	"Ethiopia":                         "ET",
	"Faroe Islands":                    "FO",
	"Fiji":                             "FJ",
	"Finland":                          "FI",
	"France":                           "FR",
	"French Guiana":                    "GF",
	"French Polynesia":                 "PF",
	"Gabon":                            "GA",
	"Gambia":                           "GM",
	"Georgia":                          "GE",
	"Germany":                          "DE",
	"Ghana":                            "GH",
	"Gibraltar":                        "GI",
	"Greece":                           "GR",
	"Greenland":                        "GL",
	"Grenada":                          "GD",
	"Guadeloupe":                       "GP",
	"Guam":                             "GU",
	"Guatemala":                        "GT",
	"Guernsey":                         "GG",
	"Guinea":                           "GN",
	"Guinea-Bissau":                    "GW",
	"Guyana":                           "GY",
	"Haiti":                            "HT",
	"Honduras":                         "HN",
	"Hong Kong":                        "HK",
	"Hungary":                          "HU",
	"Iceland":                          "IS",
	"India":                            "IN",
	"Indonesia":                        "ID",
	"Iran":                             "IR",
	"Iraq":                             "IQ",
	"Ireland":                          "IE",
	"Isle of Man":                      "IM",
	"Israel":                           "IL",
	"Italy":                            "IT",
	"Jamaica":                          "JM",
	"Japan":                            "JP",
	"Jersey":                           "JE",
	"Jordan":                           "JO",
	"Kazakhstan":                       "KZ",
	"Kenya":                            "KE",
	"Kiribati":                         "KI",
	"Kosovo":                           "XK",
	"Kuwait":                           "KW",
	"Kyrgyzstan":                       "KG",
	"Laos":                             "LA",
	"Latvia":                           "LV",
	"Lebanon":                          "LB",
	"Lesotho":                          "LS",
	"Liberia":                          "LR",
	"Libya":                            "LY",
	"Liechtenstein":                    "LI",
	"Lithuania":                        "LT",
	"Luxembourg":                       "LU",
	"Macao":                            "MO",
	"Madagascar":                       "MG",
	"Malawi":                           "MW",
	"Malaysia":                         "MY",
	"Maldives":                         "MV",
	"Mali":                             "ML",
	"Malta":                            "MT",
	"Marshall Islands":                 "MH",
	"Martinique":                       "MQ",
	"Mauritania":                       "MR",
	"Mauritius":                        "MU",
	"Mexico":                           "MX",
	"Micronesia":                       "FM",
	"Moldova":                          "MD",
	"Monaco":                           "MC",
	"Mongolia":                         "MN",
	"Montenegro":                       "ME",
	"Montserrat":                       "MS",
	"Morocco":                          "MA",
	"Mozambique":                       "MZ",
	"Myanmar":                          "MM",
	"Namibia":                          "NA",
	"Nauru":                            "NR",
	"Nepal":                            "NP",
	"Netherlands":                      "NL",
	"New Caledonia":                    "NC",
	"New Zealand":                      "NZ",
	"Nicaragua":                        "NI",
	"Niger":                            "NE",
	"Nigeria":                          "NG",
	"North Macedonia":                  "MK",
	"Norway":                           "NO",
	"Oman":                             "OM",
	"Pakistan":                         "PK",
	"Palau":                            "PW",
	"Palestine":                        "PS",
	"Panama":                           "PA",
	"Papua New Guinea":                 "PG",
	"Paraguay":                         "PY",
	"Peru":                             "PE",
	"Philippines":                      "PH",
	"Poland":                           "PL",
	"Portugal":                         "PT",
	"Puerto Rico":                      "PR",
	"Qatar":                            "QA",
	"Reunion":                          "RE",
	"Romania":                          "RO",
	"Russian Federation":               "RU",
	"Rwanda":                           "RW",
	"Saint Kitts and Nevis":            "KN",
	"Saint Lucia":                      "LC",
	"Saint Vincent and the Grenadines": "VC",
	"Samoa":                            "WS",
	"San Marino":                       "SM",
	"Sao Tome and Principe":            "ST",
	"Saudi Arabia":                     "SA",
	"Senegal":                          "SN",
	"Serbia":                           "RS",
	"Seychelles":                       "SC",
	"Sierra Leone":                     "SL",
	"Singapore":                        "SG",
	"Slovakia":                         "SK",
	"Slovenia":                         "SI",
	"Solomon Islands":                  "SB",
	"Somalia":                          "SO",
	"South Africa":                     "ZA",
	"South Sudan":                      "SS",
	"Spain":                            "ES",
	"Sri Lanka":                        "LK",
	"Sudan":                            "SD",
	"Suriname":                         "SR",
	"Sweden":                           "SE",
	"Switzerland":                      "CH",
	"Syria":                            "SY",
	"Taiwan":                           "TW",
	"Tajikistan":                       "TJ",
	"Tanzania":                         "TZ",
	"Thailand":                         "TH",
	"Timor-Leste":                      "TL",
	"Togo":                             "TG",
	"Tonga":                            "TO",
	"Trinidad and Tobago":              "TT",
	"Tunisia":                          "TN",
	"Turkiye":                          "TR",
	"Turkmenistan":                     "TM",
	"Tuvalu":                           "TV",
	"Uganda":                           "UG",
	"Ukraine":                          "UA",
	"United Arab Emirates":             "AE",
	"United Kingdom":                   "GB",
	"United States":                    "US",
	"United States of America":         "US",
	"Uruguay":                          "UY",
	"Uzbekistan":                       "UZ",
	"Vanuatu":                          "VU",
	"Vatican City":                     "VA",
	"Venezuela":                        "VE",
	"Viet Nam":                         "VN",
	"Vietnam":                          "VN",
	"Virgin Islands":                   "VI",
	"Yemen":                            "YE",
	"Zambia":                           "ZM",
	"Zimbabwe":                         "ZW",
}

// subdivisionCountry maps lowercased ISO 3166-2 subdivision names that
// show up as Bandcamp locations to their country code. Cities are not
// subdivisions, so only state/region level names appear here.
var subdivisionCountry = map[string]string{
	"alabama":              "US",
	"alaska":               "US",
	"arizona":              "US",
	"arkansas":             "US",
	"california":           "US",
	"colorado":             "US",
	"connecticut":          "US",
	"delaware":             "US",
	"florida":              "US",
	"georgia":              "US",
	"hawaii":               "US",
	"idaho":                "US",
	"illinois":             "US",
	"indiana":              "US",
	"iowa":                 "US",
	"kansas":               "US",
	"kentucky":             "US",
	"louisiana":            "US",
	"maine":                "US",
	"maryland":             "US",
	"massachusetts":        "US",
	"michigan":             "US",
	"minnesota":            "US",
	"mississippi":          "US",
	"missouri":             "US",
	"montana":              "US",
	"nebraska":             "US",
	"nevada":               "US",
	"new hampshire":        "US",
	"new jersey":           "US",
	"new mexico":           "US",
	"new york":             "US",
	"north carolina":       "US",
	"north dakota":         "US",
	"ohio":                 "US",
	"oklahoma":             "US",
	"oregon":               "US",
	"pennsylvania":         "US",
	"rhode island":         "US",
	"south carolina":       "US",
	"south dakota":         "US",
	"tennessee":            "US",
	"texas":                "US",
	"utah":                 "US",
	"vermont":              "US",
	"virginia":             "US",
	"washington":           "US",
	"west virginia":        "US",
	"wisconsin":            "US",
	"wyoming":              "US",
	"district of columbia": "US",

	"england":          "GB",
	"scotland":         "GB",
	"wales":            "GB",
	"northern ireland": "GB",

	"alberta":                   "CA",
	"british columbia":          "CA",
	"manitoba":                  "CA",
	"new brunswick":             "CA",
	"newfoundland and labrador": "CA",
	"nova scotia":               "CA",
	"ontario":                   "CA",
	"quebec":                    "CA",
	"saskatchewan":              "CA",

	"new south wales":    "AU",
	"queensland":         "AU",
	"south australia":    "AU",
	"tasmania":           "AU",
	"victoria":           "AU",
	"western australia":  "AU",
	"northern territory": "AU",

	"bavaria":                "DE",
	"berlin":                 "DE",
	"brandenburg":            "DE",
	"hamburg":                "DE",
	"hesse":                  "DE",
	"north rhine-westphalia": "DE",
	"saxony":                 "DE",

	"catalonia":      "ES",
	"andalusia":      "ES",
	"basque country": "ES",

	"lombardy": "IT",
	"tuscany":  "IT",
	"lazio":    "IT",

	"tokyo": "JP",
	"osaka": "JP",
}
